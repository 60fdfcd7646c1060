// Package pathviz is an interactive shortest-path visualiser for bounded
// 2-D grids. Walls are painted by hand and Dijkstra or A* expands toward the
// target a few rounds per frame.
//
// The search is incremental. Each frame runs at most a fixed budget of
// relaxation rounds, and the grid stays editable between frames, so walls
// can be erased under a running search without restarting it.
//
// Packages:
//
//	dynarray/  growable array with a shrink policy; storage for the others
//	sparsemap/ hashed map with an injected hasher and a snapshot cursor
//	minheap/   binary min-heap keyed by float priority
//	grid/      coordinates, cell types with precedence, the grid model, Bresenham lines
//	search/    the incremental Dijkstra / A* engine and its lifecycle
//	view/      screen↔grid transform, zoom, grid lines, glide and grow animation
//	session/   the object a UI drives: tools, strokes, run/pause, per-frame snapshot
//
// Application code lives under internal/ (config, logging, metrics,
// preferences, layouts, terminal rendering, the ebiten window) and the
// command under cmd/pathviz:
//
//	pathviz window              # open the visualiser
//	pathviz solve --layout bars # solve a generated layout in the terminal
//	pathviz bench               # compare strategies across layouts
//
// Quick ASCII example (S source, T target, # wall, * path):
//
//	. . . . . . .
//	. . # # # . .
//	T * # . # * S
//	. * * * * * .
//
// The library packages have no global state and are not safe for
// concurrent use; one goroutine owns a session, as ebiten's Update/Draw do.
package pathviz
