// Package session ties a grid.Model, a search.Engine and a view.Transform
// into the single object a frame loop drives.
//
// A frame loop calls the mutation entry points (Select, Press, Run, Pause,
// Resume, Clear, Drag, Zoom, SetStrategy) as input arrives, then calls Step
// exactly once per frame. Step advances the search by one bounded chunk
// and returns a Frame: a read-only view over the stored cells plus
// rectangle and grid-line generators.
//
// The Frame's cell iteration must finish before the next mutation. A frame
// loop that handles input, calls Step and draws, in that order, always
// satisfies this.
//
// Editing rules:
//
//   - Painting is allowed only while the engine is Idle, except the Remove
//     tool, which keeps working during a search.
//   - Select resets the search (walls survive) so stale Checked and Path
//     cells never linger after a tool switch.
//   - SetStrategy rebuilds the engine from the current walls and endpoints.
package session
