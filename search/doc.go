// Package search implements an incremental single-source, single-target
// shortest-path engine (Dijkstra or A*) over a grid.Model.
//
// What:
//
//   - Engine owns a minheap frontier, a distance map and a predecessor map
//     (both sparsemap.Map keyed by grid.Coord).
//   - Work is chunked: each Step performs at most Budget rounds, so a frame
//     loop can interleave search progress with user edits and rendering.
//   - A relaxation round pops the best frontier entry and examines its four
//     orthogonal neighbours. Discovery goes through grid.Model.Place with
//     the Checked type, so the model's precedence rules decide which cells
//     the search may claim.
//   - Once the Target is discovered the engine walks the predecessor chain
//     back to the Source, one hop per round, painting Path cells.
//
// State machine:
//
//	Idle --Run--> Running --target seen--> PathFound --source reached--> PathTraced
//	                 |
//	                 +--frontier empty--> Exhausted
//
// Reset and Clear return to Idle from any state. Pause freezes Running or
// PathFound without discarding anything; Resume continues.
//
// Strategies:
//
//   - Dijkstra: priority = hop count.
//   - AStar(w): priority = hop count + w·euclid(n, target), w ≥ 1.
//     w = 1 keeps the result optimal; larger w trades optimality for speed.
//
// Frontier entries are never updated in place. A shorter route to a cell
// that is still Checked updates its distance and predecessor and pushes a
// duplicate; entries whose stored distance is larger than the current one
// are skipped when popped.
//
// Errors:
//
//   - ErrNilModel: New was given a nil model.
//   - ErrOptionViolation: an option received an invalid value.
//   - ErrUnknownStrategy: ParseKind did not recognise a name.
//
// An unreachable Target is not an error: the engine settles in Exhausted.
//
// Complexity:
//
//   - Step: O(Budget · log F) where F is the frontier size.
//   - Memory: O(C) for C discovered cells, plus duplicates in the frontier.
package search
