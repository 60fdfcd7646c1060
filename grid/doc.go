// Package grid holds the cell model the search runs against: a sparse map
// from integer coordinate to cell record over a fixed square universe.
//
// What:
//
//   - Coord is a bounded (X, Y) pair with a SplitMix64-mixed hash.
//   - CellType is the closed set Checked < Wall < Path < Source < Target.
//     The numeric order is the precedence order. Remove is a paint command,
//     never a stored type.
//   - Model stores only occupied cells, tracks the single Source and Target,
//     and enforces the placement rules below.
//   - Line rasterises the segment between two coordinates so a fast pointer
//     stroke leaves no gaps.
//
// Placement rules (Model.Place):
//
//   - Out-of-universe coordinates and unknown types are rejected.
//   - Remove deletes the cell only if it holds a Wall; it always reports false.
//   - While searching, a placement is rejected when the existing cell has a
//     precedence ≥ the new type. While idle, any occupied cell rejects it.
//   - Source and Target never land on the other endpoint. They evict the
//     previous Source (resp. Target), relocate the tracked coordinate and
//     report false.
//   - Anything else is inserted and reported true.
//
// Errors:
//
//   - ErrBadUniverse: universe side < 1.
//   - ErrOutOfBounds: an endpoint outside [0, universe).
//   - ErrSameEndpoints: Source and Target on the same coordinate.
//
// Complexity:
//
//   - Place, Cell, InBounds: O(1) average.
//   - ClearAll: O(1) plus re-placing the two endpoints.
//   - ClearPreservingWalls, Walls: O(n) in stored cells.
package grid
