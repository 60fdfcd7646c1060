// Package minheap provides Heap, a binary min-heap of (item, priority) pairs
// stored in a dynarray.Array.
//
// What:
//
//   - Add appends the pair and sifts it up past every parent with a larger
//     priority.
//   - RemoveSmallest swaps the root with the last pair, pops it, then sifts
//     the new root down against the smaller child at each level.
//   - There is no decrease-key and no identity lookup: re-adding an item
//     with a better priority inserts a duplicate. Callers that need
//     "current best" semantics filter stale entries when they pop them.
//
// Why:
//
//   - The search frontier only ever needs insert and extract-min. Lazy
//     duplicates keep both O(log n) without an index map.
//
// Errors:
//
//   - ErrEmpty: RemoveSmallest or Smallest on an empty heap. This is a
//     contract violation raised with panic; check IsEmpty first.
//
// Complexity:
//
//   - Add, RemoveSmallest: O(log n), plus amortised storage resizing.
//   - Smallest, Len, IsEmpty: O(1).
//
// Equal priorities are returned in heap-structural order; callers must not
// rely on any tie-break.
package minheap
