// Package dynarray provides Array, an amortised growable sequence with an
// explicit capacity policy.
//
// What:
//
//   - Push appends in amortised O(1), doubling the backing storage when full.
//   - Pop removes the last element in amortised O(1) and halves the storage
//     once the fill ratio drops below 25% (never under the minimum capacity),
//     so long-lived sparse containers give memory back.
//   - Get, Set and Swap are O(1) and bounds-checked.
//
// Why:
//
//   - Array backs the buckets of sparsemap.Map and the storage of
//     minheap.Heap. Both need predictable growth and shrink behaviour that a
//     bare slice does not give (append never shrinks).
//
// Errors:
//
//   - ErrEmpty: Pop on an empty array.
//   - ErrIndexOutOfRange: Get/Set/Swap outside [0, Len()).
//
// Both are contract violations: they are raised with panic, carrying an error
// that wraps the sentinel, so a recovered value can be matched with errors.Is.
// Callers are expected to check IsEmpty or Len first.
//
// Complexity:
//
//   - Push, Pop: amortised O(1), worst case O(n) on resize.
//   - Get, Set, Swap, Len, Cap: O(1).
//   - Memory: O(cap) where Len() ≥ Cap()/4 or Cap() == MinCapacity.
package dynarray
