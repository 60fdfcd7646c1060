// Package sparsemap implements Map, a separate-chaining hash map whose
// buckets are dynarray.Array values and whose bucket table grows and shrinks
// with the load factor.
//
// What:
//
//   - Insert replaces an existing value or appends a new pair; when the load
//     factor size/capacity reaches 1 the bucket table doubles and every pair is
//     rehashed.
//   - Remove deletes a pair by moving the bucket's last pair into its slot; when
//     the load factor drops below 0.25 (and the table is above its floor) the
//     table halves and every pair is rehashed.
//   - Begin returns a cursor that walks buckets in index order and slots in
//     storage order, visiting exactly Len() pairs.
//
// Why:
//
//   - The grid engine keys sparse, long-lived state (cells, distances,
//     predecessors) by coordinate over a large universe. Shrinking keeps a
//     session's memory proportional to what is painted, not to history.
//
// Hashing:
//
//   - The key hash is injected (Hasher). HashInt and HashString are provided;
//     Mix64 is the SplitMix64 finalizer they share, exported so composite keys
//     (such as grid coordinates) can build strong hashes instead of summing
//     fields.
//
// Errors (contract violations, raised with panic):
//
//   - ErrNotFound: Get or Remove of an absent key. Check ContainsKey or use
//     Lookup first.
//   - ErrConcurrentModification: the map changed while a cursor was live.
//   - ErrIteratorExhausted: Key/Value on a cursor that is not positioned.
//
// Complexity:
//
//   - Insert, ContainsKey, Lookup, Get, Remove: O(1) average, O(n) on rehash.
//   - Full iteration: O(capacity + n).
package sparsemap
