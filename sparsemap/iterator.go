package sparsemap

import (
	"fmt"
	"iter"
)

// Iterator is a stateful cursor over a Map.
//
// It records the map's modification version at Begin and walks buckets in
// index order, slots in storage order. Any mutation of the map before the
// pass ends invalidates the cursor; the next call to Next, Key or Value
// panics with ErrConcurrentModification.
//
// Typical use:
//
//	for it := m.Begin(); it.Next(); {
//	    use(it.Key(), it.Value())
//	}
type Iterator[K comparable, V any] struct {
	m       *Map[K, V]
	version uint64
	bucket  int
	slot    int
	visited int
	valid   bool
}

// Begin returns a cursor positioned before the first pair.
func (m *Map[K, V]) Begin() *Iterator[K, V] {
	return &Iterator[K, V]{
		m:       m,
		version: m.version,
		bucket:  0,
		slot:    -1,
	}
}

// Next advances to the next pair and reports whether one exists.
func (it *Iterator[K, V]) Next() bool {
	it.checkVersion()
	if it.visited >= it.m.size {
		it.valid = false
		return false
	}

	it.slot++
	for it.bucket < len(it.m.buckets) {
		b := it.m.buckets[it.bucket]
		if b != nil && it.slot < b.Len() {
			it.visited++
			it.valid = true
			return true
		}
		it.bucket++
		it.slot = 0
	}

	// Unreachable while size matches the bucket contents.
	it.valid = false

	return false
}

// HasNext reports whether another call to Next would succeed.
func (it *Iterator[K, V]) HasNext() bool {
	it.checkVersion()

	return it.visited < it.m.size
}

// Key returns the key at the cursor.
func (it *Iterator[K, V]) Key() K {
	return it.current().key
}

// Value returns the value at the cursor.
func (it *Iterator[K, V]) Value() V {
	return it.current().value
}

// Visited returns how many pairs the cursor has produced so far.
func (it *Iterator[K, V]) Visited() int { return it.visited }

func (it *Iterator[K, V]) current() entry[K, V] {
	it.checkVersion()
	if !it.valid {
		panic(ErrIteratorExhausted)
	}

	return it.m.buckets[it.bucket].Get(it.slot)
}

func (it *Iterator[K, V]) checkVersion() {
	if it.version != it.m.version {
		panic(fmt.Errorf("%w: started at version %d, map at %d",
			ErrConcurrentModification, it.version, it.m.version))
	}
}

// All returns the pairs as an iter.Seq2, driven by a fresh cursor.
// The same no-mutation-during-iteration rule applies.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.Begin(); it.Next(); {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}
