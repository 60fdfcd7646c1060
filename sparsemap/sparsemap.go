package sparsemap

import (
	"fmt"

	"github.com/katalvlaran/pathviz/dynarray"
)

// Map is a hash map from K to V with load-factor driven resizing.
//
// The zero value is not usable; construct with New.
// Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	hash    Hasher[K]
	buckets []*dynarray.Array[entry[K, V]] // nil bucket == empty bucket
	size    int
	initCap int
	minCap  int
	version uint64 // bumped on every structural or value change
}

// New returns an empty Map using hash for bucket selection.
// It panics if hash is nil.
func New[K comparable, V any](hash Hasher[K], opts ...Option) *Map[K, V] {
	if hash == nil {
		panic("sparsemap: nil Hasher")
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Map[K, V]{
		hash:    hash,
		buckets: make([]*dynarray.Array[entry[K, V]], cfg.Capacity),
		initCap: cfg.Capacity,
		minCap:  cfg.MinCapacity,
	}
}

// Len returns the number of stored pairs.
func (m *Map[K, V]) Len() int { return m.size }

// Capacity returns the number of buckets.
func (m *Map[K, V]) Capacity() int { return len(m.buckets) }

// Insert stores v under k, replacing any previous value.
// The bucket table doubles first when the load factor has reached 1.
func (m *Map[K, V]) Insert(k K, v V) {
	if float64(m.size)/float64(len(m.buckets)) >= growLoad {
		m.rehash(2 * len(m.buckets))
	}
	m.version++
	m.put(k, v)
}

// ContainsKey reports whether k is stored.
func (m *Map[K, V]) ContainsKey(k K) bool {
	_, slot := m.find(k)

	return slot >= 0
}

// Lookup returns the value stored under k and whether it was present.
func (m *Map[K, V]) Lookup(k K) (V, bool) {
	b, slot := m.find(k)
	if slot < 0 {
		var zero V
		return zero, false
	}

	return m.buckets[b].Get(slot).value, true
}

// Get returns the value stored under k.
// It panics with ErrNotFound when k is absent; callers pre-check with
// ContainsKey or use Lookup.
func (m *Map[K, V]) Get(k K) V {
	b, slot := m.find(k)
	if slot < 0 {
		panic(fmt.Errorf("%w: %v", ErrNotFound, k))
	}

	return m.buckets[b].Get(slot).value
}

// Remove deletes k and returns its value.
// It panics with ErrNotFound when k is absent. The bucket table halves
// afterwards when the load factor is under 0.25 and above the floor.
func (m *Map[K, V]) Remove(k K) V {
	b, slot := m.find(k)
	if slot < 0 {
		panic(fmt.Errorf("%w: %v", ErrNotFound, k))
	}

	bucket := m.buckets[b]
	removed := bucket.Get(slot).value
	last := bucket.Pop()
	if slot < bucket.Len() {
		bucket.Set(slot, last) // move the tail pair into the hole
	}
	m.size--
	m.version++

	if len(m.buckets) > m.minCap && float64(m.size)/float64(len(m.buckets)) < shrinkLoad {
		m.rehash(max(len(m.buckets)/2, m.minCap))
	}

	return removed
}

// Clear removes every pair and restores the initial bucket count.
func (m *Map[K, V]) Clear() {
	m.buckets = make([]*dynarray.Array[entry[K, V]], m.initCap)
	m.size = 0
	m.version++
}

// Keys returns every stored key in iteration order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for it := m.Begin(); it.Next(); {
		keys = append(keys, it.Key())
	}

	return keys
}

// find locates k, returning its bucket index and slot (slot < 0 if absent).
func (m *Map[K, V]) find(k K) (int, int) {
	b := m.index(k, len(m.buckets))
	bucket := m.buckets[b]
	if bucket == nil {
		return b, -1
	}
	for i := 0; i < bucket.Len(); i++ {
		if bucket.Get(i).key == k {
			return b, i
		}
	}

	return b, -1
}

// put replaces or appends without checking the load factor.
func (m *Map[K, V]) put(k K, v V) {
	b, slot := m.find(k)
	if slot >= 0 {
		m.buckets[b].Set(slot, entry[K, V]{key: k, value: v})
		return
	}
	if m.buckets[b] == nil {
		m.buckets[b] = newBucket[K, V]()
	}
	m.buckets[b].Push(entry[K, V]{key: k, value: v})
	m.size++
}

// rehash moves every pair into a table of n buckets.
func (m *Map[K, V]) rehash(n int) {
	old := m.buckets
	m.buckets = make([]*dynarray.Array[entry[K, V]], n)
	m.size = 0
	for _, bucket := range old {
		if bucket == nil {
			continue
		}
		for i := 0; i < bucket.Len(); i++ {
			e := bucket.Get(i)
			m.put(e.key, e.value)
		}
	}
	m.version++
}

func (m *Map[K, V]) index(k K, n int) int {
	return int(m.hash(k) % uint64(n))
}

func newBucket[K comparable, V any]() *dynarray.Array[entry[K, V]] {
	return dynarray.New[entry[K, V]](dynarray.WithCapacity(2), dynarray.WithMinCapacity(4))
}
