package dynarray

import "fmt"

// Array is a growable indexable sequence of T.
//
// The zero value is not usable; construct with New.
// Array is not safe for concurrent use.
type Array[T any] struct {
	items   []T // backing storage; len(items) is the capacity
	size    int // number of live elements at items[0:size]
	initCap int // capacity restored by Clear
	minCap  int // shrink floor
}

// New returns an empty Array configured by opts.
func New[T any](opts ...Option) *Array[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Array[T]{
		items:   make([]T, cfg.Capacity),
		initCap: cfg.Capacity,
		minCap:  cfg.MinCapacity,
	}
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the size of the backing storage.
func (a *Array[T]) Cap() int { return len(a.items) }

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }

// Push appends v, doubling the storage first when it is full.
func (a *Array[T]) Push(v T) {
	if a.size == len(a.items) {
		a.resize(2 * len(a.items))
	}
	a.items[a.size] = v
	a.size++
}

// Pop removes and returns the last element.
// Storage is halved when the fill ratio falls below 25% and the capacity is
// above the minimum. Pop on an empty array panics with ErrEmpty.
func (a *Array[T]) Pop() T {
	if a.size == 0 {
		panic(ErrEmpty)
	}
	a.size--
	v := a.items[a.size]

	var zero T
	a.items[a.size] = zero // drop the reference for the GC

	if len(a.items) > a.minCap && float64(a.size)/float64(len(a.items)) < shrinkRatio {
		a.resize(max(len(a.items)/2, a.minCap))
	}

	return v
}

// Get returns the element at i.
func (a *Array[T]) Get(i int) T {
	a.check(i)

	return a.items[i]
}

// Set overwrites the element at i.
func (a *Array[T]) Set(i int, v T) {
	a.check(i)
	a.items[i] = v
}

// Swap exchanges the elements at i and j.
func (a *Array[T]) Swap(i, j int) {
	a.check(i)
	a.check(j)
	a.items[i], a.items[j] = a.items[j], a.items[i]
}

// Last returns the final element. It panics with ErrEmpty when empty.
func (a *Array[T]) Last() T {
	if a.size == 0 {
		panic(ErrEmpty)
	}

	return a.items[a.size-1]
}

// Clear removes every element and restores the initial capacity.
func (a *Array[T]) Clear() {
	a.items = make([]T, a.initCap)
	a.size = 0
}

// Values returns a copy of the live elements in index order.
func (a *Array[T]) Values() []T {
	out := make([]T, a.size)
	copy(out, a.items[:a.size])

	return out
}

// resize moves the live elements into fresh storage of length n.
func (a *Array[T]) resize(n int) {
	items := make([]T, n)
	copy(items, a.items[:a.size])
	a.items = items
}

func (a *Array[T]) check(i int) {
	if i < 0 || i >= a.size {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, a.size))
	}
}
