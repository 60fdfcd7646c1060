package minheap

import (
	"github.com/katalvlaran/pathviz/dynarray"
)

// Heap is a binary min-heap ordered by float64 priority.
//
// The zero value is not usable; construct with New.
type Heap[T any] struct {
	nodes *dynarray.Array[node[T]]
}

// New returns an empty heap. Options tune the backing array.
func New[T any](opts ...dynarray.Option) *Heap[T] {
	return &Heap[T]{nodes: dynarray.New[node[T]](opts...)}
}

// Len returns the number of stored pairs, duplicates included.
func (h *Heap[T]) Len() int { return h.nodes.Len() }

// IsEmpty reports whether the heap holds no pairs.
func (h *Heap[T]) IsEmpty() bool { return h.nodes.IsEmpty() }

// Clear drops every pair.
func (h *Heap[T]) Clear() { h.nodes.Clear() }

// Add inserts item with the given priority.
func (h *Heap[T]) Add(item T, priority float64) {
	h.nodes.Push(node[T]{item: item, priority: priority})
	h.up(h.nodes.Len() - 1)
}

// Smallest returns the minimum pair without removing it.
// It panics with ErrEmpty on an empty heap.
func (h *Heap[T]) Smallest() (T, float64) {
	if h.nodes.IsEmpty() {
		panic(ErrEmpty)
	}
	n := h.nodes.Get(0)

	return n.item, n.priority
}

// RemoveSmallest removes and returns the item with the lowest priority.
// It panics with ErrEmpty on an empty heap.
func (h *Heap[T]) RemoveSmallest() T {
	item, _ := h.RemoveSmallestWithPriority()

	return item
}

// RemoveSmallestWithPriority is RemoveSmallest that also returns the
// priority the item was stored with.
func (h *Heap[T]) RemoveSmallestWithPriority() (T, float64) {
	if h.nodes.IsEmpty() {
		panic(ErrEmpty)
	}
	last := h.nodes.Len() - 1
	h.nodes.Swap(0, last)
	root := h.nodes.Pop()
	if !h.nodes.IsEmpty() {
		h.down(0)
	}

	return root.item, root.priority
}

// up moves the pair at i toward the root while its parent is larger.
func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.nodes.Get(parent).priority <= h.nodes.Get(i).priority {
			return
		}
		h.nodes.Swap(parent, i)
		i = parent
	}
}

// down moves the pair at i toward the leaves while a child is smaller.
func (h *Heap[T]) down(i int) {
	n := h.nodes.Len()
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && h.nodes.Get(right).priority < h.nodes.Get(left).priority {
			smallest = right
		}
		if h.nodes.Get(i).priority <= h.nodes.Get(smallest).priority {
			return
		}
		h.nodes.Swap(i, smallest)
		i = smallest
	}
}
