package minheap

import "errors"

// ErrEmpty indicates RemoveSmallest or Smallest was called on an empty heap.
var ErrEmpty = errors.New("minheap: heap is empty")

// node is one stored (item, priority) pair.
type node[T any] struct {
	item     T
	priority float64
}
