package sparsemap

import "errors"

// Sentinel errors carried by contract-violation panics.
var (
	// ErrNotFound indicates Get or Remove referenced a key that is absent.
	ErrNotFound = errors.New("sparsemap: key not found")

	// ErrConcurrentModification indicates the map was mutated while an
	// iteration cursor was in flight.
	ErrConcurrentModification = errors.New("sparsemap: map modified during iteration")

	// ErrIteratorExhausted indicates Key or Value was read from a cursor that
	// is not positioned on a pair.
	ErrIteratorExhausted = errors.New("sparsemap: iterator has no current pair")
)

const (
	// DefaultCapacity is the initial number of buckets.
	DefaultCapacity = 4

	// DefaultMinCapacity is the bucket count under which Remove never shrinks.
	DefaultMinCapacity = 32

	growLoad   = 1.0  // size/capacity at which Insert doubles the table
	shrinkLoad = 0.25 // size/capacity under which Remove halves the table
)

// Hasher maps a key to a 64-bit hash. Equal keys must hash equally.
type Hasher[K comparable] func(K) uint64

// Options configures a new Map.
type Options struct {
	// Capacity is the initial bucket count (≥ 1).
	Capacity int

	// MinCapacity is the shrink floor (≥ 1).
	MinCapacity int
}

// Option is a functional option for New.
type Option func(*Options)

// WithCapacity sets the initial bucket count. Values < 1 are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Capacity = n
		}
	}
}

// WithMinCapacity sets the shrink floor. Values < 1 are ignored.
func WithMinCapacity(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MinCapacity = n
		}
	}
}

// DefaultOptions returns Capacity=DefaultCapacity, MinCapacity=DefaultMinCapacity.
func DefaultOptions() Options {
	return Options{
		Capacity:    DefaultCapacity,
		MinCapacity: DefaultMinCapacity,
	}
}

// entry is one stored pair.
type entry[K comparable, V any] struct {
	key   K
	value V
}
