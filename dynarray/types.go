package dynarray

import "errors"

// Sentinel errors carried by contract-violation panics.
var (
	// ErrEmpty indicates Pop was called on an empty array.
	ErrEmpty = errors.New("dynarray: pop from empty array")

	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")
)

const (
	// DefaultCapacity is the initial backing size of a new Array.
	DefaultCapacity = 4

	// DefaultMinCapacity is the floor under which Pop never shrinks storage.
	DefaultMinCapacity = 32

	// shrinkRatio is the fill ratio below which Pop halves the storage.
	shrinkRatio = 0.25
)

// Options configures a new Array.
type Options struct {
	// Capacity is the initial backing size (≥ 1).
	Capacity int

	// MinCapacity is the shrink floor (≥ 1).
	MinCapacity int
}

// Option is a functional option for New.
type Option func(*Options)

// WithCapacity sets the initial backing size. Values < 1 are ignored.
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
