package view

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathviz/grid"
)

// Sentinel errors.
var (
	// ErrBadViewport indicates a viewport with a non-positive side.
	ErrBadViewport = errors.New("view: viewport size must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("view: invalid option supplied")
)

// Defaults.
const (
	DefaultMinCellSize  = 20.0
	DefaultMaxCellSize  = 200.0
	DefaultZoomStep     = 2.0
	DefaultGrowSeconds  = 0.2
	DefaultGlideSeconds = 0.5
)

// Point is a 2-D position, in pixels or in fractional cells.
type Point struct {
	X, Y float64
}

// CellPoint returns the fractional-cell position of c.
func CellPoint(c grid.Coord) Point {
	return Point{X: float64(c.X), Y: float64(c.Y)}
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Segment is a line from A to B in pixels.
type Segment struct {
	A, B Point
}

// Options configures a Transform.
type Options struct {
	Universe     int
	MinCellSize  float64
	MaxCellSize  float64
	ZoomStep     float64
	// CellSize is the starting cell size; zero starts at MinCellSize.
	CellSize     float64
	GrowSeconds  float64
	GlideSeconds float64

	err error
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the default universe and cell size limits.
func DefaultOptions() Options {
	return Options{
		Universe:     grid.DefaultUniverse,
		MinCellSize:  DefaultMinCellSize,
		MaxCellSize:  DefaultMaxCellSize,
		ZoomStep:     DefaultZoomStep,
		GrowSeconds:  DefaultGrowSeconds,
		GlideSeconds: DefaultGlideSeconds,
	}
}

// WithUniverse sets the universe side in cells (≥ 1).
func WithUniverse(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: universe %d", ErrOptionViolation, n)
			return
		}
		o.Universe = n
	}
}

// WithCellSizeRange sets the zoom limits in pixels per cell
// (0 < min ≤ max).
func WithCellSizeRange(minSize, maxSize float64) Option {
	return func(o *Options) {
		if minSize <= 0 || maxSize < minSize {
			o.err = fmt.Errorf("%w: cell size range [%v, %v]", ErrOptionViolation, minSize, maxSize)
			return
		}
		o.MinCellSize, o.MaxCellSize = minSize, maxSize
	}
}

// WithCellSize sets the starting cell size in pixels (≥ 0). New clamps it
// to the cell size range; zero keeps the minimum.
func WithCellSize(px float64) Option {
	return func(o *Options) {
		if px < 0 || math.IsNaN(px) || math.IsInf(px, 0) {
			o.err = fmt.Errorf("%w: cell size %v", ErrOptionViolation, px)
			return
		}
		o.CellSize = px
	}
}

// WithZoomStep sets the pixels added per unit of zoom delta (> 0).
func WithZoomStep(step float64) Option {
	return func(o *Options) {
		if step <= 0 {
			o.err = fmt.Errorf("%w: zoom step %v", ErrOptionViolation, step)
			return
		}
		o.ZoomStep = step
	}
}

// WithAnimation sets the grow and glide durations in seconds (≥ 0; zero
// disables the animation).
func WithAnimation(grow, glide float64) Option {
	return func(o *Options) {
		if grow < 0 || glide < 0 {
			o.err = fmt.Errorf("%w: animation durations %v/%v", ErrOptionViolation, grow, glide)
			return
		}
		o.GrowSeconds, o.GlideSeconds = grow, glide
	}
}
