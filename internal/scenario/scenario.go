// Package scenario generates reproducible wall layouts for the headless
// solve and bench commands.
//
// Every layout places the endpoints where a fresh window session would
// put them for the whole universe: Target at (n/5, n/2) and Source at
// (4n/5, n/2). Random choices come from a seeded math/rand source, so the
// same (kind, universe, seed, density) always yields the same walls.
package scenario

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Sentinel errors.
var (
	// ErrUnknownKind is returned for a layout name that is not recognised.
	ErrUnknownKind = errors.New("scenario: unknown layout kind")

	// ErrTooSmall is returned when the universe cannot hold distinct endpoints.
	ErrTooSmall = errors.New("scenario: universe too small")

	// ErrBadDensity is returned for a random density outside [0, 1).
	ErrBadDensity = errors.New("scenario: density must be in [0, 1)")
)

// MinUniverse is the smallest universe with distinct default endpoints.
const MinUniverse = 5

// defaultRNGSeed replaces a zero seed.
const defaultRNGSeed int64 = 1

// barSpacing is the column distance between barriers in the Bars layout.
const barSpacing = 4

// Kind names a layout family.
type Kind int

const (
	// Open has no walls.
	Open Kind = iota
	// Random walls each cell independently with the given density.
	Random
	// Bars draws vertical barriers whose single gap alternates between the
	// top and bottom rows, forcing a serpentine path.
	Bars
	// Separator draws one full column between the endpoints, so the target
	// is unreachable.
	Separator
)

// Kinds lists every layout family in declaration order.
var Kinds = []Kind{Open, Random, Bars, Separator}

func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Random:
		return "random"
	case Bars:
		return "bars"
	case Separator:
		return "separator"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a String() form back to its Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Layout is a generated grid: its size, endpoints and walls.
type Layout struct {
	Kind     Kind
	Universe int
	Seed     int64
	Source   grid.Coord
	Target   grid.Coord
	Walls    []grid.Coord
}

// Endpoints returns the default Source and Target for an n×n universe.
func Endpoints(n int) (source, target grid.Coord) {
	return grid.Coord{X: 4 * n / 5, Y: n / 2}, grid.Coord{X: n / 5, Y: n / 2}
}

// Generate builds a layout. density is only read by Random.
func Generate(kind Kind, universe int, seed int64, density float64) (Layout, error) {
	if universe < MinUniverse {
		return Layout{}, fmt.Errorf("%w: %d < %d", ErrTooSmall, universe, MinUniverse)
	}
	if seed == 0 {
		seed = defaultRNGSeed
	}

	l := Layout{Kind: kind, Universe: universe, Seed: seed}
	l.Source, l.Target = Endpoints(universe)

	switch kind {
	case Open:
	case Random:
		if density < 0 || density >= 1 {
			return Layout{}, fmt.Errorf("%w: %v", ErrBadDensity, density)
		}
		l.Walls = l.random(rand.New(rand.NewSource(seed)), density)
	case Bars:
		l.Walls = l.bars()
	case Separator:
		l.Walls = l.column(universe / 2)
	default:
		return Layout{}, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}

	return l, nil
}

// Engine returns an Idle engine over a fresh model holding the layout.
func (l Layout) Engine(opts ...search.Option) (*search.Engine, error) {
	return search.Rebuild(l.Universe, l.Walls, l.Source, l.Target, opts...)
}

func (l Layout) endpoint(c grid.Coord) bool { return c == l.Source || c == l.Target }

// random walks the universe row-major so the draw order is stable.
func (l Layout) random(rng *rand.Rand, density float64) []grid.Coord {
	var walls []grid.Coord
	for y := 0; y < l.Universe; y++ {
		for x := 0; x < l.Universe; x++ {
			c := grid.Coord{X: x, Y: y}
			if rng.Float64() < density && !l.endpoint(c) {
				walls = append(walls, c)
			}
		}
	}

	return walls
}

func (l Layout) bars() []grid.Coord {
	var walls []grid.Coord
	for i, x := 0, barSpacing; x < l.Universe; i, x = i+1, x+barSpacing {
		gap := 0
		if i%2 == 0 {
			gap = l.Universe - 1
		}
		for y := 0; y < l.Universe; y++ {
			c := grid.Coord{X: x, Y: y}
			if y != gap && !l.endpoint(c) {
				walls = append(walls, c)
			}
		}
	}

	return walls
}

func (l Layout) column(x int) []grid.Coord {
	walls := make([]grid.Coord, 0, l.Universe)
	for y := 0; y < l.Universe; y++ {
		walls = append(walls, grid.Coord{X: x, Y: y})
	}

	return walls
}
