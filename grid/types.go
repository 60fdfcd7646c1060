package grid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathviz/sparsemap"
)

// Sentinel errors returned by NewModel.
var (
	// ErrBadUniverse indicates a universe side smaller than one cell.
	ErrBadUniverse = errors.New("grid: universe must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside [0, universe).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrSameEndpoints indicates Source and Target share a coordinate.
	ErrSameEndpoints = errors.New("grid: source and target must differ")
)

// DefaultUniverse is the side length of the square universe.
const DefaultUniverse = 400

// Coord is an integer grid coordinate.
type Coord struct {
	X, Y int
}

// NoCoord is the predecessor of the source: a coordinate outside every
// universe.
var NoCoord = Coord{X: -1000, Y: -1000}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Hash packs both axes into one word and runs the SplitMix64 finalizer, so
// anti-diagonal coordinates (equal X+Y) land in different buckets.
func (c Coord) Hash() uint64 {
	return sparsemap.Mix64(uint64(uint32(c.X))<<32 | uint64(uint32(c.Y)))
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// HashCoord adapts Coord.Hash to sparsemap.Hasher.
func HashCoord(c Coord) uint64 { return c.Hash() }

// neighborOffsets lists the four orthogonal steps in row-major scan order
// (up, left, right, down).
var neighborOffsets = [4][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

// Neighbors4 returns the four orthogonal neighbours of c. Bounds are not
// checked; Model.Place rejects outsiders.
func Neighbors4(c Coord) [4]Coord {
	var out [4]Coord
	for i, d := range neighborOffsets {
		out[i] = c.Add(d[0], d[1])
	}

	return out
}

// CellType is the kind of a stored cell, or the Remove paint command.
// The numeric order of the stored kinds is their precedence.
type CellType int

const (
	// Checked marks a coordinate the search has discovered.
	Checked CellType = iota
	// Wall is an obstacle painted by the user.
	Wall
	// Path marks a coordinate on the traced shortest path.
	Path
	// Source is the unique start cell.
	Source
	// Target is the unique goal cell.
	Target
	// Remove deletes a Wall; it is never stored.
	Remove
)

// Stored reports whether t may appear in the model.
func (t CellType) Stored() bool { return t >= Checked && t <= Target }

// Valid reports whether t is a stored type or Remove.
func (t CellType) Valid() bool { return t >= Checked && t <= Remove }

// Precedence returns the overwrite rank of t.
func (t CellType) Precedence() int { return int(t) }

func (t CellType) String() string {
	switch t {
	case Checked:
		return "checked"
	case Wall:
		return "wall"
	case Path:
		return "path"
	case Source:
		return "source"
	case Target:
		return "target"
	case Remove:
		return "remove"
	default:
		return fmt.Sprintf("CellType(%d)", int(t))
	}
}

// ParseCellType maps a String() form back to its CellType.
func ParseCellType(s string) (CellType, bool) {
	for t := Checked; t <= Remove; t++ {
		if t.String() == s {
			return t, true
		}
	}

	return 0, false
}

// Cell is one stored record. Stamp is the placement time in seconds and
// only drives animation.
type Cell struct {
	Type  CellType
	Stamp float64
}
