package grid

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/pathviz/sparsemap"
)

// Model is the sparse cell store of one session.
//
// Only occupied coordinates are stored. Exactly one Source and one Target
// exist at all times after NewModel returns.
type Model struct {
	universe  int
	cells     *sparsemap.Map[Coord, Cell]
	source    Coord
	target    Coord
	searching bool
}

// NewModel returns a model over a universe×universe square with Source and
// Target placed at stamp 0. Options tune the backing cell map.
func NewModel(universe int, source, target Coord, opts ...sparsemap.Option) (*Model, error) {
	if universe < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadUniverse, universe)
	}
	m := &Model{
		universe: universe,
		cells:    sparsemap.New[Coord, Cell](HashCoord, opts...),
	}
	if !m.InBounds(source) {
		return nil, fmt.Errorf("%w: source %v in universe %d", ErrOutOfBounds, source, universe)
	}
	if !m.InBounds(target) {
		return nil, fmt.Errorf("%w: target %v in universe %d", ErrOutOfBounds, target, universe)
	}
	if source == target {
		return nil, fmt.Errorf("%w: both at %v", ErrSameEndpoints, source)
	}

	m.source, m.target = source, target
	m.cells.Insert(source, Cell{Type: Source})
	m.cells.Insert(target, Cell{Type: Target})

	return m, nil
}

// Universe returns the side length of the square universe.
func (m *Model) Universe() int { return m.universe }

// InBounds reports whether c lies in [0, universe) on both axes.
func (m *Model) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < m.universe && c.Y < m.universe
}

// Source returns the tracked Source coordinate.
func (m *Model) Source() Coord { return m.source }

// Target returns the tracked Target coordinate.
func (m *Model) Target() Coord { return m.target }

// SetSearching switches between the idle and searching placement rules.
func (m *Model) SetSearching(on bool) { m.searching = on }

// Searching reports whether the searching placement rules are active.
func (m *Model) Searching() bool { return m.searching }

// Len returns the number of stored cells.
func (m *Model) Len() int { return m.cells.Len() }

// Cell returns the record at c and whether one is stored.
func (m *Model) Cell(c Coord) (Cell, bool) { return m.cells.Lookup(c) }

// Place applies the placement rules to put a cell of type t at c.
// It reports true only when c was newly occupied by a non-endpoint type,
// which is what the search uses to decide whether to relax from c.
func (m *Model) Place(c Coord, t CellType, stamp float64) bool {
	if !m.InBounds(c) || !t.Valid() {
		return false
	}

	existing, occupied := m.cells.Lookup(c)
	if t == Remove {
		if occupied && existing.Type == Wall {
			m.cells.Remove(c)
		}
		return false
	}

	if occupied {
		if !m.searching || existing.Type.Precedence() >= t.Precedence() {
			return false
		}
	}

	switch t {
	case Source:
		if c == m.target {
			return false
		}
		m.evict(m.source, Source)
		m.source = c
		m.cells.Insert(c, Cell{Type: Source, Stamp: stamp})
		return false
	case Target:
		if c == m.source {
			return false
		}
		m.evict(m.target, Target)
		m.target = c
		m.cells.Insert(c, Cell{Type: Target, Stamp: stamp})
		return false
	}

	m.cells.Insert(c, Cell{Type: t, Stamp: stamp})

	return true
}

// evict deletes c if it still holds t.
func (m *Model) evict(c Coord, t CellType) {
	if cell, ok := m.cells.Lookup(c); ok && cell.Type == t {
		m.cells.Remove(c)
	}
}

// ClearAll wipes every cell, then re-places Source and Target at their
// tracked coordinates with their previous stamps.
func (m *Model) ClearAll() {
	src, _ := m.cells.Lookup(m.source)
	dst, _ := m.cells.Lookup(m.target)
	m.cells.Clear()
	m.cells.Insert(m.source, Cell{Type: Source, Stamp: src.Stamp})
	m.cells.Insert(m.target, Cell{Type: Target, Stamp: dst.Stamp})
}

// ClearPreservingWalls is ClearAll that keeps every Wall cell (coordinate
// and stamp).
func (m *Model) ClearPreservingWalls() {
	var walls []Coord
	var stamps []float64
	for c, cell := range m.cells.All() {
		if cell.Type == Wall {
			walls = append(walls, c)
			stamps = append(stamps, cell.Stamp)
		}
	}
	m.ClearAll()
	for i, c := range walls {
		m.cells.Insert(c, Cell{Type: Wall, Stamp: stamps[i]})
	}
}

// Walls returns every Wall coordinate in iteration order.
func (m *Model) Walls() []Coord {
	return m.Collect(Wall)
}

// Collect returns the coordinates holding t in iteration order.
func (m *Model) Collect(t CellType) []Coord {
	var out []Coord
	for c, cell := range m.cells.All() {
		if cell.Type == t {
			out = append(out, c)
		}
	}

	return out
}

// Count returns how many stored cells hold t.
func (m *Model) Count(t CellType) int {
	n := 0
	for _, cell := range m.cells.All() {
		if cell.Type == t {
			n++
		}
	}

	return n
}

// Begin returns a snapshot cursor over every stored cell. The model must
// not be mutated until the pass finishes.
func (m *Model) Begin() *sparsemap.Iterator[Coord, Cell] { return m.cells.Begin() }

// Cells is Begin as an iter.Seq2.
func (m *Model) Cells() iter.Seq2[Coord, Cell] { return m.cells.All() }
