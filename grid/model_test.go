package grid_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
)

func newModel(t *testing.T) *grid.Model {
	t.Helper()
	m, err := grid.NewModel(10, grid.Coord{X: 9, Y: 5}, grid.Coord{X: 0, Y: 5})
	require.NoError(t, err)

	return m
}

func sortCoords(cs []grid.Coord) []grid.Coord {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].X != cs[j].X {
			return cs[i].X < cs[j].X
		}
		return cs[i].Y < cs[j].Y
	})

	return cs
}

func TestNewModel_Validation(t *testing.T) {
	cases := []struct {
		name     string
		universe int
		src, dst grid.Coord
		want     error
	}{
		{"zero universe", 0, grid.Coord{}, grid.Coord{X: 1}, grid.ErrBadUniverse},
		{"source outside", 5, grid.Coord{X: 5}, grid.Coord{}, grid.ErrOutOfBounds},
		{"target outside", 5, grid.Coord{}, grid.Coord{Y: -1}, grid.ErrOutOfBounds},
		{"same endpoints", 5, grid.Coord{X: 2, Y: 2}, grid.Coord{X: 2, Y: 2}, grid.ErrSameEndpoints},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewModel(tc.universe, tc.src, tc.dst)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewModel_Endpoints(t *testing.T) {
	m := newModel(t)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, grid.Coord{X: 9, Y: 5}, m.Source())
	assert.Equal(t, grid.Coord{X: 0, Y: 5}, m.Target())
	cell, ok := m.Cell(m.Source())
	require.True(t, ok)
	assert.Equal(t, grid.Source, cell.Type)
}

func TestPlace_IdleRules(t *testing.T) {
	m := newModel(t)
	c := grid.Coord{X: 3, Y: 3}

	assert.True(t, m.Place(c, grid.Wall, 0))
	assert.False(t, m.Place(c, grid.Wall, 0), "occupied cell rejects while idle")
	assert.False(t, m.Place(c, grid.Path, 0), "idle never overwrites")
	assert.False(t, m.Place(grid.Coord{X: 10, Y: 0}, grid.Wall, 0), "outside universe")
	assert.False(t, m.Place(grid.Coord{X: 1, Y: 1}, grid.CellType(42), 0), "unknown type")
	assert.False(t, m.Place(m.Source(), grid.Wall, 0))

	assert.False(t, m.Place(c, grid.Remove, 0), "remove always reports false")
	_, ok := m.Cell(c)
	assert.False(t, ok, "wall removed")
}

func TestPlace_RemoveOnlyDeletesWalls(t *testing.T) {
	m := newModel(t)
	checked := grid.Coord{X: 4, Y: 4}
	m.SetSearching(true)
	require.True(t, m.Place(checked, grid.Checked, 1))

	m.Place(checked, grid.Remove, 0)
	m.Place(m.Source(), grid.Remove, 0)
	m.Place(m.Target(), grid.Remove, 0)

	assert.Equal(t, 3, m.Len())
}

// TestPlace_PrecedenceWhileSearching covers the overwrite ladder and checks
// that Source and Target are never downgraded.
func TestPlace_PrecedenceWhileSearching(t *testing.T) {
	m := newModel(t)
	m.SetSearching(true)
	c := grid.Coord{X: 5, Y: 5}

	assert.True(t, m.Place(c, grid.Checked, 1))
	assert.False(t, m.Place(c, grid.Checked, 2), "equal precedence rejects")
	assert.True(t, m.Place(c, grid.Path, 3), "path overwrites checked")
	assert.False(t, m.Place(c, grid.Wall, 4), "wall cannot overwrite path")

	for _, t2 := range []grid.CellType{grid.Checked, grid.Wall, grid.Path} {
		assert.False(t, m.Place(m.Source(), t2, 5))
		assert.False(t, m.Place(m.Target(), t2, 5))
	}
	assert.False(t, m.Place(m.Target(), grid.Source, 5), "source never lands on target")
	assert.False(t, m.Place(m.Source(), grid.Target, 5), "target never lands on source")

	src, _ := m.Cell(m.Source())
	dst, _ := m.Cell(m.Target())
	assert.Equal(t, grid.Source, src.Type)
	assert.Equal(t, grid.Target, dst.Type)
	assert.Equal(t, 1, m.Count(grid.Source))
	assert.Equal(t, 1, m.Count(grid.Target))
}

func TestPlace_EndpointEviction(t *testing.T) {
	m := newModel(t)
	oldSrc, oldDst := m.Source(), m.Target()

	assert.False(t, m.Place(grid.Coord{X: 7, Y: 1}, grid.Source, 2))
	assert.False(t, m.Place(grid.Coord{X: 1, Y: 8}, grid.Target, 3))

	assert.Equal(t, grid.Coord{X: 7, Y: 1}, m.Source())
	assert.Equal(t, grid.Coord{X: 1, Y: 8}, m.Target())
	_, ok := m.Cell(oldSrc)
	assert.False(t, ok)
	_, ok = m.Cell(oldDst)
	assert.False(t, ok)
	assert.Equal(t, 2, m.Len())

	cell, _ := m.Cell(m.Source())
	assert.Equal(t, 2.0, cell.Stamp)
}

func TestClearPreservingWalls(t *testing.T) {
	m := newModel(t)
	walls := []grid.Coord{{X: 4, Y: 0}, {X: 4, Y: 1}, {X: 4, Y: 2}, {X: 6, Y: 7}}
	for _, w := range walls {
		require.True(t, m.Place(w, grid.Wall, 0))
	}
	m.SetSearching(true)
	m.Place(grid.Coord{X: 8, Y: 5}, grid.Checked, 1)
	m.Place(grid.Coord{X: 7, Y: 5}, grid.Path, 1)

	m.ClearPreservingWalls()

	assert.Equal(t, sortCoords(append([]grid.Coord(nil), walls...)), sortCoords(m.Walls()))
	assert.Equal(t, len(walls)+2, m.Len())
	assert.Zero(t, m.Count(grid.Checked))
	assert.Zero(t, m.Count(grid.Path))

	m.ClearAll()
	assert.Empty(t, m.Walls())
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 1, m.Count(grid.Source))
	assert.Equal(t, 1, m.Count(grid.Target))
}

func TestClearAll_KeepsEndpointStamps(t *testing.T) {
	m := newModel(t)
	m.Place(grid.Coord{X: 2, Y: 2}, grid.Source, 1.5)
	m.ClearAll()

	cell, ok := m.Cell(grid.Coord{X: 2, Y: 2})
	require.True(t, ok)
	assert.Equal(t, grid.Cell{Type: grid.Source, Stamp: 1.5}, cell)
}

func TestModel_CursorVisitsAll(t *testing.T) {
	m := newModel(t)
	for x := 1; x < 9; x++ {
		m.Place(grid.Coord{X: x, Y: 0}, grid.Wall, 0)
	}
	n := 0
	for it := m.Begin(); it.Next(); {
		assert.True(t, m.InBounds(it.Key()))
		n++
	}
	assert.Equal(t, m.Len(), n)
}

func TestCoordHash_AntiDiagonal(t *testing.T) {
	seen := make(map[uint64]bool)
	for x := 0; x <= 20; x++ {
		h := grid.Coord{X: x, Y: 20 - x}.Hash()
		assert.False(t, seen[h], "collision on anti-diagonal at x=%d", x)
		seen[h] = true
	}
}

func TestNeighbors4(t *testing.T) {
	got := grid.Neighbors4(grid.Coord{X: 3, Y: 3})
	want := []grid.Coord{{X: 3, Y: 2}, {X: 2, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 4}}
	assert.ElementsMatch(t, want, got[:])
	for _, n := range got {
		d := abs(n.X-3) + abs(n.Y-3)
		assert.Equal(t, 1, d, "diagonal neighbour %v", n)
	}
}

func TestCellType_Strings(t *testing.T) {
	for ct := grid.Checked; ct <= grid.Remove; ct++ {
		back, ok := grid.ParseCellType(ct.String())
		require.True(t, ok)
		assert.Equal(t, ct, back)
	}
	_, ok := grid.ParseCellType("lava")
	assert.False(t, ok)
	assert.True(t, grid.Target.Stored())
	assert.False(t, grid.Remove.Stored())
	assert.Less(t, grid.Wall.Precedence(), grid.Path.Precedence())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
