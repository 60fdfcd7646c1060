package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathviz/grid"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		a, b grid.Coord
		want []grid.Coord
	}{
		{"single", grid.Coord{X: 2, Y: 2}, grid.Coord{X: 2, Y: 2}, []grid.Coord{{X: 2, Y: 2}}},
		{"horizontal", grid.Coord{X: 0, Y: 1}, grid.Coord{X: 3, Y: 1},
			[]grid.Coord{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}},
		{"vertical up", grid.Coord{X: 4, Y: 3}, grid.Coord{X: 4, Y: 0},
			[]grid.Coord{{X: 4, Y: 3}, {X: 4, Y: 2}, {X: 4, Y: 1}, {X: 4, Y: 0}}},
		{"diagonal", grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 2},
			[]grid.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, grid.Line(tc.a, tc.b))
		})
	}
}

// TestLine_Contiguous checks a steep segment has no gaps: consecutive points
// differ by at most one on each axis.
func TestLine_Contiguous(t *testing.T) {
	a, b := grid.Coord{X: 1, Y: 2}, grid.Coord{X: 6, Y: 17}
	pts := grid.Line(a, b)
	assert.Equal(t, a, pts[0])
	assert.Equal(t, b, pts[len(pts)-1])
	assert.Len(t, pts, 16)
	for i := 1; i < len(pts); i++ {
		assert.LessOrEqual(t, abs(pts[i].X-pts[i-1].X), 1)
		assert.LessOrEqual(t, abs(pts[i].Y-pts[i-1].Y), 1)
	}
}
