package grid_test

import (
	"testing"

	"github.com/katalvlaran/pathviz/grid"
)

// BenchmarkPlaceClear paints a 100×100 block of walls and resets it.
func BenchmarkPlaceClear(b *testing.B) {
	m, err := grid.NewModel(grid.DefaultUniverse, grid.Coord{X: 399, Y: 0}, grid.Coord{X: 399, Y: 399})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for x := 0; x < 100; x++ {
			for y := 0; y < 100; y++ {
				m.Place(grid.Coord{X: x, Y: y}, grid.Wall, 0)
			}
		}
		m.ClearPreservingWalls()
		m.ClearAll()
	}
}
