package grid_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// ExampleModel_Place walks through the idle and searching placement rules.
func ExampleModel_Place() {
	m, err := grid.NewModel(8, grid.Coord{X: 6, Y: 4}, grid.Coord{X: 1, Y: 4})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("wall:", m.Place(grid.Coord{X: 3, Y: 4}, grid.Wall, 0))
	fmt.Println("wall again:", m.Place(grid.Coord{X: 3, Y: 4}, grid.Wall, 0))

	m.SetSearching(true)
	fmt.Println("checked over target:", m.Place(m.Target(), grid.Checked, 1))
	fmt.Println("checked:", m.Place(grid.Coord{X: 5, Y: 4}, grid.Checked, 1))
	fmt.Println("path over checked:", m.Place(grid.Coord{X: 5, Y: 4}, grid.Path, 2))

	m.ClearPreservingWalls()
	fmt.Println("cells:", m.Len(), "walls:", m.Walls())

	// Output:
	// wall: true
	// wall again: false
	// checked over target: false
	// checked: true
	// path over checked: true
	// cells: 3 walls: [(3,4)]
}
