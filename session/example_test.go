package session_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/session"
	"github.com/katalvlaran/pathviz/view"
)

// Example drives a session the way a frame loop does: input first, then
// one Step per frame.
func Example() {
	s, err := session.New(view.Point{}, view.Point{X: 200, Y: 200}, session.WithUniverse(10))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("source:", s.Model().Source(), "target:", s.Model().Target())

	// Drag a wall down column 5, leaving a gap at the bottom row.
	s.Press(view.Point{X: 110, Y: 10}, true)
	s.Press(view.Point{X: 110, Y: 170}, true)
	s.Press(view.Point{X: 110, Y: 170}, false)
	fmt.Println("walls:", len(s.Model().Walls()))

	s.Run()
	f := s.Step()
	for !f.State.Terminal() {
		f = s.Step()
	}
	fmt.Println("state:", s.Engine().State())
	fmt.Println("hops:", len(s.Engine().Path())-1)
	fmt.Println("path cells:", s.Model().Count(grid.Path))

	// Output:
	// source: (8,5) target: (2,5)
	// walls: 9
	// state: path-traced
	// hops: 14
	// path cells: 13
}
