package session

import (
	"iter"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
	"github.com/katalvlaran/pathviz/sparsemap"
	"github.com/katalvlaran/pathviz/view"
)

// Frame is what one Step hands to the renderer.
type Frame struct {
	State  search.State
	Paused bool
	// Rounds is the number of search rounds this Step performed.
	Rounds int
	// Current is the most recently expanded cell; HasCurrent is true only
	// while the search is Running.
	Current    grid.Coord
	HasCurrent bool
	// Now is the clock reading taken after the chunk.
	Now float64

	s *Session
}

// Tile is one cell ready to draw.
type Tile struct {
	Coord grid.Coord
	Cell  grid.Cell
	Rect  view.Rect
}

// Begin returns a cursor over every stored cell.
func (f Frame) Begin() *sparsemap.Iterator[grid.Coord, grid.Cell] {
	return f.s.engine.Model().Begin()
}

// Cells yields every stored cell.
func (f Frame) Cells() iter.Seq2[grid.Coord, grid.Cell] {
	return f.s.engine.Model().Cells()
}

// Rects yields the visible cells with their animated, clipped rectangles
// at time now. Source and Target glide; other cells grow in.
func (f Frame) Rects(now float64) iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		tr := f.s.view
		for c, cell := range f.s.engine.Model().Cells() {
			var r view.Rect
			var ok bool
			switch cell.Type {
			case grid.Source:
				r, ok = tr.CellRectAt(tr.GlideAt(f.s.srcGlide, now), 1)
			case grid.Target:
				r, ok = tr.CellRectAt(tr.GlideAt(f.s.dstGlide, now), 1)
			default:
				if !tr.Visible(c) {
					continue
				}
				r, ok = tr.CellRectAt(view.CellPoint(c), tr.Grow(cell.Stamp, now))
			}
			if !ok {
				continue
			}
			if !yield(Tile{Coord: c, Cell: cell, Rect: r}) {
				return
			}
		}
	}
}

// CurrentRect returns the highlight rectangle of the current cell.
func (f Frame) CurrentRect() (view.Rect, bool) {
	if !f.HasCurrent {
		return view.Rect{}, false
	}

	return f.s.view.CellRect(f.Current)
}

// Columns yields the vertical grid lines.
func (f Frame) Columns() iter.Seq[view.Segment] { return f.s.view.Columns() }

// Rows yields the horizontal grid lines.
func (f Frame) Rows() iter.Seq[view.Segment] { return f.s.view.Rows() }
