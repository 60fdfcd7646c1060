package visualizer

import (
	"image/color"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/session"
	"github.com/katalvlaran/pathviz/view"
)

// Palette.
var (
	colorWindow   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorViewport = color.RGBA{R: 0, G: 121, B: 241, A: 255}
	colorLine     = color.RGBA{A: 255}
	colorCurrent  = color.RGBA{R: 230, G: 41, B: 55, A: 255}

	cellColors = map[grid.CellType]color.RGBA{
		grid.Checked: {R: 102, G: 191, B: 255, A: 255},
		grid.Wall:    {R: 127, G: 106, B: 79, A: 255},
		grid.Path:    {R: 253, G: 249, B: 0, A: 255},
		grid.Source:  {R: 255, G: 111, B: 0, A: 255},
		grid.Target:  {R: 0, G: 82, B: 172, A: 255},
	}
)

// fill is one filled rectangle.
type fill struct {
	rect view.Rect
	clr  color.RGBA
}

// scene is everything Draw paints for one frame, back to front: the
// viewport, the cells, the current-cell highlight, then the grid lines.
type scene struct {
	fills []fill
	lines []view.Segment
}

func buildScene(f session.Frame, tr *view.Transform, now float64) scene {
	var sc scene

	o, s := tr.Origin(), tr.Size()
	sc.fills = append(sc.fills, fill{rect: view.Rect{X: o.X, Y: o.Y, W: s.X, H: s.Y}, clr: colorViewport})

	for tile := range f.Rects(now) {
		sc.fills = append(sc.fills, fill{rect: tile.Rect, clr: cellColors[tile.Cell.Type]})
	}
	if r, ok := f.CurrentRect(); ok {
		sc.fills = append(sc.fills, fill{rect: r, clr: colorCurrent})
	}

	for seg := range f.Columns() {
		sc.lines = append(sc.lines, seg)
	}
	for seg := range f.Rows() {
		sc.lines = append(sc.lines, seg)
	}

	return sc
}
