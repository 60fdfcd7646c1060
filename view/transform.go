package view

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/pathviz/grid"
)

// Transform is the pan/zoom state of one viewport.
type Transform struct {
	origin Point
	size   Point
	cell   float64
	off    Point // pan offset in pixels, always ≤ 0
	cfg    Options
}

// New returns a Transform at the starting cell size (the minimum unless
// WithCellSize says otherwise), panned so the viewport sits over the
// middle of the universe.
func New(origin, size Point, opts ...Option) (*Transform, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrBadViewport, size.X, size.Y)
	}

	cell := cfg.MinCellSize
	if cfg.CellSize > 0 {
		cell = clampf(cfg.CellSize, cfg.MinCellSize, cfg.MaxCellSize)
	}
	t := &Transform{origin: origin, size: size, cell: cell, cfg: cfg}
	cols, rows := t.Span()
	diffX := (cfg.Universe - cols) / 2
	diffY := (cfg.Universe - rows) / 2
	t.off = Point{X: -t.cell * float64(diffX), Y: -t.cell * float64(diffY)}
	t.clamp()

	return t, nil
}

// Origin returns the viewport's top-left corner.
func (t *Transform) Origin() Point { return t.origin }

// Size returns the viewport's width and height.
func (t *Transform) Size() Point { return t.size }

// CellSize returns the current pixels per cell.
func (t *Transform) CellSize() float64 { return t.cell }

// Offset returns the current pan offset in pixels.
func (t *Transform) Offset() Point { return t.off }

// Universe returns the universe side in cells.
func (t *Transform) Universe() int { return t.cfg.Universe }

// Options returns the configuration the Transform was built with.
func (t *Transform) Options() Options { return t.cfg }

// Span returns how many whole cells fit across and down the viewport.
func (t *Transform) Span() (cols, rows int) {
	return int(t.size.X / t.cell), int(t.size.Y / t.cell)
}

// FirstCell returns the cell under the viewport's top-left corner.
func (t *Transform) FirstCell() grid.Coord {
	return t.ScreenToGrid(t.origin)
}

// Contains reports whether p lies strictly inside the viewport.
func (t *Transform) Contains(p Point) bool {
	return p.X > t.origin.X && p.Y > t.origin.Y &&
		p.X < t.origin.X+t.size.X && p.Y < t.origin.Y+t.size.Y
}

// ScreenToGrid returns the cell under screen point p. Points outside the
// viewport still map to a coordinate; check Contains first.
func (t *Transform) ScreenToGrid(p Point) grid.Coord {
	return grid.Coord{
		X: int(math.Floor((p.X - t.origin.X - t.off.X) / t.cell)),
		Y: int(math.Floor((p.Y - t.origin.Y - t.off.Y) / t.cell)),
	}
}

// GridToScreen returns the top-left pixel of the fractional cell position.
func (t *Transform) GridToScreen(p Point) Point {
	return Point{
		X: t.origin.X + t.off.X + p.X*t.cell,
		Y: t.origin.Y + t.off.Y + p.Y*t.cell,
	}
}

// Drag pans by (dx, dy) pixels and re-clamps.
func (t *Transform) Drag(dx, dy float64) {
	t.off.X += dx
	t.off.Y += dy
	t.clamp()
}

// Zoom grows the cell size by ZoomStep·delta, clamped to the configured
// range, keeping the cell under pivot fixed on screen. It reports whether
// the cell size changed; a zero delta or a pivot outside the viewport is
// ignored.
func (t *Transform) Zoom(pivot Point, delta float64) bool {
	if delta == 0 || !t.Contains(pivot) {
		return false
	}
	pc := t.ScreenToGrid(pivot)
	old := t.cell
	t.cell = clampf(t.cell+t.cfg.ZoomStep*delta, t.cfg.MinCellSize, t.cfg.MaxCellSize)
	change := t.cell - old
	if change == 0 {
		return false
	}
	t.Drag(-change*float64(pc.X), -change*float64(pc.Y))

	return true
}

// SetCellSize sets the cell size directly (clamped to the configured range)
// keeping the top-left cell fixed.
func (t *Transform) SetCellSize(px float64) {
	first := t.FirstCell()
	old := t.cell
	t.cell = clampf(px, t.cfg.MinCellSize, t.cfg.MaxCellSize)
	change := t.cell - old
	t.Drag(-change*float64(first.X), -change*float64(first.Y))
}

// Visible reports whether any part of cell c can fall inside the viewport.
func (t *Transform) Visible(c grid.Coord) bool {
	fx := t.off.X/t.cell + float64(c.X)
	fy := t.off.Y/t.cell + float64(c.Y)

	return fx > -1 && fy > -1 && fx < t.size.X/t.cell && fy < t.size.Y/t.cell
}

// CellRect returns the on-screen rectangle of cell c clipped to the
// viewport, and false when nothing of it is visible.
func (t *Transform) CellRect(c grid.Coord) (Rect, bool) {
	return t.CellRectAt(CellPoint(c), 1)
}

// CellRectAt returns the rectangle of a cell at fractional position p,
// scaled by scale around its centre and clipped to the viewport.
func (t *Transform) CellRectAt(p Point, scale float64) (Rect, bool) {
	side := t.cell * clampf(scale, 0, 1)
	inset := (t.cell - side) / 2
	tl := t.GridToScreen(p)

	return t.clip(Rect{X: tl.X + inset, Y: tl.Y + inset, W: side, H: side})
}

// Columns yields the vertical grid lines inside the viewport, left to right.
func (t *Transform) Columns() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		top, bottom := t.origin.Y, t.origin.Y+t.size.Y
		for x := t.firstLine(t.origin.X, t.off.X); x < t.origin.X+t.size.X; x += t.cell {
			if !yield(Segment{A: Point{X: x, Y: top}, B: Point{X: x, Y: bottom}}) {
				return
			}
		}
	}
}

// Rows yields the horizontal grid lines inside the viewport, top to bottom.
func (t *Transform) Rows() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		left, right := t.origin.X, t.origin.X+t.size.X
		for y := t.firstLine(t.origin.Y, t.off.Y); y < t.origin.Y+t.size.Y; y += t.cell {
			if !yield(Segment{A: Point{X: left, Y: y}, B: Point{X: right, Y: y}}) {
				return
			}
		}
	}
}

// firstLine returns the first cell boundary at or after start.
func (t *Transform) firstLine(start, off float64) float64 {
	x := start + math.Mod(off, t.cell)
	if x < start {
		x += t.cell
	}

	return x
}

// clamp keeps the offset in [-(universe·cell − size), 0] on both axes.
func (t *Transform) clamp() {
	span := float64(t.cfg.Universe) * t.cell
	t.off.X = clampf(t.off.X, math.Min(0, t.size.X-span), 0)
	t.off.Y = clampf(t.off.Y, math.Min(0, t.size.Y-span), 0)
}

func (t *Transform) clip(r Rect) (Rect, bool) {
	x0 := math.Max(r.X, t.origin.X)
	y0 := math.Max(r.Y, t.origin.Y)
	x1 := math.Min(r.X+r.W, t.origin.X+t.size.X)
	y1 := math.Min(r.Y+r.H, t.origin.Y+t.size.Y)
	out := Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
	if out.Empty() {
		return Rect{}, false
	}

	return out, true
}

func clampf(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
