package view

// Grow returns the pop-in scale of a cell stamped at stamp: 0 at placement,
// rising linearly to 1 after GrowSeconds.
func (t *Transform) Grow(stamp, now float64) float64 {
	return progress(now-stamp, t.cfg.GrowSeconds)
}

// Glide is a linear move of an endpoint between two fractional cell
// positions, starting at Start seconds.
type Glide struct {
	From, To Point
	Start    float64
}

// Still returns a Glide resting at p.
func Still(p Point) Glide {
	return Glide{From: p, To: p}
}

// At returns the position at time now for a move lasting dur seconds.
func (g Glide) At(now, dur float64) Point {
	k := progress(now-g.Start, dur)

	return Point{
		X: g.From.X + (g.To.X-g.From.X)*k,
		Y: g.From.Y + (g.To.Y-g.From.Y)*k,
	}
}

// Retarget starts a new move toward to from wherever g is at now, so a
// move interrupted mid-way continues smoothly.
func (g Glide) Retarget(to Point, now, dur float64) Glide {
	return Glide{From: g.At(now, dur), To: to, Start: now}
}

// GlideAt is Glide.At with the Transform's configured duration.
func (t *Transform) GlideAt(g Glide, now float64) Point {
	return g.At(now, t.cfg.GlideSeconds)
}

// GlideTo is Glide.Retarget with the Transform's configured duration.
func (t *Transform) GlideTo(g Glide, to Point, now float64) Glide {
	return g.Retarget(to, now, t.cfg.GlideSeconds)
}

func progress(elapsed, dur float64) float64 {
	if dur <= 0 || elapsed >= dur {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}

	return elapsed / dur
}
