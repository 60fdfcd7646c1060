package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathviz/view"
)

func TestGrow(t *testing.T) {
	tr := newView(t)

	assert.Equal(t, 0.0, tr.Grow(5, 5))
	assert.InDelta(t, 0.5, tr.Grow(1.0, 1.1), 1e-9)
	assert.Equal(t, 1.0, tr.Grow(1.0, 2.0))
	assert.Equal(t, 0.0, tr.Grow(3, 2), "clock behind stamp")

	instant := newView(t, view.WithAnimation(0, 0))
	assert.Equal(t, 1.0, instant.Grow(5, 5))
}

func TestGlide(t *testing.T) {
	g := view.Still(view.Point{X: 4, Y: 4})
	assert.Equal(t, view.Point{X: 4, Y: 4}, g.At(100, 0.5))

	g = g.Retarget(view.Point{X: 8, Y: 1}, 10, 0.5)
	assert.Equal(t, view.Point{X: 4, Y: 4}, g.At(10, 0.5))
	mid := g.At(10.25, 0.5)
	assert.InDelta(t, 6, mid.X, 1e-9)
	assert.InDelta(t, 2.5, mid.Y, 1e-9)
	assert.Equal(t, view.Point{X: 8, Y: 1}, g.At(11, 0.5))

	// Interrupting a move continues from the current position.
	h := g.Retarget(view.Point{X: 0, Y: 0}, 10.25, 0.5)
	assert.InDelta(t, 6, h.From.X, 1e-9)
	assert.InDelta(t, 2.5, h.From.Y, 1e-9)
}

func TestTransformGlideHelpers(t *testing.T) {
	tr := newView(t)
	g := tr.GlideTo(view.Still(view.Point{}), view.Point{X: 10}, 0)
	assert.InDelta(t, 5, tr.GlideAt(g, view.DefaultGlideSeconds/2).X, 1e-9)
}
