package visualizer

import (
	"iter"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/view"
)

func count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}

	return n
}

func TestScene_IdleLayout(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 10, nil)
	f := h.g.frame
	sc := buildScene(f, h.g.Session().View(), f.Now)

	require.Len(t, sc.fills, 3)
	assert.Equal(t, fill{rect: view.Rect{W: 200, H: 200}, clr: colorViewport}, sc.fills[0])
	colors := []any{sc.fills[1].clr, sc.fills[2].clr}
	assert.ElementsMatch(t, []any{cellColors[grid.Source], cellColors[grid.Target]}, colors)
	assert.Len(t, sc.lines, count(f.Columns())+count(f.Rows()))
}

func TestScene_HighlightOnlyWhileRunning(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 10, nil)
	require.NoError(t, h.tick(t, ebiten.KeyC))
	f := h.g.frame
	sc := buildScene(f, h.g.Session().View(), f.Now)

	last := sc.fills[len(sc.fills)-1]
	assert.Equal(t, colorCurrent, last.clr)
	want, ok := f.CurrentRect()
	require.True(t, ok)
	assert.Equal(t, want, last.rect)

	// Cells pop in over GrowSeconds; look once they are full size.
	h.runToEnd(t)
	f = h.g.frame
	sc = buildScene(f, h.g.Session().View(), f.Now+1)
	for _, fl := range sc.fills {
		assert.NotEqual(t, colorCurrent, fl.clr)
	}

	paths := 0
	for _, fl := range sc.fills {
		if fl.clr == cellColors[grid.Path] {
			paths++
		}
	}
	assert.Equal(t, 5, paths)
}
