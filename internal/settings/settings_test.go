package settings_test

import (
	"fmt"
	"io"
	"math"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/internal/settings"
	"github.com/katalvlaran/pathviz/search"
	"github.com/katalvlaran/pathviz/view"
)

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return logrus.NewEntry(l)
}

// openStorage points gdata at a temporary home. It skips when the platform
// offers no storage.
func openStorage(t *testing.T) *gdata.Manager {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)

	data, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("pathviz_test_%d", time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("gdata storage unavailable: %v", err)
	}

	return data
}

func TestManager_InMemory(t *testing.T) {
	t.Parallel()

	m := settings.NewManager(nil, quietLog())
	assert.False(t, m.Persistent())
	assert.Equal(t, settings.DefaultPreferences(), m.Preferences())

	m.SetTool(grid.Target)
	m.SetCellSize(40)
	require.NoError(t, m.Save())
	assert.Equal(t, grid.Target, m.Preferences().ToolType())

	// Load without storage resets to the defaults.
	require.NoError(t, m.Load())
	assert.Equal(t, settings.DefaultPreferences(), m.Preferences())
}

func TestManager_SaveLoadRoundTrip(t *testing.T) {
	data := openStorage(t)

	m := settings.NewManager(data, quietLog())
	require.True(t, m.Persistent())
	m.SetTool(grid.Remove)
	m.SetStrategy(search.AStarStrategy(1.5))
	m.SetCellSize(35)
	require.NoError(t, m.Save())

	again := settings.NewManager(data, quietLog())
	p := again.Preferences()
	assert.Equal(t, grid.Remove, p.ToolType())
	assert.InDelta(t, 35.0, p.CellSize, 1e-9)

	s, ok := p.SearchStrategy()
	require.True(t, ok)
	assert.Equal(t, search.AStarStrategy(1.5), s)
}

func TestManager_CorruptRecordFallsBack(t *testing.T) {
	data := openStorage(t)
	require.NoError(t, data.SaveObjectProp("settings", "preferences", []byte("tool: [")))

	m := settings.NewManager(data, quietLog())
	assert.Equal(t, settings.DefaultPreferences(), m.Preferences())
	assert.Error(t, m.Load())
}

func TestPreferences_Parsing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prefs    settings.Preferences
		tool     grid.CellType
		strategy search.Strategy
		ok       bool
	}{
		{"defaults", settings.DefaultPreferences(), grid.Wall, search.DijkstraStrategy(), true},
		{"source astar", settings.Preferences{Tool: "source", Strategy: "astar", Weight: 2}, grid.Source, search.AStarStrategy(2), true},
		{"not a tool", settings.Preferences{Tool: "checked", Strategy: "dijkstra"}, grid.Wall, search.DijkstraStrategy(), true},
		{"unknown", settings.Preferences{Tool: "brush", Strategy: "bfs"}, grid.Wall, search.Strategy{}, false},
		{"bad weight", settings.Preferences{Strategy: "astar", Weight: 0.5}, grid.Wall, search.AStarStrategy(0.5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.tool, tt.prefs.ToolType())
			s, ok := tt.prefs.SearchStrategy()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.strategy, s)
		})
	}
}

func TestPreferences_ViewOptions(t *testing.T) {
	t.Parallel()

	for _, size := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		assert.Nil(t, settings.Preferences{CellSize: size}.ViewOptions(), "cell size %v", size)
	}

	opts := settings.Preferences{CellSize: 35}.ViewOptions()
	require.Len(t, opts, 1)
	tr, err := view.New(view.Point{}, view.Point{X: 200, Y: 200}, opts...)
	require.NoError(t, err)
	assert.InDelta(t, 35.0, tr.CellSize(), 1e-9)
}

func TestSetStrategy_DijkstraKeepsWeight(t *testing.T) {
	t.Parallel()

	m := settings.NewManager(nil, quietLog())
	m.SetStrategy(search.AStarStrategy(3))
	m.SetStrategy(search.DijkstraStrategy())

	p := m.Preferences()
	assert.Equal(t, "dijkstra", p.Strategy)
	assert.InDelta(t, 3.0, p.Weight, 1e-9)
}
