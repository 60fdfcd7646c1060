// Package settings persists user preferences (paint tool, strategy, zoom)
// between window sessions. Grid contents are never stored.
package settings

import (
	"fmt"
	"math"

	"github.com/quasilyte/gdata/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
	"github.com/katalvlaran/pathviz/view"
)

// Storage keys inside the gdata directory.
const (
	prefsObject   = "settings"
	prefsProperty = "preferences"
)

// Preferences are the values restored on the next start.
type Preferences struct {
	Tool     string  `yaml:"tool"`
	Strategy string  `yaml:"strategy"`
	Weight   float64 `yaml:"weight"`
	CellSize float64 `yaml:"cellSize"`
}

// DefaultPreferences returns wall painting, Dijkstra and no stored zoom.
func DefaultPreferences() Preferences {
	return Preferences{
		Tool:     grid.Wall.String(),
		Strategy: search.Dijkstra.String(),
		Weight:   1,
	}
}

// Manager loads and saves Preferences. A Manager without storage keeps
// everything in memory and Save is a no-op.
type Manager struct {
	data  *gdata.Manager
	prefs Preferences
	log   *logrus.Entry
}

// Open creates the gdata storage for appName and loads saved preferences.
// Storage failures are logged and degrade to an in-memory Manager.
func Open(appName string, log *logrus.Entry) *Manager {
	data, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.WithError(err).Warn("preferences storage unavailable, settings will not persist")
		data = nil
	}

	return NewManager(data, log)
}

// NewManager wraps data, which may be nil, and loads saved preferences.
// A load failure is logged and leaves the defaults in place.
func NewManager(data *gdata.Manager, log *logrus.Entry) *Manager {
	m := &Manager{data: data, prefs: DefaultPreferences(), log: log}
	if err := m.Load(); err != nil {
		log.WithError(err).Warn("failed to load preferences, using defaults")
	}

	return m
}

// Persistent reports whether Save reaches storage.
func (m *Manager) Persistent() bool { return m.data != nil }

// Load replaces the in-memory preferences with the stored ones.
// Missing storage or a missing record yields the defaults.
func (m *Manager) Load() error {
	m.prefs = DefaultPreferences()
	if m.data == nil || !m.data.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}

	raw, err := m.data.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("settings: load preferences: %w", err)
	}

	var loaded Preferences
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("settings: unmarshal preferences: %w", err)
	}
	m.prefs = loaded
	m.log.Debug("preferences loaded")

	return nil
}

// Save writes the in-memory preferences.
func (m *Manager) Save() error {
	if m.data == nil {
		return nil
	}

	raw, err := yaml.Marshal(m.prefs)
	if err != nil {
		return fmt.Errorf("settings: marshal preferences: %w", err)
	}
	if err := m.data.SaveObjectProp(prefsObject, prefsProperty, raw); err != nil {
		return fmt.Errorf("settings: save preferences: %w", err)
	}
	m.log.Debug("preferences saved")

	return nil
}

// Preferences returns a copy of the current values.
func (m *Manager) Preferences() Preferences { return m.prefs }

// SetTool records the paint tool.
func (m *Manager) SetTool(t grid.CellType) { m.prefs.Tool = t.String() }

// SetStrategy records the strategy and, for A*, its weight.
func (m *Manager) SetStrategy(s search.Strategy) {
	m.prefs.Strategy = s.Kind.String()
	if s.Kind == search.AStar {
		m.prefs.Weight = s.Weight
	}
}

// SetCellSize records the zoom level in pixels per cell.
func (m *Manager) SetCellSize(px float64) { m.prefs.CellSize = px }

// ToolType returns the stored tool, falling back to Wall for unknown names
// and for types that are not paint tools.
func (p Preferences) ToolType() grid.CellType {
	t, ok := grid.ParseCellType(p.Tool)
	if !ok {
		return grid.Wall
	}
	switch t {
	case grid.Wall, grid.Source, grid.Target, grid.Remove:
		return t
	default:
		return grid.Wall
	}
}

// SearchStrategy returns the stored strategy. ok is false when the stored
// values do not form a valid strategy.
func (p Preferences) SearchStrategy() (s search.Strategy, ok bool) {
	kind, err := search.ParseKind(p.Strategy)
	if err != nil {
		return search.Strategy{}, false
	}
	s = search.DijkstraStrategy()
	if kind == search.AStar {
		s = search.AStarStrategy(p.Weight)
	}

	return s, s.Validate() == nil
}

// ViewOptions returns the view options that restore the stored zoom, or
// nil when none was stored.
func (p Preferences) ViewOptions() []view.Option {
	if math.IsNaN(p.CellSize) || math.IsInf(p.CellSize, 0) || p.CellSize <= 0 {
		return nil
	}

	return []view.Option{view.WithCellSize(p.CellSize)}
}
