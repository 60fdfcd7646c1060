// Package config loads pathviz settings from defaults, an optional YAML
// file and PATHVIZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
	"github.com/katalvlaran/pathviz/session"
	"github.com/katalvlaran/pathviz/view"
)

// Config is the top-level configuration struct for pathviz.
// Field tags use mapstructure for viper unmarshalling and yaml for Dump.
type Config struct {
	Universe int            `mapstructure:"universe" yaml:"universe"`
	Search   SearchConfig   `mapstructure:"search" yaml:"search"`
	View     ViewConfig     `mapstructure:"view" yaml:"view"`
	Window   WindowConfig   `mapstructure:"window" yaml:"window"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics" yaml:"metrics"`
	Settings SettingsConfig `mapstructure:"settings" yaml:"settings"`
}

// SearchConfig holds engine knobs.
type SearchConfig struct {
	Budget   int     `mapstructure:"budget" yaml:"budget"`
	Strategy string  `mapstructure:"strategy" yaml:"strategy"`
	Weight   float64 `mapstructure:"weight" yaml:"weight"`
}

// ViewConfig holds zoom limits and animation durations.
type ViewConfig struct {
	MinCellSize  float64 `mapstructure:"min_cell_size" yaml:"min_cell_size"`
	MaxCellSize  float64 `mapstructure:"max_cell_size" yaml:"max_cell_size"`
	ZoomStep     float64 `mapstructure:"zoom_step" yaml:"zoom_step"`
	GrowSeconds  float64 `mapstructure:"grow_seconds" yaml:"grow_seconds"`
	GlideSeconds float64 `mapstructure:"glide_seconds" yaml:"glide_seconds"`
}

// WindowConfig holds the window size and the grid viewport inside it.
type WindowConfig struct {
	Width    int            `mapstructure:"width" yaml:"width"`
	Height   int            `mapstructure:"height" yaml:"height"`
	TPS      int            `mapstructure:"tps" yaml:"tps"`
	Title    string         `mapstructure:"title" yaml:"title"`
	Viewport ViewportConfig `mapstructure:"viewport" yaml:"viewport"`
}

// ViewportConfig is the grid rectangle in window pixels.
type ViewportConfig struct {
	X      float64 `mapstructure:"x" yaml:"x"`
	Y      float64 `mapstructure:"y" yaml:"y"`
	Width  float64 `mapstructure:"width" yaml:"width"`
	Height float64 `mapstructure:"height" yaml:"height"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// MetricsConfig enables the /metrics endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// SettingsConfig controls preference persistence.
type SettingsConfig struct {
	AppName string `mapstructure:"app_name" yaml:"app_name"`
	Persist bool   `mapstructure:"persist" yaml:"persist"`
}

// minUniverse is the smallest side with room for two distinct endpoints.
const minUniverse = 2

// Sentinel errors for configuration validation.
var (
	// ErrInvalidUniverse indicates a universe too small to hold a Source
	// and a Target.
	ErrInvalidUniverse = errors.New("universe must be at least 2")
	// ErrInvalidBudget indicates the per-frame budget is not positive.
	ErrInvalidBudget = errors.New("search.budget must be positive")
	// ErrInvalidStrategy indicates an unknown strategy name.
	ErrInvalidStrategy = errors.New("search.strategy must be dijkstra or astar")
	// ErrInvalidWeight indicates an A* weight below 1.
	ErrInvalidWeight = errors.New("search.weight must be at least 1")
	// ErrInvalidCellRange indicates a bad zoom range.
	ErrInvalidCellRange = errors.New("view.min_cell_size must be positive and not above view.max_cell_size")
	// ErrInvalidZoomStep indicates a non-positive zoom step.
	ErrInvalidZoomStep = errors.New("view.zoom_step must be positive")
	// ErrInvalidAnimation indicates a negative animation duration.
	ErrInvalidAnimation = errors.New("view animation durations must be non-negative")
	// ErrInvalidWindow indicates a non-positive window size or tick rate.
	ErrInvalidWindow = errors.New("window width, height and tps must be positive")
	// ErrInvalidViewport indicates a viewport outside the window.
	ErrInvalidViewport = errors.New("window.viewport must be non-empty and inside the window")
	// ErrInvalidLogFormat indicates an unknown log format.
	ErrInvalidLogFormat = errors.New("log.format must be text or json")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if c.Universe < minUniverse {
		return ErrInvalidUniverse
	}

	searchErr := c.validateSearch()
	if searchErr != nil {
		return searchErr
	}

	viewErr := c.validateView()
	if viewErr != nil {
		return viewErr
	}

	windowErr := c.validateWindow()
	if windowErr != nil {
		return windowErr
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return ErrInvalidLogFormat
	}

	return nil
}

func (c *Config) validateSearch() error {
	if c.Search.Budget < 1 {
		return ErrInvalidBudget
	}

	if _, err := search.ParseKind(c.Search.Strategy); err != nil {
		return ErrInvalidStrategy
	}

	if c.Search.Weight < 1 {
		return ErrInvalidWeight
	}

	return nil
}

func (c *Config) validateView() error {
	if c.View.MinCellSize <= 0 || c.View.MinCellSize > c.View.MaxCellSize {
		return ErrInvalidCellRange
	}

	if c.View.ZoomStep <= 0 {
		return ErrInvalidZoomStep
	}

	if c.View.GrowSeconds < 0 || c.View.GlideSeconds < 0 {
		return ErrInvalidAnimation
	}

	return nil
}

func (c *Config) validateWindow() error {
	w := c.Window
	if w.Width < 1 || w.Height < 1 || w.TPS < 1 {
		return ErrInvalidWindow
	}

	vp := w.Viewport
	if vp.Width <= 0 || vp.Height <= 0 || vp.X < 0 || vp.Y < 0 ||
		vp.X+vp.Width > float64(w.Width) || vp.Y+vp.Height > float64(w.Height) {
		return ErrInvalidViewport
	}

	return nil
}

// Strategy returns the configured search strategy.
func (c *Config) Strategy() (search.Strategy, error) {
	kind, err := search.ParseKind(c.Search.Strategy)
	if err != nil {
		return search.Strategy{}, fmt.Errorf("config: %w", err)
	}
	if kind == search.AStar {
		return search.AStarStrategy(c.Search.Weight), nil
	}

	return search.DijkstraStrategy(), nil
}

// ViewOptions translates the view section into view.Option values.
func (c *Config) ViewOptions() []view.Option {
	return []view.Option{
		view.WithCellSizeRange(c.View.MinCellSize, c.View.MaxCellSize),
		view.WithZoomStep(c.View.ZoomStep),
		view.WithAnimation(c.View.GrowSeconds, c.View.GlideSeconds),
	}
}

// SessionOptions returns the session options implied by the config.
// Callers append their own clock, observer and logger.
func (c *Config) SessionOptions() ([]session.Option, error) {
	strat, err := c.Strategy()
	if err != nil {
		return nil, err
	}

	return []session.Option{
		session.WithUniverse(c.Universe),
		session.WithStrategy(strat),
		session.WithBudget(c.Search.Budget),
		session.WithViewOptions(c.ViewOptions()...),
	}, nil
}

// Viewport returns the grid rectangle as an origin and a size.
func (c *Config) Viewport() (origin, size view.Point) {
	vp := c.Window.Viewport

	return view.Point{X: vp.X, Y: vp.Y}, view.Point{X: vp.Width, Y: vp.Height}
}

// Default values applied before the file and environment are read.
const (
	DefaultUniverse       = grid.DefaultUniverse
	DefaultBudget         = search.DefaultBudget
	DefaultStrategy       = "dijkstra"
	DefaultWeight         = 1.0
	DefaultWindowWidth    = 800
	DefaultWindowHeight   = 800
	DefaultTPS            = 120
	DefaultWindowTitle    = "pathviz"
	DefaultViewportX      = 200.0
	DefaultViewportY      = 200.0
	DefaultViewportWidth  = 400.0
	DefaultViewportHeight = 400.0
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultAppName        = "pathviz"
	DefaultPersist        = true
)
