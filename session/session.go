package session

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
	"github.com/katalvlaran/pathviz/view"
)

// Session is the interactive state of one visualiser window.
// It is not safe for concurrent use.
type Session struct {
	cfg    Options
	log    *logrus.Entry
	view   *view.Transform
	engine *search.Engine

	tool     grid.CellType
	stroking bool
	last     grid.Coord

	srcGlide view.Glide
	dstGlide view.Glide
}

// New returns an Idle session whose viewport is centred over the universe,
// with the Source at 4/5 and the Target at 1/5 of the visible width, both
// at mid-height. The initial paint tool is Wall.
func New(origin, size view.Point, opts ...Option) (*Session, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	viewOpts := append(append([]view.Option(nil), cfg.View...), view.WithUniverse(cfg.Universe))
	tr, err := view.New(origin, size, viewOpts...)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	source, target := defaultEndpoints(tr, cfg.Universe)

	engine, err := search.Rebuild(cfg.Universe, nil, source, target, cfg.engineOptions(cfg.Strategy)...)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		cfg:      cfg,
		log:      cfg.Logger.WithField("component", "session"),
		view:     tr,
		engine:   engine,
		tool:     grid.Wall,
		srcGlide: view.Still(view.CellPoint(source)),
		dstGlide: view.Still(view.CellPoint(target)),
	}
	s.log.WithFields(logrus.Fields{
		"universe": cfg.Universe,
		"source":   source.String(),
		"target":   target.String(),
		"strategy": cfg.Strategy.String(),
	}).Debug("session created")

	return s, nil
}

// defaultEndpoints places the Source at 4/5 and the Target at 1/5 of the
// visible part of the universe, at mid-height. A span narrower than two
// cells puts them side by side.
func defaultEndpoints(tr *view.Transform, universe int) (source, target grid.Coord) {
	first := tr.FirstCell()
	cols, rows := tr.Span()
	cols = max(1, min(cols, universe-first.X))
	rows = max(1, min(rows, universe-first.Y))

	target = first.Add(cols/5, rows/2)
	source = first.Add(4*cols/5, rows/2)
	if source != target {
		return source, target
	}
	if source.X+1 < universe {
		source.X++
	} else {
		target.X--
	}

	return source, target
}

// View returns the pan/zoom transform.
func (s *Session) View() *view.Transform { return s.view }

// Engine returns the current search engine. SetStrategy replaces it.
func (s *Session) Engine() *search.Engine { return s.engine }

// Model returns the cell model of the current engine.
func (s *Session) Model() *grid.Model { return s.engine.Model() }

// Tool returns the active paint tool.
func (s *Session) Tool() grid.CellType { return s.tool }

// Strategy returns the strategy of the current engine.
func (s *Session) Strategy() search.Strategy { return s.engine.Strategy() }

// Select switches the paint tool and resets the search; walls survive.
// Only Wall, Source, Target and Remove are tools.
func (s *Session) Select(tool grid.CellType) error {
	switch tool {
	case grid.Wall, grid.Source, grid.Target, grid.Remove:
	default:
		return fmt.Errorf("%w: %v", ErrBadTool, tool)
	}
	s.tool = tool
	s.stroking = false
	s.engine.Reset()
	s.log.WithField("tool", tool.String()).Debug("tool selected")

	return nil
}

// Press handles the primary pointer at screen point p. While the button
// is down inside the viewport it paints the straight line from the last
// painted cell of the gesture to the cell under p. Releasing the button or
// leaving the viewport ends the gesture.
func (s *Session) Press(p view.Point, down bool) {
	if !down || !s.view.Contains(p) {
		s.stroking = false
		return
	}
	if s.engine.State().Active() && s.tool != grid.Remove {
		s.stroking = false
		return
	}

	c := s.view.ScreenToGrid(p)
	from := c
	if s.stroking {
		if c == s.last {
			return
		}
		from = s.last
	}

	now := s.cfg.Clock()
	stamp := now
	if s.tool == grid.Wall {
		stamp = 0
	}
	m := s.engine.Model()
	for _, cell := range grid.Line(from, c) {
		src, dst := m.Source(), m.Target()
		m.Place(cell, s.tool, stamp)
		if m.Source() != src {
			s.srcGlide = s.view.GlideTo(s.srcGlide, view.CellPoint(m.Source()), now)
		}
		if m.Target() != dst {
			s.dstGlide = s.view.GlideTo(s.dstGlide, view.CellPoint(m.Target()), now)
		}
	}
	s.last = c
	s.stroking = true
}

// Run starts a search from the current layout.
func (s *Session) Run() {
	s.stroking = false
	s.engine.Run()
}

// Pause freezes an active search.
func (s *Session) Pause() { s.engine.Pause() }

// Resume continues a paused search.
func (s *Session) Resume() { s.engine.Resume() }

// Clear wipes everything but the Source and Target.
func (s *Session) Clear() {
	s.stroking = false
	s.engine.Clear()
	s.log.Debug("cleared")
}

// Drag pans the view by (dx, dy) pixels.
func (s *Session) Drag(dx, dy float64) { s.view.Drag(dx, dy) }

// Zoom changes the cell size around pivot.
func (s *Session) Zoom(pivot view.Point, delta float64) bool {
	return s.view.Zoom(pivot, delta)
}

// SetStrategy replaces the engine with a fresh Idle one using strat,
// seeded from the current walls and endpoints. The tool and the view are
// kept.
func (s *Session) SetStrategy(strat search.Strategy) error {
	m := s.engine.Model()
	engine, err := search.Rebuild(m.Universe(), m.Walls(), m.Source(), m.Target(), s.cfg.engineOptions(strat)...)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.engine = engine
	s.stroking = false
	s.log.WithField("strategy", strat.String()).Info("strategy switched")

	return nil
}

// Step advances the search by one chunk and returns the frame to draw.
func (s *Session) Step() Frame {
	rounds := s.engine.Step()
	cur, ok := s.engine.Current()

	return Frame{
		State:      s.engine.State(),
		Paused:     s.engine.Paused(),
		Rounds:     rounds,
		Current:    cur,
		HasCurrent: ok,
		Now:        s.cfg.Clock(),
		s:          s,
	}
}
