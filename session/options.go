package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
	"github.com/katalvlaran/pathviz/view"
)

// Sentinel errors.
var (
	// ErrBadTool is returned by Select for a type that is not a paint tool.
	ErrBadTool = errors.New("session: not a paint tool")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("session: invalid option supplied")
)

// Options configures a Session.
type Options struct {
	Universe int
	Strategy search.Strategy
	Budget   int
	Clock    search.Clock
	Observer search.Observer
	Logger   *logrus.Entry
	View     []view.Option

	err error
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the default universe, Dijkstra, the default
// budget, the monotonic clock and a discarding logger.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Universe: grid.DefaultUniverse,
		Strategy: search.DijkstraStrategy(),
		Budget:   search.DefaultBudget,
		Clock:    search.MonotonicClock,
		Observer: search.NopObserver{},
		Logger:   logrus.NewEntry(l),
	}
}

// WithUniverse sets the universe side in cells.
func WithUniverse(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: universe %d", ErrOptionViolation, n)
			return
		}
		o.Universe = n
	}
}

// WithStrategy sets the initial search strategy.
func WithStrategy(s search.Strategy) Option {
	return func(o *Options) {
		if err := s.Validate(); err != nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			return
		}
		o.Strategy = s
	}
}

// WithBudget sets the search rounds per Step.
func WithBudget(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: budget %d", ErrOptionViolation, n)
			return
		}
		o.Budget = n
	}
}

// WithClock sets the time source for stamps and animation. nil is ignored.
func WithClock(c search.Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithObserver forwards engine events to obs. nil is ignored.
func WithObserver(obs search.Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithLogger routes session and engine logs to e. nil is ignored.
func WithLogger(e *logrus.Entry) Option {
	return func(o *Options) {
		if e != nil {
			o.Logger = e
		}
	}
}

// WithViewOptions passes extra options to view.New. The universe is
// always taken from WithUniverse.
func WithViewOptions(opts ...view.Option) Option {
	return func(o *Options) {
		o.View = append(o.View, opts...)
	}
}

func (o Options) engineOptions(s search.Strategy) []search.Option {
	return []search.Option{
		search.WithStrategy(s),
		search.WithBudget(o.Budget),
		search.WithClock(o.Clock),
		search.WithObserver(o.Observer),
		search.WithLogger(o.Logger.WithField("component", "search")),
	}
}
