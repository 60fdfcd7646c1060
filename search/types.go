package search

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/grid"
)

// Sentinel errors.
var (
	// ErrNilModel is returned when New receives a nil model.
	ErrNilModel = errors.New("search: model is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownStrategy is returned by ParseKind for an unknown name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// DefaultBudget is the number of rounds one Step performs.
const DefaultBudget = 20

// Kind selects the priority function.
type Kind int

const (
	// Dijkstra orders the frontier by hop count.
	Dijkstra Kind = iota
	// AStar adds a weighted Euclidean estimate to the target.
	AStar
)

func (k Kind) String() string {
	switch k {
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "dijkstra" or "astar" to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Strategy is a tagged priority function.
type Strategy struct {
	Kind Kind
	// Weight scales the heuristic for AStar; ignored for Dijkstra.
	Weight float64
}

// DijkstraStrategy returns the plain Dijkstra strategy.
func DijkstraStrategy() Strategy { return Strategy{Kind: Dijkstra} }

// AStarStrategy returns A* with heuristic weight w.
func AStarStrategy(w float64) Strategy { return Strategy{Kind: AStar, Weight: w} }

// Validate reports an error wrapping ErrOptionViolation for an unknown kind
// or an A* weight below 1.
func (s Strategy) Validate() error {
	switch s.Kind {
	case Dijkstra:
		return nil
	case AStar:
		if s.Weight < 1 || math.IsNaN(s.Weight) || math.IsInf(s.Weight, 0) {
			return fmt.Errorf("%w: astar weight must be ≥ 1 (got %v)", ErrOptionViolation, s.Weight)
		}
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrOptionViolation, s.Kind)
	}
}

// Priority returns the frontier priority of n reached in dist hops.
func (s Strategy) Priority(dist int, n, target grid.Coord) float64 {
	switch s.Kind {
	case AStar:
		return float64(dist) + s.Weight*Euclid(n, target)
	default:
		return float64(dist)
	}
}

func (s Strategy) String() string {
	if s.Kind == AStar {
		return fmt.Sprintf("astar(w=%g)", s.Weight)
	}

	return s.Kind.String()
}

// Euclid returns the straight-line distance between a and b.
func Euclid(a, b grid.Coord) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// State is the engine lifecycle state.
type State int

const (
	// Idle: no search; the model accepts edits.
	Idle State = iota
	// Running: relaxation rounds are in progress.
	Running
	// Exhausted: the frontier emptied before the target was seen.
	Exhausted
	// PathFound: the target was seen; the path is being traced.
	PathFound
	// PathTraced: the trace reached the source.
	PathTraced
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Exhausted:
		return "exhausted"
	case PathFound:
		return "path-found"
	case PathTraced:
		return "path-traced"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Active reports whether a search owns the model (every state but Idle).
func (s State) Active() bool { return s != Idle }

// Terminal reports whether Step can make no further progress.
func (s State) Terminal() bool { return s == Exhausted || s == PathTraced }

// Clock returns the current time in seconds; it stamps placed cells.
type Clock func() float64

var epoch = time.Now()

// MonotonicClock returns seconds elapsed since package initialisation.
func MonotonicClock() float64 { return time.Since(epoch).Seconds() }

// Observer receives engine events. Implementations must be cheap: the
// hooks run inside Step.
type Observer interface {
	// RunStarted fires from Run.
	RunStarted(s Strategy)
	// Expanded fires when a frontier entry is popped and relaxed.
	Expanded(c grid.Coord, dist int)
	// Discovered fires when a neighbour gets a new or shorter distance.
	Discovered(c grid.Coord, dist int)
	// StateChanged fires on every state transition.
	StateChanged(from, to State)
	// Stepped fires at the end of a Step that did work.
	Stepped(rounds, frontier int)
}

// NopObserver ignores every event. Embed it to implement a subset.
type NopObserver struct{}

func (NopObserver) RunStarted(Strategy)        {}
func (NopObserver) Expanded(grid.Coord, int)   {}
func (NopObserver) Discovered(grid.Coord, int) {}
func (NopObserver) StateChanged(State, State)  {}
func (NopObserver) Stepped(int, int)           {}

// Options configures an Engine.
type Options struct {
	Strategy Strategy
	// Budget is the maximum number of rounds per Step (≥ 1).
	Budget int

	Clock    Clock
	Observer Observer
	Logger   *logrus.Entry

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for New and Rebuild.
type Option func(*Options)

// DefaultOptions returns Dijkstra, DefaultBudget, MonotonicClock, no
// observer and a discarding logger.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Strategy: DijkstraStrategy(),
		Budget:   DefaultBudget,
		Clock:    MonotonicClock,
		Observer: NopObserver{},
		Logger:   logrus.NewEntry(l),
	}
}

// WithStrategy selects the priority function.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if err := s.Validate(); err != nil {
			o.err = err
			return
		}
		o.Strategy = s
	}
}

// WithBudget sets the rounds per Step; n < 1 is an option violation.
func WithBudget(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: budget must be ≥ 1 (got %d)", ErrOptionViolation, n)
			return
		}
		o.Budget = n
	}
}

// WithClock sets the stamp source. nil is ignored.
func WithClock(c Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithObserver registers event hooks. nil is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithLogger routes engine logs to e. nil is ignored.
func WithLogger(e *logrus.Entry) Option {
	return func(o *Options) {
		if e != nil {
			o.Logger = e
		}
	}
}

// Stats counts the work done since the last Run.
type Stats struct {
	Steps      int // Step calls that did work
	Rounds     int // rounds across all steps
	Expanded   int // frontier entries relaxed
	Discovered int // neighbours given a first distance
	Improved   int // neighbours given a shorter distance
	Stale      int // popped entries skipped as outdated
	PathLength int // hops from source to target, once traced
}
