package search

import (
	"context"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/minheap"
	"github.com/katalvlaran/pathviz/sparsemap"
)

// entry is one frontier record: the coordinate and the distance it was
// pushed with. A popped entry whose dist exceeds the current distance of
// its coordinate is stale.
type entry struct {
	c    grid.Coord
	dist int
}

// Engine runs one search at a time against a grid.Model.
// It is not safe for concurrent use.
type Engine struct {
	model *grid.Model
	cfg   Options
	log   *logrus.Entry

	frontier *minheap.Heap[entry]
	dist     *sparsemap.Map[grid.Coord, int]
	pred     *sparsemap.Map[grid.Coord, grid.Coord]

	state   State
	paused  bool
	current grid.Coord
	stats   Stats
}

// New returns an Idle engine bound to model.
// It returns ErrNilModel for a nil model and an error wrapping
// ErrOptionViolation for an invalid option.
func New(model *grid.Model, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if model == nil {
		return nil, ErrNilModel
	}

	return &Engine{
		model:    model,
		cfg:      cfg,
		log:      cfg.Logger.WithField("strategy", cfg.Strategy.String()),
		frontier: minheap.New[entry](),
		dist:     sparsemap.New[grid.Coord, int](grid.HashCoord),
		pred:     sparsemap.New[grid.Coord, grid.Coord](grid.HashCoord),
		current:  grid.NoCoord,
	}, nil
}

// Rebuild returns a fresh Idle engine over a new universe×universe model
// seeded with walls and the two endpoints. Walls that fall outside the
// universe or on an endpoint are dropped.
func Rebuild(universe int, walls []grid.Coord, source, target grid.Coord, opts ...Option) (*Engine, error) {
	model, err := grid.NewModel(universe, source, target)
	if err != nil {
		return nil, fmt.Errorf("search: rebuild: %w", err)
	}
	for _, w := range walls {
		model.Place(w, grid.Wall, 0)
	}

	return New(model, opts...)
}

// Model returns the model the engine searches.
func (e *Engine) Model() *grid.Model { return e.model }

// Strategy returns the configured strategy.
func (e *Engine) Strategy() Strategy { return e.cfg.Strategy }

// Budget returns the rounds performed per Step.
func (e *Engine) Budget() int { return e.cfg.Budget }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// PathFound reports whether the target has been reached.
func (e *Engine) PathFound() bool { return e.state == PathFound || e.state == PathTraced }

// Paused reports whether Step is frozen by Pause.
func (e *Engine) Paused() bool { return e.paused }

// Stats returns the counters of the current run.
func (e *Engine) Stats() Stats { return e.stats }

// FrontierLen returns the number of frontier entries, stale ones included.
func (e *Engine) FrontierLen() int { return e.frontier.Len() }

// Current returns the coordinate most recently expanded and whether it is
// meaningful to highlight it (only while Running).
func (e *Engine) Current() (grid.Coord, bool) {
	return e.current, e.state == Running
}

// Distance returns the recorded hop count of c.
func (e *Engine) Distance(c grid.Coord) (int, bool) { return e.dist.Lookup(c) }

// Run discards any previous search (walls stay), seeds the frontier with
// the Source and enters Running.
func (e *Engine) Run() {
	e.model.ClearPreservingWalls()
	e.resetContainers()

	src := e.model.Source()
	e.dist.Insert(src, 0)
	e.pred.Insert(src, grid.NoCoord)
	e.frontier.Add(entry{c: src, dist: 0}, e.cfg.Strategy.Priority(0, src, e.model.Target()))
	e.current = src
	e.model.SetSearching(true)

	e.cfg.Observer.RunStarted(e.cfg.Strategy)
	e.log.WithFields(logrus.Fields{
		"source": src.String(),
		"target": e.model.Target().String(),
		"walls":  e.model.Count(grid.Wall),
	}).Debug("search started")
	e.setState(Running)
}

// Step performs at most Budget rounds and returns how many it performed.
// It is a no-op while Idle, paused, or in a terminal state.
func (e *Engine) Step() int {
	if e.paused || (e.state != Running && e.state != PathFound) {
		return 0
	}

	rounds := 0
	for rounds < e.cfg.Budget && (e.state == Running || e.state == PathFound) {
		if e.state == Running {
			e.relax()
		} else {
			e.trace()
		}
		rounds++
	}

	e.stats.Steps++
	e.stats.Rounds += rounds
	e.cfg.Observer.Stepped(rounds, e.frontier.Len())

	return rounds
}

// Solve steps until a terminal state, checking ctx once per Step.
// An Idle engine is started first and a paused one is resumed.
func (e *Engine) Solve(ctx context.Context) (State, error) {
	if e.state == Idle {
		e.Run()
	}
	e.paused = false
	for !e.state.Terminal() {
		select {
		case <-ctx.Done():
			return e.state, ctx.Err()
		default:
		}
		e.Step()
	}

	return e.state, nil
}

// Pause freezes an active search; Step does nothing until Resume.
func (e *Engine) Pause() {
	if e.state == Running || e.state == PathFound {
		e.paused = true
		e.log.Debug("search paused")
	}
}

// Resume undoes Pause.
func (e *Engine) Resume() {
	if e.paused {
		e.paused = false
		e.log.Debug("search resumed")
	}
}

// Reset drops the search and its Checked/Path cells, keeps walls and
// returns to Idle.
func (e *Engine) Reset() {
	e.model.ClearPreservingWalls()
	e.stop()
}

// Clear drops the search and every wall, and returns to Idle.
func (e *Engine) Clear() {
	e.model.ClearAll()
	e.stop()
}

// Path returns the coordinates from Source to Target once the target has
// been reached, or nil before that. The chain is complete as soon as the
// state is PathFound, independent of the trace progress.
func (e *Engine) Path() []grid.Coord {
	if !e.PathFound() {
		return nil
	}

	var path []grid.Coord
	for c := e.model.Target(); c != grid.NoCoord; {
		path = append(path, c)
		if !e.pred.ContainsKey(c) {
			e.log.WithField("cell", c.String()).Warn("predecessor chain broken")
			return nil
		}
		c = e.pred.Get(c)
	}
	slices.Reverse(path)

	return path
}

// relax runs one relaxation round.
func (e *Engine) relax() {
	if e.frontier.IsEmpty() {
		e.log.WithField("expanded", e.stats.Expanded).Info("frontier exhausted, target unreachable")
		e.setState(Exhausted)
		return
	}

	// 1) Pop and drop stale duplicates.
	top := e.frontier.RemoveSmallest()
	if d, ok := e.dist.Lookup(top.c); ok && top.dist > d {
		e.stats.Stale++
		return
	}
	cur := top.c
	e.current = cur
	e.stats.Expanded++
	e.cfg.Observer.Expanded(cur, top.dist)

	// 2) Examine the four orthogonal neighbours.
	target := e.model.Target()
	now := e.cfg.Clock()
	nd := top.dist + 1
	for _, n := range grid.Neighbors4(cur) {
		if n == target && e.state == Running {
			e.pred.Insert(target, cur)
			e.dist.Insert(target, nd)
			e.stats.PathLength = nd
			e.log.WithField("hops", nd).Info("target reached")
			e.setState(PathFound)
		}

		if e.model.Place(n, grid.Checked, now) {
			e.stats.Discovered++
			e.push(n, cur, nd, target)
			continue
		}

		// A shorter route to a cell that is still only Checked.
		if cell, ok := e.model.Cell(n); ok && cell.Type == grid.Checked {
			if d, ok := e.dist.Lookup(n); ok && nd < d {
				e.stats.Improved++
				e.push(n, cur, nd, target)
			}
		}
	}
}

// push records n at distance nd via from and enqueues it.
func (e *Engine) push(n, from grid.Coord, nd int, target grid.Coord) {
	e.dist.Insert(n, nd)
	e.pred.Insert(n, from)
	e.frontier.Add(entry{c: n, dist: nd}, e.cfg.Strategy.Priority(nd, n, target))
	e.cfg.Observer.Discovered(n, nd)
}

// trace paints one Path hop, walking from the target's predecessor back
// toward the Source.
func (e *Engine) trace() {
	if e.current == e.model.Source() {
		e.log.WithField("hops", e.stats.PathLength).Debug("path traced")
		e.setState(PathTraced)
		return
	}
	if !e.pred.ContainsKey(e.current) {
		e.log.WithField("cell", e.current.String()).Warn("predecessor chain broken")
		e.setState(PathTraced)
		return
	}
	e.model.Place(e.current, grid.Path, e.cfg.Clock())
	e.current = e.pred.Get(e.current)
}

func (e *Engine) stop() {
	e.resetContainers()
	e.model.SetSearching(false)
	e.current = grid.NoCoord
	e.setState(Idle)
}

func (e *Engine) resetContainers() {
	e.frontier.Clear()
	e.dist.Clear()
	e.pred.Clear()
	e.paused = false
	e.stats = Stats{}
}

func (e *Engine) setState(s State) {
	if s == e.state {
		return
	}
	from := e.state
	e.state = s
	e.cfg.Observer.StateChanged(from, s)
}
