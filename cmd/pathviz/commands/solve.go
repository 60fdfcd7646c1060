package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/internal/config"
	"github.com/katalvlaran/pathviz/internal/logger"
	"github.com/katalvlaran/pathviz/internal/render"
	"github.com/katalvlaran/pathviz/internal/scenario"
	"github.com/katalvlaran/pathviz/search"
)

// layoutFlags select and seed a generated layout.
type layoutFlags struct {
	universe int
	seed     int64
	density  float64
}

func (lf *layoutFlags) register(cmd *cobra.Command, universe int) {
	cmd.Flags().IntVar(&lf.universe, "universe", universe, "grid side in cells")
	cmd.Flags().Int64Var(&lf.seed, "seed", 1, "random layout seed (0 means 1)")
	cmd.Flags().Float64Var(&lf.density, "density", 0.3, "wall density of the random layout, in [0, 1)")
}

// SolveCommand runs one headless search and prints the grid and a summary.
type SolveCommand struct {
	g        *Globals
	layout   layoutFlags
	kind     string
	strategy string
	weight   float64
	showMap  bool
}

func newSolveCommand(g *Globals) *cobra.Command {
	sc := &SolveCommand{g: g}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one generated layout in the terminal",
		Long: `Generate a wall layout, run the configured strategy to completion
and print the grid (for universes up to ` + fmt.Sprint(render.MaxMapSide) + ` cells) with a summary.`,
		Args: cobra.NoArgs,
		RunE: sc.run,
	}

	sc.layout.register(cmd, 40)
	cmd.Flags().StringVar(&sc.kind, "layout", scenario.Random.String(), "layout: open, random, bars, separator")
	cmd.Flags().StringVar(&sc.strategy, "strategy", "", "dijkstra or astar (default from config)")
	cmd.Flags().Float64Var(&sc.weight, "weight", 0, "A* weight (default from config)")
	cmd.Flags().BoolVar(&sc.showMap, "map", true, "print the grid")

	return cmd
}

func (sc *SolveCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, log, err := sc.g.load(cmd)
	if err != nil {
		return err
	}

	strat, err := strategyFromFlags(cfg, sc.strategy, sc.weight)
	if err != nil {
		return err
	}
	kind, err := scenario.ParseKind(sc.kind)
	if err != nil {
		return err
	}
	layout, err := scenario.Generate(kind, sc.layout.universe, sc.layout.seed, sc.layout.density)
	if err != nil {
		return err
	}

	e, err := layout.Engine(
		search.WithStrategy(strat),
		search.WithBudget(cfg.Search.Budget),
		search.WithLogger(logger.Component(log, "search")),
	)
	if err != nil {
		return err
	}

	start := time.Now()
	state, err := e.Solve(cmd.Context())
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	out := cmd.OutOrStdout()
	if sc.showMap {
		if mapErr := render.Map(out, e.Model()); mapErr != nil {
			log.WithError(mapErr).Warn("grid not drawn")
		}
	}

	return render.Summary(out, render.Result{
		Layout:   kind.String(),
		Strategy: strat,
		State:    state,
		Stats:    e.Stats(),
		Elapsed:  elapsed,
	})
}

// strategyFromFlags applies the --strategy and --weight overrides on top
// of the configured strategy.
func strategyFromFlags(cfg *config.Config, name string, weight float64) (search.Strategy, error) {
	if name == "" && weight == 0 {
		return cfg.Strategy()
	}

	if name == "" {
		name = cfg.Search.Strategy
	}
	if weight == 0 {
		weight = cfg.Search.Weight
	}
	kind, err := search.ParseKind(name)
	if err != nil {
		return search.Strategy{}, err
	}
	s := search.DijkstraStrategy()
	if kind == search.AStar {
		s = search.AStarStrategy(weight)
	}

	return s, s.Validate()
}
