package commands

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/internal/render"
	"github.com/katalvlaran/pathviz/internal/scenario"
	"github.com/katalvlaran/pathviz/search"
)

// BenchCommand solves every selected layout with Dijkstra and A* at each
// weight and prints a comparison table.
type BenchCommand struct {
	g       *Globals
	layout  layoutFlags
	kinds   []string
	weights []float64
	budget  int
}

func newBenchCommand(g *Globals) *cobra.Command {
	bc := &BenchCommand{g: g}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare strategies across generated layouts",
		Args:  cobra.NoArgs,
		RunE:  bc.run,
	}

	bc.layout.register(cmd, 200)
	cmd.Flags().StringSliceVar(&bc.kinds, "layouts", []string{"open", "random", "bars", "separator"}, "layouts to run")
	cmd.Flags().Float64SliceVar(&bc.weights, "weights", []float64{1, 2}, "A* weights to compare")
	cmd.Flags().IntVar(&bc.budget, "budget", 1000, "rounds per step")

	return cmd
}

func (bc *BenchCommand) run(cmd *cobra.Command, _ []string) error {
	_, log, err := bc.g.load(cmd)
	if err != nil {
		return err
	}

	strategies := []search.Strategy{search.DijkstraStrategy()}
	for _, w := range bc.weights {
		s := search.AStarStrategy(w)
		if err := s.Validate(); err != nil {
			return err
		}
		strategies = append(strategies, s)
	}

	var results []render.Result
	for _, name := range bc.kinds {
		kind, err := scenario.ParseKind(name)
		if err != nil {
			return err
		}
		layout, err := scenario.Generate(kind, bc.layout.universe, bc.layout.seed, bc.layout.density)
		if err != nil {
			return err
		}

		for _, s := range strategies {
			r, err := bc.solve(cmd, layout, s)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"layout":   name,
				"strategy": s.String(),
				"expanded": r.Stats.Expanded,
			}).Debug("bench run finished")
			results = append(results, r)
		}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Table(results))

	return err
}

func (bc *BenchCommand) solve(cmd *cobra.Command, l scenario.Layout, s search.Strategy) (render.Result, error) {
	e, err := l.Engine(search.WithStrategy(s), search.WithBudget(bc.budget))
	if err != nil {
		return render.Result{}, err
	}

	start := time.Now()
	state, err := e.Solve(cmd.Context())
	if err != nil {
		return render.Result{}, fmt.Errorf("bench %s %s: %w", l.Kind, s, err)
	}

	return render.Result{
		Layout:   l.Kind.String(),
		Strategy: s,
		State:    state,
		Stats:    e.Stats(),
		Elapsed:  time.Since(start),
	}, nil
}
