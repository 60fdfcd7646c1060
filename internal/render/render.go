// Package render formats search results for the terminal: a coloured
// character map of the grid and a comparison table for benchmark runs.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// MaxMapSide is the largest universe Map will draw.
const MaxMapSide = 120

// ErrTooLarge is returned by Map for universes wider than MaxMapSide.
var ErrTooLarge = errors.New("render: universe too large to draw")

const glyphEmpty = '.'

var glyphs = map[grid.CellType]struct {
	r     rune
	paint *color.Color
}{
	grid.Checked: {'o', color.New(color.FgCyan)},
	grid.Wall:    {'#', color.New(color.FgHiBlack)},
	grid.Path:    {'*', color.New(color.FgHiYellow, color.Bold)},
	grid.Source:  {'S', color.New(color.FgHiRed, color.Bold)},
	grid.Target:  {'T', color.New(color.FgBlue, color.Bold)},
}

// Map writes one line per row of m. Colour follows color.NoColor.
func Map(w io.Writer, m *grid.Model) error {
	n := m.Universe()
	if n > MaxMapSide {
		return fmt.Errorf("%w: %d > %d", ErrTooLarge, n, MaxMapSide)
	}

	var b strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			cell, ok := m.Cell(grid.Coord{X: x, Y: y})
			if !ok {
				b.WriteRune(glyphEmpty)
				continue
			}
			g := glyphs[cell.Type]
			b.WriteString(g.paint.Sprint(string(g.r)))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// Result is one finished search as reported by solve and bench.
type Result struct {
	Layout   string
	Strategy search.Strategy
	State    search.State
	Stats    search.Stats
	Elapsed  time.Duration
}

// Summary writes a short human-readable account of r.
func Summary(w io.Writer, r Result) error {
	outcome := color.New(color.FgRed).Sprint("no path")
	if found(r.State) {
		outcome = color.New(color.FgGreen).Sprint("path found")
	}

	_, err := fmt.Fprintf(w,
		"%s on %s: %s, %s hops\n  expanded %s, discovered %s, stale %s, %s steps, %s rounds in %s\n",
		r.Strategy, r.Layout, outcome, hops(r),
		humanize.Comma(int64(r.Stats.Expanded)),
		humanize.Comma(int64(r.Stats.Discovered)),
		humanize.Comma(int64(r.Stats.Stale)),
		humanize.Comma(int64(r.Stats.Steps)),
		humanize.Comma(int64(r.Stats.Rounds)),
		r.Elapsed.Round(time.Microsecond),
	)

	return err
}

// Table renders results as a go-pretty table, one row per result.
func Table(results []Result) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Layout", "Strategy", "State", "Hops", "Expanded", "Discovered", "Stale", "Steps", "Time", "Rate"})

	for _, r := range results {
		tbl.AppendRow(table.Row{
			r.Layout,
			r.Strategy.String(),
			r.State.String(),
			hops(r),
			humanize.Comma(int64(r.Stats.Expanded)),
			humanize.Comma(int64(r.Stats.Discovered)),
			humanize.Comma(int64(r.Stats.Stale)),
			humanize.Comma(int64(r.Stats.Steps)),
			r.Elapsed.Round(time.Microsecond).String(),
			rate(r),
		})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d runs", len(results))})

	return tbl.Render()
}

func hops(r Result) string {
	if !found(r.State) {
		return "-"
	}

	return humanize.Comma(int64(r.Stats.PathLength))
}

func found(s search.State) bool { return s == search.PathFound || s == search.PathTraced }

// rate is expanded cells per second.
func rate(r Result) string {
	if r.Elapsed <= 0 {
		return "-"
	}

	return humanize.SIWithDigits(float64(r.Stats.Expanded)/r.Elapsed.Seconds(), 1, "cells/s")
}
