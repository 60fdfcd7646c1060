package commands_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/cmd/pathviz/commands"
	"github.com/katalvlaran/pathviz/internal/config"
	"github.com/katalvlaran/pathviz/internal/scenario"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "pathviz-*.yaml")
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	return f.Name()
}

// execute runs the root command with a private config file and returns
// stdout and stderr.
func execute(t *testing.T, cfg string, args ...string) (string, string, error) {
	t.Helper()

	root := commands.NewRootCommand("test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(args, "--config", writeConfig(t, cfg), "--no-color"))

	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "{}\n", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "pathviz test ("), out)
}

func TestConfigCommand(t *testing.T) {
	out, _, err := execute(t, "universe: 77\nsearch:\n  strategy: astar\n", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "universe: 77")
	assert.Contains(t, out, "strategy: astar")
	assert.Contains(t, out, "glide_seconds: 0.5")
}

func TestConfigCommand_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "search:\n  budget: -1\n", "config")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidBudget)
}

func TestSolve_OpenLayout(t *testing.T) {
	out, _, err := execute(t, "{}\n", "solve", "--layout", "open", "--universe", "20")
	require.NoError(t, err)

	assert.Contains(t, out, "T***********S")
	assert.Contains(t, out, "dijkstra on open: path found, 12 hops")
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 20+2)
}

func TestSolve_StrategyOverride(t *testing.T) {
	out, _, err := execute(t, "{}\n", "solve", "--layout", "bars", "--universe", "20", "--strategy", "astar", "--map=false")
	require.NoError(t, err)
	assert.Contains(t, out, "astar(w=1) on bars: path found")
	assert.NotContains(t, out, "#")

	out, _, err = execute(t, "search:\n  strategy: astar\n", "solve", "--layout", "open", "--universe", "20", "--weight", "2", "--map=false")
	require.NoError(t, err)
	assert.Contains(t, out, "astar(w=2) on open")
}

func TestSolve_Separator(t *testing.T) {
	out, _, err := execute(t, "{}\n", "solve", "--layout", "separator", "--universe", "15", "--map=false")
	require.NoError(t, err)
	assert.Contains(t, out, "no path")
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := execute(t, "{}\n", "solve", "--layout", "spiral")
	assert.ErrorIs(t, err, scenario.ErrUnknownKind)

	_, _, err = execute(t, "{}\n", "solve", "--strategy", "astar", "--weight", "0.5")
	require.Error(t, err)

	_, _, err = execute(t, "{}\n", "solve", "--universe", "3")
	assert.ErrorIs(t, err, scenario.ErrTooSmall)
}

func TestSolve_LogsToErrorStream(t *testing.T) {
	_, errOut, err := execute(t, "{}\n", "solve", "--layout", "separator", "--universe", "10", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"component":"search"`)
	assert.Contains(t, errOut, "frontier exhausted")
}

func TestBench(t *testing.T) {
	out, _, err := execute(t, "{}\n", "bench", "--universe", "20", "--layouts", "open,separator", "--weights", "1,3")
	require.NoError(t, err)

	for _, want := range []string{"dijkstra", "astar(w=1)", "astar(w=3)", "open", "separator", "exhausted", "path-traced"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, strings.ToLower(out), "total: 6 runs")
}

func TestBench_BadWeight(t *testing.T) {
	_, _, err := execute(t, "{}\n", "bench", "--universe", "20", "--weights", "0.5")
	require.Error(t, err)
}

func TestWindowCommandRegistered(t *testing.T) {
	root := commands.NewRootCommand("test")
	cmd, _, err := root.Find([]string{"window"})
	require.NoError(t, err)
	assert.Equal(t, "window", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("metrics-addr"))
	assert.NotNil(t, cmd.Flags().Lookup("no-settings"))
}
