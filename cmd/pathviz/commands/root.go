// Package commands holds the pathviz cobra command tree.
package commands

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/internal/config"
	"github.com/katalvlaran/pathviz/internal/logger"
)

// Globals are the persistent flags shared by every command.
type Globals struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
	NoColor    bool
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	g := &Globals{}

	rootCmd := &cobra.Command{
		Use:   "pathviz",
		Short: "Interactive grid shortest-path visualiser",
		Long: `pathviz paints obstacles on a grid and animates Dijkstra and A* searches
expanding through it, a bounded number of rounds per frame.

Commands:
  window    Open the interactive visualiser
  solve     Solve one generated layout in the terminal
  bench     Compare strategies across generated layouts
  config    Print the effective configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if g.NoColor {
				color.NoColor = true //nolint:reassign // library global
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.ConfigPath, "config", "", "config file (default .pathviz.yaml in CWD or $HOME)")
	rootCmd.PersistentFlags().StringVar(&g.LogLevel, "log-level", "", "log level override: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&g.LogFormat, "log-format", "", "log format override: text or json")
	rootCmd.PersistentFlags().BoolVar(&g.NoColor, "no-color", false, "disable coloured output")

	rootCmd.AddCommand(newWindowCommand(g))
	rootCmd.AddCommand(newSolveCommand(g))
	rootCmd.AddCommand(newBenchCommand(g))
	rootCmd.AddCommand(newConfigCommand(g))
	rootCmd.AddCommand(versionCmd(version))

	return rootCmd
}

// load reads the configuration, applies the log flag overrides and builds
// the logger, which writes to the command's error stream.
func (g *Globals) load(cmd *cobra.Command) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig(g.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	log.WithField("config", g.ConfigPath).Debug("configuration loaded")

	return cfg, log, nil
}

func versionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pathviz %s (%s %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}

func newConfigCommand(g *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := g.load(cmd)
			if err != nil {
				return err
			}
			out, err := config.Dump(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
}
