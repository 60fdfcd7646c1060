package commands

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/internal/config"
	"github.com/katalvlaran/pathviz/internal/logger"
	"github.com/katalvlaran/pathviz/internal/metrics"
	"github.com/katalvlaran/pathviz/internal/settings"
	"github.com/katalvlaran/pathviz/internal/visualizer"
	"github.com/katalvlaran/pathviz/session"
)

const metricsShutdownTimeout = 2 * time.Second

// WindowCommand opens the interactive visualiser.
type WindowCommand struct {
	g           *Globals
	metricsAddr string
	noSettings  bool
}

func newWindowCommand(g *Globals) *cobra.Command {
	wc := &WindowCommand{g: g}

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open the interactive visualiser",
		Long: `Open the visualiser window.

Keys: S source, W wall, T target, R remove, C run, X pause/resume,
A toggle Dijkstra/A*, Delete clear, H help, Esc quit.
Mouse: left paints, right drags, wheel zooms.`,
		Args: cobra.NoArgs,
		RunE: wc.run,
	}

	cmd.Flags().StringVar(&wc.metricsAddr, "metrics-addr", "", "serve /metrics on this address (overrides metrics.addr)")
	cmd.Flags().BoolVar(&wc.noSettings, "no-settings", false, "do not restore or save preferences")

	return cmd
}

func (wc *WindowCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, log, err := wc.g.load(cmd)
	if err != nil {
		return err
	}
	if wc.metricsAddr != "" {
		cfg.Metrics.Addr = wc.metricsAddr
	}

	// 1) Metrics: always recorded, served only when an address is set.
	rec, err := metrics.New()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if cfg.Metrics.Addr != "" {
		if _, err := metrics.Serve(ctx, cfg.Metrics.Addr, rec.Handler(), logger.Component(log, "metrics")); err != nil {
			return err
		}
	}
	defer func() {
		sctx, scancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer scancel()
		if err := rec.Shutdown(sctx); err != nil {
			log.WithError(err).Warn("metrics shutdown")
		}
	}()

	// 2) Preferences, then the session they shape.
	var prefs *settings.Manager
	if cfg.Settings.Persist && !wc.noSettings {
		prefs = settings.Open(cfg.Settings.AppName, logger.Component(log, "settings"))
	}
	sess, err := newSession(cfg, log, rec, visualizer.SessionOptions(prefs)...)
	if err != nil {
		return err
	}

	game := visualizer.New(sess, visualizer.Options{
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Settings: prefs,
		Logger:   logger.Component(log, "visualizer"),
	})

	// 3) Window loop; returns when the window closes or Esc is pressed.
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	log.WithFields(logrus.Fields{
		"universe": cfg.Universe,
		"strategy": sess.Strategy().String(),
	}).Info("window opened")

	runErr := ebiten.RunGame(game)
	if err := game.Close(); err != nil {
		log.WithError(err).Warn("preferences not saved")
	}

	return runErr
}

func newSession(cfg *config.Config, log *logrus.Logger, obs *metrics.Recorder, extra ...session.Option) (*session.Session, error) {
	opts, err := cfg.SessionOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		session.WithObserver(obs),
		session.WithLogger(logrus.NewEntry(log)),
	)
	opts = append(opts, extra...)
	origin, size := cfg.Viewport()

	return session.New(origin, size, opts...)
}
