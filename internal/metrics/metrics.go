// Package metrics exports search activity as OpenTelemetry instruments
// scraped through a Prometheus registry.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

const (
	meterName = "github.com/katalvlaran/pathviz/search"

	metricRuns        = "pathviz.search.runs"
	metricExpanded    = "pathviz.search.expanded"
	metricDiscovered  = "pathviz.search.discovered"
	metricSteps       = "pathviz.search.steps"
	metricTransitions = "pathviz.search.transitions"
	metricRounds      = "pathviz.search.step.rounds"
	metricFrontier    = "pathviz.search.frontier"
)

const shutdownTimeout = 2 * time.Second

// roundBuckets cover budgets from 1 to a few hundred rounds per frame.
var roundBuckets = []float64{0, 1, 5, 10, 20, 50, 100, 250}

// Recorder implements search.Observer by recording OTel instruments.
// Instruments are safe for concurrent use, so a scrape may run while the
// frame loop records.
type Recorder struct {
	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider
	ctx      context.Context
	strategy attribute.KeyValue

	runs        metric.Int64Counter
	expanded    metric.Int64Counter
	discovered  metric.Int64Counter
	steps       metric.Int64Counter
	transitions metric.Int64Counter
	rounds      metric.Int64Histogram
	frontier    metric.Int64Gauge
}

var _ search.Observer = (*Recorder)(nil)

// New creates a Recorder backed by its own Prometheus registry, so that
// independent recorders never collide on collector registration.
func New() (*Recorder, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))

	r := &Recorder{
		registry: registry,
		provider: provider,
		ctx:      context.Background(),
		strategy: strategyAttr(search.DijkstraStrategy()),
	}
	if err := r.init(provider.Meter(meterName)); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Recorder) init(mt metric.Meter) error {
	var err error
	counter := func(name, desc, unit string) metric.Int64Counter {
		if err != nil {
			return nil
		}
		var c metric.Int64Counter
		c, err = mt.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			err = fmt.Errorf("create %s: %w", name, err)
		}

		return c
	}

	r.runs = counter(metricRuns, "Searches started", "{run}")
	r.expanded = counter(metricExpanded, "Cells popped from the frontier and expanded", "{cell}")
	r.discovered = counter(metricDiscovered, "Cells pushed onto the frontier", "{cell}")
	r.steps = counter(metricSteps, "Frame steps performed while active", "{step}")
	r.transitions = counter(metricTransitions, "Search lifecycle transitions", "{transition}")
	if err != nil {
		return err
	}

	r.rounds, err = mt.Int64Histogram(metricRounds,
		metric.WithDescription("Rounds performed per frame step"),
		metric.WithUnit("{round}"),
		metric.WithExplicitBucketBoundaries(roundBuckets...),
	)
	if err != nil {
		return fmt.Errorf("create %s: %w", metricRounds, err)
	}

	r.frontier, err = mt.Int64Gauge(metricFrontier,
		metric.WithDescription("Frontier entries after the last step, stale ones included"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return fmt.Errorf("create %s: %w", metricFrontier, err)
	}

	return nil
}

// Registry returns the registry the exporter writes into.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the /metrics scrape endpoint.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Shutdown flushes and stops the meter provider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if err := r.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown meter provider: %w", err)
	}

	return nil
}

// RunStarted implements search.Observer.
func (r *Recorder) RunStarted(s search.Strategy) {
	r.strategy = strategyAttr(s)
	r.runs.Add(r.ctx, 1, metric.WithAttributes(r.strategy))
}

// Expanded implements search.Observer.
func (r *Recorder) Expanded(grid.Coord, int) {
	r.expanded.Add(r.ctx, 1, metric.WithAttributes(r.strategy))
}

// Discovered implements search.Observer.
func (r *Recorder) Discovered(grid.Coord, int) {
	r.discovered.Add(r.ctx, 1, metric.WithAttributes(r.strategy))
}

// StateChanged implements search.Observer.
func (r *Recorder) StateChanged(_, to search.State) {
	r.transitions.Add(r.ctx, 1, metric.WithAttributes(r.strategy, attribute.String("to", to.String())))
}

// Stepped implements search.Observer.
func (r *Recorder) Stepped(rounds, frontier int) {
	attrs := metric.WithAttributes(r.strategy)
	r.steps.Add(r.ctx, 1, attrs)
	r.rounds.Record(r.ctx, int64(rounds), attrs)
	r.frontier.Record(r.ctx, int64(frontier), attrs)
}

func strategyAttr(s search.Strategy) attribute.KeyValue {
	return attribute.String("strategy", s.Kind.String())
}

// Serve exposes Handler on addr under /metrics until ctx is cancelled.
// It returns the bound address once the listener is up; serve errors are
// logged.
func Serve(ctx context.Context, addr string, h http.Handler, log *logrus.Entry) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Warn("metrics server stopped")
		}
	}()
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()

	log.WithField("addr", ln.Addr().String()).Info("serving metrics")

	return ln.Addr(), nil
}
