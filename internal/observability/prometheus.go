package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/algoflow/driver"
)

const (
	metricsNamespace = "algoflow"
	labelAlgorithm   = "algorithm"
	shutdownTimeout  = 5 * time.Second
	readHeaderLimit  = 5 * time.Second
)

// RunCollector exports per-algorithm stepping metrics on its own registry so
// several collectors can coexist in one process (and in tests).
type RunCollector struct {
	registry    *prometheus.Registry
	steps       *prometheus.GaugeVec
	comparisons *prometheus.GaugeVec
	swaps       *prometheus.GaugeVec
	progress    *prometheus.GaugeVec
	completed   *prometheus.CounterVec
}

// NewRunCollector creates and registers the run metrics.
func NewRunCollector() *RunCollector {
	rc := &RunCollector{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "steps_total",
			Help:      "Steps taken by the current run.",
		}, []string{labelAlgorithm}),
		comparisons: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "comparisons",
			Help:      "Element comparisons performed by the current run.",
		}, []string{labelAlgorithm}),
		swaps: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "swaps",
			Help:      "Element moves performed by the current run.",
		}, []string{labelAlgorithm}),
		progress: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "progress_ratio",
			Help:      "Steps taken over the estimated total, clamped to [0,1].",
		}, []string{labelAlgorithm}),
		completed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_completed_total",
			Help:      "Runs that reached completion.",
		}, []string{labelAlgorithm}),
	}

	rc.registry.MustRegister(rc.steps, rc.comparisons, rc.swaps, rc.progress, rc.completed)

	return rc
}

// Observe records a driver snapshot under the given algorithm label.
func (rc *RunCollector) Observe(algorithm string, snap driver.Snapshot) {
	m := snap.Metrics
	rc.steps.WithLabelValues(algorithm).Set(float64(m.StepsTaken))
	rc.comparisons.WithLabelValues(algorithm).Set(float64(m.Comparisons))
	rc.swaps.WithLabelValues(algorithm).Set(float64(m.Swaps))
	rc.progress.WithLabelValues(algorithm).Set(m.Progress())
}

// Complete counts one finished run and records its final snapshot.
func (rc *RunCollector) Complete(algorithm string, snap driver.Snapshot) {
	rc.Observe(algorithm, snap)
	rc.completed.WithLabelValues(algorithm).Inc()
}

// Registry exposes the underlying registry for gathering.
func (rc *RunCollector) Registry() *prometheus.Registry {
	return rc.registry
}

// Handler returns the /metrics scrape handler.
func (rc *RunCollector) Handler() http.Handler {
	return promhttp.HandlerFor(rc.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (rc *RunCollector) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", rc.Handler())

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: readHeaderLimit}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.Serve(ln)
	}()

	logger.Info("metrics endpoint listening", "addr", ln.Addr().String())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown metrics server: %w", err)
		}

		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("serve metrics: %w", err)
	}
}
