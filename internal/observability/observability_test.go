package observability_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoflow/driver"
	"github.com/katalvlaran/algoflow/internal/observability"
	"github.com/katalvlaran/algoflow/stepper"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for name, want := range cases {
		got, err := observability.ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := observability.ParseLevel("verbose")
	require.Error(t, err)
}

func TestNewLogger_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger, err := observability.NewLogger(&buf, "debug", "json")
	require.NoError(t, err)

	logger.Debug("stepped", "steps", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "stepped", record["msg"])
	assert.Equal(t, observability.ServiceName, record["service"])
	assert.InDelta(t, 3, record["steps"], 0)
}

func TestNewLogger_LevelFilters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger, err := observability.NewLogger(&buf, "warn", "text")
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_BadFormat(t *testing.T) {
	t.Parallel()

	_, err := observability.NewLogger(&bytes.Buffer{}, "info", "xml")
	require.Error(t, err)
}

func TestRunCollector(t *testing.T) {
	t.Parallel()

	rc := observability.NewRunCollector()
	snap := driver.Snapshot{Metrics: stepper.Metrics{
		Comparisons: 6, Swaps: 4, StepsTaken: 5, EstimatedTotalSteps: 10,
	}}

	rc.Observe("bubble", snap)

	expected := `
# HELP algoflow_progress_ratio Steps taken over the estimated total, clamped to [0,1].
# TYPE algoflow_progress_ratio gauge
algoflow_progress_ratio{algorithm="bubble"} 0.5
`
	require.NoError(t, testutil.GatherAndCompare(rc.Registry(), strings.NewReader(expected), "algoflow_progress_ratio"))
	assert.InDelta(t, 6, gaugeValue(t, rc, "algoflow_comparisons"), 0)

	rc.Complete("bubble", snap)
	rc.Complete("bubble", snap)

	expected = `
# HELP algoflow_runs_completed_total Runs that reached completion.
# TYPE algoflow_runs_completed_total counter
algoflow_runs_completed_total{algorithm="bubble"} 2
`
	require.NoError(t, testutil.GatherAndCompare(rc.Registry(), strings.NewReader(expected), "algoflow_runs_completed_total"))
}

func TestRunCollector_Handler(t *testing.T) {
	t.Parallel()

	rc := observability.NewRunCollector()
	rc.Observe("heap", driver.Snapshot{Metrics: stepper.Metrics{Swaps: 9}})

	rec := httptest.NewRecorder()
	rc.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `algoflow_swaps{algorithm="heap"} 9`)
}

// gaugeValue gathers one single-series gauge family from rc.
func gaugeValue(t *testing.T, rc *observability.RunCollector, name string) float64 {
	t.Helper()

	families, err := rc.Registry().Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() == name {
			return f.GetMetric()[0].GetGauge().GetValue()
		}
	}

	t.Fatalf("metric %s not gathered", name)

	return 0
}
