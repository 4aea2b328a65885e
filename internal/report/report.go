// Package report records the metric history of a run and exports it as a
// YAML summary or an HTML line chart.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoflow/driver"
	"github.com/katalvlaran/algoflow/stepper"
)

// ErrEmptyTrace is returned when a chart is requested for a trace with no samples.
var ErrEmptyTrace = errors.New("report: trace has no samples")

const yamlIndent = 2

// Sample is the metric state after one driver tick.
type Sample struct {
	Tick        int     `yaml:"tick"`
	Steps       int     `yaml:"steps"`
	Comparisons int     `yaml:"comparisons"`
	Swaps       int     `yaml:"swaps"`
	Progress    float64 `yaml:"progress"`
}

// Trace accumulates samples from driver ticks. It is safe for concurrent
// Observe and Samples calls.
type Trace struct {
	mu      sync.Mutex
	samples []Sample
}

// NewTrace returns an empty trace.
func NewTrace() *Trace {
	return &Trace{}
}

// Observe appends snap. Its signature matches driver.WithOnTick.
func (t *Trace) Observe(snap driver.Snapshot) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.samples = append(t.samples, Sample{
		Tick:        snap.Tick,
		Steps:       snap.Metrics.StepsTaken,
		Comparisons: snap.Metrics.Comparisons,
		Swaps:       snap.Metrics.Swaps,
		Progress:    snap.Metrics.Progress(),
	})

	return nil
}

// Samples returns a copy of the recorded samples.
func (t *Trace) Samples() []Sample {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]Sample(nil), t.samples...)
}

// Reset drops all samples.
func (t *Trace) Reset() {
	t.mu.Lock()
	t.samples = nil
	t.mu.Unlock()
}

// Summary is the exported record of a finished run.
type Summary struct {
	Kind      string          `yaml:"kind"`
	Algorithm string          `yaml:"algorithm"`
	Title     string          `yaml:"title"`
	Size      int             `yaml:"size"`
	Seed      int64           `yaml:"seed,omitempty"`
	Completed bool            `yaml:"completed"`
	Elapsed   time.Duration   `yaml:"elapsed"`
	Metrics   stepper.Metrics `yaml:"metrics"`
	Input     []int           `yaml:"input,omitempty"`
	Output    []int           `yaml:"output,omitempty"`
	Path      []int           `yaml:"path,omitempty"`
	Cost      int64           `yaml:"cost,omitempty"`
	Samples   []Sample        `yaml:"samples,omitempty"`
}

// WriteYAML encodes v to w.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("close yaml encoder: %w", err)
	}

	return nil
}

// Chart builds a line chart of comparisons, swaps and steps over ticks.
func Chart(title string, samples []Sample) (*charts.Line, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyTrace
	}

	labels := make([]string, len(samples))
	comparisons := make([]opts.LineData, len(samples))
	swaps := make([]opts.LineData, len(samples))
	steps := make([]opts.LineData, len(samples))

	for i, s := range samples {
		labels[i] = strconv.Itoa(s.Tick)
		comparisons[i] = opts.LineData{Value: s.Comparisons}
		swaps[i] = opts.LineData{Value: s.Swaps}
		steps[i] = opts.LineData{Value: s.Steps}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "8%"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Tick"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
	)
	line.SetXAxis(labels)

	smooth := charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)})
	line.AddSeries("Comparisons", comparisons, smooth)
	line.AddSeries("Swaps", swaps, smooth)
	line.AddSeries("Steps", steps, smooth)

	return line, nil
}

// WriteChart renders the chart of samples as a standalone HTML page.
func WriteChart(w io.Writer, title string, samples []Sample) error {
	line, err := Chart(title, samples)
	if err != nil {
		return err
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	return nil
}
