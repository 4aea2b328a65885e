// Package commands implements the algoflow CLI subcommands.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/algoflow/internal/config"
	"github.com/katalvlaran/algoflow/internal/observability"
	"github.com/katalvlaran/algoflow/internal/render"
	"github.com/katalvlaran/algoflow/internal/report"
)

// Flag names shared across commands.
const (
	flagConfig      = "config"
	flagLogLevel    = "log-level"
	flagLogFormat   = "log-format"
	flagNoColor     = "no-color"
	flagAlgorithm   = "algorithm"
	flagSize        = "size"
	flagMin         = "min"
	flagMax         = "max"
	flagSeed        = "seed"
	flagSpeed       = "speed"
	flagMaxSteps    = "max-steps"
	flagRuns        = "runs"
	flagWidth       = "width"
	flagFrames      = "frames"
	flagMetricsAddr = "metrics-addr"
	flagNodes       = "nodes"
	flagProbability = "probability"
	flagSource      = "source"
	flagTarget      = "target"
	flagReport      = "report"
	flagChart       = "chart"
)

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	flagLogLevel:    "logging.level",
	flagLogFormat:   "logging.format",
	flagAlgorithm:   "run.algorithm",
	flagSize:        "run.size",
	flagMin:         "run.min",
	flagMax:         "run.max",
	flagSeed:        "run.seed",
	flagSpeed:       "run.speed",
	flagMaxSteps:    "run.max_steps",
	flagRuns:        "run.runs",
	flagWidth:       "render.width",
	flagFrames:      "render.frames",
	flagMetricsAddr: "metrics.addr",
	flagNodes:       "path.nodes",
	flagProbability: "path.probability",
	flagSource:      "path.source",
	flagTarget:      "path.target",
}

// fastInterval and fastStepsPerTick pace runs whose frames are not drawn.
const (
	fastInterval     = time.Millisecond
	fastStepsPerTick = 1000
)

// env bundles what every subcommand needs after configuration is resolved.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	render *render.Renderer
}

// loadEnv resolves configuration for cmd, builds the logger and renderer.
// rebind overrides the configuration key of individual flags.
func loadEnv(cmd *cobra.Command, rebind map[string]string) (*env, error) {
	flags := make(map[string]*pflag.Flag, len(flagKeys))
	for name, key := range flagKeys {
		if k, ok := rebind[name]; ok {
			key = k
		}
		if f := cmd.Flags().Lookup(name); f != nil {
			flags[key] = f
		}
	}

	path, _ := cmd.Flags().GetString(flagConfig)

	cfg, err := config.Load(path, flags)
	if err != nil {
		return nil, err
	}

	if noColor, _ := cmd.Flags().GetBool(flagNoColor); noColor {
		cfg.Render.Color = false
	}

	logger, err := observability.NewLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()

	return &env{
		cfg:    cfg,
		logger: logger,
		out:    out,
		render: render.New(out, render.Options{
			Width: cfg.Render.Width,
			Color: cfg.Render.Color,
			Live:  cfg.Render.Frames && isTerminal(out),
		}),
	}, nil
}

// serveMetrics starts the Prometheus endpoint when configured and returns a
// function that stops it.
func (e *env) serveMetrics(ctx context.Context, rc *observability.RunCollector) func() {
	if e.cfg.Metrics.Addr == "" {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		if err := rc.Serve(ctx, e.cfg.Metrics.Addr, e.logger); err != nil {
			e.logger.Error("metrics endpoint failed", "error", err)
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

// writeOutputs writes the YAML report and HTML chart when their paths are set.
func writeOutputs(cmd *cobra.Command, summary any, title string, samples []report.Sample) error {
	if path, _ := cmd.Flags().GetString(flagReport); path != "" {
		if err := writeFile(path, func(w io.Writer) error { return report.WriteYAML(w, summary) }); err != nil {
			return err
		}
	}

	if path, _ := cmd.Flags().GetString(flagChart); path != "" {
		if err := writeFile(path, func(w io.Writer) error { return report.WriteChart(w, title, samples) }); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}

// newSeed returns seed, or a clock-derived one when seed is zero, so every
// run can be reproduced from its report.
func newSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}

	return time.Now().UnixNano()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagReport, "", "write a YAML run report to this file")
	cmd.Flags().String(flagChart, "", "write an HTML metrics chart to this file")
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Int(flagSize, 0, "number of elements to sort")
	cmd.Flags().Int(flagMin, 0, "smallest generated value")
	cmd.Flags().Int(flagMax, 0, "largest generated value")
	cmd.Flags().Int64(flagSeed, 0, "random seed (0 picks one from the clock)")
	cmd.Flags().Int(flagMaxSteps, 0, "abort after this many steps (0 = no cap)")
}
