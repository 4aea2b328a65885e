package commands

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoflow/driver"
	"github.com/katalvlaran/algoflow/internal/observability"
	"github.com/katalvlaran/algoflow/internal/report"
	"github.com/katalvlaran/algoflow/pathfind"
)

const pathLabel = "dijkstra"

// NewPathCommand creates the path command.
func NewPathCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Animate Dijkstra's shortest-path search on a random graph",
		Long: `Generate a random undirected weighted graph and search it from the source
to the target node one finalized node per step, printing the distance table
and the best-known route after every tick.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd, map[string]string{flagSeed: "path.seed"})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runPath(ctx, cmd, e)
		},
	}

	cmd.Flags().Int(flagNodes, 0, "number of nodes")
	cmd.Flags().Float64(flagProbability, 0, "probability of an edge between any two nodes")
	cmd.Flags().Int(flagSource, 0, "start node")
	cmd.Flags().Int(flagTarget, -1, "goal node (-1 = last node)")
	cmd.Flags().Int64(flagSeed, 0, "random seed (0 picks one from the clock)")
	cmd.Flags().Int(flagSpeed, 0, "animation speed 1..100")
	cmd.Flags().Bool(flagFrames, true, "draw a frame per tick")
	cmd.Flags().String(flagMetricsAddr, "", "serve Prometheus metrics on this address")
	addReportFlags(cmd)

	return cmd
}

func runPath(ctx context.Context, cmd *cobra.Command, e *env) error {
	cfg := e.cfg

	seed := newSeed(cfg.Path.Seed)

	g, err := pathfind.Random(cfg.Path.Nodes, cfg.Path.Probability, pathfind.WithSeed(seed))
	if err != nil {
		return err
	}

	d, err := pathfind.NewDijkstra(g, cfg.Path.Source, cfg.Path.Target)
	if err != nil {
		return err
	}

	collector := observability.NewRunCollector()
	stopMetrics := e.serveMetrics(ctx, collector)
	defer stopMetrics()

	trace := report.NewTrace()

	opts := []driver.Option{
		driver.WithSpeed(cfg.Run.Speed),
		driver.WithLabel(pathLabel),
		driver.WithLogger(e.logger),
		driver.WithOnTick(func(snap driver.Snapshot) error {
			collector.Observe(pathLabel, snap)
			if err := trace.Observe(snap); err != nil {
				return err
			}
			if !cfg.Render.Frames {
				return nil
			}

			return e.render.Print(e.render.GraphFrame(g, d))
		}),
		driver.WithOnComplete(func(snap driver.Snapshot) {
			collector.Complete(pathLabel, snap)
		}),
	}
	if !cfg.Render.Frames {
		opts = append(opts, driver.WithInterval(fastInterval), driver.WithStepsPerTick(fastStepsPerTick))
	}

	run, err := driver.New(d, opts...)
	if err != nil {
		return err
	}

	start := time.Now()
	runErr := run.Run(ctx)

	if !cfg.Render.Frames {
		if err := e.render.Print(e.render.GraphFrame(g, d)); err != nil {
			return err
		}
	}

	summary := report.Summary{
		Kind:      "path",
		Algorithm: pathLabel,
		Title:     "Dijkstra",
		Size:      g.Len(),
		Seed:      seed,
		Completed: d.Completed(),
		Elapsed:   time.Since(start).Round(time.Millisecond),
		Metrics:   d.Metrics(),
		Path:      d.Path(),
		Samples:   trace.Samples(),
	}
	if d.Reached() {
		summary.Cost, _ = d.Distance(d.Target())
	}

	if err := writeOutputs(cmd, summary, "Dijkstra", trace.Samples()); err != nil {
		return err
	}

	if errors.Is(runErr, context.Canceled) {
		e.logger.Info("interrupted")
		return nil
	}

	return runErr
}
