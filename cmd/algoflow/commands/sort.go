package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoflow/driver"
	"github.com/katalvlaran/algoflow/internal/observability"
	"github.com/katalvlaran/algoflow/internal/render"
	"github.com/katalvlaran/algoflow/internal/report"
	"github.com/katalvlaran/algoflow/sequence"
	"github.com/katalvlaran/algoflow/sorting"
	"github.com/katalvlaran/algoflow/stepper"
)

// NewSortCommand creates the sort command.
func NewSortCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [algorithm]",
		Short: "Animate a sorting algorithm over a random sequence",
		Long: `Generate a random sequence and sort it one step at a time, drawing a bar
chart per frame with the element under examination highlighted and the
finalized region marked as sorted.

Algorithms: bubble, merge, quick, heap, insertion, selection.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := cmd.Flags().Set(flagAlgorithm, args[0]); err != nil {
					return err
				}
			}

			e, err := loadEnv(cmd, nil)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runSort(ctx, cmd, e)
		},
	}

	cmd.Flags().StringP(flagAlgorithm, "a", "", "algorithm to run")
	cmd.Flags().Int(flagSpeed, 0, "animation speed 1..100")
	cmd.Flags().Int(flagRuns, 0, "number of consecutive runs, each on a fresh sequence")
	cmd.Flags().Int(flagWidth, 0, "width of the tallest bar in cells")
	cmd.Flags().Bool(flagFrames, true, "draw a frame per tick")
	cmd.Flags().String(flagMetricsAddr, "", "serve Prometheus metrics on this address")
	addRunFlags(cmd)
	addReportFlags(cmd)

	return cmd
}

func runSort(ctx context.Context, cmd *cobra.Command, e *env) error {
	cfg := e.cfg
	algo := sorting.Algorithm(cfg.Run.Algorithm)
	title := algo.Title()

	collector := observability.NewRunCollector()
	stopMetrics := e.serveMetrics(ctx, collector)
	defer stopMetrics()

	trace := report.NewTrace()

	// current is replaced between runs; each run finishes before the next
	// one is started, so the tick hook never sees a stale stepper.
	var current stepper.SortStepper[int]

	opts := []driver.Option{
		driver.WithSpeed(cfg.Run.Speed),
		driver.WithMaxSteps(cfg.Run.MaxSteps),
		driver.WithLabel(string(algo)),
		driver.WithLogger(e.logger),
		driver.WithOnTick(func(snap driver.Snapshot) error {
			collector.Observe(string(algo), snap)
			if err := trace.Observe(snap); err != nil {
				return err
			}
			if !cfg.Render.Frames {
				return nil
			}

			return e.render.Frame(title, render.Floats(current.Values()), snap)
		}),
		driver.WithOnComplete(func(snap driver.Snapshot) {
			collector.Complete(string(algo), snap)
		}),
	}
	if !cfg.Render.Frames {
		opts = append(opts, driver.WithInterval(fastInterval), driver.WithStepsPerTick(fastStepsPerTick))
	}

	session := driver.NewSession(opts...)
	defer session.Stop()

	summaries := make([]report.Summary, 0, cfg.Run.Runs)

	var runErr error

	for run := range cfg.Run.Runs {
		seed := newSeed(cfg.Run.Seed)
		if cfg.Run.Seed != 0 {
			seed += int64(run)
		}

		input, err := sequence.Random(cfg.Run.Size,
			sequence.WithRange(cfg.Run.Min, cfg.Run.Max),
			sequence.WithSeed(seed),
		)
		if err != nil {
			return err
		}

		current, err = sorting.New(algo, []int(input))
		if err != nil {
			return err
		}

		trace.Reset()
		start := time.Now()

		if err := session.Start(ctx, current); err != nil {
			return err
		}

		runErr = session.Wait()
		snap := session.Last()

		e.logger.Debug("run finished", "run", run+1, "generation", session.Generation(), "seed", seed)

		if err := e.render.Print(render.MetricsTable(fmt.Sprintf("%s (run %d, n=%d)", title, run+1, cfg.Run.Size), snap.Metrics)); err != nil {
			return err
		}

		summaries = append(summaries, report.Summary{
			Kind:      "sort",
			Algorithm: string(algo),
			Title:     title,
			Size:      cfg.Run.Size,
			Seed:      seed,
			Completed: snap.Completed,
			Elapsed:   time.Since(start).Round(time.Millisecond),
			Metrics:   snap.Metrics,
			Input:     input,
			Output:    current.Values(),
			Samples:   trace.Samples(),
		})

		if runErr != nil {
			break
		}
	}

	if err := writeOutputs(cmd, summaries, title, trace.Samples()); err != nil {
		return err
	}

	if errors.Is(runErr, context.Canceled) {
		e.logger.Info("interrupted")
		return nil
	}

	return runErr
}
