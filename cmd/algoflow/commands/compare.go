package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoflow/driver"
	"github.com/katalvlaran/algoflow/internal/render"
	"github.com/katalvlaran/algoflow/internal/report"
	"github.com/katalvlaran/algoflow/sequence"
	"github.com/katalvlaran/algoflow/sorting"
)

// NewCompareCommand creates the compare command.
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [algorithm...]",
		Short: "Run several algorithms on the same sequence and tabulate their metrics",
		Long: `Generate one random sequence, run each selected algorithm to completion on
its own copy without animation, and print comparisons, swaps and steps side
by side. With no arguments every algorithm is compared.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, nil)
			if err != nil {
				return err
			}

			algos, err := parseAlgorithms(args)
			if err != nil {
				return err
			}

			return runCompare(cmd, e, algos)
		},
	}

	addRunFlags(cmd)
	cmd.Flags().String(flagReport, "", "write a YAML comparison report to this file")

	return cmd
}

func parseAlgorithms(args []string) ([]sorting.Algorithm, error) {
	if len(args) == 0 {
		return sorting.All(), nil
	}

	out := make([]sorting.Algorithm, 0, len(args))
	for _, name := range args {
		algo, err := sorting.Parse(name)
		if err != nil {
			return nil, err
		}
		out = append(out, algo)
	}

	return out, nil
}

func runCompare(cmd *cobra.Command, e *env, algos []sorting.Algorithm) error {
	cfg := e.cfg
	seed := newSeed(cfg.Run.Seed)

	input, err := sequence.Random(cfg.Run.Size,
		sequence.WithRange(cfg.Run.Min, cfg.Run.Max),
		sequence.WithSeed(seed),
	)
	if err != nil {
		return err
	}

	rows := make([]render.CompareRow, 0, len(algos))
	summaries := make([]report.Summary, 0, len(algos))

	for _, algo := range algos {
		s, err := sorting.New(algo, []int(input))
		if err != nil {
			return err
		}

		start := time.Now()
		if _, err := driver.Drain(s, cfg.Run.MaxSteps); err != nil {
			return fmt.Errorf("%s: %w", algo, err)
		}

		m := s.Metrics()
		e.logger.Debug("algorithm drained", "algorithm", algo, "steps", m.StepsTaken)

		rows = append(rows, render.CompareRow{Name: algo.Title(), Metrics: m})
		summaries = append(summaries, report.Summary{
			Kind:      "compare",
			Algorithm: string(algo),
			Title:     algo.Title(),
			Size:      cfg.Run.Size,
			Seed:      seed,
			Completed: s.Completed(),
			Elapsed:   time.Since(start),
			Metrics:   m,
		})
	}

	if err := e.render.Print(render.CompareTable(fmt.Sprintf("n=%d, seed=%d", cfg.Run.Size, seed), rows)); err != nil {
		return err
	}

	return writeOutputs(cmd, summaries, "", nil)
}
