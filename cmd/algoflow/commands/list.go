package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoflow/internal/render"
	"github.com/katalvlaran/algoflow/sorting"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available sorting algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd, nil)
			if err != nil {
				return err
			}

			n := e.cfg.Run.Size
			rows := make([]render.AlgorithmRow, 0, len(sorting.All()))
			for _, algo := range sorting.All() {
				rows = append(rows, render.AlgorithmRow{
					Name:     string(algo),
					Title:    algo.Title(),
					Estimate: algo.Estimate(n),
				})
			}

			return e.render.Print(render.AlgorithmTable(n, rows))
		},
	}

	cmd.Flags().Int(flagSize, 0, "sequence length used for the step estimate")

	return cmd
}
