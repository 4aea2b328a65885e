package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, set with -ldflags "-X ...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand assembles the algoflow command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "algoflow",
		Short: "Step through classic algorithms in the terminal",
		Long: `algoflow runs sorting and shortest-path algorithms one small unit of work
at a time and draws every step.

Commands:
  sort      Animate a sorting algorithm
  compare   Tabulate metrics of several algorithms on one sequence
  path      Animate Dijkstra's search on a random graph
  list      List the available algorithms`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String(flagConfig, "", "config file (default ./algoflow.yaml)")
	root.PersistentFlags().String(flagLogLevel, "", "log level: debug, info, warn, error")
	root.PersistentFlags().String(flagLogFormat, "", "log format: text or json")
	root.PersistentFlags().Bool(flagNoColor, false, "disable colored output")

	root.AddCommand(
		NewSortCommand(),
		NewCompareCommand(),
		NewPathCommand(),
		NewListCommand(),
		newVersionCommand(),
	)

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "algoflow %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}
