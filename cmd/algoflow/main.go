// Package main provides the entry point for the algoflow CLI.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/algoflow/cmd/algoflow/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
