// Command yardplan runs the yard retrieval beam-search planner: it reads
// yard_config.csv, mock_yard.csv, and mock_commands.csv from the working
// directory (or --dir), computes a retrieval plan, and writes
// output_missions_python.csv.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "yardplan",
		Level: hclog.Info,
	})

	root := newRootCommand(logger)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(logger hclog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yardplan",
		Short: "Plan AGV fleet dispatch for yard container retrieval",
	}

	cmd.PersistentFlags().String("dir", ".", "working directory holding the input/output CSVs")
	cmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	cmd.AddCommand(newSolveCommand(logger))
	cmd.AddCommand(newGenYardCommand(logger))
	cmd.AddCommand(newGenSeqCommand(logger))
	cmd.AddCommand(newBenchCommand(logger))

	return cmd
}
