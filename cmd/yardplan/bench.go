package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// newBenchCommand supplements the dropped benchmark driver: it runs solve
// at several beam widths against the same input and reports the resulting
// makespans, directly exercising the monotonicity-in-K law.
func newBenchCommand(logger hclog.Logger) *cobra.Command {
	var widthsFlag string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run solve at several beam widths and report makespans",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			log := logger.Named("bench")

			widths, err := parseWidths(widthsFlag)
			if err != nil {
				return err
			}

			fmt.Printf("%-12s %-10s %-12s\n", "beam_width", "missions", "makespan")
			for _, w := range widths {
				ctx := context.Background()
				missions, makespan, err := runSolve(ctx, dir, w, log.With("beam_width", w))
				if err != nil {
					return fmt.Errorf("beam_width=%d: %w", w, err)
				}
				fmt.Printf("%-12d %-10d %-12.3f\n", w, missions, makespan)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&widthsFlag, "widths", "1,10,100", "comma-separated beam widths to benchmark")
	return cmd
}

func parseWidths(raw string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid beam width %q: %w", part, err)
		}
		out = append(out, n)
	}
	return out, nil
}
