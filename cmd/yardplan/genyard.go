package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/yard-beam-scheduler/internal/config"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/ingest"
)

// newGenYardCommand supplements the dropped gen_yard.py: it fills a
// max_row x max_bay x max_level yard with total_boxes boxes, respecting
// stack contiguity, and writes mock_yard.csv.
func newGenYardCommand(logger hclog.Logger) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "genyard",
		Short: "Generate a random stack-valid mock_yard.csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			log := logger.Named("genyard")

			cfg, err := loadConfigOrDefaults(filepath.Join(dir, "yard_config.csv"))
			if err != nil {
				return err
			}

			rows, err := generateYardRows(cfg, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			path := filepath.Join(dir, "mock_yard.csv")
			if err := writeCSVRows(path, []string{"container_id", "row", "bay", "level"}, rows); err != nil {
				return err
			}
			log.Info("wrote mock_yard.csv", "boxes", len(rows), "path", path)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}

// generateYardRows places cfg.TotalBoxes boxes across the yard grid,
// filling each visited column contiguously from level 0 upward. Returns an
// error if the grid has no room for total_boxes, rather than spinning
// forever looking for a free cell that can never exist.
func generateYardRows(cfg config.Config, rng *rand.Rand) ([][]string, error) {
	capacity := cfg.MaxRow * cfg.MaxBay * cfg.MaxLevel
	if cfg.TotalBoxes > capacity {
		return nil, fmt.Errorf("total_boxes %d exceeds yard capacity %d (max_row*max_bay*max_level)", cfg.TotalBoxes, capacity)
	}

	type cell struct{ row, bay int }
	heights := make(map[cell]int)

	var rows [][]string
	nextID := 1
	for placed := 0; placed < cfg.TotalBoxes; {
		r := rng.Intn(cfg.MaxRow)
		b := rng.Intn(cfg.MaxBay)
		c := cell{row: r, bay: b}
		if heights[c] >= cfg.MaxLevel {
			continue
		}
		level := heights[c]
		heights[c] = level + 1
		rows = append(rows, []string{
			fmt.Sprintf("%d", nextID),
			fmt.Sprintf("%d", r),
			fmt.Sprintf("%d", b),
			fmt.Sprintf("%d", level),
		})
		nextID++
		placed++
	}
	return rows, nil
}

func loadConfigOrDefaults(path string) (config.Config, error) {
	if _, err := os.Stat(path); err != nil {
		return config.Defaults(), nil
	}
	return ingest.Config(path)
}

func writeCSVRows(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
