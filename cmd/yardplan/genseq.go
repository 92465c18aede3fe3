package main

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/yard-beam-scheduler/internal/ingest"
)

// newGenSeqCommand supplements the dropped gen_sequence.py: given an
// existing mock_yard.csv, it samples mission_count distinct boxes as
// targets and writes mock_commands.csv. This is an offline data-prep step,
// distinct from the in-process rule-based ordering in internal/ordering.
func newGenSeqCommand(logger hclog.Logger) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "genseq",
		Short: "Sample targets from an existing mock_yard.csv into mock_commands.csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			log := logger.Named("genseq")

			cfg, err := loadConfigOrDefaults(filepath.Join(dir, "yard_config.csv"))
			if err != nil {
				return err
			}
			y, err := ingest.Yard(filepath.Join(dir, "mock_yard.csv"), cfg.MaxLevel)
			if err != nil {
				return err
			}

			var allBoxes []int
			for _, col := range y.Columns() {
				for _, box := range y.Stack(col) {
					allBoxes = append(allBoxes, int(box))
				}
			}

			rng := rand.New(rand.NewSource(seed))
			rng.Shuffle(len(allBoxes), func(i, j int) { allBoxes[i], allBoxes[j] = allBoxes[j], allBoxes[i] })

			count := cfg.MissionCount
			if count > len(allBoxes) {
				count = len(allBoxes)
			}
			chosen := allBoxes[:count]

			rows := make([][]string, len(chosen))
			for i, box := range chosen {
				rows[i] = []string{
					fmt.Sprintf("%d", i+1), // cmd_no
					"1",                    // batch_id
					"target",               // cmd_type
					fmt.Sprintf("%d", i+1), // cmd_priority
					fmt.Sprintf("%d", box), // parent_carrier_id
					"", "", "", // src_row/bay/level: resolved from the yard at solve time
					"-1", "0", "0", // dest_row/bay/level: workstation port 0
					"0", // create_time
					"1", // sku_qty
				}
			}

			header := []string{
				"cmd_no", "batch_id", "cmd_type", "cmd_priority", "parent_carrier_id",
				"src_row", "src_bay", "src_level", "dest_row", "dest_bay", "dest_level",
				"create_time", "sku_qty",
			}
			path := filepath.Join(dir, "mock_commands.csv")
			if err := writeCSVRows(path, header, rows); err != nil {
				return err
			}
			log.Info("wrote mock_commands.csv", "targets", len(rows), "path", path)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}
