package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/yard-beam-scheduler/internal/beam"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/egress"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/fleet"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/ingest"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/missionlog"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/model"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/ordering"
)

func newSolveCommand(logger hclog.Logger) *cobra.Command {
	var beamWidthOverride int
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Read the input CSVs and write output_missions_python.csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logger.SetLevel(hclog.Debug)
			}

			runID := uuid.NewString()
			log := logger.Named("solve").With("run_id", runID)

			ctx := context.Background()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			log.Info("solving", "dir", dir)
			missions, makespan, err := runSolve(ctx, dir, beamWidthOverride, log)
			if err != nil {
				return err
			}
			log.Info("solve complete", "missions", missions, "makespan", makespan)
			return nil
		},
	}

	cmd.Flags().IntVar(&beamWidthOverride, "beam-width", 0, "override configured beam_width (0 = use config)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "wall-clock budget (0 = unbounded)")
	return cmd
}

// runSolve is the shared driver body, also used by newBenchCommand with
// different beam widths. It returns the mission count and the final
// makespan in seconds (§8 "makespan definition").
func runSolve(ctx context.Context, dir string, beamWidthOverride int, log hclog.Logger) (int, float64, error) {
	cfg, err := ingest.Config(filepath.Join(dir, "yard_config.csv"))
	if err != nil {
		return 0, 0, err
	}
	if beamWidthOverride > 0 {
		cfg.BeamWidth = beamWidthOverride
	}

	y, err := ingest.Yard(filepath.Join(dir, "mock_yard.csv"), cfg.MaxLevel)
	if err != nil {
		return 0, 0, err
	}

	targets, skuQty, err := ingest.Commands(filepath.Join(dir, "mock_commands.csv"))
	if err != nil {
		return 0, 0, err
	}
	if err := ingest.ValidateTargetsExist(y, targets); err != nil {
		return 0, 0, err
	}

	log.Debug("loaded inputs", "targets", len(targets), "beam_width", cfg.BeamWidth)

	var finalLog missionlog.Log
	if len(targets) == 0 {
		finalLog = missionlog.Empty
	} else {
		order := ordering.Order(cfg, y, targets)

		staging := model.PortPos(0)
		pool := fleet.NewPool(cfg.AGVCount, staging, cfg.SimStartEpoch)

		sched := beam.New(cfg, skuQty, log)
		finalLog, err = sched.Solve(ctx, y, pool, order)
		if err != nil {
			return 0, 0, fmt.Errorf("solving: %w", err)
		}
	}

	outPath := filepath.Join(dir, "output_missions_python.csv")
	if err := egress.WriteMissions(outPath, finalLog, cfg.SimStartEpoch); err != nil {
		return 0, 0, err
	}

	makespan := 0.0
	if finalLog.Len() > 0 {
		makespan = finalLog.Makespan() - cfg.SimStartEpoch
	}
	return finalLog.Len(), makespan, nil
}
