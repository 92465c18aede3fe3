// Package egress writes the planner's mission log to output_missions_python.csv
// in the column layout of §6.
package egress

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/elektrokombinacija/yard-beam-scheduler/internal/errs"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/missionlog"
)

var header = []string{
	"mission_no", "agv_id", "mission_type", "container_id", "related_target_id",
	"src_pos", "dst_pos", "start_time", "end_time", "start_s", "end_s",
	"makespan", "sku_qty", "picking_duration(s)",
}

// WriteMissions writes log's entries to path, one row per mission, per the
// §6 output contract: positions render via Position.String(), and
// start_s/end_s are offsets from simStartEpoch.
func WriteMissions(path string, log missionlog.Log, simStartEpoch float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", errs.ErrIO, path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("%w: writing %s header: %v", errs.ErrIO, path, err)
	}

	for _, e := range log.Entries() {
		row := []string{
			fmt.Sprintf("%d", e.MissionNo),
			fmt.Sprintf("%d", e.AGVID),
			e.Kind.String(),
			fmt.Sprintf("%d", e.ContainerID),
			fmt.Sprintf("%d", e.RelatedTargetID),
			e.Src.String(),
			e.Dst.String(),
			fmt.Sprintf("%.6f", e.StartTime),
			fmt.Sprintf("%.6f", e.EndTime),
			fmt.Sprintf("%.6f", e.StartTime-simStartEpoch),
			fmt.Sprintf("%.6f", e.EndTime-simStartEpoch),
			fmt.Sprintf("%.6f", e.Makespan-simStartEpoch),
			fmt.Sprintf("%d", e.SKUQty),
			fmt.Sprintf("%.6f", e.PickingDuration),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("%w: writing %s row: %v", errs.ErrIO, path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: flushing %s: %v", errs.ErrIO, path, err)
	}
	return nil
}
