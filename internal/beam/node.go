// Package beam implements the beam-search scheduler of §4.5–4.8: given a
// fixed target order, it expands partial schedules by choosing, for each
// action, which AGV executes it and (for relocations) where the blocking
// box goes, keeping only the top-K partial plans between expansions.
package beam

import (
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/fleet"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/missionlog"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/yard"
)

// Node is a full planning state (§3 "Scheduler state"): immutable after
// creation, produced by applying exactly one atomic action to a parent.
type Node struct {
	ID        int64
	Yard      yard.Yard
	Pool      fleet.Pool
	Log       missionlog.Log
	TargetIdx int // index of the next target in the fixed order

	// pruneScore is the cumulative branch cost used for intra-phase
	// pruning comparisons (§4.6): the real makespan after this action,
	// plus any destination-penalty weighting for relocation branches.
	// Final winner selection (§4.6 "minimum final makespan") uses
	// Log.Makespan() directly, never pruneScore.
	pruneScore float64
}

// Cost is the true cumulative makespan carried by this node.
func (n *Node) Cost() float64 {
	return n.Log.Makespan()
}
