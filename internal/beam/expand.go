package beam

import (
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/config"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/fleet"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/missionlog"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/model"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/yard"
)

// remainingSet builds the set of targets not yet retrieved at order[qi:],
// per §4.6's destination-filtering rule ("remaining queue").
func remainingSet(order []yard.BoxID, qi int) map[yard.BoxID]bool {
	set := make(map[yard.BoxID]bool, len(order)-qi)
	for _, t := range order[qi:] {
		set[t] = true
	}
	return set
}

// candidateDestinations returns every column eligible to receive a
// relocated blocker out of srcCol, applying the hard filter of §4.6: it
// must not be srcCol, must have free height, and its current top must not
// be a not-yet-retrieved target (placing a box there would immediately
// re-bury an accessible-or-soon-accessible target, per scenario 5).
func candidateDestinations(y yard.Yard, srcCol model.Column, cfg config.Config, remaining map[yard.BoxID]bool) []model.Column {
	var out []model.Column
	for _, col := range yard.AllColumns(cfg.MaxRow, cfg.MaxBay) {
		if col == srcCol {
			continue
		}
		if !y.HasRoom(col) {
			continue
		}
		if top, ok := y.TopOf(col); ok && remaining[top] {
			continue
		}
		out = append(out, col)
	}
	return out // yard.AllColumns is already row-major deterministic
}

// destinationPenalty is the soft §4.6 scoring term layered onto a
// relocation branch's pruneScore: w_penalty_blocking if the destination
// column holds any remaining-queue target anywhere in its stack (not only
// at top — the hard filter already rules out the top-of-stack case), and
// w_penalty_lookahead if the destination is the column of the very next
// target in the queue (which would increase that target's blocker count).
func destinationPenalty(y yard.Yard, destCol model.Column, cfg config.Config, order []yard.BoxID, qi int, remaining map[yard.BoxID]bool) float64 {
	penalty := 0.0
	for _, b := range y.Stack(destCol) {
		if remaining[b] {
			penalty += cfg.WPenaltyBlocking
			break
		}
	}
	if qi+1 < len(order) {
		nextCol, _, ok := y.Locate(order[qi+1])
		if ok && nextCol == destCol {
			penalty += cfg.WPenaltyLookahead
		}
	}
	return penalty
}

// relocationBranches enumerates every (AGV, destination) pair for
// relocating the current top blocker off target's column, for a single
// parent node, applying each and returning the resulting children.
func (s *Scheduler) relocationBranches(parent *Node, target yard.BoxID, order []yard.BoxID, qi int) []*Node {
	col, _, ok := parent.Yard.Locate(target)
	if !ok {
		return nil
	}
	box, ok := parent.Yard.TopOf(col)
	if !ok || box == target {
		return nil // nothing to relocate; this parent has no more blockers
	}

	remaining := remainingSet(order, qi)
	dests := candidateDestinations(parent.Yard, col, s.cfg, remaining)
	if len(dests) == 0 {
		return nil
	}

	var children []*Node
	for _, agv := range parent.Pool.All() {
		for _, dest := range dests {
			children = append(children, s.applyRelocation(parent, box, col, dest, agv, target, order, qi, remaining))
		}
	}
	return children
}

// applyRelocation executes one Relocate(box, srcCol, dstCol) action under
// agv, per §4.6 and §4.7, and returns the resulting child node.
func (s *Scheduler) applyRelocation(parent *Node, box yard.BoxID, srcCol, dstCol model.Column, agv fleet.AGV, target yard.BoxID, order []yard.BoxID, qi int, remaining map[yard.BoxID]bool) *Node {
	srcLevel := parent.Yard.Height(srcCol) - 1
	srcPos := model.YardPos(srcCol.Row, srcCol.Bay, srcLevel)
	dstLevel := parent.Yard.Height(dstCol)
	dstPos := model.YardPos(dstCol.Row, dstCol.Bay, dstLevel)

	startTime := agv.ReadyTime + s.durations.Travel(agv.Position, srcPos)
	duration := s.durations.Travel(agv.Position, srcPos) + s.durations.Handle +
		s.durations.Travel(srcPos, dstPos) + s.durations.Handle
	endTime := startTime + duration

	newYard, popped, err := parent.Yard.RemoveTop(srcCol)
	if err != nil {
		panic("beam: relocation source column unexpectedly empty: " + err.Error())
	}
	newYard, err = newYard.PushOn(dstCol, popped)
	if err != nil {
		panic("beam: relocation destination unexpectedly full: " + err.Error())
	}

	newPool := parent.Pool.Commit(agv.ID, dstPos, endTime)

	entry := missionlog.Entry{
		AGVID:           agv.ID,
		Kind:            missionlog.KindRelocation,
		ContainerID:     popped,
		RelatedTargetID: target,
		Src:             srcPos,
		Dst:             dstPos,
		StartTime:       startTime,
		EndTime:         endTime,
	}
	newLog := parent.Log.Append(entry)

	penalty := destinationPenalty(parent.Yard, dstCol, s.cfg, order, qi, remaining)

	return &Node{
		ID:         s.nextID(),
		Yard:       newYard,
		Pool:       newPool,
		Log:        newLog,
		TargetIdx:  parent.TargetIdx,
		pruneScore: newLog.Makespan() + penalty,
	}
}

// retrievalBranches enumerates every AGV choice for retrieving target
// (now accessible), for a single parent node.
func (s *Scheduler) retrievalBranches(parent *Node, target yard.BoxID) []*Node {
	children := make([]*Node, 0, parent.Pool.Len())
	for _, agv := range parent.Pool.All() {
		children = append(children, s.applyRetrieval(parent, target, agv))
	}
	return children
}

// applyRetrieval executes Retrieve(target) under agv, per §4.6 and §4.7.
// The workstation port is assigned round-robin on mission_no, per the
// resolved Open Question (SPEC_FULL.md §9).
func (s *Scheduler) applyRetrieval(parent *Node, target yard.BoxID, agv fleet.AGV) *Node {
	col, level, ok := parent.Yard.Locate(target)
	if !ok {
		panic("beam: retrieval target not present in yard")
	}
	srcPos := model.YardPos(col.Row, col.Bay, level)

	missionNo := parent.Log.Len() + 1
	port := missionNo % s.cfg.PortCount
	dstPos := model.PortPos(port)

	skuQty := s.skuQty[target]
	picking := s.durations.Picking(skuQty)

	startTime := agv.ReadyTime + s.durations.Travel(agv.Position, srcPos)
	duration := s.durations.Travel(agv.Position, srcPos) + s.durations.Handle +
		s.durations.Travel(srcPos, dstPos) + s.durations.Handle +
		s.durations.Process + picking
	endTime := startTime + duration

	newYard, _, err := parent.Yard.RemoveTop(col)
	if err != nil {
		panic("beam: retrieval source column unexpectedly empty: " + err.Error())
	}
	newPool := parent.Pool.Commit(agv.ID, dstPos, endTime)

	entry := missionlog.Entry{
		AGVID:           agv.ID,
		Kind:            missionlog.KindTarget,
		ContainerID:     target,
		RelatedTargetID: target,
		Src:             srcPos,
		Dst:             dstPos,
		StartTime:       startTime,
		EndTime:         endTime,
		SKUQty:          skuQty,
		PickingDuration: picking,
	}
	newLog := parent.Log.Append(entry)

	return &Node{
		ID:         s.nextID(),
		Yard:       newYard,
		Pool:       newPool,
		Log:        newLog,
		TargetIdx:  parent.TargetIdx + 1,
		pruneScore: newLog.Makespan(),
	}
}
