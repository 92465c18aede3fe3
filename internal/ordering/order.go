// Package ordering implements the rule-based target-ordering heuristic of
// §4.4: a serialized retrieval order over a chosen target set that
// respects in-column precedence.
package ordering

import (
	"sort"

	"github.com/elektrokombinacija/yard-beam-scheduler/internal/config"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/model"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/yard"
)

// liveCandidate is one column's currently-reachable target: the shallowest
// remaining target in that column's stack of targets, processed top-down.
type liveCandidate struct {
	col    model.Column
	box    yard.BoxID
	level  int
	remain []yard.BoxID // remaining targets in this column, top-down, not yet a candidate
}

// score computes the §4.4 score for a candidate target.
func score(cfg config.Config, y yard.Yard, c liveCandidate, targetSet map[yard.BoxID]bool) float64 {
	blockersAbove := y.Height(c.col) - c.level - 1
	othersBelow := countTargetsBelow(y, c.col, c.level, targetSet)
	distance := model.DistanceToPort(c.col)
	return cfg.WB*float64(blockersAbove) - cfg.WU*float64(othersBelow) + cfg.WD*float64(distance)
}

// countTargetsBelow returns how many of targetSet sit below level in col.
func countTargetsBelow(y yard.Yard, col model.Column, level int, targetSet map[yard.BoxID]bool) int {
	count := 0
	for i, b := range y.Stack(col) {
		if i < level && targetSet[b] {
			count++
		}
	}
	return count
}

// Order produces the retrieval sequence for targets, per §4.4: a greedy
// lowest-score rule across columns, top-down within each column.
func Order(cfg config.Config, y yard.Yard, targets []yard.BoxID) []yard.BoxID {
	if len(targets) == 0 {
		return nil
	}

	targetSet := make(map[yard.BoxID]bool, len(targets))
	for _, t := range targets {
		targetSet[t] = true
	}

	// Group targets by column, sorted top-down (highest level first).
	byColumn := make(map[model.Column][]yard.BoxID)
	for _, t := range targets {
		col, _, ok := y.Locate(t)
		if !ok {
			continue
		}
		byColumn[col] = append(byColumn[col], t)
	}
	for col, boxes := range byColumn {
		sort.Slice(boxes, func(i, j int) bool {
			_, li, _ := y.Locate(boxes[i])
			_, lj, _ := y.Locate(boxes[j])
			return li > lj // top-down: highest level first
		})
		byColumn[col] = boxes
	}

	// One live candidate per column: the topmost remaining target.
	candidates := make(map[model.Column]liveCandidate)
	for col, boxes := range byColumn {
		if len(boxes) == 0 {
			continue
		}
		_, level, _ := y.Locate(boxes[0])
		candidates[col] = liveCandidate{col: col, box: boxes[0], level: level, remain: boxes[1:]}
	}

	var out []yard.BoxID
	for len(candidates) > 0 {
		cols := make([]model.Column, 0, len(candidates))
		for c := range candidates {
			cols = append(cols, c)
		}
		// Deterministic iteration order before min-score comparison.
		sort.Slice(cols, func(i, j int) bool {
			if cols[i].Row != cols[j].Row {
				return cols[i].Row < cols[j].Row
			}
			return cols[i].Bay < cols[j].Bay
		})

		bestCol := cols[0]
		bestScore := score(cfg, y, candidates[bestCol], targetSet)
		for _, c := range cols[1:] {
			s := score(cfg, y, candidates[c], targetSet)
			if s < bestScore {
				bestScore = s
				bestCol = c
			}
		}

		chosen := candidates[bestCol]
		out = append(out, chosen.box)

		if len(chosen.remain) == 0 {
			delete(candidates, bestCol)
			continue
		}
		nextBox := chosen.remain[0]
		_, nextLevel, _ := y.Locate(nextBox)
		candidates[bestCol] = liveCandidate{
			col:    bestCol,
			box:    nextBox,
			level:  nextLevel,
			remain: chosen.remain[1:],
		}
	}

	return out
}
