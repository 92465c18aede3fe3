// Package fleet tracks the per-AGV position and availability state used by
// the beam-search scheduler (§4.3).
package fleet

import (
	"sort"

	"github.com/elektrokombinacija/yard-beam-scheduler/internal/model"
)

// AGVID identifies a single automated guided vehicle.
type AGVID int

// AGV is one vehicle's current state.
type AGV struct {
	ID        AGVID
	Position  model.Position
	ReadyTime float64 // absolute epoch seconds
}

// Pool is an immutable snapshot of the fleet. Pools are never mutated in
// place; Commit returns a new Pool built on a fresh copy of the AGV slice,
// following the copy-on-write discipline of §9.
type Pool struct {
	agvs []AGV // sorted by ID, stable identity
}

// NewPool creates a fleet of n AGVs, all starting at the same position with
// ReadyTime t0.
func NewPool(n int, start model.Position, t0 float64) Pool {
	agvs := make([]AGV, n)
	for i := range agvs {
		agvs[i] = AGV{ID: AGVID(i), Position: start, ReadyTime: t0}
	}
	return Pool{agvs: agvs}
}

// Get returns the AGV state for id.
func (p Pool) Get(id AGVID) AGV {
	return p.agvs[int(id)]
}

// Len returns the fleet size.
func (p Pool) Len() int {
	return len(p.agvs)
}

// All returns every AGV, ordered by ID ascending.
func (p Pool) All() []AGV {
	out := make([]AGV, len(p.agvs))
	copy(out, p.agvs)
	return out
}

// PickAGVs returns the k AGVs ordered by ReadyTime ascending, ties broken by
// AGVID ascending (§4.3). k is clamped to the fleet size.
func (p Pool) PickAGVs(k int) []AGV {
	out := p.All()
	sort.Slice(out, func(i, j int) bool {
		if out[i].ReadyTime != out[j].ReadyTime {
			return out[i].ReadyTime < out[j].ReadyTime
		}
		return out[i].ID < out[j].ID
	})
	if k < len(out) {
		out = out[:k]
	}
	return out
}

// Commit returns a new Pool with agv id's position and ready time updated.
// The receiver Pool is left untouched.
func (p Pool) Commit(id AGVID, newPosition model.Position, newReadyTime float64) Pool {
	next := make([]AGV, len(p.agvs))
	copy(next, p.agvs)
	next[int(id)] = AGV{ID: id, Position: newPosition, ReadyTime: newReadyTime}
	return Pool{agvs: next}
}

// ReadyTimeSum is used as a beam-pruning tie-breaker (§4.6).
func (p Pool) ReadyTimeSum() float64 {
	sum := 0.0
	for _, a := range p.agvs {
		sum += a.ReadyTime
	}
	return sum
}
