// Package missionlog implements the append-only mission record of §3.
package missionlog

import (
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/fleet"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/model"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/yard"
)

// Kind distinguishes a relocation mission from a target retrieval.
type Kind int

const (
	KindRelocation Kind = iota
	KindTarget
)

func (k Kind) String() string {
	if k == KindTarget {
		return "target"
	}
	return "relocation"
}

// Entry is one executed mission.
type Entry struct {
	MissionNo       int
	AGVID           fleet.AGVID
	Kind            Kind
	ContainerID     yard.BoxID
	RelatedTargetID yard.BoxID // the target this mission serves, for both kinds
	Src, Dst        model.Position
	StartTime       float64 // absolute epoch seconds
	EndTime         float64 // absolute epoch seconds
	Makespan        float64 // max(end_time) across the log up to and including this entry
	SKUQty          int     // 0 for relocations
	PickingDuration float64 // 0 unless Kind == KindTarget
}

// Log is an immutable, append-only sequence of entries. Append returns a
// new Log backed by a fresh copy of the receiver's entries, per the
// copy-on-write discipline of §9.
type Log struct {
	entries []Entry
}

// Empty is a Log with no entries.
var Empty = Log{}

// Entries returns every logged entry, in mission_no order. The returned
// slice must not be mutated.
func (l Log) Entries() []Entry {
	return l.entries
}

// Len returns the number of entries.
func (l Log) Len() int {
	return len(l.entries)
}

// Makespan returns the current makespan (0 for an empty log).
func (l Log) Makespan() float64 {
	if len(l.entries) == 0 {
		return 0
	}
	return l.entries[len(l.entries)-1].Makespan
}

// Append returns a new Log with entry appended. entry.MissionNo and
// entry.Makespan are assigned here: MissionNo is len(l.entries)+1 (strictly
// increasing, per §8), Makespan is max(current makespan, entry.EndTime).
func (l Log) Append(entry Entry) Log {
	entry.MissionNo = len(l.entries) + 1
	entry.Makespan = maxFloat(l.Makespan(), entry.EndTime)

	grown := make([]Entry, len(l.entries)+1)
	copy(grown, l.entries)
	grown[len(l.entries)] = entry
	return Log{entries: grown}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
