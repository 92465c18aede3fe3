// Package yard implements the stacking-yard state machine: per-column
// stacks of boxes with the contiguity and height invariants of §4.2.
package yard

import (
	"fmt"

	"github.com/elektrokombinacija/yard-beam-scheduler/internal/model"
)

// BoxID is a unique box identifier.
type BoxID int

// Yard is an immutable snapshot of every column's stack. Mutation
// primitives return a new Yard that shares every untouched column slice
// with the receiver (copy-on-write, per §9); only the touched column's
// slice is reallocated.
type Yard struct {
	MaxLevel int
	columns  map[model.Column][]BoxID // bottom-to-top
}

// New creates an empty yard with the given per-column height limit.
func New(maxLevel int) Yard {
	return Yard{MaxLevel: maxLevel, columns: make(map[model.Column][]BoxID)}
}

// Place sets a column's full bottom-to-top stack. Used only during initial
// construction from mock_yard.csv; panics if called with more boxes than
// MaxLevel allows; callers validate this ahead of time via ValidateColumn.
func (y Yard) Place(col model.Column, boxes []BoxID) Yard {
	if len(boxes) > y.MaxLevel {
		panic(fmt.Sprintf("yard: Place: %d boxes exceed max level %d in column %v", len(boxes), y.MaxLevel, col))
	}
	next := cloneColumns(y.columns)
	cp := make([]BoxID, len(boxes))
	copy(cp, boxes)
	next[col] = cp
	return Yard{MaxLevel: y.MaxLevel, columns: next}
}

func cloneColumns(src map[model.Column][]BoxID) map[model.Column][]BoxID {
	dst := make(map[model.Column][]BoxID, len(src))
	for k, v := range src {
		dst[k] = v // slices are never mutated in place, only replaced wholesale
	}
	return dst
}

// Stack returns a column's bottom-to-top box list. The returned slice must
// not be mutated by the caller.
func (y Yard) Stack(col model.Column) []BoxID {
	return y.columns[col]
}

// TopOf returns the topmost box in a column, or (0, false) if empty.
func (y Yard) TopOf(col model.Column) (BoxID, bool) {
	s := y.columns[col]
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// Height returns a column's current occupied height.
func (y Yard) Height(col model.Column) int {
	return len(y.columns[col])
}

// HasRoom reports whether col has space for one more box.
func (y Yard) HasRoom(col model.Column) bool {
	return y.Height(col) < y.MaxLevel
}

// RemoveTop pops the top box off col, returning the new Yard and the
// removed box. Fails if col is empty.
func (y Yard) RemoveTop(col model.Column) (Yard, BoxID, error) {
	s := y.columns[col]
	if len(s) == 0 {
		return y, 0, fmt.Errorf("yard: RemoveTop: column %v is empty", col)
	}
	removed := s[len(s)-1]
	next := cloneColumns(y.columns)
	next[col] = s[:len(s)-1]
	return Yard{MaxLevel: y.MaxLevel, columns: next}, removed, nil
}

// PushOn appends box to the top of col, returning the new Yard. Fails if
// col is already at MaxLevel.
func (y Yard) PushOn(col model.Column, box BoxID) (Yard, error) {
	if !y.HasRoom(col) {
		return y, fmt.Errorf("yard: PushOn: column %v is at max level %d", col, y.MaxLevel)
	}
	s := y.columns[col]
	grown := make([]BoxID, len(s)+1)
	copy(grown, s)
	grown[len(s)] = box
	next := cloneColumns(y.columns)
	next[col] = grown
	return Yard{MaxLevel: y.MaxLevel, columns: next}, nil
}

// Locate finds a box's column and level. ok is false if the box is not in
// the yard (e.g. already delivered).
func (y Yard) Locate(box BoxID) (col model.Column, level int, ok bool) {
	for c, s := range y.columns {
		for i, b := range s {
			if b == box {
				return c, i, true
			}
		}
	}
	return model.Column{}, 0, false
}

// BlockersAbove returns the count of boxes stacked above box in its
// column.
func (y Yard) BlockersAbove(box BoxID) int {
	col, level, ok := y.Locate(box)
	if !ok {
		return 0
	}
	return len(y.columns[col]) - level - 1
}

// IsAccessible reports whether box is the top of its column.
func (y Yard) IsAccessible(box BoxID) bool {
	return y.BlockersAbove(box) == 0
}

// Columns returns every column currently tracked (including empty ones
// that were explicitly placed), in no particular order. Callers that need
// determinism must sort the result.
func (y Yard) Columns() []model.Column {
	out := make([]model.Column, 0, len(y.columns))
	for c := range y.columns {
		out = append(out, c)
	}
	return out
}

// AllColumns returns every (row, bay) pair in a maxRow x maxBay grid,
// regardless of whether the yard map has an entry for it (an absent entry
// behaves as an empty column). Ordered row-major for determinism.
func AllColumns(maxRow, maxBay int) []model.Column {
	out := make([]model.Column, 0, maxRow*maxBay)
	for r := 0; r < maxRow; r++ {
		for b := 0; b < maxBay; b++ {
			out = append(out, model.Column{Row: r, Bay: b})
		}
	}
	return out
}
