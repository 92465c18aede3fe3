package yard

import (
	"testing"

	"github.com/elektrokombinacija/yard-beam-scheduler/internal/model"
)

func col(r, b int) model.Column { return model.Column{Row: r, Bay: b} }

func TestPlaceAndStackOrder(t *testing.T) {
	y := New(3)
	y = y.Place(col(0, 0), []BoxID{1, 2})

	if top, ok := y.TopOf(col(0, 0)); !ok || top != 2 {
		t.Errorf("TopOf() = (%d, %v), want (2, true)", top, ok)
	}
	if h := y.Height(col(0, 0)); h != 2 {
		t.Errorf("Height() = %d, want 2", h)
	}
}

func TestRemoveTopThenPushOn(t *testing.T) {
	y := New(2)
	y = y.Place(col(0, 0), []BoxID{1, 2})
	y = y.Place(col(0, 1), []BoxID{})

	next, removed, err := y.RemoveTop(col(0, 0))
	if err != nil {
		t.Fatalf("RemoveTop() error = %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}

	next, err = next.PushOn(col(0, 1), removed)
	if err != nil {
		t.Fatalf("PushOn() error = %v", err)
	}

	if top, _ := next.TopOf(col(0, 1)); top != 2 {
		t.Errorf("TopOf(0,1) = %d, want 2", top)
	}
	// Original yard must be unmodified (copy-on-write).
	if top, _ := y.TopOf(col(0, 0)); top != 2 {
		t.Errorf("original yard mutated: TopOf(0,0) = %d, want 2", top)
	}
}

func TestPushOnFailsAtMaxLevel(t *testing.T) {
	y := New(1)
	y = y.Place(col(0, 0), []BoxID{1})
	if _, err := y.PushOn(col(0, 0), 2); err == nil {
		t.Error("expected error pushing onto a full column")
	}
}

func TestRemoveTopFailsOnEmpty(t *testing.T) {
	y := New(1)
	if _, _, err := y.RemoveTop(col(0, 0)); err == nil {
		t.Error("expected error removing from an empty column")
	}
}

func TestBlockersAboveAndAccessible(t *testing.T) {
	y := New(3)
	y = y.Place(col(0, 0), []BoxID{10, 11, 12})

	if n := y.BlockersAbove(10); n != 2 {
		t.Errorf("BlockersAbove(10) = %d, want 2", n)
	}
	if y.IsAccessible(10) {
		t.Error("box 10 should not be accessible")
	}
	if !y.IsAccessible(12) {
		t.Error("box 12 (top) should be accessible")
	}
}

func TestLocateMissingBox(t *testing.T) {
	y := New(1)
	if _, _, ok := y.Locate(999); ok {
		t.Error("Locate() found a box that was never placed")
	}
}

func TestAllColumnsRowMajor(t *testing.T) {
	cols := AllColumns(2, 2)
	want := []model.Column{col(0, 0), col(0, 1), col(1, 0), col(1, 1)}
	if len(cols) != len(want) {
		t.Fatalf("AllColumns() len = %d, want %d", len(cols), len(want))
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("AllColumns()[%d] = %v, want %v", i, cols[i], want[i])
		}
	}
}

func TestValidateColumnDetectsGapsAndDuplicates(t *testing.T) {
	if err := ValidateColumn(col(0, 0), []int{0, 1, 2}, 5); err != nil {
		t.Errorf("expected valid contiguous column, got %v", err)
	}
	if err := ValidateColumn(col(0, 0), []int{0, 2}, 5); err == nil {
		t.Error("expected gap error")
	}
	if err := ValidateColumn(col(0, 0), []int{0, 0, 1}, 5); err == nil {
		t.Error("expected duplicate-level error")
	}
	if err := ValidateColumn(col(0, 0), []int{0, 1, 2, 3}, 2); err == nil {
		t.Error("expected max_level exceeded error")
	}
}
