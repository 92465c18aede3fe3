package yard

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/elektrokombinacija/yard-beam-scheduler/internal/model"
)

// ValidateColumn checks the contiguity and height invariants of §4.2 for a
// single column's raw (unsorted) box/level pairs, returning every
// violation found rather than stopping at the first.
func ValidateColumn(col model.Column, levels []int, maxLevel int) error {
	var errs *multierror.Error

	seen := make(map[int]int) // level -> count
	for _, l := range levels {
		seen[l]++
		if l < 0 {
			errs = multierror.Append(errs, fmt.Errorf("column %s: negative level %d", col, l))
		}
	}
	for l, count := range seen {
		if count > 1 {
			errs = multierror.Append(errs, fmt.Errorf("column %s: level %d occupied by %d boxes", col, l, count))
		}
	}
	if len(levels) > maxLevel {
		errs = multierror.Append(errs, fmt.Errorf("column %s: height %d exceeds max_level %d", col, len(levels), maxLevel))
	}
	for l := 0; l < len(levels); l++ {
		if seen[l] == 0 {
			errs = multierror.Append(errs, fmt.Errorf("column %s: gap at level %d (box above an empty level)", col, l))
		}
	}

	return errs.ErrorOrNil()
}
