// Package errs defines the error taxonomy of §7 as sentinel values that
// callers match with errors.Is, after wrapping with fmt.Errorf("...: %w").
package errs

import "errors"

var (
	// ErrConfigInvalid: missing/non-positive dimensions, beam_width <= 0,
	// agv_count <= 0.
	ErrConfigInvalid = errors.New("config invalid")

	// ErrDataInconsistent: a box above a gap, duplicates, column over
	// max_level, a target id not present in the yard.
	ErrDataInconsistent = errors.New("data inconsistent")

	// ErrNoFeasibleRelocation: no destination column has room for a
	// required blocker.
	ErrNoFeasibleRelocation = errors.New("no feasible relocation")

	// ErrTimeout: wall-clock budget exceeded before any plan completed.
	ErrTimeout = errors.New("scheduler timeout")

	// ErrIO: a file is missing, unreadable, or unwritable.
	ErrIO = errors.New("io error")
)
