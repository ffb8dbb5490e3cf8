// Package results holds the fork-count series collected from the multiverse
// simulation runs and the small amount of derived data (per-run means) the
// charts are built from.
package results

import (
	"errors"
	"fmt"
)

// Validation sentinels. Callers can match these with errors.Is after the
// renderer rejects a malformed series.
var (
	ErrEmptyDataset   = errors.New("dataset has no points")
	ErrLengthMismatch = errors.New("x and y value counts differ")
)

// Dataset is an ordered series of (x, y) points from one simulation run.
// X is the node count (or the confirmation threshold for the aggregate
// series), Y the observed fork count. Built-in datasets are literals and are
// never mutated after construction.
type Dataset struct {
	// Name is a short stable identifier, e.g. "threshold-18".
	Name string
	// Threshold is the confirmation threshold the run was executed with.
	// Zero for derived series that span all thresholds.
	Threshold float64
	XValues   []float64
	YValues   []float64
}

// Len returns the number of points in the series.
func (d Dataset) Len() int { return len(d.XValues) }

// Validate reports whether the series is plottable: at least one point and
// matching x/y counts.
func (d Dataset) Validate() error {
	if len(d.XValues) == 0 && len(d.YValues) == 0 {
		return fmt.Errorf("dataset %q: %w", d.Name, ErrEmptyDataset)
	}
	if len(d.XValues) != len(d.YValues) {
		return fmt.Errorf("dataset %q: %w (x=%d y=%d)", d.Name, ErrLengthMismatch, len(d.XValues), len(d.YValues))
	}
	return nil
}

// Mean returns the arithmetic mean of the y-values.
func (d Dataset) Mean() (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return Mean(d.YValues)
}
