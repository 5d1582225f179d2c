// Package segment declares the Label, RegionStats, and Producer types plus
// sentinel errors for the segment subpackage of
// github.com/katalvlaran/lvlseg.
package segment

import (
	"errors"

	"github.com/katalvlaran/lvlseg/grid"
)

// Sentinel errors for labeled-result operations.
var (
	// ErrCoverage indicates the dense label map does not cover every
	// coordinate of the shape exactly once.
	ErrCoverage = errors.New("segment: label map must cover every coordinate exactly once")

	// ErrValueCount indicates the sample values do not match the
	// coordinate count.
	ErrValueCount = errors.New("segment: values length must equal coordinate count")

	// ErrBadLabel indicates a non-positive label in the label map.
	ErrBadLabel = errors.New("segment: labels must be positive")

	// ErrUnknownLabel indicates an operation referenced a label that is
	// absent from the current label set.
	ErrUnknownLabel = errors.New("segment: label not present in result")

	// ErrInconsistent indicates a result whose statistics disagree with its
	// label map (partition invariant violation).
	ErrInconsistent = errors.New("segment: result violates partition invariants")

	// ErrBadPlan indicates a reassignment plan that maps a label to itself
	// or contains a cycle.
	ErrBadPlan = errors.New("segment: invalid reassignment plan")
)

// Label identifies one region. Labels are positive; zero is never a valid
// region id.
type Label int

// RegionStats summarizes one region of a Result.
//
// Mean is the exact running mean of all member samples' values; Count is
// the number of coordinates carrying the label; StdDev is the sample
// standard deviation of member values (0 for single-sample regions).
type RegionStats struct {
	Label  Label
	Count  int
	Mean   float64
	StdDev float64
}

// Producer is the capability contract every segmentation algorithm
// satisfies: turn a grid of sample values into a Labeled Result honoring
// the package invariants. The merge/prune core never inspects how the
// initial labeling was produced.
type Producer interface {
	Produce(values []float64, shape grid.Shape) (*Result, error)
}
