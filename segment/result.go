package segment

import (
	"sort"

	"github.com/carbocation/runningvariance"

	"github.com/katalvlaran/lvlseg/grid"
)

// Result is a Labeled Result: a dense label assignment over a grid plus
// per-label statistics. It is owned by a single writer at a time; see the
// package documentation for the partition invariants it maintains.
type Result struct {
	shape  grid.Shape
	labels []Label
	stats  map[Label]RegionStats
}

// New builds a Result from a dense row-major label map and the sample
// values it labels, computing per-region statistics with a running
// accumulator (one pass, exact running means).
//
// Returns ErrBadShape for negative extents, ErrCoverage when the label map
// does not cover the shape, ErrValueCount when values disagree with the
// coordinate count, and ErrBadLabel for non-positive labels.
// A zero-size shape yields a valid empty Result.
// Complexity: O(P) time and memory, P = coordinate count.
func New(shape grid.Shape, labels []Label, values []float64) (*Result, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	total := shape.Size()
	if len(labels) != total {
		return nil, ErrCoverage
	}
	if len(values) != total {
		return nil, ErrValueCount
	}

	acc := make(map[Label]*runningvariance.RunningStat)
	for i, l := range labels {
		if l <= 0 {
			return nil, ErrBadLabel
		}
		rs, ok := acc[l]
		if !ok {
			rs = runningvariance.NewRunningStat()
			acc[l] = rs
		}
		rs.Push(values[i])
	}

	stats := make(map[Label]RegionStats, len(acc))
	for l, rs := range acc {
		stats[l] = RegionStats{
			Label:  l,
			Count:  int(rs.N),
			Mean:   rs.Mean(),
			StdDev: rs.StandardDeviation(),
		}
	}

	return &Result{
		shape:  append(grid.Shape(nil), shape...),
		labels: append([]Label(nil), labels...),
		stats:  stats,
	}, nil
}

// FromStats builds a Result from a dense label map and caller-computed
// statistics — the entry point for external producers that track their own
// running stats. The input is cross-checked defensively: a mismatch between
// the label map and the statistics yields ErrInconsistent.
// Complexity: O(P + L).
func FromStats(shape grid.Shape, labels []Label, stats []RegionStats) (*Result, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(labels) != shape.Size() {
		return nil, ErrCoverage
	}
	byLabel := make(map[Label]RegionStats, len(stats))
	for _, st := range stats {
		if st.Label <= 0 {
			return nil, ErrBadLabel
		}
		byLabel[st.Label] = st
	}
	r := &Result{
		shape:  append(grid.Shape(nil), shape...),
		labels: append([]Label(nil), labels...),
		stats:  byLabel,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Shape returns a copy of the grid shape.
func (r *Result) Shape() grid.Shape { return append(grid.Shape(nil), r.shape...) }

// Size returns the total coordinate count.
// Complexity: O(rank).
func (r *Result) Size() int { return r.shape.Size() }

// At returns the label at row-major linear index i. The index is not
// bounds-checked; use LabelAt for checked point access.
// Complexity: O(1).
func (r *Result) At(i int) Label { return r.labels[i] }

// LabelAt returns the label at point p, or ErrBounds when p lies outside
// the shape.
// Complexity: O(rank).
func (r *Result) LabelAt(p grid.Point) (Label, error) {
	if !r.shape.InBounds(p) {
		return 0, grid.ErrBounds
	}

	return r.labels[r.shape.Index(p)], nil
}

// Labels returns the current label set in ascending order.
// Complexity: O(L log L).
func (r *Result) Labels() []Label {
	out := make([]Label, 0, len(r.stats))
	for l := range r.stats {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Regions returns the per-region statistics in ascending label order.
// Complexity: O(L log L).
func (r *Result) Regions() []RegionStats {
	out := make([]RegionStats, 0, len(r.stats))
	for _, st := range r.stats {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })

	return out
}

// Stats returns the statistics for one label, or ErrUnknownLabel.
// Complexity: O(1).
func (r *Result) Stats(l Label) (RegionStats, error) {
	st, ok := r.stats[l]
	if !ok {
		return RegionStats{}, ErrUnknownLabel
	}

	return st, nil
}

// Count returns the pixel count of one label, or ErrUnknownLabel.
func (r *Result) Count(l Label) (int, error) {
	st, err := r.Stats(l)

	return st.Count, err
}

// Mean returns the mean sample value of one label, or ErrUnknownLabel.
func (r *Result) Mean(l Label) (float64, error) {
	st, err := r.Stats(l)

	return st.Mean, err
}

// Clone returns a deep copy sharing no state with the receiver.
// Complexity: O(P + L).
func (r *Result) Clone() *Result {
	stats := make(map[Label]RegionStats, len(r.stats))
	for l, st := range r.stats {
		stats[l] = st
	}

	return &Result{
		shape:  append(grid.Shape(nil), r.shape...),
		labels: append([]Label(nil), r.labels...),
		stats:  stats,
	}
}

// Validate cross-checks the label map against the statistics:
// every label in the map must have stats with the exact pixel count, every
// stats entry must appear in the map, and all labels must be positive.
// Σ Count == Size follows from the per-label equalities.
// Returns ErrBadLabel or ErrInconsistent.
// Complexity: O(P + L).
func (r *Result) Validate() error {
	counts := make(map[Label]int, len(r.stats))
	for _, l := range r.labels {
		if l <= 0 {
			return ErrBadLabel
		}
		counts[l]++
	}
	if len(counts) != len(r.stats) {
		return ErrInconsistent
	}
	for l, n := range counts {
		st, ok := r.stats[l]
		if !ok || st.Count != n {
			return ErrInconsistent
		}
	}

	return nil
}
