package prune

import (
	"sort"

	"github.com/katalvlaran/lvlseg/adjacency"
	"github.com/katalvlaran/lvlseg/grid"
	"github.com/katalvlaran/lvlseg/segment"
)

// Batch removes every label in targets from res, folding each into the
// still-present neighbor minimizing diff. Targets are processed in
// ascending pre-batch pixel count (ties by ascending label id) so later
// folds are not skewed by already-absorbed mass; neighborhoods are
// re-resolved against the evolving graph after every fold. The complete
// plan is validated and simulated before res is touched: any error leaves
// res exactly as it was.
//
// An empty target set is a no-op. Duplicate targets are coalesced.
// Returns segment.ErrUnknownLabel for absent targets and ErrNoNeighbor for
// a target with no adjacent region at its processing turn.
// Complexity: O(P·D + E + |R| log |R|) plus one O(P) retag on commit.
func Batch(res *segment.Result, targets []segment.Label, diff DiffFunc, opts Options) error {
	if res == nil {
		return ErrNilResult
	}
	if diff == nil {
		return ErrNilDiff
	}
	if len(targets) == 0 {
		return nil
	}

	// Eager, total validation before any state exists.
	order := make([]segment.Label, 0, len(targets))
	seen := make(map[segment.Label]bool, len(targets))
	counts := make(map[segment.Label]int, len(targets))
	for _, r := range targets {
		if seen[r] {
			continue
		}
		seen[r] = true
		st, err := res.Stats(r)
		if err != nil {
			return err
		}
		counts[r] = st.Count
		order = append(order, r)
	}
	sort.Slice(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] < counts[order[j]]
		}

		return order[i] < order[j]
	})

	g := opts.Graph
	if g == nil {
		kernel, err := kernelFor(res, opts)
		if err != nil {
			return err
		}
		if g, err = adjacency.Build(res, kernel, adjacency.DissimFunc(diff)); err != nil {
			return err
		}
	}

	// Simulate the whole batch on the graph; commit only if all folds
	// succeed.
	plan := make(map[segment.Label]segment.Label, len(order))
	for _, r := range order {
		neighbors, err := g.Neighbors(r)
		if err != nil {
			return err
		}
		best, ok := closest(r, neighbors, diff, opts.Less)
		if !ok {
			return ErrNoNeighbor
		}
		if err = g.Absorb(r, best); err != nil {
			return err
		}
		plan[r] = best
	}

	return res.ReassignAll(plan)
}

// BatchFunc removes every region whose RegionStats satisfy pred,
// delegating to Batch. The selection is taken before any fold, in
// ascending label order.
// Complexity: as Batch plus O(L).
func BatchFunc(res *segment.Result, pred func(segment.RegionStats) bool, diff DiffFunc, opts Options) error {
	if res == nil {
		return ErrNilResult
	}
	if pred == nil || diff == nil {
		return ErrNilDiff
	}
	var targets []segment.Label
	for _, st := range res.Regions() {
		if pred(st) {
			targets = append(targets, st.Label)
		}
	}

	return Batch(res, targets, diff, opts)
}

// One removes exactly one label from res in place: a single coordinate
// scan collects the target's boundary neighbors, the diff-minimizing
// neighbor absorbs it, and statistics recombine exactly.
//
// Returns segment.ErrUnknownLabel when target is absent and ErrNoNeighbor
// when no adjacent region exists. Repeated One calls re-pay the full scan
// each time; prefer Batch for removal sets.
// Complexity: O(P·D).
func One(res *segment.Result, target segment.Label, diff DiffFunc, opts Options) error {
	if res == nil {
		return ErrNilResult
	}
	if diff == nil {
		return ErrNilDiff
	}
	if _, err := res.Stats(target); err != nil {
		return err
	}
	kernel, err := kernelFor(res, opts)
	if err != nil {
		return err
	}

	// Local neighborhood: one pass over the label map.
	shape := res.Shape()
	adjacent := make(map[segment.Label]struct{})
	total := shape.Size()
	for idx := 0; idx < total; idx++ {
		if res.At(idx) != target {
			continue
		}
		for _, off := range kernel {
			if j, ok := shape.Step(idx, off); ok {
				if other := res.At(j); other != target {
					adjacent[other] = struct{}{}
				}
			}
		}
	}
	neighbors := make([]segment.Label, 0, len(adjacent))
	for n := range adjacent {
		neighbors = append(neighbors, n)
	}
	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })

	best, ok := closest(target, neighbors, diff, opts.Less)
	if !ok {
		return ErrNoNeighbor
	}

	return res.ReassignAll(map[segment.Label]segment.Label{target: best})
}

// closest picks the diff-minimizing neighbor of r from an ascending
// candidate list. Ties go to the less comparator when provided, else to
// the lowest label id (the list order).
func closest(r segment.Label, neighbors []segment.Label, diff DiffFunc, less func(a, b segment.Label) bool) (segment.Label, bool) {
	if len(neighbors) == 0 {
		return 0, false
	}
	best, bestW := neighbors[0], diff(r, neighbors[0])
	for _, n := range neighbors[1:] {
		switch w := diff(r, n); {
		case w < bestW:
			best, bestW = n, w
		case w == bestW && less != nil && less(n, best):
			best = n
		}
	}

	return best, true
}

// kernelFor resolves the connectivity kernel for res, defaulting to the
// orthogonal kernel of the result's rank.
func kernelFor(res *segment.Result, opts Options) (grid.Kernel, error) {
	kernel := opts.Kernel
	rank := res.Shape().Rank()
	if kernel == nil {
		kernel = grid.Orthogonal(rank)
	}
	if err := kernel.Validate(rank); err != nil {
		return nil, err
	}

	return kernel, nil
}
