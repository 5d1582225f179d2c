package felzen

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlseg/grid"
	"github.com/katalvlaran/lvlseg/prune"
	"github.com/katalvlaran/lvlseg/segment"
)

// MergeEdges merges n atomic regions along the given edge list under the
// adaptive threshold rule and returns the root assignment: out[i] is the
// representative of region i's final component. Atomic regions are
// anything the caller chose — single samples or pre-clustered regions.
//
// Edges are stably sorted by ascending weight, so equal weights keep their
// insertion order; the caller's slice is not modified. Self-loops are
// skipped.
//
// Returns ErrAtomCount for n < 0, ErrNegativeK for k < 0, and
// ErrEdgeEndpoint for endpoints outside [0, n) — all checked before any
// merging begins.
// Complexity: O(E log E + E·α(n)) time, O(E + n) memory.
func MergeEdges(n int, edges []WeightedEdge, k float64) ([]int, error) {
	if n < 0 {
		return nil, ErrAtomCount
	}
	if k < 0 {
		return nil, ErrNegativeK
	}
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, ErrEdgeEndpoint
		}
	}

	sorted := append([]WeightedEdge(nil), edges...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Weight < sorted[j].Weight })

	f := newForest(n)
	for _, e := range sorted {
		if e.U == e.V {
			continue
		}
		a, b := f.find(e.U), f.find(e.V)
		if a == b {
			continue
		}
		if e.Weight <= math.Min(f.threshold(a, k), f.threshold(b, k)) {
			f.union(a, b, e.Weight)
		}
	}

	out := make([]int, n)
	for i := range out {
		out[i] = f.find(i)
	}

	return out, nil
}

// Segment partitions a grid of sample values into regions of similar
// value. Every sample starts as an atomic region; adjacencies under the
// connectivity kernel become edges weighted by the sample dissimilarity;
// MergeEdges runs the threshold merge; surviving components are relabeled
// compactly (1..M, row-major first appearance) into a segment.Result with
// full per-region statistics.
//
// All parameters are validated eagerly: ErrNegativeK, ErrNegativeMinSize,
// ErrValueCount, grid.ErrBadShape, or grid.ErrBadKernel are returned
// before any work begins. A zero-coordinate grid yields an empty Result.
// Complexity: O(P·D + E log E), P = coordinate count, D = kernel size.
func Segment(values []float64, shape grid.Shape, opts Options) (*segment.Result, error) {
	if opts.K < 0 {
		return nil, ErrNegativeK
	}
	if opts.MinSize < 0 {
		return nil, ErrNegativeMinSize
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	total := shape.Size()
	if len(values) != total {
		return nil, ErrValueCount
	}
	if total == 0 {
		return segment.New(shape, nil, nil)
	}
	kernel := opts.Kernel
	if kernel == nil {
		kernel = grid.Orthogonal(shape.Rank())
	}
	if err := kernel.Validate(shape.Rank()); err != nil {
		return nil, err
	}
	dissim := opts.Dissim
	if dissim == nil {
		dissim = AbsDiff
	}

	edges := gridEdges(values, shape, kernel, dissim)
	roots, err := MergeEdges(total, edges, opts.K)
	if err != nil {
		return nil, err
	}

	// Compact root ids to contiguous labels in row-major first-appearance
	// order.
	labels := make([]segment.Label, total)
	compact := make(map[int]segment.Label)
	next := segment.Label(1)
	for i, root := range roots {
		l, ok := compact[root]
		if !ok {
			l = next
			next++
			compact[root] = l
		}
		labels[i] = l
	}

	res, err := segment.New(shape, labels, values)
	if err != nil {
		return nil, err
	}
	if opts.MinSize > 1 {
		if err = foldSmall(res, labels, edges, kernel, opts.MinSize); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// gridEdges generates the pixel-level edge list deterministically:
// ascending linear index, kernel offsets in declaration order. Symmetric
// kernels visit each unordered pair exactly once by only following steps
// toward higher indices.
func gridEdges(values []float64, shape grid.Shape, kernel grid.Kernel, dissim DissimFunc) []WeightedEdge {
	sym := kernel.Symmetric()
	edges := make([]WeightedEdge, 0, shape.Size()*len(kernel)/2)
	for idx := 0; idx < shape.Size(); idx++ {
		for _, off := range kernel {
			j, ok := shape.Step(idx, off)
			if !ok || (sym && j < idx) {
				continue
			}
			edges = append(edges, WeightedEdge{U: idx, V: j, Weight: dissim(values[idx], values[j])})
		}
	}

	return edges
}

// foldSmall folds every component below minSize into the neighbor sharing
// its least-dissimilar boundary edge, delegating to the pruner with a size
// predicate. Undersized components with no neighbor at all stay in place.
func foldSmall(res *segment.Result, labels []segment.Label, edges []WeightedEdge, kernel grid.Kernel, minSize int) error {
	// Minimum pixel-level boundary weight per unordered label pair.
	type pair [2]segment.Label
	boundary := make(map[pair]float64)
	has := make(map[segment.Label]bool)
	for _, e := range edges {
		a, b := labels[e.U], labels[e.V]
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		key := pair{a, b}
		if w, ok := boundary[key]; !ok || e.Weight < w {
			boundary[key] = e.Weight
		}
		has[a], has[b] = true, true
	}

	var targets []segment.Label
	for _, st := range res.Regions() {
		if st.Count < minSize && has[st.Label] {
			targets = append(targets, st.Label)
		}
	}
	diff := func(r, n segment.Label) float64 {
		key := pair{r, n}
		if r > n {
			key = pair{n, r}
		}
		if w, ok := boundary[key]; ok {
			return w
		}

		// Adjacency gained through an earlier fold: no direct boundary
		// edge was recorded, so rank it behind every recorded one.
		return math.Inf(1)
	}

	return prune.Batch(res, targets, diff, prune.Options{Kernel: kernel})
}
