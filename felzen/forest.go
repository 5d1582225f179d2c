package felzen

import "math"

// forest is the disjoint-set forest backing one merge call: index-based
// parent/size arrays plus the per-root maximum internal edge weight. It
// exists only for the duration of the merge phase and is discarded once
// the final label map is materialized.
type forest struct {
	parent []int
	size   []int
	maxw   []float64
}

// newForest builds n singleton sets with internal weight zero.
// Complexity: O(n).
func newForest(n int) *forest {
	f := &forest{
		parent: make([]int, n),
		size:   make([]int, n),
		maxw:   make([]float64, n),
	}
	for i := range f.parent {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f
}

// find returns the root of x with path compression (iterative
// grandparent-pointing, no recursion).
// Complexity: O(α(n)) amortized.
func (f *forest) find(x int) int {
	for f.parent[x] != x {
		f.parent[x] = f.parent[f.parent[x]]
		x = f.parent[x]
	}

	return x
}

// union merges the trees rooted at a and b, attaching the smaller under
// the larger, and records w as the merged component's maximum internal
// weight — valid when edges arrive in ascending weight order. Returns the
// surviving root.
// Complexity: O(1).
func (f *forest) union(a, b int, w float64) int {
	if f.size[a] < f.size[b] {
		a, b = b, a
	}
	f.parent[b] = a
	f.size[a] += f.size[b]
	f.maxw[a] = w

	return a
}

// threshold computes τ for the component rooted at x: its maximum internal
// weight plus k/size, the Felzenszwalb cohesion bound. An atomic component
// has no internal edge yet, so any first edge is admissible: τ = +∞.
func (f *forest) threshold(x int, k float64) float64 {
	if f.size[x] == 1 {
		return math.Inf(1)
	}

	return f.maxw[x] + k/float64(f.size[x])
}
