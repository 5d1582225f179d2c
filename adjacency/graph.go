package adjacency

import (
	"sort"

	"github.com/katalvlaran/lvlseg/grid"
	"github.com/katalvlaran/lvlseg/segment"
)

// pair is a canonical (A < B) unordered label pair, the dedup key for
// edges and the memoization key for weights.
type pair [2]segment.Label

func canon(a, b segment.Label) pair {
	if a < b {
		return pair{a, b}
	}

	return pair{b, a}
}

// Graph is a simple, undirected, weighted region-adjacency graph. Vertices
// are the labels present in the originating Result; edges connect labels
// observed as spatially adjacent. Weights are evaluated lazily through the
// dissimilarity function and memoized per pair.
type Graph struct {
	diff      DissimFunc
	neighbors map[segment.Label]map[segment.Label]struct{}
	weights   map[pair]float64
}

// Build constructs the adjacency graph of res under the given connectivity
// kernel. The result is cross-checked defensively first, so an externally
// produced labeling that violates the partition invariants is rejected with
// segment.ErrInconsistent before any graph state exists.
// Complexity: O(P·D) time, O(L + E) memory.
func Build(res *segment.Result, kernel grid.Kernel, diff DissimFunc) (*Graph, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	if diff == nil {
		return nil, ErrNilDissim
	}
	shape := res.Shape()
	if err := kernel.Validate(shape.Rank()); err != nil {
		return nil, err
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}

	g := &Graph{
		diff:      diff,
		neighbors: make(map[segment.Label]map[segment.Label]struct{}),
		weights:   make(map[pair]float64),
	}
	// Every present label is a vertex, adjacent or not.
	for _, l := range res.Labels() {
		g.neighbors[l] = make(map[segment.Label]struct{})
	}
	total := shape.Size()
	for idx := 0; idx < total; idx++ {
		l := res.At(idx)
		for _, off := range kernel {
			j, ok := shape.Step(idx, off)
			if !ok {
				continue
			}
			if other := res.At(j); other != l {
				g.neighbors[l][other] = struct{}{}
				g.neighbors[other][l] = struct{}{}
			}
		}
	}

	return g, nil
}

// Labels returns all vertices in ascending order.
// Complexity: O(L log L).
func (g *Graph) Labels() []segment.Label {
	out := make([]segment.Label, 0, len(g.neighbors))
	for l := range g.neighbors {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Neighbors returns l's adjacent labels in ascending order, or
// segment.ErrUnknownLabel when l is not a vertex.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(l segment.Label) ([]segment.Label, error) {
	adj, ok := g.neighbors[l]
	if !ok {
		return nil, segment.ErrUnknownLabel
	}
	out := make([]segment.Label, 0, len(adj))
	for n := range adj {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// Degree returns the number of neighbors of l, or segment.ErrUnknownLabel.
// Complexity: O(1).
func (g *Graph) Degree(l segment.Label) (int, error) {
	adj, ok := g.neighbors[l]
	if !ok {
		return 0, segment.ErrUnknownLabel
	}

	return len(adj), nil
}

// HasEdge reports whether a and b are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b segment.Label) bool {
	adj, ok := g.neighbors[a]
	if !ok {
		return false
	}
	_, ok = adj[b]

	return ok
}

// Weight returns the dissimilarity between two adjacent labels, computing
// it on first access and memoizing afterwards. Non-adjacent pairs yield
// ErrNoEdge.
// Complexity: O(1) amortized plus one diff evaluation per unique pair.
func (g *Graph) Weight(a, b segment.Label) (float64, error) {
	if !g.HasEdge(a, b) {
		return 0, ErrNoEdge
	}
	key := canon(a, b)
	w, ok := g.weights[key]
	if !ok {
		w = g.diff(key[0], key[1])
		g.weights[key] = w
	}

	return w, nil
}

// Edges materializes every edge, weights included, ordered by (A, B).
// Complexity: O(E log E) plus one diff evaluation per unseen pair.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.weights))
	for l, adj := range g.neighbors {
		for n := range adj {
			if l < n {
				w, _ := g.Weight(l, n)
				out = append(out, Edge{A: l, B: n, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}

		return out[i].B < out[j].B
	})

	return out
}

// Absorb merges vertex r into vertex n: r's incident edges transfer onto
// n, r disappears from the graph, and every cached weight touching r or n
// is dropped so it is recomputed lazily against the merged region.
// Returns segment.ErrUnknownLabel for missing vertices and ErrSelfAbsorb
// when r == n.
// Complexity: O(degree(r) + degree(n)).
func (g *Graph) Absorb(r, n segment.Label) error {
	if r == n {
		return ErrSelfAbsorb
	}
	radj, ok := g.neighbors[r]
	if !ok {
		return segment.ErrUnknownLabel
	}
	nadj, ok := g.neighbors[n]
	if !ok {
		return segment.ErrUnknownLabel
	}

	for m := range radj {
		delete(g.neighbors[m], r)
		delete(g.weights, canon(r, m))
		if m != n {
			g.neighbors[m][n] = struct{}{}
			nadj[m] = struct{}{}
		}
	}
	// n's own composition changed: its remaining cached weights are stale.
	for m := range nadj {
		delete(g.weights, canon(n, m))
	}
	delete(g.neighbors, r)

	return nil
}
