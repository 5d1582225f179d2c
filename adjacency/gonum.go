package adjacency

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// Gonum exports the region graph as a gonum weighted undirected graph for
// interchange with downstream graph tooling. Labels become node IDs; every
// edge weight is materialized through the lazy cache. Isolated regions are
// exported as edge-less nodes.
// Complexity: O(L + E) plus one diff evaluation per unseen pair.
func (g *Graph) Gonum() *simple.WeightedUndirectedGraph {
	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for _, l := range g.Labels() {
		wg.AddNode(simple.Node(int64(l)))
	}
	for _, e := range g.Edges() {
		wg.SetWeightedEdge(wg.NewWeightedEdge(
			simple.Node(int64(e.A)),
			simple.Node(int64(e.B)),
			e.Weight,
		))
	}

	return wg
}
