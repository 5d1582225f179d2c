package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlseg/adjacency"
	"github.com/katalvlaran/lvlseg/grid"
	"github.com/katalvlaran/lvlseg/segment"
)

// bands builds a 3×3 grid with three horizontal bands:
//
//	1 1 1
//	2 2 2
//	3 3 3
func bands(t *testing.T) *segment.Result {
	t.Helper()
	res, err := segment.New(
		grid.Shape{3, 3},
		[]segment.Label{1, 1, 1, 2, 2, 2, 3, 3, 3},
		[]float64{0, 0, 0, 5, 5, 5, 9, 9, 9},
	)
	require.NoError(t, err)

	return res
}

// TestBuild_Errors verifies eager input validation.
func TestBuild_Errors(t *testing.T) {
	res := bands(t)
	diff := adjacency.MeanAbsDiff(res)

	_, err := adjacency.Build(nil, grid.Conn4(), diff)
	assert.ErrorIs(t, err, adjacency.ErrNilResult)

	_, err = adjacency.Build(res, grid.Conn4(), nil)
	assert.ErrorIs(t, err, adjacency.ErrNilDissim)

	_, err = adjacency.Build(res, grid.Kernel{{0, 0}}, diff)
	assert.ErrorIs(t, err, grid.ErrBadKernel)
}

// TestBuild_Defensive verifies the inconsistency cross-check fires before
// any graph is built over a corrupt external result.
func TestBuild_Defensive(t *testing.T) {
	bad, err := segment.FromStats(
		grid.Shape{1, 2},
		[]segment.Label{1, 2},
		[]segment.RegionStats{{Label: 1, Count: 1}, {Label: 2, Count: 1}},
	)
	require.NoError(t, err)

	// Corrupt a copy's stats through a fresh FromStats with a wrong count.
	_, err = segment.FromStats(
		grid.Shape{1, 2},
		[]segment.Label{1, 2},
		[]segment.RegionStats{{Label: 1, Count: 2}, {Label: 2, Count: 1}},
	)
	assert.ErrorIs(t, err, segment.ErrInconsistent)

	// A consistent result builds fine.
	_, err = adjacency.Build(bad, grid.Conn4(), adjacency.MeanAbsDiff(bad))
	assert.NoError(t, err)
}

// TestBuild_BandsConn4 checks vertices, adjacency, and the absence of the
// non-touching 1↔3 edge under 4-connectivity.
func TestBuild_BandsConn4(t *testing.T) {
	res := bands(t)
	g, err := adjacency.Build(res, grid.Conn4(), adjacency.MeanAbsDiff(res))
	require.NoError(t, err)

	assert.Equal(t, []segment.Label{1, 2, 3}, g.Labels())
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(1, 3), "bands 1 and 3 do not touch under Conn4")

	n2, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []segment.Label{1, 3}, n2)

	deg, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	_, err = g.Neighbors(9)
	assert.ErrorIs(t, err, segment.ErrUnknownLabel)
}

// TestWeight_LazyOncePerPair verifies the dissimilarity function runs at
// most once per unique pair, and ErrNoEdge fires for non-adjacent labels.
func TestWeight_LazyOncePerPair(t *testing.T) {
	res := bands(t)
	calls := map[[2]segment.Label]int{}
	diff := func(a, b segment.Label) float64 {
		calls[[2]segment.Label{a, b}]++

		return float64(b - a)
	}
	g, err := adjacency.Build(res, grid.Conn4(), diff)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		w, errW := g.Weight(1, 2)
		require.NoError(t, errW)
		assert.Equal(t, 1.0, w)
		// Reversed argument order hits the same canonical pair.
		w, errW = g.Weight(2, 1)
		require.NoError(t, errW)
		assert.Equal(t, 1.0, w)
	}
	assert.Equal(t, 1, calls[[2]segment.Label{1, 2}], "weight must be computed once per unique pair")

	_, err = g.Weight(1, 3)
	assert.ErrorIs(t, err, adjacency.ErrNoEdge)
}

// TestEdges_CanonicalSorted checks edge materialization order and weights.
func TestEdges_CanonicalSorted(t *testing.T) {
	res := bands(t)
	g, err := adjacency.Build(res, grid.Conn4(), adjacency.MeanAbsDiff(res))
	require.NoError(t, err)

	want := []adjacency.Edge{
		{A: 1, B: 2, Weight: 5},
		{A: 2, B: 3, Weight: 4},
	}
	assert.Equal(t, want, g.Edges())
}

// TestIsolatedVertex verifies a single-region grid yields one isolated
// vertex and no edges.
func TestIsolatedVertex(t *testing.T) {
	res, err := segment.New(grid.Shape{2, 2}, []segment.Label{7, 7, 7, 7}, make([]float64, 4))
	require.NoError(t, err)
	g, err := adjacency.Build(res, grid.Conn4(), adjacency.MeanAbsDiff(res))
	require.NoError(t, err)

	assert.Equal(t, []segment.Label{7}, g.Labels())
	assert.Empty(t, g.Edges())
	deg, err := g.Degree(7)
	require.NoError(t, err)
	assert.Equal(t, 0, deg)
}

// TestAbsorb verifies edge transfer, vertex removal, and weight-cache
// invalidation so transferred edges are recomputed against the absorber.
func TestAbsorb(t *testing.T) {
	res := bands(t)
	g, err := adjacency.Build(res, grid.Conn4(), adjacency.MeanAbsDiff(res))
	require.NoError(t, err)

	// Warm the caches.
	_ = g.Edges()

	require.NoError(t, g.Absorb(2, 3))

	assert.Equal(t, []segment.Label{1, 3}, g.Labels())
	assert.True(t, g.HasEdge(1, 3), "2's edge to 1 must transfer onto 3")
	_, err = g.Neighbors(2)
	assert.ErrorIs(t, err, segment.ErrUnknownLabel)

	// Recomputed lazily: |mean(1)−mean(3)| = 9 against the original stats.
	w, err := g.Weight(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 9.0, w)

	assert.ErrorIs(t, g.Absorb(3, 3), adjacency.ErrSelfAbsorb)
	assert.ErrorIs(t, g.Absorb(2, 3), segment.ErrUnknownLabel)
}

// TestGonum_Export verifies node and edge shape of the gonum interchange
// graph, including isolated vertices.
func TestGonum_Export(t *testing.T) {
	res := bands(t)
	g, err := adjacency.Build(res, grid.Conn4(), adjacency.MeanAbsDiff(res))
	require.NoError(t, err)

	wg := g.Gonum()
	assert.Equal(t, 3, wg.Nodes().Len())

	we := wg.WeightedEdge(1, 2)
	require.NotNil(t, we)
	assert.Equal(t, 5.0, we.Weight())
	assert.Nil(t, wg.Edge(1, 3))

	// Isolated vertex survives the export.
	solo, err := segment.New(grid.Shape{1}, []segment.Label{4}, []float64{0})
	require.NoError(t, err)
	sg, err := adjacency.Build(solo, grid.Kernel{{1}, {-1}}, adjacency.MeanAbsDiff(solo))
	require.NoError(t, err)
	assert.Equal(t, 1, sg.Gonum().Nodes().Len())
}
