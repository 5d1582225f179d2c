package felzen_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlseg/felzen"
	"github.com/katalvlaran/lvlseg/grid"
)

// BenchmarkSegment measures a full merge on a 256×256 grid of
// deterministic random values in [0,16).
// Complexity: O(P·4 + E log E)
func BenchmarkSegment(b *testing.B) {
	const n = 256
	r := rand.New(rand.NewSource(42))
	values := make([]float64, n*n)
	for i := range values {
		values[i] = r.Float64() * 16
	}
	shape := grid.Shape{n, n}
	opts := felzen.Options{K: 4}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := felzen.Segment(values, shape, opts); err != nil {
			b.Fatalf("Segment failed: %v", err)
		}
	}
}

// BenchmarkMergeEdges isolates the sort+union core on a prebuilt chain of
// one million edges.
func BenchmarkMergeEdges(b *testing.B) {
	const n = 1 << 20
	r := rand.New(rand.NewSource(7))
	edges := make([]felzen.WeightedEdge, n-1)
	for i := range edges {
		edges[i] = felzen.WeightedEdge{U: i, V: i + 1, Weight: r.Float64()}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := felzen.MergeEdges(n, edges, 0.5); err != nil {
			b.Fatalf("MergeEdges failed: %v", err)
		}
	}
}
