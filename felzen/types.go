// Package felzen declares configuration options, the WeightedEdge type,
// and sentinel errors for the felzen subpackage of
// github.com/katalvlaran/lvlseg.
package felzen

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlseg/grid"
)

// Sentinel errors for merge operations.
var (
	// ErrNegativeK indicates a negative scale parameter.
	ErrNegativeK = errors.New("felzen: scale parameter K must be non-negative")

	// ErrNegativeMinSize indicates a negative minimum component size.
	ErrNegativeMinSize = errors.New("felzen: MinSize must be non-negative")

	// ErrValueCount indicates the sample values do not cover the shape.
	ErrValueCount = errors.New("felzen: values length must equal shape size")

	// ErrAtomCount indicates a negative atomic-region count.
	ErrAtomCount = errors.New("felzen: atom count must be non-negative")

	// ErrEdgeEndpoint indicates an edge endpoint outside [0, n).
	ErrEdgeEndpoint = errors.New("felzen: edge endpoint out of range")
)

// WeightedEdge is one undirected edge between two atomic regions in a
// MergeEdges call, identified by their indices in [0, n).
type WeightedEdge struct {
	U, V   int
	Weight float64
}

// DissimFunc measures the dissimilarity of two neighboring sample values;
// lower means more similar. It must be pure and non-negative.
type DissimFunc func(a, b float64) float64

// AbsDiff is the default sample dissimilarity |a−b|.
func AbsDiff(a, b float64) float64 { return math.Abs(a - b) }

// Options configures Segment.
//
// Fields:
//   - K       — Felzenszwalb scale, ≥ 0. Larger K raises the adaptive
//     threshold K/size and biases toward larger regions.
//   - MinSize — components below this size fold into their least-dissimilar
//     boundary neighbor after the merge phase; 0 disables the pass.
//   - Kernel  — connectivity kernel; nil means grid.Orthogonal(rank).
//   - Dissim  — sample dissimilarity; nil means AbsDiff.
type Options struct {
	K       float64
	MinSize int
	Kernel  grid.Kernel
	Dissim  DissimFunc
}

// DefaultOptions returns Options with default settings:
// K=1, MinSize=0 (disabled), orthogonal connectivity, AbsDiff weights.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{K: 1}
}
