// Package prune declares the DiffFunc and Options types plus sentinel
// errors for the prune subpackage of github.com/katalvlaran/lvlseg.
package prune

import (
	"errors"

	"github.com/katalvlaran/lvlseg/adjacency"
	"github.com/katalvlaran/lvlseg/grid"
	"github.com/katalvlaran/lvlseg/segment"
)

// Sentinel errors for pruning operations.
var (
	// ErrNilResult indicates a nil *segment.Result was supplied.
	ErrNilResult = errors.New("prune: nil result")

	// ErrNilDiff indicates a nil diff function was supplied.
	ErrNilDiff = errors.New("prune: nil diff function")

	// ErrNoNeighbor indicates a removal target with no adjacent region to
	// absorb it (the sole label of a single-region grid).
	ErrNoNeighbor = errors.New("prune: removal target has no neighbor")
)

// DiffFunc scores how dissimilar a neighbor is to the region being
// removed; lower means more similar, and the minimizing neighbor absorbs
// the target. Unlike adjacency.DissimFunc it may be asymmetric — the first
// argument is always the region being removed.
type DiffFunc func(removed, neighbor segment.Label) float64

// Options tunes pruning behavior.
//
// Fields:
//   - Kernel — connectivity kernel for neighborhood resolution; nil means
//     grid.Orthogonal(rank).
//   - Less   — optional tie-break comparator among equally dissimilar
//     neighbors; nil means ascending label id.
//   - Graph  — optional prebuilt adjacency graph to reuse for a batch.
//     Ownership transfers: the graph is mutated during the batch and must
//     match the Result it was built from.
type Options struct {
	Kernel grid.Kernel
	Less   func(a, b segment.Label) bool
	Graph  *adjacency.Graph
}

// DefaultOptions returns Options with default settings: orthogonal
// connectivity, ascending-label tie-breaking, no graph reuse.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{}
}
