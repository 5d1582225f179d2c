// Package adjacency declares the Edge and DissimFunc types plus sentinel
// errors for the adjacency subpackage of github.com/katalvlaran/lvlseg.
package adjacency

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlseg/segment"
)

// Sentinel errors for adjacency-graph operations.
var (
	// ErrNilResult indicates a nil *segment.Result was supplied.
	ErrNilResult = errors.New("adjacency: nil result")

	// ErrNilDissim indicates a nil dissimilarity function was supplied.
	ErrNilDissim = errors.New("adjacency: nil dissimilarity function")

	// ErrNoEdge indicates a weight was requested for two labels that are
	// not spatially adjacent.
	ErrNoEdge = errors.New("adjacency: labels are not adjacent")

	// ErrSelfAbsorb indicates an attempt to absorb a label into itself.
	ErrSelfAbsorb = errors.New("adjacency: cannot absorb a label into itself")
)

// DissimFunc measures how different two regions are; lower means more
// similar. Implementations must be pure: the builder memoizes results.
type DissimFunc func(a, b segment.Label) float64

// Edge is one undirected adjacency between two regions, with A < B
// canonical and Weight the dissimilarity between them.
type Edge struct {
	A, B   segment.Label
	Weight float64
}

// MeanAbsDiff returns the standard region dissimilarity |mean(a)−mean(b)|
// read from res. Labels missing from res compare as +Inf.
func MeanAbsDiff(res *segment.Result) DissimFunc {
	return func(a, b segment.Label) float64 {
		ma, errA := res.Mean(a)
		mb, errB := res.Mean(b)
		if errA != nil || errB != nil {
			return math.Inf(1)
		}

		return math.Abs(ma - mb)
	}
}
