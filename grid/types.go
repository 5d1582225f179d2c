// Package grid declares the Shape, Point, and Kernel types plus the
// sentinel errors shared across the grid subpackage of
// github.com/katalvlaran/lvlseg.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadShape indicates a shape with a negative extent.
	ErrBadShape = errors.New("grid: shape extents must be non-negative")

	// ErrBadKernel indicates an empty kernel, a rank mismatch between an
	// offset and the shape, or an offset of all zeros (a self-neighbor).
	ErrBadKernel = errors.New("grid: malformed connectivity kernel")

	// ErrBounds indicates a point outside the shape's extents.
	ErrBounds = errors.New("grid: point out of bounds")
)

// Point is one integer coordinate tuple locating a sample in an n-D grid.
// Its length is the grid's rank.
type Point []int

// Shape holds the per-dimension extents of a rectangular n-D grid.
// A zero extent yields a valid, empty grid (Size()==0); negative extents
// are rejected by Validate.
type Shape []int

// Kernel is a connectivity kernel: the set of neighbor offsets that define
// spatial adjacency between coordinates. Each offset has the grid's rank
// and must not be the zero vector.
type Kernel [][]int
