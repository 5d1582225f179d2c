package grid

// Validate reports ErrBadShape if any extent is negative.
// A zero extent is allowed and simply makes the grid empty.
// Complexity: O(rank).
func (s Shape) Validate() error {
	for _, ext := range s {
		if ext < 0 {
			return ErrBadShape
		}
	}

	return nil
}

// Rank returns the number of dimensions.
// Complexity: O(1).
func (s Shape) Rank() int { return len(s) }

// Size returns the total coordinate count: the product of all extents.
// A rank-0 shape has size 1 by the empty-product convention; any zero
// extent makes the size 0.
// Complexity: O(rank).
func (s Shape) Size() int {
	n := 1
	for _, ext := range s {
		n *= ext
	}

	return n
}

// InBounds reports whether p has matching rank and lies inside the extents.
// Complexity: O(rank).
func (s Shape) InBounds(p Point) bool {
	if len(p) != len(s) {
		return false
	}
	for d, c := range p {
		if c < 0 || c >= s[d] {
			return false
		}
	}

	return true
}

// Index maps p to its row-major linear index (last dimension fastest).
// The caller must ensure InBounds(p); out-of-range points produce an
// index that is meaningless but never consulted by this package.
// Complexity: O(rank).
func (s Shape) Index(p Point) int {
	idx := 0
	for d := 0; d < len(s); d++ {
		idx = idx*s[d] + p[d]
	}

	return idx
}

// At converts a row-major linear index back into a Point.
// Complexity: O(rank).
func (s Shape) At(idx int) Point {
	p := make(Point, len(s))
	for d := len(s) - 1; d >= 0; d-- {
		p[d] = idx % s[d]
		idx /= s[d]
	}

	return p
}

// Step applies one kernel offset to the coordinate at linear index idx and
// returns the neighbor's linear index. The second return is false when the
// neighbor falls outside the grid.
// Complexity: O(rank).
func (s Shape) Step(idx int, offset []int) (int, bool) {
	next, stride := 0, 1
	for d := len(s) - 1; d >= 0; d-- {
		c := idx%s[d] + offset[d]
		if c < 0 || c >= s[d] {
			return 0, false
		}
		next += c * stride
		stride *= s[d]
		idx /= s[d]
	}

	return next, true
}
