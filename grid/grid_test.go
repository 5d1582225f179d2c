package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlseg/grid"
)

//----------------------------------------------------------------------------//
// Shape Tests
//----------------------------------------------------------------------------//

// TestShape_Validate verifies that negative extents are rejected and that
// zero extents remain valid (empty grid).
func TestShape_Validate(t *testing.T) {
	cases := []struct {
		name  string
		shape grid.Shape
		err   error
	}{
		{"Plain2D", grid.Shape{4, 4}, nil},
		{"ZeroExtent", grid.Shape{0, 5}, nil},
		{"Negative", grid.Shape{3, -1}, grid.ErrBadShape},
		{"Rank0", grid.Shape{}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.shape.Validate(); !errors.Is(err, tc.err) {
				t.Errorf("Validate(%v) error = %v; want %v", tc.shape, err, tc.err)
			}
		})
	}
}

// TestShape_Size checks the extent product, including the empty case.
func TestShape_Size(t *testing.T) {
	cases := []struct {
		shape grid.Shape
		want  int
	}{
		{grid.Shape{4, 4}, 16},
		{grid.Shape{2, 3, 4}, 24},
		{grid.Shape{0, 7}, 0},
		{grid.Shape{5}, 5},
	}
	for _, tc := range cases {
		if got := tc.shape.Size(); got != tc.want {
			t.Errorf("Size(%v) = %d; want %d", tc.shape, got, tc.want)
		}
	}
}

// TestShape_IndexAtRoundTrip verifies row-major Index/At agree on every
// coordinate of a 3-D shape.
func TestShape_IndexAtRoundTrip(t *testing.T) {
	s := grid.Shape{2, 3, 4}
	for idx := 0; idx < s.Size(); idx++ {
		p := s.At(idx)
		if !s.InBounds(p) {
			t.Fatalf("At(%d) = %v out of bounds", idx, p)
		}
		if back := s.Index(p); back != idx {
			t.Errorf("Index(At(%d)) = %d; want %d", idx, back, idx)
		}
	}
	// Last dimension must be the fastest-varying one.
	if got := s.Index(grid.Point{0, 0, 1}); got != 1 {
		t.Errorf("Index({0,0,1}) = %d; want 1", got)
	}
	if got := s.Index(grid.Point{0, 1, 0}); got != 4 {
		t.Errorf("Index({0,1,0}) = %d; want 4", got)
	}
}

// TestShape_Step checks neighbor stepping on a 3×3 grid, including the
// border cases where the offset leaves the grid.
func TestShape_Step(t *testing.T) {
	s := grid.Shape{3, 3}
	center := s.Index(grid.Point{1, 1})

	right, ok := s.Step(center, []int{0, 1})
	if !ok || right != s.Index(grid.Point{1, 2}) {
		t.Errorf("Step(center, E) = (%d,%v); want (%d,true)", right, ok, s.Index(grid.Point{1, 2}))
	}
	up, ok := s.Step(center, []int{-1, 0})
	if !ok || up != s.Index(grid.Point{0, 1}) {
		t.Errorf("Step(center, N) = (%d,%v); want (%d,true)", up, ok, s.Index(grid.Point{0, 1}))
	}
	if _, ok = s.Step(s.Index(grid.Point{0, 0}), []int{-1, 0}); ok {
		t.Error("Step off the top edge must report false")
	}
	if _, ok = s.Step(s.Index(grid.Point{2, 2}), []int{0, 1}); ok {
		t.Error("Step off the right edge must report false")
	}
}

//----------------------------------------------------------------------------//
// Kernel Tests
//----------------------------------------------------------------------------//

// TestKernel_Presets verifies offset counts for the standard families.
func TestKernel_Presets(t *testing.T) {
	if got := len(grid.Conn4()); got != 4 {
		t.Errorf("len(Conn4) = %d; want 4", got)
	}
	if got := len(grid.Conn8()); got != 8 {
		t.Errorf("len(Conn8) = %d; want 8", got)
	}
	if got := len(grid.Orthogonal(3)); got != 6 {
		t.Errorf("len(Orthogonal(3)) = %d; want 6", got)
	}
	if got := len(grid.Moore(3)); got != 26 {
		t.Errorf("len(Moore(3)) = %d; want 26", got)
	}
}

// TestKernel_Validate rejects empty kernels, rank mismatches, and the
// zero offset.
func TestKernel_Validate(t *testing.T) {
	cases := []struct {
		name   string
		kernel grid.Kernel
		rank   int
		err    error
	}{
		{"Conn4OK", grid.Conn4(), 2, nil},
		{"Empty", grid.Kernel{}, 2, grid.ErrBadKernel},
		{"RankMismatch", grid.Kernel{{1}}, 2, grid.ErrBadKernel},
		{"ZeroOffset", grid.Kernel{{0, 0}}, 2, grid.ErrBadKernel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.kernel.Validate(tc.rank); !errors.Is(err, tc.err) {
				t.Errorf("Validate error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestKernel_Symmetric checks symmetry detection for preset and one-sided
// kernels.
func TestKernel_Symmetric(t *testing.T) {
	if !grid.Conn4().Symmetric() {
		t.Error("Conn4 must be symmetric")
	}
	if !grid.Moore(3).Symmetric() {
		t.Error("Moore(3) must be symmetric")
	}
	oneSided := grid.Kernel{{0, 1}, {1, 0}}
	if oneSided.Symmetric() {
		t.Error("forward-only kernel must not be symmetric")
	}
}
