// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lvlseg/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: row-major indexing
////////////////////////////////////////////////////////////////////////////////

// ExampleShape_Index demonstrates row-major linear indexing on a 2×3 grid:
// the last dimension varies fastest, so (1,2) lands at index 5.
func ExampleShape_Index() {
	s := grid.Shape{2, 3}
	fmt.Println("size:", s.Size())
	fmt.Println("index of (1,2):", s.Index(grid.Point{1, 2}))
	fmt.Println("point at 4:", s.At(4))

	// Output:
	// size: 6
	// index of (1,2): 5
	// point at 4: [1 1]
}

////////////////////////////////////////////////////////////////////////////////
// Example: connectivity kernels
////////////////////////////////////////////////////////////////////////////////

// ExampleOrthogonal shows the axis-aligned unit-step kernel for a 3-D
// volume: one ±1 step per dimension.
func ExampleOrthogonal() {
	for _, off := range grid.Orthogonal(3) {
		fmt.Println(off)
	}

	// Output:
	// [-1 0 0]
	// [1 0 0]
	// [0 -1 0]
	// [0 1 0]
	// [0 0 -1]
	// [0 0 1]
}
