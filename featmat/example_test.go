package featmat_test

import (
	"fmt"

	"github.com/katalvlaran/framesync/featmat"
)

// ExampleFromColumns builds a matrix from per-frame feature vectors,
// the shape upstream analysis usually emits.
func ExampleFromColumns() {
	m, _ := featmat.FromColumns([][]float64{
		{0, 1}, // frame 0
		{2, 3}, // frame 1
		{4, 5}, // frame 2
	})

	d, t := m.Dims()
	fmt.Printf("dims=%dx%d\n", d, t)
	fmt.Print(m)
	// Output:
	// dims=2x3
	// [0, 2, 4]
	// [1, 3, 5]
}

// ExampleMatrix_ColumnSpan carves out a zero-copy view of frames
// [1, 3) — the unit a reducer receives during aggregation.
func ExampleMatrix_ColumnSpan() {
	m, _ := featmat.FromRows([][]float64{
		{0, 2, 4, 6},
		{1, 3, 5, 7},
	})

	seg, _ := m.ColumnSpan(1, 3)
	row, _ := seg.Row(0)
	lo, hi := seg.Bounds()
	fmt.Printf("frames [%d,%d) row0=%v\n", lo, hi, row)
	// Output:
	// frames [1,3) row0=[2 4]
}
