package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/qsieve/matrix"
	"github.com/katalvlaran/qsieve/ring"
)

// ExampleDense_ToEchelon reduces an integer matrix without division.
func ExampleDense_ToEchelon() {
	a, _ := matrix.NewFromRows(ring.IntRows([][]int64{
		{0, 0, 3, 1},
		{2, 2, 1, 1},
		{1, 3, 3, 3},
	}))
	fmt.Print(a.ToEchelon())
	// Output:
	// [2, 2, 1, 1]
	// [0, 4, 5, 5]
	// [0, 0, 3, 1]
}

// ExampleDense_IterLeftNullSpan finds the row subsets of a parity matrix
// that sum to zero over GF(2).
func ExampleDense_IterLeftNullSpan() {
	a, _ := matrix.NewFromRows(ring.ResidueRows(2, [][]uint64{
		{0, 0, 0, 1},
		{0, 0, 0, 0},
		{1, 1, 1, 0},
		{1, 1, 1, 1},
	}))
	for v := range a.IterLeftNullSpan() {
		fmt.Println(v)
	}
	// Output:
	// [1_2 0_2 1_2 1_2]
	// [0_2 1_2 0_2 0_2]
}
