package quadres_test

import (
	"fmt"

	"github.com/katalvlaran/qsieve/quadres"
)

func ExampleSqrtMod() {
	fmt.Println(quadres.SqrtMod(10, 13))
	fmt.Println(quadres.SqrtMod(3, 7))
	// Output:
	// [7 6] true
	// [0 0] false
}
