package sieve_test

import (
	"fmt"

	"github.com/katalvlaran/qsieve/sieve"
)

func ExampleSmooth() {
	res, err := sieve.Smooth(8051, 5, 50)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Base.Primes())
	fmt.Println(res.Xs)
	fmt.Println(res.Ys)
	// Output:
	// [2 5 7 13 23]
	// [90 91 93 99 106 139]
	// [49 230 598 1750 3185 11270]
}
