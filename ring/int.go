// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/qsieve/arith"
)

// Int is an int64 viewed as an element of the ring of integers.
type Int int64

// Ints converts literal values into a row of Int.
func Ints(vs ...int64) []Int {
	out := make([]Int, len(vs))
	for i, v := range vs {
		out[i] = Int(v)
	}

	return out
}

// IntRows converts a literal table into rows of Int.
func IntRows(rows [][]int64) [][]Int {
	out := make([][]Int, len(rows))
	for i, r := range rows {
		out[i] = Ints(r...)
	}

	return out
}

// Add returns a+b. Panics on overflow.
func (a Int) Add(b Int) Int {
	v, err := arith.AddChecked(int64(a), int64(b))

	return Int(must("Int.Add", v, err))
}

// Sub returns a−b. Panics on overflow.
func (a Int) Sub(b Int) Int {
	v, err := arith.SubChecked(int64(a), int64(b))

	return Int(must("Int.Sub", v, err))
}

// Mul returns a·b. Panics on overflow.
func (a Int) Mul(b Int) Int {
	v, err := arith.MulChecked(int64(a), int64(b))

	return Int(must("Int.Mul", v, err))
}

func (a Int) Equal(b Int) bool { return a == b }
func (a Int) IsZero() bool     { return a == 0 }
func (Int) Zero() Int          { return 0 }
func (Int) One() Int           { return 1 }

// Cofactors returns (lcm/a, lcm/b) with lcm = lcm(a, b) ≥ 0, so that
// c·a = d·b. A zero on either side yields (0, 1), which leaves the target
// row of an elimination step untouched.
func (a Int) Cofactors(b Int) (c, d Int) {
	if a == 0 || b == 0 {
		return 0, 1
	}
	l, err := arith.LCM(int64(a), int64(b))
	l = must("Int.Cofactors", l, err)

	return Int(l / int64(a)), Int(l / int64(b))
}

func (a Int) String() string {
	return strconv.FormatInt(int64(a), 10)
}

// must unwraps a checked result or panics with the tagged error.
func must(tag string, v int64, err error) int64 {
	if err != nil {
		panic(fmt.Errorf("%s: %w", tag, err))
	}

	return v
}
