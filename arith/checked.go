// SPDX-License-Identifier: MIT

package arith

import "math"

// MulChecked returns a·b or ErrOverflow.
func MulChecked(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, arithErrorf(opMul, ErrOverflow)
	}

	c := a * b
	if c/b != a {
		return 0, arithErrorf(opMul, ErrOverflow)
	}

	return c, nil
}

// AddChecked returns a+b or ErrOverflow.
func AddChecked(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, arithErrorf(opAdd, ErrOverflow)
	}

	return a + b, nil
}

// SubChecked returns a−b or ErrOverflow.
func SubChecked(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, arithErrorf(opSub, ErrOverflow)
	}

	return a - b, nil
}

// Square returns x² or ErrOverflow.
func Square(x int64) (int64, error) {
	return MulChecked(x, x)
}
