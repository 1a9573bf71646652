// SPDX-License-Identifier: MIT

package arith

import "math"

// ISqrt returns ⌊√n⌋. The float estimate is corrected in unsigned space, so
// the result is exact over the whole int64 range.
// Panics with a wrapped ErrNegativeRadicand when n < 0.
func ISqrt(n int64) int64 {
	if n < 0 {
		panic(arithErrorf(opISqrt, ErrNegativeRadicand))
	}

	r := uint64(math.Sqrt(float64(n)))
	u := uint64(n)
	for r*r > u {
		r--
	}
	for (r+1)*(r+1) <= u {
		r++
	}

	return int64(r)
}

// CeilSqrt returns ⌈√n⌉.
func CeilSqrt(n int64) int64 {
	r := ISqrt(n)
	if r*r < n {
		r++
	}

	return r
}

// IsSquare reports whether n is a perfect square and returns its root.
func IsSquare(n int64) (root int64, ok bool) {
	if n < 0 {
		return 0, false
	}
	r := ISqrt(n)

	return r, r*r == n
}
