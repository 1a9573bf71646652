// SPDX-License-Identifier: MIT

package primes

import "iter"

// IsPrime reports whether p is prime by trial division with every d in
// [2, ⌊√p⌋].
func IsPrime(p int64) bool {
	if p < 2 {
		return false
	}
	for d := int64(2); d <= p/d; d++ {
		if p%d == 0 {
			return false
		}
	}

	return true
}

// Sequence yields the primes ≥ start in ascending order, without end.
func Sequence(start int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for p := max(start, 2); ; p++ {
			if IsPrime(p) && !yield(p) {
				return
			}
		}
	}
}
