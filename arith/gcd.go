// SPDX-License-Identifier: MIT

package arith

import (
	"math"
	"math/bits"
)

// ExtEuclid runs the iterative extended Euclidean algorithm on (a, b).
//
// Two triples (r, s, t) start as (a, 1, 0) and (b, 0, 1). While the second
// remainder is non-zero, the second triple is replaced by
// (r − q·r', s − q·s', t − q·t') with q = r / r' (truncated) and the old second
// triple moves to the first slot. The surviving first triple is returned, so
// a·x + b·y = d always holds. The sign of d follows the Euclid sequence.
func ExtEuclid(a, b int64) (d, x, y int64) {
	r0, s0, t0 := a, int64(1), int64(0)
	r1, s1, t1 := b, int64(0), int64(1)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, s0-q*s1
		t0, t1 = t1, t0-q*t1
	}

	return r0, s0, t0
}

// GCDEuclid returns the d component of ExtEuclid(a, b).
func GCDEuclid(a, b int64) int64 {
	d, _, _ := ExtEuclid(a, b)

	return d
}

// GCDUint is the binary gcd on unsigned words.
// GCDUint(a, 0) = a and GCDUint(0, b) = b.
func GCDUint(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}

	// common power of two, restored at the end
	shift := bits.TrailingZeros64(a | b)
	a >>= bits.TrailingZeros64(a)
	for b != 0 {
		b >>= bits.TrailingZeros64(b)
		if a > b {
			a, b = b, a
		}
		b -= a
	}

	return a << shift
}

// GCD returns the non-negative greatest common divisor of a and b using the
// binary algorithm on magnitudes. GCD(a, 0) = |a| and GCD(0, b) = |b|.
//
// math.MinInt64 is accepted: its magnitude is taken without negation
// overflow. The single unrepresentable result, 2⁶³ (GCD(MinInt64, 0) and
// GCD(MinInt64, MinInt64)), panics with a wrapped ErrOverflow.
func GCD(a, b int64) int64 {
	g := GCDUint(magnitude(a), magnitude(b))
	if g > math.MaxInt64 {
		panic(arithErrorf(opGCD, ErrOverflow))
	}

	return int64(g)
}

// LCM returns |a / gcd(a, b) · b|, or 0 when either argument is 0.
// ErrOverflow is returned when the multiple does not fit in int64.
func LCM(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		return 0, arithErrorf(opLCM, ErrOverflow)
	}

	l, err := MulChecked(a/GCD(a, b), b)
	if err != nil {
		return 0, arithErrorf(opLCM, ErrOverflow)
	}
	if l == math.MinInt64 {
		return 0, arithErrorf(opLCM, ErrOverflow)
	}
	if l < 0 {
		l = -l
	}

	return l, nil
}

// magnitude returns |a| as an unsigned word, exact for math.MinInt64.
func magnitude(a int64) uint64 {
	if a < 0 {
		return uint64(-(a + 1)) + 1
	}

	return uint64(a)
}
