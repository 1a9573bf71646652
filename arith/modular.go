// SPDX-License-Identifier: MIT

package arith

import "math/bits"

// RemEuclid returns the least non-negative remainder of a modulo |m|.
func RemEuclid(a, m int64) int64 {
	r := a % m
	if r < 0 {
		if m < 0 {
			r -= m
		} else {
			r += m
		}
	}

	return r
}

// MulMod returns a·b mod m through a 128-bit intermediate product.
// m must be non-zero.
func MulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)

	return bits.Rem64(hi, lo, m)
}

// Inverse returns x in [0, m) with a·x ≡ 1 (mod m).
// ok is false when gcd(a, m) ≠ 1 or m ≤ 0; that is an expected outcome.
func Inverse(a, m int64) (x int64, ok bool) {
	if m <= 0 {
		return 0, false
	}
	if m == 1 {
		return 0, true
	}

	d, s, _ := ExtEuclid(RemEuclid(a, m), m)
	if d != 1 {
		return 0, false
	}

	return RemEuclid(s, m), true
}

// PowMod computes base^exp mod mod by square-and-multiply over the bits of
// exp, low to high, reducing after every multiplication. Negative bases are
// normalised first. exp = 0 yields 1 mod mod.
//
// Panics with a wrapped ErrNonPositiveModulus when mod ≤ 0.
func PowMod(base int64, exp uint64, mod int64) int64 {
	if mod <= 0 {
		panic(arithErrorf(opPowMod, ErrNonPositiveModulus))
	}
	if mod == 1 {
		return 0
	}

	m := uint64(mod)
	b := uint64(RemEuclid(base, mod))
	r := uint64(1)
	for exp > 0 {
		if exp&1 == 1 {
			r = MulMod(r, b, m)
		}
		b = MulMod(b, b, m)
		exp >>= 1
	}

	return int64(r)
}
