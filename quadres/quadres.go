// SPDX-License-Identifier: MIT

package quadres

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qsieve/arith"
)

// ErrPrecondition is carried by the panic raised when SqrtMod is driven
// with a modulus that is not an odd prime.
var ErrPrecondition = errors.New("quadres: precondition violated, p must be prime and n a residue")

// IsQuadraticResidue reports whether n is a non-zero square modulo p.
// For p = 2 it always reports true. n ≡ 0 (mod p) is not a residue.
func IsQuadraticResidue(n, p int64) bool {
	if p == 2 {
		return true
	}

	return arith.PowMod(n, uint64((p-1)/2), p) == 1
}

// Legendre returns (n | p): 1 for residues, −1 for non-residues, 0 when p
// divides n. For p = 2 it returns n mod 2.
func Legendre(n, p int64) int {
	if p == 2 {
		return int(arith.RemEuclid(n, 2))
	}

	switch arith.PowMod(n, uint64((p-1)/2), p) {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return -1
	}
}

// SqrtMod returns both square roots {r, p − r} of n modulo the prime p, or
// ok = false when n is not a quadratic residue.
//
// Algorithm (Tonelli–Shanks):
//  1. p = 2: the double root n mod 2.
//  2. Write p − 1 = q·2^s with q odd.
//  3. s = 1 (p ≡ 3 mod 4): r = n^((p+1)/4).
//  4. Otherwise take the least non-residue z ≥ 2 and set
//     m = s, c = z^q, t = n^q, r = n^((q+1)/2).
//     While t ≠ 1: find the least i ≥ 1 with t^(2^i) = 1, set
//     b = c^(2^(m−i−1)), r ← r·b, c ← b², t ← t·c, m ← i.
//
// Panics with a wrapped ErrPrecondition when no i < m exists, which can
// only happen when p is not prime.
func SqrtMod(n, p int64) (roots [2]int64, ok bool) {
	if p == 2 {
		r := arith.RemEuclid(n, 2)

		return [2]int64{r, r}, true
	}
	if !IsQuadraticResidue(n, p) {
		return roots, false
	}

	q, s := p-1, 0
	for q%2 == 0 {
		q /= 2
		s++
	}

	if s == 1 {
		r := arith.PowMod(n, uint64((p+1)/4), p)

		return [2]int64{r, p - r}, true
	}

	z := int64(2)
	for IsQuadraticResidue(z, p) {
		z++
	}

	mod := uint64(p)
	mul := func(a, b int64) int64 { return int64(arith.MulMod(uint64(a), uint64(b), mod)) }

	m := s
	c := arith.PowMod(z, uint64(q), p)
	t := arith.PowMod(n, uint64(q), p)
	r := arith.PowMod(n, uint64((q+1)/2), p)
	for t != 1 {
		i, t2 := 1, mul(t, t)
		for t2 != 1 {
			t2 = mul(t2, t2)
			i++
			if i >= m {
				panic(fmt.Errorf("SqrtMod(%d, %d): %w", n, p, ErrPrecondition))
			}
		}

		b := c
		for k := 0; k < m-i-1; k++ {
			b = mul(b, b)
		}
		r = mul(r, b)
		c = mul(b, b)
		t = mul(t, c)
		m = i
	}

	return [2]int64{r, p - r}, true
}
