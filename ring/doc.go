// SPDX-License-Identifier: MIT

// Package ring provides the two scalar types the matrix engine computes with:
//
//	Int     — the integers over int64, overflow-checked
//	Residue — a residue class v mod M with the modulus carried at runtime
//
// Both satisfy the element contract of package matrix (Add, Sub, Mul, Equal,
// IsZero, Zero, One, Cofactors), so a parity matrix over GF(2) is simply a
// matrix.Dense[ring.Residue] whose entries all carry modulus 2.
//
// Mixing residues with different moduli is a programming error and panics
// with an error wrapping ErrModulusMismatch. An Int operation whose result
// does not fit in int64 panics with an error wrapping arith.ErrOverflow.
//
// Residues print as "v_M":
//
//	ring.NewResidue(3, 7).String() // "3_7"
package ring
