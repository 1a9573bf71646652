// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/qsieve/arith"
)

// Residue is the class of v modulo M, stored as its canonical
// representative in [0, M). The zero value is not usable; build residues
// with NewResidue or ResidueOf.
type Residue struct {
	v uint64
	m uint64
}

// NewResidue returns v mod m. Panics when m == 0.
func NewResidue(v, m uint64) Residue {
	if m == 0 {
		panic(ErrZeroModulus)
	}

	return Residue{v: v % m, m: m}
}

// ResidueOf returns the class of a signed value, normalised into [0, m).
func ResidueOf(v int64, m uint64) Residue {
	if m == 0 {
		panic(ErrZeroModulus)
	}
	if v >= 0 {
		return Residue{v: uint64(v) % m, m: m}
	}

	mag := (uint64(-(v + 1)) + 1) % m

	return Residue{v: (m - mag) % m, m: m}
}

// Residues builds a row of residues sharing modulus m.
func Residues(m uint64, vs ...uint64) []Residue {
	out := make([]Residue, len(vs))
	for i, v := range vs {
		out[i] = NewResidue(v, m)
	}

	return out
}

// ResidueRows builds a table of residues sharing modulus m.
func ResidueRows(m uint64, rows [][]uint64) [][]Residue {
	out := make([][]Residue, len(rows))
	for i, r := range rows {
		out[i] = Residues(m, r...)
	}

	return out
}

// Value is the canonical representative in [0, M).
func (r Residue) Value() uint64 { return r.v }

// Modulus is M.
func (r Residue) Modulus() uint64 { return r.m }

func (r Residue) same(o Residue) {
	if r.m != o.m {
		panic(mismatch(r.m, o.m))
	}
}

// Add returns (r+o) mod M.
func (r Residue) Add(o Residue) Residue {
	r.same(o)
	s, carry := bits.Add64(r.v, o.v, 0)
	if carry != 0 || s >= r.m {
		s -= r.m
	}

	return Residue{v: s, m: r.m}
}

// Sub returns (r−o) mod M.
func (r Residue) Sub(o Residue) Residue {
	r.same(o)
	if r.v >= o.v {
		return Residue{v: r.v - o.v, m: r.m}
	}

	return Residue{v: r.m - (o.v - r.v), m: r.m}
}

// Mul returns (r·o) mod M.
func (r Residue) Mul(o Residue) Residue {
	r.same(o)

	return Residue{v: arith.MulMod(r.v, o.v, r.m), m: r.m}
}

// Neg returns −r mod M.
func (r Residue) Neg() Residue {
	if r.v == 0 {
		return r
	}

	return Residue{v: r.m - r.v, m: r.m}
}

// Pow returns r^e mod M.
func (r Residue) Pow(e uint64) Residue {
	acc := r.One()
	b := r.v
	for e > 0 {
		if e&1 == 1 {
			acc.v = arith.MulMod(acc.v, b, r.m)
		}
		b = arith.MulMod(b, b, r.m)
		e >>= 1
	}

	return acc
}

// Inverse returns r⁻¹ when gcd(v, M) = 1. The modulus must fit in int64.
func (r Residue) Inverse() (Residue, bool) {
	x, ok := arith.Inverse(int64(r.v), int64(r.m))
	if !ok {
		return Residue{}, false
	}

	return Residue{v: uint64(x), m: r.m}, true
}

// Equal reports whether both residues are the same class of the same modulus.
func (r Residue) Equal(o Residue) bool { return r.m == o.m && r.v == o.v }

func (r Residue) IsZero() bool { return r.v == 0 }

// Zero is the additive identity for r's modulus.
func (r Residue) Zero() Residue { return Residue{v: 0, m: r.m} }

// One is the multiplicative identity for r's modulus (0 when M = 1).
func (r Residue) One() Residue { return Residue{v: 1 % r.m, m: r.m} }

// Cofactors returns (lcm/a, lcm/b) for the representatives a = r and b = o,
// reduced mod M. Since lcm = a·b/g both cofactors are b/g and a/g, which
// are exact and already below M. A zero on either side yields (0, 1).
func (r Residue) Cofactors(o Residue) (c, d Residue) {
	r.same(o)
	if r.v == 0 || o.v == 0 {
		return r.Zero(), r.One()
	}
	g := arith.GCDUint(r.v, o.v)

	return Residue{v: o.v / g, m: r.m}, Residue{v: r.v / g, m: r.m}
}

// String formats the residue as "v_M".
func (r Residue) String() string {
	return fmt.Sprintf("%d_%d", r.v, r.m)
}
