// SPDX-License-Identifier: MIT

package qs

import (
	"github.com/katalvlaran/qsieve/matrix"
	"github.com/katalvlaran/qsieve/ring"
)

// Relation is a smooth value y = x² − n with its factorization over the base.
type Relation struct {
	X, Y int64

	// Exponents[j] is the power of the j-th base prime in Y.
	Exponents []int
}

// Parity returns the exponent vector reduced mod 2.
func (r Relation) Parity() []int {
	out := make([]int, len(r.Exponents))
	for j, e := range r.Exponents {
		out[j] = e & 1
	}

	return out
}

// exponentMatrix lays the exponent vectors out as rows over ℤ.
func exponentMatrix(rels []Relation) (*matrix.Dense[ring.Int], error) {
	rows := make([][]ring.Int, len(rels))
	for i, r := range rels {
		rows[i] = make([]ring.Int, len(r.Exponents))
		for j, e := range r.Exponents {
			rows[i][j] = ring.Int(e)
		}
	}

	return matrix.NewFromRows(rows)
}

// parityMatrix lays the parity vectors out as rows over GF(2).
func parityMatrix(rels []Relation) (*matrix.Dense[ring.Residue], error) {
	rows := make([][]ring.Residue, len(rels))
	for i, r := range rels {
		rows[i] = make([]ring.Residue, len(r.Exponents))
		for j, e := range r.Exponents {
			rows[i][j] = ring.NewResidue(uint64(e&1), 2)
		}
	}

	return matrix.NewFromRows(rows)
}
