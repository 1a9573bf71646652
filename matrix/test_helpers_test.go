// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures over ring.Int and ring.Residue.
//   • Provide structural checkers (echelon shape, left annihilation).

package matrix_test

import (
	"encoding/binary"
	"testing"

	"github.com/katalvlaran/qsieve/matrix"
	"github.com/katalvlaran/qsieve/ring"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v4/utils"
)

// compile-time interface checks for both element types
var (
	_ matrix.Matrix[ring.Int]     = (*matrix.Dense[ring.Int])(nil)
	_ matrix.Matrix[ring.Residue] = (*matrix.Dense[ring.Residue])(nil)
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface fallback paths of the operators.
type hide[T any] struct{ matrix.Matrix[T] }

// ints builds a Dense[ring.Int] from a literal table.
func ints(t testing.TB, rows [][]int64) *matrix.Dense[ring.Int] {
	t.Helper()
	m, err := matrix.NewFromRows(ring.IntRows(rows))
	require.NoError(t, err)

	return m
}

// residues builds a Dense[ring.Residue] mod mod from a literal table.
func residues(t testing.TB, mod uint64, rows [][]uint64) *matrix.Dense[ring.Residue] {
	t.Helper()
	m, err := matrix.NewFromRows(ring.ResidueRows(mod, rows))
	require.NoError(t, err)

	return m
}

// randomResidues fills an r×c matrix mod mod from a keyed PRNG, so every
// run sees the same matrices for a given key.
func randomResidues(t testing.TB, key string, r, c int, mod uint64) *matrix.Dense[ring.Residue] {
	t.Helper()
	prng, err := utils.NewKeyedPRNG([]byte(key))
	require.NoError(t, err)

	m, err := matrix.NewDense(r, c, ring.NewResidue(0, mod))
	require.NoError(t, err)
	buf := make([]byte, 8)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			_, err = prng.Read(buf)
			require.NoError(t, err)
			require.NoError(t, m.Set(i, j, ring.NewResidue(binary.LittleEndian.Uint64(buf), mod)))
		}
	}

	return m
}

// requireEchelon asserts strictly increasing pivots and trailing zero rows.
func requireEchelon[T matrix.Element[T]](t testing.TB, m *matrix.Dense[T]) {
	t.Helper()
	last := -1
	seenZero := false
	for i := 0; i < m.Rows(); i++ {
		j, ok := m.FindNonzeroInRowFrom(i, 0)
		if !ok {
			seenZero = true
			continue
		}
		require.False(t, seenZero, "non-zero row %d below a zero row", i)
		require.Greater(t, j, last, "pivot of row %d not right of previous pivot", i)
		last = j
	}
}

// requireAnnihilates asserts v·m = 0.
func requireAnnihilates[T matrix.Element[T]](t testing.TB, m *matrix.Dense[T], v []T) {
	t.Helper()
	require.Len(t, v, m.Rows())
	row, err := matrix.NewFromRows([][]T{v})
	require.NoError(t, err)
	prod, err := row.Mul(m)
	require.NoError(t, err)
	require.True(t, prod.IsZero(), "v·A = %s", prod)
}

// rank counts the non-zero rows of the echelon form.
func rank[T matrix.Element[T]](m *matrix.Dense[T]) int {
	e := m.ToEchelon()
	n := 0
	for i := 0; i < e.Rows(); i++ {
		if _, ok := e.FindNonzeroInRowFrom(i, 0); ok {
			n++
		}
	}

	return n
}
