package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/qsieve/matrix"
	"github.com/katalvlaran/qsieve/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestToEchelonIntegers reduces the reference 3×4 integer matrix.
func TestToEchelonIntegers(t *testing.T) {
	t.Parallel()
	a := ints(t, [][]int64{{0, 0, 3, 1}, {2, 2, 1, 1}, {1, 3, 3, 3}})
	want := ints(t, [][]int64{{2, 2, 1, 1}, {0, 4, 5, 5}, {0, 0, 3, 1}})

	e := a.ToEchelon()
	require.True(t, e.Equal(want), "got\n%s", e)
	requireEchelon(t, e)

	// input untouched, reduction idempotent
	require.True(t, a.Equal(ints(t, [][]int64{{0, 0, 3, 1}, {2, 2, 1, 1}, {1, 3, 3, 3}})))
	require.True(t, e.ToEchelon().Equal(e))
}

// TestToEchelonDegenerate covers zero and single-row inputs.
func TestToEchelonDegenerate(t *testing.T) {
	t.Parallel()
	z, err := matrix.NewDense(3, 2, ring.Int(0))
	require.NoError(t, err)
	require.True(t, z.ToEchelon().IsZero())

	row := ints(t, [][]int64{{0, 7, 0}})
	require.True(t, row.ToEchelon().Equal(row))

	dep := ints(t, [][]int64{{1, 2}, {2, 4}, {3, 6}})
	require.True(t, dep.ToEchelon().Equal(ints(t, [][]int64{{1, 2}, {0, 0}, {0, 0}})))
}

// TestAugment checks the [A | I] layout.
func TestAugment(t *testing.T) {
	t.Parallel()
	a := ints(t, [][]int64{{1, 2}, {3, 4}, {5, 6}})
	aug := a.Augment()

	require.Equal(t, 3, aug.Rows())
	require.Equal(t, 5, aug.Cols())
	require.Equal(t, "[1, 2, 1, 0, 0]\n[3, 4, 0, 1, 0]\n[5, 6, 0, 0, 1]\n", aug.String())
}

// TestLeftNullSpanGF2 is the reference parity matrix with two null vectors.
func TestLeftNullSpanGF2(t *testing.T) {
	t.Parallel()
	a := residues(t, 2, [][]uint64{
		{0, 0, 0, 1},
		{0, 0, 0, 0},
		{1, 1, 1, 0},
		{1, 1, 1, 1},
	})

	null := a.LeftNullSpan()
	require.Len(t, null, 2)
	assert.Equal(t, ring.Residues(2, 1, 0, 1, 1), null[0])
	assert.Equal(t, ring.Residues(2, 0, 1, 0, 0), null[1])
	for _, v := range null {
		requireAnnihilates(t, a, v)
	}
}

// TestLeftNullSpanIntegers uses a rank-one integer matrix.
func TestLeftNullSpanIntegers(t *testing.T) {
	t.Parallel()
	a := ints(t, [][]int64{{1, 2}, {2, 4}, {3, 6}})

	null := a.LeftNullSpan()
	require.Equal(t, [][]ring.Int{ring.Ints(-2, 1, 0), ring.Ints(0, 3, -2)}, null)
	for _, v := range null {
		requireAnnihilates(t, a, v)
	}

	full := ints(t, [][]int64{{0, 0, 3, 1}, {2, 2, 1, 1}, {1, 3, 3, 3}})
	require.Empty(t, full.LeftNullSpan()) // full row rank
}

// TestLeftNullSpanEarlyStop checks that the iterator honours break.
func TestLeftNullSpanEarlyStop(t *testing.T) {
	t.Parallel()
	z, err := matrix.NewDense(4, 1, ring.NewResidue(0, 2))
	require.NoError(t, err)

	n := 0
	for range z.IterLeftNullSpan() {
		n++
		break
	}
	require.Equal(t, 1, n)
	require.Len(t, z.LeftNullSpan(), 4)
}

// TestLeftNullSpanRandom checks rank–nullity and annihilation on keyed
// pseudo-random matrices over GF(2) and GF(7).
func TestLeftNullSpanRandom(t *testing.T) {
	t.Parallel()
	for _, mod := range []uint64{2, 7} {
		for _, shape := range [][2]int{{6, 4}, {10, 8}, {12, 12}, {20, 15}} {
			mod, shape := mod, shape
			name := fmt.Sprintf("mod=%d/%dx%d", mod, shape[0], shape[1])
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				a := randomResidues(t, name, shape[0], shape[1], mod)
				requireEchelon(t, a.ToEchelon())
				require.True(t, a.ToEchelon().ToEchelon().Equal(a.ToEchelon()))

				null := a.LeftNullSpan()
				require.Len(t, null, shape[0]-rank(a))
				for _, v := range null {
					requireAnnihilates(t, a, v)
				}
			})
		}
	}
}
