package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qsieve/matrix"
	"github.com/katalvlaran/qsieve/ring"
	"github.com/stretchr/testify/require"
)

// TestAddSub checks both the Dense fast path and the interface fallback.
func TestAddSub(t *testing.T) {
	t.Parallel()
	a := ints(t, [][]int64{{1, 2}, {3, 4}})
	b := ints(t, [][]int64{{5, 6}, {7, 8}})

	for name, other := range map[string]matrix.Matrix[ring.Int]{
		"dense":    b,
		"fallback": hide[ring.Int]{b},
	} {
		t.Run(name, func(t *testing.T) {
			sum, err := a.Add(other)
			require.NoError(t, err)
			require.True(t, sum.Equal(ints(t, [][]int64{{6, 8}, {10, 12}})))

			diff, err := a.Sub(other)
			require.NoError(t, err)
			require.True(t, diff.Equal(ints(t, [][]int64{{-4, -4}, {-4, -4}})))
		})
	}

	// operands untouched
	require.True(t, a.Equal(ints(t, [][]int64{{1, 2}, {3, 4}})))
}

// TestAddSubErrors covers nil operands and shape mismatch.
func TestAddSubErrors(t *testing.T) {
	t.Parallel()
	a := ints(t, [][]int64{{1, 2}, {3, 4}})
	c := ints(t, [][]int64{{1, 2, 3}})

	_, err := a.Add(c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = a.Sub(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense[ring.Int]
	_, err = a.Add(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul checks products over integers and residues.
func TestMul(t *testing.T) {
	t.Parallel()
	a := ints(t, [][]int64{{1, 2}, {3, 4}})
	b := ints(t, [][]int64{{5, 6}, {7, 8}})
	want := ints(t, [][]int64{{19, 22}, {43, 50}})

	p, err := a.Mul(b)
	require.NoError(t, err)
	require.True(t, p.Equal(want))

	p, err = a.Mul(hide[ring.Int]{b})
	require.NoError(t, err)
	require.True(t, p.Equal(want))

	// 1×3 · 3×2 over Z/5Z
	u := residues(t, 5, [][]uint64{{1, 2, 3}})
	v := residues(t, 5, [][]uint64{{4, 0}, {1, 1}, {2, 3}})
	q, err := u.Mul(v)
	require.NoError(t, err)
	require.Equal(t, "[2_5, 1_5]\n", q.String()) // (4+2+6, 0+2+9) mod 5

	_, err = u.Mul(u)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = a.Mul(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose checks shape swap, involution and that the source is untouched.
func TestTranspose(t *testing.T) {
	t.Parallel()
	m := ints(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	tr := m.Transpose()

	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.True(t, tr.Equal(ints(t, [][]int64{{1, 4}, {2, 5}, {3, 6}})))
	require.True(t, tr.Transpose().Equal(m))

	// (AB)ᵀ = BᵀAᵀ
	b := ints(t, [][]int64{{1, 0}, {2, -1}, {0, 3}})
	ab, err := m.Mul(b)
	require.NoError(t, err)
	btat, err := b.Transpose().Mul(tr)
	require.NoError(t, err)
	require.True(t, ab.Transpose().Equal(btat))
}
