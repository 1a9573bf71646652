// SPDX-License-Identifier: MIT
// Package matrix: division-free row reduction and left null spaces.
//
// ToEchelon walks the columns left to right keeping a pivot row r. For each
// column it looks for the first non-zero entry at or below r, swaps it into
// row r and clears the column beneath it by scaling: with pivot a and target
// b, row_i ← d·row_i − c·row_r where (c, d) = (lcm/a, lcm/b). No element is
// ever divided, so the procedure is exact over ℤ as well as over ℤ/Mℤ.
//
// LeftNullSpan reduces the augmentation [A | I]. Each reduced row is some
// combination v·[A | I] = [v·A | v]; a row whose first N entries vanish
// therefore carries in its trailing M entries a vector v with v·A = 0.

package matrix

import "iter"

// FindNonzeroInColFrom returns the first row index ≥ start whose entry in
// column col is non-zero.
func (m *Dense[T]) FindNonzeroInColFrom(col, start int) (int, bool) {
	if col < 0 || col >= m.c {
		return 0, false
	}
	for i := max(start, 0); i < m.r; i++ {
		if !m.data[i*m.c+col].IsZero() {
			return i, true
		}
	}

	return 0, false
}

// FindNonzeroInRowFrom returns the first column index ≥ start whose entry in
// row row is non-zero.
func (m *Dense[T]) FindNonzeroInRowFrom(row, start int) (int, bool) {
	if row < 0 || row >= m.r {
		return 0, false
	}
	for j := max(start, 0); j < m.c; j++ {
		if !m.data[row*m.c+j].IsZero() {
			return j, true
		}
	}

	return 0, false
}

// ToEchelon returns a row echelon form of m; m itself is not modified.
//
// Pivot columns strictly increase down the non-zero rows and every row
// below the last pivot is zero. Applying ToEchelon to its own output
// returns an equal matrix.
//
// Complexity: O(r·c·min(r,c)) ring operations.
func (m *Dense[T]) ToEchelon() *Dense[T] {
	e := m.Clone()
	e.reduce()

	return e
}

// reduce runs the elimination in place.
func (m *Dense[T]) reduce() {
	r := 0
	for j := 0; j < m.c && r < m.r; j++ {
		p, ok := m.FindNonzeroInColFrom(j, r)
		if !ok {
			continue
		}
		m.swapRows(r, p)

		pivotRow := m.row(r)
		a := pivotRow[j]
		for i := r + 1; i < m.r; i++ {
			target := m.row(i)
			b := target[j]
			if b.IsZero() {
				continue
			}
			c, d := a.Cofactors(b)
			for k := range target {
				target[k] = d.Mul(target[k]).Sub(c.Mul(pivotRow[k]))
			}
		}
		r++
	}
}

// Augment returns the r×(c+r) matrix [m | I_r].
func (m *Dense[T]) Augment() *Dense[T] {
	w := m.c + m.r
	res := &Dense[T]{r: m.r, c: w, data: make([]T, m.r*w), unit: m.unit}
	zero, one := m.unit.Zero(), m.unit.One()
	for i := 0; i < m.r; i++ {
		out := res.row(i)
		copy(out, m.row(i))
		for k := m.c; k < w; k++ {
			out[k] = zero
		}
		out[m.c+i] = one
	}

	return res
}

// IterLeftNullSpan yields vectors v with v·m = 0, in echelon row order.
// Each yielded slice has length m.Rows() and is owned by the caller.
//
// Over a field the yielded vectors form a basis of the left null space.
func (m *Dense[T]) IterLeftNullSpan() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		e := m.Augment()
		e.reduce()
		for i := 0; i < e.r; i++ {
			if j, ok := e.FindNonzeroInRowFrom(i, 0); ok && j < m.c {
				continue
			}
			v := make([]T, m.r)
			copy(v, e.row(i)[m.c:])
			if !yield(v) {
				return
			}
		}
	}
}

// LeftNullSpan collects IterLeftNullSpan.
func (m *Dense[T]) LeftNullSpan() [][]T {
	var out [][]T
	for v := range m.IterLeftNullSpan() {
		out = append(out, v)
	}

	return out
}
