// SPDX-License-Identifier: MIT

package matrix

import "iter"

// RowMajor yields every entry row by row.
func (m *Dense[T]) RowMajor() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}

// ColMajor yields every entry column by column.
func (m *Dense[T]) ColMajor() iter.Seq[T] {
	return func(yield func(T) bool) {
		for j := 0; j < m.c; j++ {
			for i := 0; i < m.r; i++ {
				if !yield(m.data[i*m.c+j]) {
					return
				}
			}
		}
	}
}

// RowValues yields the entries of row i; an invalid i yields nothing.
func (m *Dense[T]) RowValues(i int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if i < 0 || i >= m.r {
			return
		}
		for _, v := range m.row(i) {
			if !yield(v) {
				return
			}
		}
	}
}

// ColValues yields the entries of column j; an invalid j yields nothing.
func (m *Dense[T]) ColValues(j int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if j < 0 || j >= m.c {
			return
		}
		for i := 0; i < m.r; i++ {
			if !yield(m.data[i*m.c+j]) {
				return
			}
		}
	}
}

// Diag yields m[i][i] for i < min(rows, cols).
func (m *Dense[T]) Diag() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < m.r && i < m.c; i++ {
			if !yield(m.data[i*m.c+i]) {
				return
			}
		}
	}
}
