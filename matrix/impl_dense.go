// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row"
	ctxCol = "Col"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf adds method and coordinates to an underlying error.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix over an Element type.
// Dimensions are fixed at construction; storage is owned exclusively.
type Dense[T Element[T]] struct {
	r, c int // row and column counts (> 0)
	data []T // contiguous row-major storage (len == r*c)
	unit T   // prototype element; Zero() and One() are taken from it
}

// NewDense returns a rows×cols matrix filled with unit.Zero().
// unit only supplies the element parameters (e.g. the modulus).
//
// Errors:
//   - ErrInvalidDimensions if rows <= 0 or cols <= 0.
//
// Complexity: O(rows*cols).
func NewDense[T Element[T]](rows, cols int, unit T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	z := unit.Zero()
	buf := make([]T, rows*cols)
	for i := range buf {
		buf[i] = z
	}

	return &Dense[T]{r: rows, c: cols, data: buf, unit: z}, nil
}

// NewFromRows copies a non-empty rectangular table into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions if the table or its first row is empty.
//   - ErrBadShape if rows have different lengths.
func NewFromRows[T Element[T]](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}

	m, err := NewDense(len(rows), len(rows[0]), rows[0][0])
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d entries, want %d: %w", i, len(row), m.c, ErrBadShape)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// NewIdentity returns the n×n identity built from unit.One().
func NewIdentity[T Element[T]](n int, unit T) (*Dense[T], error) {
	m, err := NewDense(n, n, unit)
	if err != nil {
		return nil, err
	}
	one := unit.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return m.unit, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy; the result shares no storage with m.
func (m *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: buf, unit: m.unit}
}

// Equal reports whether o has the same shape and equal entries.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}

	return true
}

// IsZero reports whether every entry is zero.
func (m *Dense[T]) IsZero() bool {
	for _, v := range m.data {
		if !v.IsZero() {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line: "[a, b, c]\n".
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// row returns the live storage of row i (no copy, no bounds check).
func (m *Dense[T]) row(i int) []T {
	return m.data[i*m.c : (i+1)*m.c]
}

// swapRows exchanges rows i and k in place.
func (m *Dense[T]) swapRows(i, k int) {
	if i == k {
		return
	}
	ri, rk := m.row(i), m.row(k)
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}
}
