// SPDX-License-Identifier: MIT
// Package matrix: element-wise addition, subtraction, multiplication and
// transpose over any Element type. Every operator allocates a fresh result
// and leaves its operands untouched; validation is fail-fast.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns m + o.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
func (m *Dense[T]) Add(o Matrix[T]) (*Dense[T], error) {
	return m.addSub(o, false, opAdd)
}

// Sub returns m − o.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Sub").
func (m *Dense[T]) Sub(o Matrix[T]) (*Dense[T], error) {
	return m.addSub(o, true, opSub)
}

// addSub computes m ± o element-wise into a fresh Dense.
func (m *Dense[T]) addSub(o Matrix[T], neg bool, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape[T](m, o); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := m.Clone()

	// Fast path: *Dense with *Dense → single flat loop.
	if od, ok := o.(*Dense[T]); ok {
		for idx := range res.data {
			if neg {
				res.data[idx] = res.data[idx].Sub(od.data[idx])
			} else {
				res.data[idx] = res.data[idx].Add(od.data[idx])
			}
		}

		return res, nil
	}

	// Fallback: interface path with fixed i→j order.
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			ov, err := o.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			idx := i*m.c + j
			if neg {
				res.data[idx] = res.data[idx].Sub(ov)
			} else {
				res.data[idx] = res.data[idx].Add(ov)
			}
		}
	}

	return res, nil
}

// Mul returns the matrix product m·o (m.Cols() must equal o.Rows()).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity: O(m.Rows()·m.Cols()·o.Cols()).
func (m *Dense[T]) Mul(o Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil[T](m); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(o); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulShape[T](m, o); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := m.r, m.c, o.Cols()
	res, err := NewDense(rows, cols, m.unit)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Materialise o once when it is not a Dense, then run one kernel.
	od, ok := o.(*Dense[T])
	if !ok {
		od, err = NewDense(inner, cols, m.unit)
		if err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		for k := 0; k < inner; k++ {
			for j := 0; j < cols; j++ {
				v, err := o.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				od.data[k*cols+j] = v
			}
		}
	}

	// i-k-j order: walk the rows of o contiguously.
	for i := 0; i < rows; i++ {
		out := res.row(i)
		for k := 0; k < inner; k++ {
			a := m.data[i*inner+k]
			if a.IsZero() {
				continue
			}
			src := od.row(k)
			for j := range out {
				out[j] = out[j].Add(a.Mul(src[j]))
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ. It is a pure permutation of storage: entries are
// moved, never combined.
func (m *Dense[T]) Transpose() *Dense[T] {
	res := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data)), unit: m.unit}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res
}
