// SPDX-License-Identifier: MIT

// Package matrix is a small generic linear-algebra engine over exact rings.
//
// 🚀 What is inside?
//
//	Dense[T] — a fixed-shape, row-major matrix whose entries are any type T
//	satisfying Element[T]: ring.Int for integer work, ring.Residue for work
//	modulo M (GF(2) parity matrices in particular).
//
// ✨ Key features:
//   - Construction: NewDense (zero-filled), NewFromRows, NewIdentity
//   - Safe indexing: At/Set return ErrOutOfRange instead of panicking
//   - Iteration: RowMajor, ColMajor, RowValues, ColValues, Diag (iter.Seq)
//   - Operators: Add, Sub, Mul, Transpose; operands are never mutated
//   - Elimination: ToEchelon, a division-free row reduction that scales rows
//     by LCM cofactors, so it works over rings without inverses
//   - Left null space: Augment and LeftNullSpan / IterLeftNullSpan
//
// ⚙️ Usage:
//
//	A, _ := matrix.NewFromRows(ring.ResidueRows(2, [][]uint64{
//		{0, 0, 0, 1},
//		{0, 0, 0, 0},
//		{1, 1, 1, 0},
//		{1, 1, 1, 1},
//	}))
//	for v := range A.IterLeftNullSpan() {
//		fmt.Println(v) // [1_2 0_2 1_2 1_2], then [0_2 1_2 0_2 0_2]
//	}
//
// Errors:
//
//	All user-triggered failures are sentinel errors (ErrInvalidDimensions,
//	ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrNilMatrix) wrapped
//	with an operation tag; match them with errors.Is.
//
// Complexity:
//
//   - ToEchelon: O(M·N·min(M,N)) ring operations.
//   - LeftNullSpan: ToEchelon on an M×(N+M) augmentation.
package matrix
