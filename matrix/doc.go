// SPDX-License-Identifier: MIT

// Package matrix provides generic dense matrices over numeric element types
// and a determinant computed by recursive cofactor (Laplace) expansion.
//
// The matrix package provides:
//
//   - Dense[T]: a fixed-shape, row-major container with bounds-checked
//     At/Set (0-based indices) and copy-on-construct semantics.
//   - Kernels over the Matrix[T] interface: Add, Sub, Scale, Mul, Transpose,
//     Hadamard. Operands are never mutated; every kernel allocates a fresh
//     *Dense result and takes a flat fast path when both operands are *Dense.
//   - Minor extraction: the (n−1)×(n−1) submatrix left after deleting one row
//     and one column, with the relative order of everything else preserved.
//   - Det: Laplace expansion with closed forms for 0×0, 1×1 and 2×2 and
//     O(n!) recursion above that. No pivoting, no memoization.
//   - Cofactor, CofactorMatrix and Adjugate built on the same engine.
//   - Square[T]: a matrix whose squareness is established once at
//     construction, so its Det cannot fail.
//   - FromGonum / ToGonum for exchanging float64 matrices with gonum.
//
// Conventions:
//
//   - Row-major storage; element (i, j) lives at offset i*cols + j.
//   - The determinant of the 0×0 matrix is the additive identity (zero) unless
//     WithEmptyDeterminantOne is passed.
//   - Arithmetic is exactly T's arithmetic: integer types wrap on overflow,
//     floating-point results carry whatever rounding the operation order
//     produces. Nothing is widened.
//
// Errors are package sentinels (ErrOutOfRange, ErrDimensionMismatch,
// ErrNonSquare, ...) wrapped with the failing operation; match them with
// errors.Is.
package matrix
