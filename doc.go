// Package cofactor is a small, exact linear-algebra toolkit built around the
// classical cofactor (Laplace) expansion of the determinant.
//
// What is inside:
//
//	matrix/      generic Dense[T] matrices over integer, float and complex
//	             element types; Add, Sub, Scale, Mul, Transpose; Minor,
//	             Det, Cofactor, CofactorMatrix, Adjugate; Square[T] with an
//	             infallible Det; float64 interop with gonum.
//	kirchhoff/   spanning-tree counting by the matrix-tree theorem, on top
//	             of matrix.Det in exact int64 arithmetic.
//	examples/    runnable programs.
//
// Why cofactor expansion?
//
//   - Exact: no division, no pivoting. Over integer types the result is the
//     exact determinant (modulo overflow of T).
//   - Generic: works for any type with +, − and ×, including complex.
//   - Transparent: every minor is an ordinary matrix you can inspect.
//
// The price is O(n!) time. For float64 matrices beyond a handful of rows use
// an LU factorization (e.g. gonum's mat.Det); matrix.ToGonum moves data over.
//
// Quick start:
//
//	m, _ := matrix.FromRows([][]int{{1, 2, 1}, {0, 3, 4}, {3, 1, 4}})
//	d, _ := matrix.Det[int](m) // 23
package cofactor
