// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros[T Number](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// NewIdentity(0) is the 0×0 matrix.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Number](n int) (*Dense[T], error) {
	id, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order
		id.data[i*n+i] = one[T]()
	}

	return id, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense[T](m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension Rows(m); requires square shape.
func IdentityLike[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity[T](m.Rows())
}

// ---------- Arithmetic aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T Number](a, b Matrix[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Number](a, b Matrix[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T Number](a, b Matrix[T]) (*Dense[T], error) { return Mul(a, b) }

// ScaleBy is an alias for Scale: alpha*m.
func ScaleBy[T Number](m Matrix[T], alpha T) (*Dense[T], error) { return Scale(m, alpha) }

// Determinant is an alias for Det.
func Determinant[T Number](m Matrix[T], opts ...Option) (T, error) { return Det(m, opts...) }

// Trace returns Σ m[i,i] for a square m.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace[T Number](m Matrix[T]) (T, error) {
	var sum T
	if err := ValidateSquareNonNil(m); err != nil {
		return sum, matrixErrorf("Trace", err)
	}
	d, err := asDense(m)
	if err != nil {
		return sum, matrixErrorf("Trace", err)
	}
	for i := 0; i < d.r; i++ {
		sum += d.data[i*d.c+i]
	}

	return sum, nil
}
