// SPDX-License-Identifier: MIT

// Package matrix - cofactors and the adjugate.
//
// Purpose:
//   - C[i,j] = (−1)^(i+j) · det(M[i,j]) for every position of a square matrix.
//   - adj(A) = Cᵀ, so that A · adj(A) = det(A) · I.
//
// Notes:
//   - The cofactor of a 1×1 matrix is 1: the empty minor's determinant is
//     taken as the multiplicative identity here, whatever Det's 0×0 default,
//     because that is what keeps A · adj(A) = det(A) · I true for n = 1.

package matrix

const (
	opCofactor       = "Cofactor"
	opCofactorMatrix = "CofactorMatrix"
	opAdjugate       = "Adjugate"
)

// Cofactor returns (−1)^(i+j) · det(Minor(m, i, j)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
//
// Complexity:
//   - Time O((n−1)!), Space O(n²).
func Cofactor[T Number](m Matrix[T], i, j int) (T, error) {
	var zero T
	if err := ValidateSquareNonNil(m); err != nil {
		return zero, matrixErrorf(opCofactor, err)
	}
	if err := ValidateIndex(m, i, j); err != nil {
		return zero, matrixErrorf(opCofactor, err)
	}
	d, err := asDense(m)
	if err != nil {
		return zero, matrixErrorf(opCofactor, err)
	}

	return d.cofactor(i, j), nil
}

// cofactor is the unchecked kernel: d is square, n ≥ 1, indices in range.
func (m *Dense[T]) cofactor(i, j int) T {
	var c T
	if m.r == 1 {
		c = one[T]()
	} else {
		c = m.minor(i, j).laplace()
	}
	if (i+j)%2 != 0 {
		var zero T
		c = zero - c
	}

	return c
}

// CofactorMatrix returns C with C[i,j] = Cofactor(m, i, j). The 0×0 input
// yields the 0×0 matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n² · (n−1)!), Space O(n²).
func CofactorMatrix[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactorMatrix, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactorMatrix, err)
	}

	n := d.r
	res := &Dense[T]{r: n, c: n, data: make([]T, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = d.cofactor(i, j)
		}
	}

	return res, nil
}

// Adjugate returns the classical adjoint adj(m) = CofactorMatrix(m)ᵀ.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Adjugate[T Number](m Matrix[T]) (*Dense[T], error) {
	c, err := CofactorMatrix(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose[T](c)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}
