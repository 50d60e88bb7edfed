// SPDX-License-Identifier: MIT

// Package matrix - Square: a matrix whose squareness is part of its type.
//
// Go has no integer type parameters, so a shape cannot live in the type the
// way a fixed-size array does. Square does the next best thing: the only way
// to obtain one is through a constructor that checks Rows == Cols, so every
// method can rely on it and Det has no error path at all.

package matrix

const opNewSquare = "NewSquare"

// Square is an n×n matrix of T. The zero value is the 0×0 matrix.
// A Square owns its storage; constructors copy their input.
type Square[T Number] struct {
	d *Dense[T]
}

// NewSquare copies m into a Square.
// Errors: ErrNilMatrix, ErrNonSquare.
func NewSquare[T Number](m Matrix[T]) (Square[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return Square[T]{}, matrixErrorf(opNewSquare, err)
	}
	d, err := asDense(m)
	if err != nil {
		return Square[T]{}, matrixErrorf(opNewSquare, err)
	}
	if d == m {
		d = d.clone() // detach from the caller's *Dense
	}

	return Square[T]{d: d}, nil
}

// NewSquareFrom builds a Square from a row-major grid.
// Errors: ErrBadShape (ragged grid), ErrNonSquare.
func NewSquareFrom[T Number](grid [][]T) (Square[T], error) {
	d, err := FromRows(grid)
	if err != nil {
		return Square[T]{}, matrixErrorf(opNewSquare, err)
	}
	if err = ValidateSquare[T](d); err != nil {
		return Square[T]{}, matrixErrorf(opNewSquare, err)
	}

	return Square[T]{d: d}, nil
}

// dense returns the backing matrix, materializing the zero value as 0×0.
func (s Square[T]) dense() *Dense[T] {
	if s.d == nil {
		return &Dense[T]{}
	}

	return s.d
}

// Size returns n.
func (s Square[T]) Size() int { return s.dense().r }

// At returns element (i, j) or ErrOutOfRange.
func (s Square[T]) At(i, j int) (T, error) { return s.dense().At(i, j) }

// Dense returns an independent copy as *Dense.
func (s Square[T]) Dense() *Dense[T] { return s.dense().clone() }

// String delegates to Dense.String.
func (s Square[T]) String() string { return s.dense().String() }

// Det returns the determinant with the default conventions: row-0 expansion
// and 0 for the 0×0 matrix. It cannot fail.
func (s Square[T]) Det() T {
	return s.dense().det(defaultOptions())
}

// Minor returns the (n−1)×(n−1) Square left after deleting row and col.
// Errors: ErrOutOfRange.
func (s Square[T]) Minor(row, col int) (Square[T], error) {
	d := s.dense()
	if err := ValidateIndex[T](d, row, col); err != nil {
		return Square[T]{}, matrixErrorf(opMinor, err)
	}

	return Square[T]{d: d.minor(row, col)}, nil
}

// Cofactor returns (−1)^(row+col) · det(Minor(row, col)).
// Errors: ErrOutOfRange.
func (s Square[T]) Cofactor(row, col int) (T, error) {
	d := s.dense()
	if err := ValidateIndex[T](d, row, col); err != nil {
		var zero T
		return zero, matrixErrorf(opCofactor, err)
	}

	return d.cofactor(row, col), nil
}
