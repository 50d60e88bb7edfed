// SPDX-License-Identifier: MIT

// Package matrix: element constraint and the public Matrix interface.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "golang.org/x/exp/constraints"

// Number is the capability set an element type must provide: + − ×, the zero
// value as additive identity and the untyped constant 1 as multiplicative
// identity. Integers, floats and complex numbers all qualify.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Matrix is a two-dimensional mutable array of T values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T Number] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix[T]
}

// one returns the multiplicative identity of T.
func one[T Number]() T { return T(1) }
