// SPDX-License-Identifier: MIT

// Package matrix - minor extraction.
//
// Purpose:
//   - Produce the (n−1)×(n−1) submatrix left after deleting one row and one
//     column of an n×n matrix, preserving the relative order of the rest.
//   - Serve as the shape-shrinking step of the Laplace expansion in Det.

package matrix

import "fmt"

const opMinor = "Minor"

// Minor returns the submatrix of the square matrix m with row `row` and column
// `col` removed. A 1×1 input yields the 0×0 matrix.
//
// Implementation:
//   - Stage 1: validate m (not nil, square) and 0 ≤ row, col < n.
//   - Stage 2: build the kept index sets (source order, deleted entry skipped).
//   - Stage 3: copy through Induced into a fresh Dense.
//
// Det does not come through here: its recursion uses the unchecked flat
// kernel (*Dense).minor, which produces the same matrix.
//
// Behavior highlights:
//   - Output element order is the source row-major order with the deleted row
//     and column dropped; nothing else moves.
//   - The result never shares storage with m.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange (a 0×0 input always fails here).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Minor[T Number](m Matrix[T], row, col int) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return src.minorInduced(row, col)
}

// minor is the unchecked kernel used by the Laplace recursion: m is square
// and the indices are in range. It runs once per expansion term, so it copies
// row segments directly instead of going through Induced's per-index checks.
func (m *Dense[T]) minor(row, col int) *Dense[T] {
	n := m.r
	k := n - 1
	out := &Dense[T]{r: k, c: k, data: make([]T, k*k)}

	dst := 0
	var i, base int
	for i = 0; i < n; i++ {
		if i == row {
			continue
		}
		base = i * n
		dst += copy(out.data[dst:], m.data[base:base+col])
		dst += copy(out.data[dst:], m.data[base+col+1:base+n])
	}

	return out
}

// keepIndices returns 0..n-1 without skip, in ascending order.
func keepIndices(n, skip int) []int {
	out := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != skip {
			out = append(out, i)
		}
	}

	return out
}

// minorInduced selects the kept rows and columns through Induced.
func (m *Dense[T]) minorInduced(row, col int) (*Dense[T], error) {
	res, err := m.Induced(keepIndices(m.r, row), keepIndices(m.c, col))
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", opMinor, row, col, err)
	}

	return res, nil
}
