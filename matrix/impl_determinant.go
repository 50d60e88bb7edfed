// SPDX-License-Identifier: MIT

// Package matrix - determinant by recursive cofactor (Laplace) expansion.
//
// Purpose:
//   - Compute det(A) for a square A over any Number type with exact T arithmetic.
//   - Expose the expansion line (row or column) so the invariance of the
//     cofactor expansion can be observed directly.
//
// Determinism & Cost:
//   - Fixed column order 0..n-1 at every level, single goroutine, no caches.
//   - n fan-out per level ⇒ O(n!) multiplications; fine up to n≈10.
//     No pivoting, no memoization, no early exit on zero rows.
//
// Recursion state:
//   - Every level owns the (n−1)×(n−1) minors it allocates; they are dropped
//     as soon as their determinant is folded into the accumulator.

package matrix

import "fmt"

const opDet = "Det"

// Det returns the determinant of the square matrix m.
//
// Implementation:
//   - Stage 1: validate m (not nil, square) at entry; resolve options and
//     check the expansion index against n.
//   - Stage 2: convert m to *Dense once (no-op for *Dense inputs).
//   - Stage 3: closed forms for n ≤ 2, otherwise Laplace expansion; the
//     top level walks the configured line, nested levels walk row 0.
//
// Behavior highlights:
//   - n = 0: zero, or one under WithEmptyDeterminantOne.
//   - n = 1: the sole element. n = 2: a00*a11 − a01*a10.
//   - n ≥ 3: Σ_x (−1)^x · a[0,x] · det(M[0,x]) (row 0 by default).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange (expansion index ≥ n, n ≥ 1).
//
// Complexity:
//   - Time O(n!), Space O(n²) live at any depth (one minor per level).
func Det[T Number](m Matrix[T], opts ...Option) (T, error) {
	var zero T
	if err := ValidateSquareNonNil(m); err != nil {
		return zero, matrixErrorf(opDet, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()
	if n > 0 && o.index >= n {
		return zero, matrixErrorf(opDet, fmt.Errorf("expansion %s %d of %d×%d: %w", o.axis, o.index, n, n, ErrOutOfRange))
	}
	d, err := asDense(m)
	if err != nil {
		return zero, matrixErrorf(opDet, err)
	}

	return d.det(o), nil
}

// det dispatches on size and expansion line. d is square, options validated.
func (m *Dense[T]) det(o Options) T {
	switch {
	case m.r == 0:
		if o.emptyOne {
			return one[T]()
		}
		var zero T
		return zero
	case m.r <= 2:
		return m.laplace()
	case o.axis == AxisRow && o.index == 0:
		return m.laplace()
	default:
		return m.expand(o.axis, o.index)
	}
}

// laplace expands along row 0. m is square with n ≥ 1.
func (m *Dense[T]) laplace() T {
	n := m.r
	switch n {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	var acc, term T
	for x := 0; x < n; x++ {
		term = m.minor(0, x).laplace() * m.data[x]
		if x%2 == 0 {
			acc += term
		} else {
			acc -= term // odd column: (−1)^x = −1
		}
	}

	return acc
}

// expand runs one level of cofactor expansion along the given line, then
// hands every minor to laplace. m is square with n ≥ 3 and idx < n.
func (m *Dense[T]) expand(axis Axis, idx int) T {
	n := m.r
	var acc, term T
	var i, j int
	for k := 0; k < n; k++ {
		if axis == AxisRow {
			i, j = idx, k
		} else {
			i, j = k, idx
		}
		term = m.minor(i, j).laplace() * m.data[i*n+j]
		if (i+j)%2 == 0 {
			acc += term
		} else {
			acc -= term
		}
	}

	return acc
}
