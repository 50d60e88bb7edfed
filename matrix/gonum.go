// SPDX-License-Identifier: MIT

// Package matrix - float64 interop with gonum.
//
// Purpose:
//   - Move float64 matrices in and out of gonum.org/v1/gonum/mat, e.g. to
//     compare the cofactor determinant with gonum's LU-based mat.Det.
//   - Tolerant comparison (AllClose) on top of gonum/floats.
//
// Notes:
//   - gonum cannot represent empty matrices (mat.NewDense panics on a zero
//     dimension), so ToGonum rejects them with ErrInvalidDimensions.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	opFromGonum = "FromGonum"
	opToGonum   = "ToGonum"
	opAllClose  = "AllClose"
)

// FromGonum copies any gonum matrix into a *Dense[float64].
// Errors: ErrNilMatrix (nil, or a typed nil *mat.Dense).
func FromGonum(a mat.Matrix) (*Dense[float64], error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	if d, ok := a.(*mat.Dense); ok && d == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	out, err := NewDense[float64](r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = a.At(i, j)
		}
	}

	return out, nil
}

// ToGonum copies m into a freshly allocated *mat.Dense.
// Errors: ErrNilMatrix, ErrInvalidDimensions (zero rows or cols).
func ToGonum(m Matrix[float64]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, matrixErrorf(opToGonum, fmt.Errorf("%d×%d: %w", m.Rows(), m.Cols(), ErrInvalidDimensions))
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data) // mat.NewDense adopts the slice; keep ours private

	return mat.NewDense(d.r, d.c, buf), nil
}

// AllClose reports whether a and b have the same shape and every pair of
// elements is within tol, absolutely or relatively (floats.EqualApprox).
// NaN never matches.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix[float64], tol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return floats.EqualApprox(da.data, db.data, tol), nil
}
