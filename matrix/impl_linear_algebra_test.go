// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the arithmetic kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/stretchr/testify/require"
)

// TestAddSub_FastAndFallback_Match checks both code paths against fixed values.
func TestAddSub_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	a := mustFrom(t, [][]int{{10, 5}, {20, 6}, {30, 7}})
	b := mustFrom(t, [][]int{{1, 2}, {3, 4}, {5, 6}})

	sumFast, err := matrix.Add[int](a, b)
	require.NoError(t, err)
	sumSlow, err := matrix.Add[int](hide[int]{a}, b)
	require.NoError(t, err)
	want := [][]int{{11, 7}, {23, 10}, {35, 13}}
	require.Equal(t, want, sumFast.Grid())
	require.Equal(t, want, sumSlow.Grid())

	diffFast, err := matrix.Sub[int](a, b)
	require.NoError(t, err)
	diffSlow, err := matrix.Sub[int](a, hide[int]{b})
	require.NoError(t, err)
	want = [][]int{{9, 3}, {17, 2}, {25, 1}}
	require.Equal(t, want, diffFast.Grid())
	require.Equal(t, want, diffSlow.Grid())
}

// TestAddSub_DoesNotMutateOperands pins the functional-update contract.
func TestAddSub_DoesNotMutateOperands(t *testing.T) {
	a := mustFrom(t, [][]int{{1, 2}, {3, 4}})
	b := mustFrom(t, [][]int{{5, 6}, {7, 8}})

	_, err := matrix.Add[int](a, b)
	require.NoError(t, err)
	_, err = matrix.Sub[int](a, b)
	require.NoError(t, err)
	_, err = matrix.Mul[int](a, b)
	require.NoError(t, err)

	require.Equal(t, [][]int{{1, 2}, {3, 4}}, a.Grid())
	require.Equal(t, [][]int{{5, 6}, {7, 8}}, b.Grid())
}

// TestAddSub_RoundTrip: (A + B) − B == A for matching shapes.
func TestAddSub_RoundTrip(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		a := randomInts(t, 4, 50, seed)
		b := randomInts(t, 4, 50, seed+100)

		sum, err := matrix.Add[int64](a, b)
		require.NoError(t, err)
		back, err := matrix.Sub[int64](sum, b)
		require.NoError(t, err)

		eq, err := matrix.Equal[int64](back, a)
		require.NoError(t, err)
		require.Truef(t, eq, "seed %d: (A+B)-B != A", seed)
	}
}

// TestElementwise_ShapeMismatch covers Add/Sub/Hadamard guards.
func TestElementwise_ShapeMismatch(t *testing.T) {
	t.Parallel()

	a := mustFrom(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	rowsOff := mustFrom(t, [][]int{{1, 2, 3}})
	colsOff := mustFrom(t, [][]int{{1, 2}, {3, 4}})

	for _, b := range []*matrix.Dense[int]{rowsOff, colsOff} {
		_, err := matrix.Add[int](a, b)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		_, err = matrix.Sub[int](a, b)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		_, err = matrix.Hadamard[int](a, b)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	}
}

// TestKernels_NilOperands ensures nil inputs map to ErrNilMatrix.
func TestKernels_NilOperands(t *testing.T) {
	t.Parallel()

	a := mustFrom(t, [][]int{{1}})
	var nilDense *matrix.Dense[int]

	_, err := matrix.Add[int](nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sub[int](a, nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul[int](nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Scale[int](nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Equal[int](a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestScale multiplies every element by the scalar.
func TestScale(t *testing.T) {
	b := mustFrom(t, [][]int{{10, 5}, {20, 6}, {30, 7}})

	got, err := matrix.Scale[int](b, 20)
	require.NoError(t, err)
	require.Equal(t, [][]int{{200, 100}, {400, 120}, {600, 140}}, got.Grid())

	slow, err := matrix.ScaleBy[int](hide[int]{b}, 20)
	require.NoError(t, err)
	require.Equal(t, got.Grid(), slow.Grid())
}

// TestMul_Rectangular pins shape and values of a 2×3 · 3×2 product.
func TestMul_Rectangular(t *testing.T) {
	t.Parallel()

	a := mustFrom(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := mustFrom(t, [][]int{{10, 5}, {20, 6}, {30, 7}})

	fast, err := matrix.Mul[int](a, b)
	require.NoError(t, err)
	slow, err := matrix.Product[int](hide[int]{a}, hide[int]{b})
	require.NoError(t, err)

	want := [][]int{{140, 38}, {320, 92}}
	require.Equal(t, 2, fast.Rows())
	require.Equal(t, 2, fast.Cols())
	require.Equal(t, want, fast.Grid())
	require.Equal(t, want, slow.Grid())

	// The other order is 3×3.
	ba, err := matrix.Mul[int](b, a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{30, 45, 60}, {44, 70, 96}, {58, 95, 132}}, ba.Grid())
}

// TestMul_InnerMismatch requires A.Cols == B.Rows.
func TestMul_InnerMismatch(t *testing.T) {
	a := mustFrom(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	_, err := matrix.Mul[int](a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul_Identity: I·A == A·I == A.
func TestMul_Identity(t *testing.T) {
	a := randomInts(t, 5, 9, 7)
	id, err := matrix.NewIdentity[int64](5)
	require.NoError(t, err)

	left, err := matrix.Mul[int64](id, a)
	require.NoError(t, err)
	right, err := matrix.Mul[int64](a, id)
	require.NoError(t, err)
	require.Equal(t, a.Grid(), left.Grid())
	require.Equal(t, a.Grid(), right.Grid())
}

// TestMul_AssociativeExact samples (AB)C == A(BC) over int64.
func TestMul_AssociativeExact(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		a := randomInts(t, 4, 20, seed)
		b := randomInts(t, 4, 20, seed+10)
		c := randomInts(t, 4, 20, seed+20)

		ab, err := matrix.Mul[int64](a, b)
		require.NoError(t, err)
		abc1, err := matrix.Mul[int64](ab, c)
		require.NoError(t, err)

		bc, err := matrix.Mul[int64](b, c)
		require.NoError(t, err)
		abc2, err := matrix.Mul[int64](a, bc)
		require.NoError(t, err)

		require.Equalf(t, abc1.Grid(), abc2.Grid(), "seed %d", seed)
	}
}

// TestMul_AssociativeFloat samples rectangular float64 chains within tolerance.
func TestMul_AssociativeFloat(t *testing.T) {
	t.Parallel()

	a := randomFloats(t, 3, 5, 1)
	b := randomFloats(t, 5, 2, 2)
	c := randomFloats(t, 2, 4, 3)

	ab, err := matrix.Mul[float64](a, b)
	require.NoError(t, err)
	left, err := matrix.Mul[float64](ab, c)
	require.NoError(t, err)

	bc, err := matrix.Mul[float64](b, c)
	require.NoError(t, err)
	right, err := matrix.Mul[float64](a, bc)
	require.NoError(t, err)

	ok, err := matrix.AllClose(left, right, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestTranspose swaps shape and indices on both paths.
func TestTranspose(t *testing.T) {
	a := mustFrom(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	fast, err := matrix.Transpose[int](a)
	require.NoError(t, err)
	slow, err := matrix.Transpose[int](hide[int]{a})
	require.NoError(t, err)

	want := [][]int{{1, 4}, {2, 5}, {3, 6}}
	require.Equal(t, want, fast.Grid())
	require.Equal(t, want, slow.Grid())
}

// TestHadamard multiplies cell by cell.
func TestHadamard(t *testing.T) {
	a := mustFrom(t, [][]int{{1, 2}, {3, 4}})
	b := mustFrom(t, [][]int{{5, 6}, {7, 8}})

	got, err := matrix.Hadamard[int](a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{5, 12}, {21, 32}}, got.Grid())
}

// TestEqual covers shape differences and value differences.
func TestEqual(t *testing.T) {
	a := mustFrom(t, [][]int{{1, 2}, {3, 4}})

	eq, err := matrix.Equal[int](a, hide[int]{a.Clone()})
	require.NoError(t, err)
	require.True(t, eq)

	other := mustFrom(t, [][]int{{1, 2}, {3, 5}})
	eq, err = matrix.Equal[int](a, other)
	require.NoError(t, err)
	require.False(t, eq)

	wide := mustFrom(t, [][]int{{1, 2, 3, 4}})
	eq, err = matrix.Equal[int](a, wide)
	require.NoError(t, err)
	require.False(t, eq)
}

// TestComplexElements exercises the kernels over complex128.
func TestComplexElements(t *testing.T) {
	a := mustFrom(t, [][]complex128{{1i, 2}, {0, 1}})

	sq, err := matrix.Mul[complex128](a, a)
	require.NoError(t, err)
	require.Equal(t, [][]complex128{{-1, 2i + 2}, {0, 1}}, sq.Grid())
}

// TestTrace sums the diagonal and rejects non-square input.
func TestTrace(t *testing.T) {
	a := mustFrom(t, [][]int{{1, 2}, {3, 4}})
	tr, err := matrix.Trace[int](a)
	require.NoError(t, err)
	require.Equal(t, 5, tr)

	_, err = matrix.Trace[int](mustFrom(t, [][]int{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestFacades_ZerosAndIdentity checks the constructor facades.
func TestFacades_ZerosAndIdentity(t *testing.T) {
	a := mustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	z, err := matrix.ZerosLike[float64](a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z.Grid())

	_, err = matrix.IdentityLike[float64](a)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	id, err := matrix.NewIdentity[float64](3)
	require.NoError(t, err)
	idLike, err := matrix.IdentityLike[float64](id)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, idLike.Grid())

	empty, err := matrix.NewIdentity[int](0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())

	zeros, err := matrix.NewZeros[uint8](1, 2)
	require.NoError(t, err)
	require.Equal(t, [][]uint8{{0, 0}}, zeros.Grid())
}
