// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/stretchr/testify/require"
)

// TestCofactor_SignPattern checks (−1)^(i+j) on a matrix whose minors are known.
func TestCofactor_SignPattern(t *testing.T) {
	t.Parallel()

	m := mustFrom(t, [][]int{{1, 2, 1}, {0, 3, 4}, {3, 1, 4}})

	tests := []struct {
		i, j int
		want int
	}{
		{0, 0, 3*4 - 4*1},    // +|3 4;1 4|
		{0, 1, -(0*4 - 4*3)}, // −|0 4;3 4|
		{0, 2, 0*1 - 3*3},    // +|0 3;3 1|
		{1, 1, 1*4 - 1*3},    // +|1 1;3 4|
		{2, 1, -(1*4 - 1*0)}, // −|1 1;0 4|
	}
	for _, tc := range tests {
		got, err := matrix.Cofactor[int](m, tc.i, tc.j)
		require.NoError(t, err)
		require.Equalf(t, tc.want, got, "C[%d,%d]", tc.i, tc.j)
	}
}

// TestCofactor_RowExpansion: Σ_j a[0,j]·C[0,j] == det.
func TestCofactor_RowExpansion(t *testing.T) {
	m := randomInts(t, 5, 9, 3)
	var sum int64
	for j := 0; j < 5; j++ {
		c, err := matrix.Cofactor[int64](m, 0, j)
		require.NoError(t, err)
		sum += mustAt[int64](t, m, 0, j) * c
	}
	require.Equal(t, mustDet[int64](t, m), sum)
}

// TestAdjugate_Identity: A · adj(A) == det(A) · I for n = 1..5.
func TestAdjugate_Identity(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 5; n++ {
		a := randomInts(t, n, 7, int64(n*13))
		adj, err := matrix.Adjugate[int64](a)
		require.NoError(t, err)

		prod, err := matrix.Mul[int64](a, adj)
		require.NoError(t, err)

		id, err := matrix.NewIdentity[int64](n)
		require.NoError(t, err)
		want, err := matrix.Scale[int64](id, mustDet[int64](t, a))
		require.NoError(t, err)

		require.Equalf(t, want.Grid(), prod.Grid(), "n=%d", n)
	}
}

// TestAdjugate_TwoByTwo pins the closed form [[d, −b], [−c, a]].
func TestAdjugate_TwoByTwo(t *testing.T) {
	adj, err := matrix.Adjugate[int](mustFrom(t, [][]int{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.Equal(t, [][]int{{4, -2}, {-3, 1}}, adj.Grid())
}

// TestCofactorMatrix_Empty yields the 0×0 matrix.
func TestCofactorMatrix_Empty(t *testing.T) {
	empty, err := matrix.NewDense[int](0, 0)
	require.NoError(t, err)
	c, err := matrix.CofactorMatrix[int](empty)
	require.NoError(t, err)
	require.Equal(t, 0, c.Rows())
}

// TestCofactor_Errors covers the validation order.
func TestCofactor_Errors(t *testing.T) {
	rect := mustFrom(t, [][]int{{1, 2}})
	sq := mustFrom(t, [][]int{{1, 2}, {3, 4}})

	_, err := matrix.Cofactor[int](nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Cofactor[int](rect, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Cofactor[int](sq, 2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.CofactorMatrix[int](rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Adjugate[int](hide[int]{rect})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
