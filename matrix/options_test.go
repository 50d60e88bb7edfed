// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies the resolved defaults equal the Default* constants.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()

	require.Equal(t, matrix.DefaultExpansionAxis, o.Axis)
	require.Equal(t, matrix.DefaultExpansionIndex, o.Index)
	require.Equal(t, matrix.DefaultEmptyDeterminantOne, o.EmptyOne)
}

// 2) TestGatherOptions_LastWins ensures later options override earlier ones.
func TestGatherOptions_LastWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithExpansionRow(3), matrix.WithExpansionCol(1))
	require.Equal(t, matrix.AxisCol, o.Axis)
	require.Equal(t, 1, o.Index)
	require.False(t, o.EmptyOne)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithExpansionCol(1), matrix.WithExpansionRow(2))
	require.Equal(t, matrix.AxisRow, o.Axis)
	require.Equal(t, 2, o.Index)
}

// 3) TestGatherOptions_SkipsNil tolerates nil entries.
func TestGatherOptions_SkipsNil(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(nil, matrix.WithEmptyDeterminantOne(), nil)
	require.True(t, o.EmptyOne)
	require.Equal(t, matrix.DefaultExpansionAxis, o.Axis)
}

// 4) TestOptions_PanicOnNegative: negative lines are programmer errors.
func TestOptions_PanicOnNegative(t *testing.T) {
	assert.Panics(t, func() { _ = matrix.WithExpansionRow(-1) })
	assert.Panics(t, func() { _ = matrix.WithExpansionCol(-2) })
	assert.NotPanics(t, func() { _ = matrix.WithExpansionRow(0) })
}

func TestAxis_String(t *testing.T) {
	require.Equal(t, "row", matrix.AxisRow.String())
	require.Equal(t, "col", matrix.AxisCol.String())
}
