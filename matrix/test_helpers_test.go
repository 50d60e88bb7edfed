// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep integer fixtures exact so determinant identities hold bit-for-bit.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto the interface (non-*Dense) fallback path.
//
// AI-Hints:
//   - Wrap ONLY the operand you want to de-opt; keep the other one *Dense to
//     isolate path differences.
type hide[T matrix.Number] struct{ matrix.Matrix[T] }

// mustFrom builds a *Dense from a row-major grid or fails the test.
func mustFrom[T matrix.Number](t testing.TB, grid [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(grid)
	require.NoError(t, err)

	return m
}

// mustAt reads (i, j) or fails the test.
func mustAt[T matrix.Number](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// mustDet computes the determinant or fails the test.
func mustDet[T matrix.Number](t testing.TB, m matrix.Matrix[T], opts ...matrix.Option) T {
	t.Helper()
	d, err := matrix.Det(m, opts...)
	require.NoError(t, err)

	return d
}

// randomInts returns an n×n matrix with entries in [-span, span] drawn from a
// seeded source, so every run sees the same fixtures.
func randomInts(t testing.TB, n, span int, seed int64) *matrix.Dense[int64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	grid := make([][]int64, n)
	for i := range grid {
		grid[i] = make([]int64, n)
		for j := range grid[i] {
			grid[i][j] = int64(rng.Intn(2*span+1) - span)
		}
	}

	return mustFrom(t, grid)
}

// randomFloats returns an r×c matrix with entries uniform in [-1, 1).
func randomFloats(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense[float64](r, c)
	require.NoError(t, err)
	m.Apply(func(_, _ int, _ float64) float64 { return 2*rng.Float64() - 1 })

	return m
}
