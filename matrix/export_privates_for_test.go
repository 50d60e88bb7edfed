// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED kernels and the resolved Options to matrix_test ONLY.
//   - Enable white-box verification of the unchecked recursion kernels against
//     the validated public surface, without widening the prod API.
//
// Build Policy:
//   - A _test.go file in package matrix: compiled only by `go test`.

// MinorKernel_TestOnly runs the unchecked flat minor kernel used by Det.
func MinorKernel_TestOnly[T Number](m *Dense[T], row, col int) *Dense[T] {
	return m.minor(row, col)
}

// Laplace_TestOnly runs the row-0 recursion directly (n ≥ 1).
func Laplace_TestOnly[T Number](m *Dense[T]) T {
	return m.laplace()
}

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Axis     Axis
	Index    int
	EmptyOne bool
}

// GatherOptionsSnapshot_TestOnly resolves opts the way Det does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Axis: o.axis, Index: o.index, EmptyOne: o.emptyOne}
}
