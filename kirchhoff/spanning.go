// SPDX-License-Identifier: MIT

package kirchhoff

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/cofactor/matrix"
)

// CountSpanningTrees returns the number of spanning trees of the undirected
// multigraph (vertices, edges), or under WithWeighted the sum over spanning
// trees of the product of their edge weights.
//
// By the matrix-tree theorem this is det of the Laplacian with row 0 and
// column 0 removed. A single vertex leaves the 0×0 minor, whose determinant
// is taken as 1: the lone vertex is its own spanning tree.
//
// The determinant runs in wrapping int64 arithmetic, which is exact modulo
// 2^64; the result is therefore exact whenever the true count fits. That is
// checked up front against the Hadamard-style bound Π_i Σ_j |m[i,j]|.
//
// Errors: as Laplacian, plus ErrOverflow when the bound exceeds int64.
//
// Complexity: O((V−1)!) for the determinant.
func CountSpanningTrees(vertices []string, edges []Edge, opts ...Option) (int64, error) {
	L, _, err := Laplacian(vertices, edges, opts...)
	if err != nil {
		return 0, kirchhoffErrorf(opCountSpanningTrees, err)
	}
	reduced, err := matrix.Minor[int64](L, 0, 0)
	if err != nil {
		return 0, kirchhoffErrorf(opCountSpanningTrees, err)
	}
	if err = checkDetBound(reduced); err != nil {
		return 0, kirchhoffErrorf(opCountSpanningTrees, err)
	}
	count, err := matrix.Det[int64](reduced, matrix.WithEmptyDeterminantOne())
	if err != nil {
		return 0, kirchhoffErrorf(opCountSpanningTrees, err)
	}

	return count, nil
}

// checkDetBound fails with ErrOverflow unless the product of the row
// L1 norms of m, an upper bound on |det m|, fits in an int64.
func checkDetBound(m *matrix.Dense[int64]) error {
	norms := make([]uint64, m.Rows())
	var carry uint64
	m.Do(func(i, _ int, v int64) bool {
		a := uint64(v)
		if v < 0 {
			a = -a
		}
		norms[i], carry = bits.Add64(norms[i], a, 0)
		return carry == 0
	})
	if carry != 0 {
		return fmt.Errorf("row norm: %w", ErrOverflow)
	}

	bound := uint64(1)
	var hi uint64
	for i, r := range norms {
		if hi, bound = bits.Mul64(bound, r); hi != 0 || bound > math.MaxInt64 {
			return fmt.Errorf("determinant bound after row %d: %w", i, ErrOverflow)
		}
	}

	return nil
}
