// SPDX-License-Identifier: MIT

// Package kirchhoff - Laplacian construction.
//
// Implementation:
//   - Stage 1: validate and canonicalize the vertex set (dedupe + sort).
//   - Stage 2: index vertices; validate every edge before touching L.
//   - Stage 3: accumulate −w off-diagonal and +w on both diagonals per edge.
//
// Determinism:
//   - Row order is the sorted vertex order, independent of input order.
//   - Edges are folded in input order; integer sums do not depend on it.

package kirchhoff

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cofactor/matrix"
	"golang.org/x/exp/slices"
)

const (
	opLaplacian          = "Laplacian"
	opCountSpanningTrees = "CountSpanningTrees"
)

// Edge is an undirected edge between two vertex IDs. Weight is read only
// under WithWeighted.
type Edge struct {
	From, To string
	Weight   int64
}

// kirchhoffErrorf wraps err with the operation tag.
func kirchhoffErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Laplacian returns L = D − A for the undirected multigraph (vertices, edges)
// together with the vertex order of its rows.
//
// Behavior highlights:
//   - Duplicate vertex IDs collapse; the returned order is lexicographic.
//   - Parallel edges add up; self-loops are validated, then skipped.
//   - Every row of L sums to zero.
//
// Errors:
//   - ErrEmptyGraph, ErrEmptyVertexID, ErrTooManyVertices, ErrUnknownVertex,
//     ErrBadWeight (weighted mode only), ErrOverflow (a degree exceeds int64).
//
// Complexity:
//   - Time O(V log V + V² + E), Space O(V²).
func Laplacian(vertices []string, edges []Edge, opts ...Option) (*matrix.Dense[int64], []string, error) {
	o := gatherOptions(opts...)

	order, err := canonicalVertices(vertices, o.maxVertices)
	if err != nil {
		return nil, nil, kirchhoffErrorf(opLaplacian, err)
	}
	index := make(map[string]int, len(order))
	for i, id := range order {
		index[id] = i
	}

	n := len(order)
	L, err := matrix.NewDense[int64](n, n)
	if err != nil {
		return nil, nil, kirchhoffErrorf(opLaplacian, err)
	}

	var u, v int
	var w int64
	for k, e := range edges {
		if u, v, w, err = resolveEdge(index, e, o.weighted); err != nil {
			return nil, nil, kirchhoffErrorf(opLaplacian, fmt.Errorf("edge %d %q–%q: %w", k, e.From, e.To, err))
		}
		if u == v {
			continue // loops are never part of a spanning tree
		}
		for _, c := range [4]struct {
			i, j int
			w    int64
		}{{u, u, w}, {v, v, w}, {u, v, -w}, {v, u, -w}} {
			if err = addTo(L, c.i, c.j, c.w); err != nil {
				return nil, nil, kirchhoffErrorf(opLaplacian, fmt.Errorf("edge %d %q–%q: %w", k, e.From, e.To, err))
			}
		}
	}

	return L, order, nil
}

// canonicalVertices validates ids and returns them sorted without duplicates.
func canonicalVertices(ids []string, limit int) ([]string, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyGraph
	}
	for _, id := range ids {
		if id == "" {
			return nil, ErrEmptyVertexID
		}
	}
	order := slices.Clone(ids)
	slices.Sort(order)
	order = slices.Compact(order)
	if len(order) > limit {
		return nil, fmt.Errorf("%d vertices, limit %d: %w", len(order), limit, ErrTooManyVertices)
	}

	return order, nil
}

// resolveEdge maps e to row indices and its effective weight.
func resolveEdge(index map[string]int, e Edge, weighted bool) (int, int, int64, error) {
	if e.From == "" || e.To == "" {
		return 0, 0, 0, ErrEmptyVertexID
	}
	u, ok := index[e.From]
	if !ok {
		return 0, 0, 0, fmt.Errorf("%q: %w", e.From, ErrUnknownVertex)
	}
	v, ok := index[e.To]
	if !ok {
		return 0, 0, 0, fmt.Errorf("%q: %w", e.To, ErrUnknownVertex)
	}
	if !weighted {
		return u, v, 1, nil
	}
	if e.Weight <= 0 {
		return 0, 0, 0, fmt.Errorf("weight %d: %w", e.Weight, ErrBadWeight)
	}

	return u, v, e.Weight, nil
}

// addTo performs L[i,j] += w, failing with ErrOverflow when the sum leaves
// the int64 range.
func addTo(L *matrix.Dense[int64], i, j int, w int64) error {
	cur, err := L.At(i, j)
	if err != nil {
		return err
	}
	if (w > 0 && cur > math.MaxInt64-w) || (w < 0 && cur < math.MinInt64-w) {
		return fmt.Errorf("L[%d,%d] %d%+d: %w", i, j, cur, w, ErrOverflow)
	}

	return L.Set(i, j, cur+w)
}
