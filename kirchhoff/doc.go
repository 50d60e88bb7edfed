// SPDX-License-Identifier: MIT

// Package kirchhoff counts spanning trees of undirected multigraphs with the
// matrix-tree theorem.
//
// For a connected graph G on n vertices, the number of spanning trees equals
// any cofactor of its Laplacian L = D − A, where D holds the (weighted)
// degrees and A the (weighted) adjacency. This package builds L in exact
// int64 arithmetic and evaluates the (0,0) cofactor with matrix.Det, so the
// answer is exact as long as it fits in an int64.
//
// Conventions:
//
//   - Vertices are identified by non-empty strings, deduplicated and sorted
//     lexicographically; row i of L belongs to the i-th vertex of that order.
//   - Parallel edges accumulate. Self-loops never belong to a spanning tree
//     and are ignored.
//   - A disconnected graph has zero spanning trees; a single vertex has one.
//   - Unweighted by default: every edge counts once. WithWeighted makes the
//     result the sum over spanning trees of the product of edge weights.
//
// The determinant is a cofactor expansion, so cost grows as (n−1)!.
// WithMaxVertices bounds n (DefaultMaxVertices otherwise).
package kirchhoff
