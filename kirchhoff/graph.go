// SPDX-License-Identifier: MIT

// Package kirchhoff - gonum graph adapter.
//
// Purpose:
//   - Accept graphs built with gonum.org/v1/gonum/graph (simple or multi)
//     and flatten them into the vertex/edge form used by Laplacian.
//
// Determinism:
//   - Nodes are visited in ascending ID order, neighbors likewise, so the
//     edge list does not depend on gonum's map iteration.

package kirchhoff

import (
	"cmp"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/graph"
)

const opFromGraph = "FromGraph"

// FromGraph converts an undirected gonum graph into vertex IDs (node IDs in
// decimal) and edges. Multigraphs contribute one Edge per line. Edges that
// carry a weight (graph.WeightedEdge, graph.WeightedLine) keep it; the
// weight must be a positive integer. Unweighted edges get Weight 1.
// Self-loops are dropped.
//
// Errors:
//   - ErrEmptyGraph (no nodes), ErrBadWeight.
//
// Complexity:
//   - Time O(V log V + E log E).
func FromGraph(g graph.Undirected) ([]string, []Edge, error) {
	if g == nil {
		return nil, nil, kirchhoffErrorf(opFromGraph, ErrEmptyGraph)
	}
	nodes := sortedNodes(g.Nodes())
	if len(nodes) == 0 {
		return nil, nil, kirchhoffErrorf(opFromGraph, ErrEmptyGraph)
	}
	mg, isMulti := g.(graph.UndirectedMultigraph)

	vertices := make([]string, len(nodes))
	var edges []Edge
	for i, u := range nodes {
		uid := u.ID()
		vertices[i] = strconv.FormatInt(uid, 10)
		for _, v := range sortedNodes(g.From(uid)) {
			vid := v.ID()
			if vid <= uid {
				continue // each undirected pair once; loops dropped
			}
			from, to := vertices[i], strconv.FormatInt(vid, 10)
			if isMulti {
				for _, l := range graph.LinesOf(mg.LinesBetween(uid, vid)) {
					w, err := integralWeight(l)
					if err != nil {
						return nil, nil, kirchhoffErrorf(opFromGraph, fmt.Errorf("line %d %s–%s: %w", l.ID(), from, to, err))
					}
					edges = append(edges, Edge{From: from, To: to, Weight: w})
				}
				continue
			}
			w, err := integralWeight(g.EdgeBetween(uid, vid))
			if err != nil {
				return nil, nil, kirchhoffErrorf(opFromGraph, fmt.Errorf("edge %s–%s: %w", from, to, err))
			}
			edges = append(edges, Edge{From: from, To: to, Weight: w})
		}
	}

	return vertices, edges, nil
}

// sortedNodes drains it and orders the nodes by ID.
func sortedNodes(it graph.Nodes) []graph.Node {
	nodes := graph.NodesOf(it)
	slices.SortFunc(nodes, func(a, b graph.Node) int { return cmp.Compare(a.ID(), b.ID()) })

	return nodes
}

// integralWeight returns 1 for unweighted edges, otherwise the weight as an
// int64 when it is a positive integer.
func integralWeight(e any) (int64, error) {
	we, ok := e.(interface{ Weight() float64 })
	if !ok {
		return 1, nil
	}
	w := we.Weight()
	if w <= 0 || w != math.Trunc(w) || w >= math.MaxInt64 {
		return 0, fmt.Errorf("weight %v: %w", w, ErrBadWeight)
	}

	return int64(w), nil
}
