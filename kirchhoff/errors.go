// SPDX-License-Identifier: MIT

package kirchhoff

import "errors"

var (
	// ErrEmptyGraph is returned when the vertex set is empty.
	ErrEmptyGraph = errors.New("kirchhoff: empty vertex set")

	// ErrEmptyVertexID indicates a vertex or edge endpoint with an empty ID.
	ErrEmptyVertexID = errors.New("kirchhoff: vertex ID is empty")

	// ErrUnknownVertex indicates an edge endpoint missing from the vertex set.
	ErrUnknownVertex = errors.New("kirchhoff: unknown vertex")

	// ErrBadWeight indicates a non-positive weight under WithWeighted.
	ErrBadWeight = errors.New("kirchhoff: edge weight must be positive")

	// ErrTooManyVertices is returned when the vertex count exceeds the
	// configured maximum.
	ErrTooManyVertices = errors.New("kirchhoff: too many vertices")

	// ErrOverflow indicates a Laplacian entry or the spanning-tree count
	// that cannot be represented exactly in an int64.
	ErrOverflow = errors.New("kirchhoff: int64 overflow")
)
