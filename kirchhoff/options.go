// SPDX-License-Identifier: MIT

package kirchhoff

const (
	// DefaultWeighted counts every edge once regardless of Edge.Weight.
	DefaultWeighted = false

	// DefaultMaxVertices bounds the vertex count. The (0,0) cofactor of a
	// 10-vertex Laplacian is a 9×9 expansion, a few hundred thousand minors.
	DefaultMaxVertices = 10
)

const panicMaxVerticesNonPositive = "kirchhoff: WithMaxVertices: n must be ≥ 1"

// Option configures Laplacian and CountSpanningTrees.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	weighted    bool
	maxVertices int
}

// WithWeighted uses Edge.Weight as the edge multiplicity. Weights must be
// positive. The count is a product of weights per tree, so it outgrows int64
// quickly: with maximum weighted degree d on V vertices, expect ErrOverflow
// once (2d)^(V−1) approaches 2^63.
func WithWeighted() Option {
	return func(o *Options) { o.weighted = true }
}

// WithMaxVertices sets the largest accepted vertex count.
// Panics if n < 1.
func WithMaxVertices(n int) Option {
	if n < 1 {
		panic(panicMaxVerticesNonPositive)
	}

	return func(o *Options) { o.maxVertices = n }
}

// gatherOptions applies opts over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{weighted: DefaultWeighted, maxVertices: DefaultMaxVertices}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
