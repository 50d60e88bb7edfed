// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the determinant engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The expansion line applies to the top level of the recursion only;
//     every nested minor is expanded along row 0.
//   - Whether the expansion index fits the matrix is a property of the input,
//     not of the option, so Det reports it as ErrOutOfRange instead of panicking.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultExpansionAxis expands along a row.
	DefaultExpansionAxis = AxisRow

	// DefaultExpansionIndex is the row (or column) used by the top-level expansion.
	DefaultExpansionIndex = 0

	// DefaultEmptyDeterminantOne selects the 0×0 convention. false ⇒ det = 0
	// (additive identity); true ⇒ det = 1 (multiplicative identity, the
	// mathematically standard value).
	DefaultEmptyDeterminantOne = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicExpansionRowNegative = "matrix: WithExpansionRow: row must be non-negative"
	panicExpansionColNegative = "matrix: WithExpansionCol: col must be non-negative"
)

// Axis selects whether a cofactor expansion walks a row or a column.
type Axis int

const (
	// AxisRow expands along a fixed row i: det = Σ_j (−1)^(i+j) a[i,j] M[i,j].
	AxisRow Axis = iota
	// AxisCol expands along a fixed column j: det = Σ_i (−1)^(i+j) a[i,j] M[i,j].
	AxisCol
)

// String returns "row" or "col".
func (a Axis) String() string {
	if a == AxisCol {
		return "col"
	}

	return "row"
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	axis     Axis // DefaultExpansionAxis
	index    int  // DefaultExpansionIndex
	emptyOne bool // DefaultEmptyDeterminantOne
}

// WithExpansionRow expands the top level along row i.
// Panics if i < 0.
func WithExpansionRow(i int) Option {
	if i < 0 {
		panic(panicExpansionRowNegative)
	}

	return func(o *Options) {
		o.axis = AxisRow
		o.index = i
	}
}

// WithExpansionCol expands the top level along column j.
// Panics if j < 0.
func WithExpansionCol(j int) Option {
	if j < 0 {
		panic(panicExpansionColNegative)
	}

	return func(o *Options) {
		o.axis = AxisCol
		o.index = j
	}
}

// WithEmptyDeterminantOne makes the 0×0 determinant the multiplicative
// identity instead of the additive one.
func WithEmptyDeterminantOne() Option {
	return func(o *Options) { o.emptyOne = true }
}

// defaultOptions returns a fresh Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		axis:     DefaultExpansionAxis,
		index:    DefaultExpansionIndex,
		emptyOne: DefaultEmptyDeterminantOne,
	}
}

// gatherOptions applies opts over the defaults in order; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
