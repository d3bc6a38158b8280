// SPDX-License-Identifier: MIT
// Package homology - public types, sentinel errors, and options for
// quiver chain complexes.

package homology

import (
	"errors"
	"strings"

	"github.com/quiverlab/homkit/intmat"
)

// Sentinel errors returned by BuildComplex and Compute.
// Match with errors.Is.
var (
	// ErrNilQuiver is returned when the input quiver is nil.
	ErrNilQuiver = errors.New("homology: nil quiver")

	// ErrUnknownVertex is returned when an edge endpoint does not
	// appear in the quiver's object list.
	ErrUnknownVertex = errors.New("homology: edge endpoint not in object list")

	// ErrDuplicateLabel is returned when two edges share a label.
	// Labels identify edges, so a path's label sequence must resolve
	// to exactly one walk through the quiver.
	ErrDuplicateLabel = errors.New("homology: duplicate edge label")

	// ErrBadPathLimit is returned when the configured maximum path
	// length is smaller than 1.
	ErrBadPathLimit = errors.New("homology: max path length must be >= 1")

	// ErrNilComplex is returned by ComputeComplex on a nil complex.
	ErrNilComplex = errors.New("homology: nil chain complex")

	// ErrInconsistent is returned when a redundant cross-check (rank
	// formula nonnegativity, union-find component count, rational
	// rank) disagrees with the exact-integer computation. It signals
	// an implementation bug, never a property of the input.
	ErrInconsistent = errors.New("homology: integer and cross-check computations disagree")
)

// keySep separates the fields of a Path key. It may not occur in
// vertex names or labels fed through BuildComplex without risking key
// collisions; the builder does not police this because collisions
// require adversarial inputs.
const keySep = "\x1f"

// Edge is a labeled directed arrow of a quiver.
type Edge struct {
	Src   string // source vertex
	Dst   string // destination vertex
	Label string // unique edge identifier
}

// Quiver is a finite labeled directed multigraph: the input of
// BuildComplex. Self-loops and parallel edges are allowed; labels
// must be pairwise distinct.
type Quiver struct {
	Objects []string // vertex names; duplicates are dropped, order kept
	Edges   []Edge
}

// Path is a composable walk through a quiver, recorded as its label
// sequence plus the resolved endpoints. Paths are the 1-simplices of
// the complex regardless of their length.
type Path struct {
	Src    string
	Dst    string
	Labels []string // edge labels in traversal order, length >= 1
}

// Len returns the number of edges in the path.
func (p Path) Len() int { return len(p.Labels) }

// Key returns the deduplication key: source, label sequence, and
// destination joined with a non-printable separator.
func (p Path) Key() string {
	parts := make([]string, 0, len(p.Labels)+2)
	parts = append(parts, p.Src)
	parts = append(parts, p.Labels...)
	parts = append(parts, p.Dst)

	return strings.Join(parts, keySep)
}

// String renders "src -a;b-> dst" for debugging and test output.
func (p Path) String() string {
	return p.Src + " -" + strings.Join(p.Labels, ";") + "-> " + p.Dst
}

// ChainComplex holds the chain bases and boundary matrices built from
// a quiver. Immutable after BuildComplex returns.
//
// Bases:
//   - C0: vertices, in first-appearance order.
//   - C1: distinct paths of length 1..maxPathLen, shorter first.
//   - C2: composable path pairs (f, g) with Len(f)+Len(g) <= maxPathLen,
//     as index pairs into C1, lexicographic by (f, g).
//
// Boundaries:
//   - D1 is |C0| x |C1| with column p carrying +1 at Dst(p) and -1 at
//     Src(p), accumulated (a self-loop contributes a zero column).
//   - D2 is |C1| x |C2| with column (f, g) carrying +1 at f, +1 at g,
//     and -1 at the composite f;g, accumulated.
//
// A boundary matrix is nil when either of its bases is empty; callers
// read a nil boundary as the zero map of rank 0.
type ChainComplex struct {
	C0 []string
	C1 []Path
	C2 [][2]int

	D1 *intmat.Dense
	D2 *intmat.Dense
}

// Group describes one homology group H_n as rank (number of ℤ
// summands) plus the list of torsion factors, ascending.
type Group struct {
	Rank    int
	Torsion []int64
}

// Result bundles the homology groups computed from a quiver complex.
type Result struct {
	H0 Group
	H1 Group
}

// DefaultMaxPathLen bounds path enumeration when no option overrides
// it.
const DefaultMaxPathLen = 2

// Options configures chain complex construction.
// Use DefaultOptions() to get the default setup.
type Options struct {
	// MaxPathLen bounds the length of enumerated paths; must be >= 1.
	MaxPathLen int
}

// Option mutates Options. All Option functions modify the pointed
// Options in place.
type Option func(*Options)

// WithMaxPathLen returns an Option that sets the path length bound.
// Values below 1 surface as ErrBadPathLimit at build time.
func WithMaxPathLen(n int) Option {
	return func(opts *Options) {
		opts.MaxPathLen = n
	}
}

// DefaultOptions returns Options with MaxPathLen = DefaultMaxPathLen.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{MaxPathLen: DefaultMaxPathLen}
}
