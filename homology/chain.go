// SPDX-License-Identifier: MIT
// Package homology - chain complex construction from a quiver.

package homology

import (
	"fmt"

	"github.com/quiverlab/homkit/intmat"
)

// BuildComplex enumerates the chain bases of a quiver up to the
// configured path length and assembles both boundary matrices.
//
// Implementation:
//  1. Validate the quiver: non-nil, known endpoints, distinct labels,
//     path limit >= 1.
//  2. C0: vertex names deduplicated in first-appearance order.
//  3. C1: paths of length 1..MaxPathLen, enumerated by increasing
//     length; length-1 paths follow edge input order, longer paths
//     extend each existing path by each matching edge in input order.
//     Duplicates (same source, label sequence, destination) are kept
//     once.
//  4. C2: ordered pairs (f, g) of composable C1 paths whose combined
//     length still fits the bound, lexicographic by (f, g). The
//     composite f;g is always a member of C1 by construction.
//  5. D1 gets +1 at the destination and -1 at the source of every C1
//     path; D2 gets +1 at f, +1 at g, and -1 at f;g for every pair.
//     All entries accumulate, so degenerate cells (self-loops, f = g)
//     stay exact.
//
// Returns the immutable complex, or ErrNilQuiver / ErrUnknownVertex /
// ErrDuplicateLabel / ErrBadPathLimit on invalid input.
//
// Determinism: bases and matrices depend only on the quiver's input
// order, never on map iteration.
//
// Complexity: O(|C1|·|E|) path extension plus O(|C1|²) pair scan.
func BuildComplex(q *Quiver, opts ...Option) (*ChainComplex, error) {
	const tag = "BuildComplex"

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if err := validateQuiver(q, options); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	cc := &ChainComplex{}
	vertexIdx := buildVertices(cc, q)
	pathIdx := buildPaths(cc, q, options.MaxPathLen)
	buildPairs(cc, options.MaxPathLen)

	if err := buildBoundaries(cc, vertexIdx, pathIdx); err != nil {
		// Unreachable for validated input; surfaced for completeness.
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return cc, nil
}

// validateQuiver checks the structural preconditions of BuildComplex.
func validateQuiver(q *Quiver, options Options) error {
	if q == nil {
		return ErrNilQuiver
	}
	if options.MaxPathLen < 1 {
		return fmt.Errorf("%w: got %d", ErrBadPathLimit, options.MaxPathLen)
	}

	known := make(map[string]struct{}, len(q.Objects))
	for _, name := range q.Objects {
		known[name] = struct{}{}
	}
	seen := make(map[string]struct{}, len(q.Edges))
	for _, e := range q.Edges {
		if _, ok := known[e.Src]; !ok {
			return fmt.Errorf("%w: %q (edge %q)", ErrUnknownVertex, e.Src, e.Label)
		}
		if _, ok := known[e.Dst]; !ok {
			return fmt.Errorf("%w: %q (edge %q)", ErrUnknownVertex, e.Dst, e.Label)
		}
		if _, dup := seen[e.Label]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, e.Label)
		}
		seen[e.Label] = struct{}{}
	}

	return nil
}

// buildVertices fills C0 with deduplicated vertex names and returns
// the name -> C0 index lookup.
func buildVertices(cc *ChainComplex, q *Quiver) map[string]int {
	idx := make(map[string]int, len(q.Objects))
	for _, name := range q.Objects {
		if _, dup := idx[name]; dup {
			continue // keep the first appearance only
		}
		idx[name] = len(cc.C0)
		cc.C0 = append(cc.C0, name)
	}

	return idx
}

// buildPaths fills C1 with all distinct paths of length 1..maxLen and
// returns the Key -> C1 index lookup.
func buildPaths(cc *ChainComplex, q *Quiver, maxLen int) map[string]int {
	idx := make(map[string]int, len(q.Edges))

	// appendPath registers p unless its key is already present.
	appendPath := func(p Path) {
		key := p.Key()
		if _, dup := idx[key]; dup {
			return
		}
		idx[key] = len(cc.C1)
		cc.C1 = append(cc.C1, p)
	}

	// Length 1: one path per edge, in input order.
	for _, e := range q.Edges {
		appendPath(Path{Src: e.Src, Dst: e.Dst, Labels: []string{e.Label}})
	}

	// Length k: extend every length k-1 path by every matching edge.
	// prevLo..prevHi delimits the previous generation inside cc.C1.
	prevLo := 0
	for length := 2; length <= maxLen; length++ {
		prevHi := len(cc.C1)
		for pi := prevLo; pi < prevHi; pi++ {
			p := cc.C1[pi]
			if p.Len() != length-1 {
				continue
			}
			for _, e := range q.Edges {
				if e.Src != p.Dst {
					continue
				}
				labels := make([]string, 0, length)
				labels = append(labels, p.Labels...)
				labels = append(labels, e.Label)
				appendPath(Path{Src: p.Src, Dst: e.Dst, Labels: labels})
			}
		}
		prevLo = prevHi
	}

	return idx
}

// buildPairs fills C2 with every composable (f, g) pair whose
// combined length fits the bound, lexicographic by index pair.
func buildPairs(cc *ChainComplex, maxLen int) {
	var f, g int // loop iterators (deterministic order)
	for f = 0; f < len(cc.C1); f++ {
		for g = 0; g < len(cc.C1); g++ {
			if cc.C1[f].Dst != cc.C1[g].Src {
				continue
			}
			if cc.C1[f].Len()+cc.C1[g].Len() > maxLen {
				continue
			}
			cc.C2 = append(cc.C2, [2]int{f, g})
		}
	}
}

// buildBoundaries assembles D1 and D2 from the finished bases. A
// boundary with an empty basis on either side stays nil (the zero
// map). ∂1(p) = dst(p) - src(p); ∂2(f, g) = g - f;g + f.
func buildBoundaries(cc *ChainComplex, vertexIdx map[string]int, pathIdx map[string]int) error {
	if len(cc.C0) == 0 || len(cc.C1) == 0 {
		return nil // no edges implies no pairs either
	}
	d1, err := intmat.New(len(cc.C0), len(cc.C1))
	if err != nil {
		return err
	}
	for col, p := range cc.C1 {
		if err = bump(d1, vertexIdx[p.Dst], col, +1); err != nil {
			return err
		}
		if err = bump(d1, vertexIdx[p.Src], col, -1); err != nil {
			return err
		}
	}
	cc.D1 = d1

	if len(cc.C2) == 0 {
		return nil
	}
	d2, err := intmat.New(len(cc.C1), len(cc.C2))
	if err != nil {
		return err
	}
	for col, pair := range cc.C2 {
		f, g := cc.C1[pair[0]], cc.C1[pair[1]]
		composite := Path{
			Src:    f.Src,
			Dst:    g.Dst,
			Labels: append(append([]string{}, f.Labels...), g.Labels...),
		}
		ci, ok := pathIdx[composite.Key()]
		if !ok {
			// Pair admission guarantees the composite fits the bound.
			return fmt.Errorf("%w: composite %s missing from basis", ErrInconsistent, composite)
		}
		if err = bump(d2, pair[0], col, +1); err != nil {
			return err
		}
		if err = bump(d2, pair[1], col, +1); err != nil {
			return err
		}
		if err = bump(d2, ci, col, -1); err != nil {
			return err
		}
	}
	cc.D2 = d2

	return nil
}

// bump accumulates delta into m[row][col].
func bump(m *intmat.Dense, row, col int, delta int64) error {
	v, err := m.At(row, col)
	if err != nil {
		return err
	}

	return m.Set(row, col, v+delta)
}
