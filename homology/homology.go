// SPDX-License-Identifier: MIT
// Package homology - homology groups from boundary matrices via Smith
// Normal Form.

package homology

import (
	"fmt"
	"math"

	"github.com/quiverlab/homkit/intmat"
	"github.com/quiverlab/homkit/smith"
)

// floatRankEps is the pivot threshold of the rational rank
// cross-check. Boundary entries are tiny integers, so anything below
// this after elimination is numerical dust.
const floatRankEps = 1e-9

// Compute builds the chain complex of q and derives H0 and H1.
// Convenience wrapper around BuildComplex + ComputeComplex.
func Compute(q *Quiver, opts ...Option) (Result, error) {
	cc, err := BuildComplex(q, opts...)
	if err != nil {
		return Result{}, err
	}

	return ComputeComplex(cc)
}

// ComputeComplex derives the homology groups of a built complex.
//
// Implementation:
//  1. Reduce both boundary matrices to Smith Normal Form and read
//     their ranks and invariant factors off the diagonals.
//  2. rank H0 = |C0| - rank ∂1; torsion of H0 comes from the non-unit
//     invariant factors of ∂1.
//  3. rank H1 = |C1| - rank ∂1 - rank ∂2; torsion of H1 comes from
//     the non-unit invariant factors of ∂2.
//  4. Cross-check the exact-integer answer two independent ways:
//     rank H0 must equal the number of connected components of the
//     underlying undirected graph (union-find), and each SNF rank
//     must match a floating-point Gaussian elimination rank.
//
// A nil boundary matrix (empty basis on either side) is read as the
// zero map of rank 0.
//
// Returns ErrInconsistent when a rank goes negative or a cross-check
// disagrees; such a failure is an implementation bug, not a property
// of the input. Kernel errors propagate wrapped.
//
// Determinism: identical complexes yield identical results.
//
// Complexity: dominated by the two SNF reductions.
func ComputeComplex(cc *ChainComplex) (Result, error) {
	const tag = "ComputeComplex"

	if cc == nil {
		return Result{}, fmt.Errorf("%s: %w", tag, ErrNilComplex)
	}

	sum1, err := boundaryInvariants(cc.D1)
	if err != nil {
		return Result{}, fmt.Errorf("%s: ∂1: %w", tag, err)
	}
	sum2, err := boundaryInvariants(cc.D2)
	if err != nil {
		return Result{}, fmt.Errorf("%s: ∂2: %w", tag, err)
	}

	res := Result{
		H0: Group{Rank: len(cc.C0) - sum1.Rank, Torsion: sum1.TorsionFactors},
		H1: Group{Rank: len(cc.C1) - sum1.Rank - sum2.Rank, Torsion: sum2.TorsionFactors},
	}
	if res.H0.Rank < 0 || res.H1.Rank < 0 {
		return Result{}, fmt.Errorf("%s: %w: negative rank (H0=%d, H1=%d)",
			tag, ErrInconsistent, res.H0.Rank, res.H1.Rank)
	}

	// Independent sanity checks against the exact-integer path.
	if comps := componentCount(cc); comps != res.H0.Rank {
		return Result{}, fmt.Errorf("%s: %w: union-find counts %d components, H0 rank is %d",
			tag, ErrInconsistent, comps, res.H0.Rank)
	}
	if fr := floatRank(cc.D1); fr != sum1.Rank {
		return Result{}, fmt.Errorf("%s: %w: rational rank of ∂1 is %d, SNF rank is %d",
			tag, ErrInconsistent, fr, sum1.Rank)
	}
	if fr := floatRank(cc.D2); fr != sum2.Rank {
		return Result{}, fmt.Errorf("%s: %w: rational rank of ∂2 is %d, SNF rank is %d",
			tag, ErrInconsistent, fr, sum2.Rank)
	}

	return res, nil
}

// boundaryInvariants reduces one boundary matrix and verifies the
// decomposition before trusting its diagonal. A nil boundary is the
// zero map: rank 0, no torsion.
func boundaryInvariants(d *intmat.Dense) (smith.DiagonalSummary, error) {
	if d == nil {
		return smith.DiagonalSummary{}, nil
	}
	dec, err := smith.Decompose(d)
	if err != nil {
		return smith.DiagonalSummary{}, err
	}
	cert, err := smith.Verify(d, dec)
	if err != nil {
		return smith.DiagonalSummary{}, err
	}
	if !cert.OK {
		return smith.DiagonalSummary{}, fmt.Errorf("%w: U·A·V differs from D at (%d,%d): got %d want %d",
			ErrInconsistent, cert.Row, cert.Col, cert.Got, cert.Want)
	}

	return smith.Explain(dec.D), nil
}

// componentCount runs union-find with path compression and union by
// rank over the underlying undirected graph: every C1 path links its
// endpoints. The count must agree with rank H0.
func componentCount(cc *ChainComplex) int {
	parent := make([]int, len(cc.C0))
	rank := make([]int, len(cc.C0))
	for i := range parent {
		parent[i] = i
	}

	// Iterative find with path compression.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	nameIdx := make(map[string]int, len(cc.C0))
	for i, name := range cc.C0 {
		nameIdx[name] = i
	}

	comps := len(cc.C0)
	for _, p := range cc.C1 {
		ru, rv := find(nameIdx[p.Src]), find(nameIdx[p.Dst])
		if ru == rv {
			continue
		}
		// Attach the smaller-rank tree under the larger-rank root.
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
		comps--
	}

	return comps
}

// floatRank computes the rank of m over ℚ by partial-pivot Gaussian
// elimination in float64; a nil matrix has rank 0. Entries of
// boundary matrices are tiny, so the fixed epsilon is safe.
// Complexity: O(r·c·min(r,c)).
func floatRank(m *intmat.Dense) int {
	if m == nil {
		return 0
	}
	rows, cols := m.Rows(), m.Cols()
	work := make([][]float64, rows)
	var i, j int // loop iterators (deterministic order)
	for i = 0; i < rows; i++ {
		work[i] = make([]float64, cols)
		for j = 0; j < cols; j++ {
			v, _ := m.At(i, j) // indices in range by construction
			work[i][j] = float64(v)
		}
	}

	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		// Partial pivoting: largest magnitude at or below the frontier.
		pivot := -1
		best := floatRankEps
		for i = rank; i < rows; i++ {
			if abs := math.Abs(work[i][col]); abs > best {
				best = abs
				pivot = i
			}
		}
		if pivot < 0 {
			continue
		}
		work[rank], work[pivot] = work[pivot], work[rank]

		for i = rank + 1; i < rows; i++ {
			factor := work[i][col] / work[rank][col]
			if factor == 0 {
				continue
			}
			for j = col; j < cols; j++ {
				work[i][j] -= factor * work[rank][j]
			}
		}
		rank++
	}

	return rank
}
