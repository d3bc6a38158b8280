// SPDX-License-Identifier: MIT
// Package smith - interpretation of diagonal matrices as abelian groups.

package smith

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quiverlab/homkit/intmat"
)

// Rendering literals for PrettyForm.
const (
	prettyTrivial = "0"
	prettyFree    = "ℤ"
	prettySum     = " ⊕ "
)

// Explain turns a diagonal matrix into its algebraic invariants: the
// SNF rank, the free rank, the torsion factor list, and a
// human-readable group decomposition.
//
// Reading of the diagonal:
//   - Rank counts all nonzero diagonal entries (bounded by min(r,c)).
//   - Unit entries (|d| == 1) are the ℤ summands of the decomposition:
//     FreeRank counts them and PrettyForm renders them as ℤ^FreeRank.
//   - Entries with |d| > 1 are torsion factors ℤ/|d|, listed ascending.
//   - Zero entries contribute nothing.
//
// Off-diagonal entries are ignored by contract: Explain is a pure
// function of the main diagonal and is meant to be fed the D of a
// Decomposition (where off-diagonal entries are zero by construction).
//
// Determinism: torsion factors are sorted ascending; identical
// diagonals yield identical summaries.
//
// Complexity: O(min(r,c)·log min(r,c)) for the sort.
func Explain(d *intmat.Dense) DiagonalSummary {
	var sum DiagonalSummary
	if d == nil {
		// A nil diagonal explains the trivial group.
		sum.PrettyForm = prettyTrivial

		return sum
	}

	// Single pass over the main diagonal.
	var mag int64
	for _, v := range d.Diagonal() {
		if v == 0 {
			continue
		}
		sum.Rank++
		mag = v
		if mag < 0 {
			mag = -mag
		}
		if mag == 1 {
			sum.FreeRank++ // unit invariant factor → one ℤ summand
		} else {
			sum.TorsionFactors = append(sum.TorsionFactors, mag)
		}
	}
	sort.Slice(sum.TorsionFactors, func(i, j int) bool {
		return sum.TorsionFactors[i] < sum.TorsionFactors[j]
	})

	sum.PrettyForm = renderPretty(sum.FreeRank, sum.TorsionFactors)

	return sum
}

// renderPretty formats "ℤ^r ⊕ ℤ/t1 ⊕ …", collapsing ℤ^1 to ℤ and the
// empty decomposition to "0". Complexity: O(len(torsion)).
func renderPretty(freeRank int, torsion []int64) string {
	var parts []string
	switch {
	case freeRank == 1:
		parts = append(parts, prettyFree)
	case freeRank > 1:
		parts = append(parts, fmt.Sprintf("%s^%d", prettyFree, freeRank))
	}
	for _, t := range torsion {
		parts = append(parts, fmt.Sprintf("%s/%d", prettyFree, t))
	}
	if len(parts) == 0 {
		return prettyTrivial
	}

	return strings.Join(parts, prettySum)
}
