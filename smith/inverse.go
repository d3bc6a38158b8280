// SPDX-License-Identifier: MIT
// Package smith - exact inverse of unimodular integer matrices.

package smith

import (
	"github.com/quiverlab/homkit/intmat"
)

// opInverse tags wrapped errors originating in UnimodularInverse.
const opInverse = "UnimodularInverse"

// UnimodularInverse computes M⁻¹ for a square integer matrix M with
// det(M) = ±1. The inverse of a unimodular matrix is again an integer
// matrix, which is what lets the computation stay exact.
//
// Implementation:
//   - Stage 1: validate (non-nil, square); clone M; set inv := I.
//   - Stage 2: forward pass — for each column j, find a nonzero entry
//     at or below row j (ErrSingular if none), swap it up, then
//     Bézout-eliminate every entry below it: entries must remain exact
//     integers throughout, so plain elimination with division is not an
//     option. Both row operations are mirrored onto inv.
//   - Stage 3: backward pass — normalize each pivot's sign, assert
//     |pivot| == 1 (ErrNotUnimodular otherwise — a correctness check,
//     not a recoverable condition), and subtract integer multiples to
//     clear entries above the diagonal.
//
// Behavior highlights:
//   - The input is never mutated; the returned matrix is fresh.
//   - ErrNotUnimodular signals a contract violation by the caller
//     (the input's determinant was not ±1).
//
// Errors:
//   - intmat.ErrNilMatrix, intmat.ErrDimensionMismatch (non-square).
//   - ErrSingular (no nonzero pivot candidate in some column).
//   - ErrNotUnimodular (a pivot with |pivot| != 1 after full reduction).
//
// Determinism:
//   - Fixed column order, first nonzero candidate wins; identical
//     inputs yield identical inverses.
//
// Complexity:
//   - Time O(n³·log(max|m_ij|)), Space O(n²).
func UnimodularInverse(m *intmat.Dense) (*intmat.Dense, error) {
	// Validate: non-nil and square.
	if err := intmat.ValidateSquare(m); err != nil {
		return nil, smithErrorf(opInverse, err)
	}

	// Work on [work | inv]: every row operation applies to both.
	n := m.Rows()
	work := m.Clone()
	inv, err := intmat.Identity(n)
	if err != nil {
		return nil, smithErrorf(opInverse, err)
	}

	var (
		j, r, pivotRow int   // column, row scan cursor, pivot location
		pivot, q       int64 // current pivot and elimination target
		g, x, y        int64 // Bézout triple
	)

	// Stage 2: forward elimination to upper-triangular form.
	for j = 0; j < n; j++ {
		// 2.1 Locate the first nonzero entry at or below row j.
		pivotRow = -1
		for r = j; r < n; r++ {
			if v, _ := work.At(r, j); v != 0 {
				pivotRow = r
				break
			}
		}
		if pivotRow < 0 {
			return nil, smithErrorf(opInverse, ErrSingular)
		}
		// 2.2 Swap the pivot row up (mirrored).
		if err = work.SwapRows(j, pivotRow); err != nil {
			return nil, smithErrorf(opInverse, err)
		}
		if err = inv.SwapRows(j, pivotRow); err != nil {
			return nil, smithErrorf(opInverse, err)
		}
		// 2.3 Eliminate below the pivot.
		for r = j + 1; r < n; r++ {
			q, _ = work.At(r, j)
			if q == 0 {
				continue
			}
			pivot, _ = work.At(j, j)
			if q%pivot == 0 {
				// Exact multiple: a single transvection suffices.
				if err = work.AddScaledRow(r, j, -q/pivot); err != nil {
					return nil, smithErrorf(opInverse, err)
				}
				if err = inv.AddScaledRow(r, j, -q/pivot); err != nil {
					return nil, smithErrorf(opInverse, err)
				}
				continue
			}
			// Bézout combination: pivot pair (pivot, q) becomes (g, 0).
			g, x, y = intmat.ExtendedGCD(pivot, q)
			if err = work.CombineRows(j, r, x, y, -q/g, pivot/g); err != nil {
				return nil, smithErrorf(opInverse, err)
			}
			if err = inv.CombineRows(j, r, x, y, -q/g, pivot/g); err != nil {
				return nil, smithErrorf(opInverse, err)
			}
		}
	}

	// Stage 3: sign normalization, unimodularity check, back-substitution.
	// |det| = product of |pivots| for a triangular matrix, so det = ±1
	// forces every pivot to ±1 — checked per pivot below.
	for j = n - 1; j >= 0; j-- {
		pivot, _ = work.At(j, j)
		if pivot < 0 {
			if err = work.NegateRow(j); err != nil {
				return nil, smithErrorf(opInverse, err)
			}
			if err = inv.NegateRow(j); err != nil {
				return nil, smithErrorf(opInverse, err)
			}
			pivot = -pivot
		}
		if pivot != 1 {
			return nil, smithErrorf(opInverse, ErrNotUnimodular)
		}
		// Clear above the (now unit) pivot with integer transvections.
		for r = 0; r < j; r++ {
			q, _ = work.At(r, j)
			if q == 0 {
				continue
			}
			if err = work.AddScaledRow(r, j, -q); err != nil {
				return nil, smithErrorf(opInverse, err)
			}
			if err = inv.AddScaledRow(r, j, -q); err != nil {
				return nil, smithErrorf(opInverse, err)
			}
		}
	}

	// work is now the identity; inv carries M⁻¹.
	return inv, nil
}
