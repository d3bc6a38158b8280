// SPDX-License-Identifier: MIT
// Package smith - Smith Normal Form reduction kernel.
//
// The reducer transforms a working copy of the input in place while
// mirroring every elementary operation into the accumulated transforms
// U (row side) and V (column side). All mutable state lives in a
// per-call reduction struct — one arena per Decompose call, discarded
// on return — so the algorithm's invariants stay locally checkable.

package smith

import (
	"fmt"

	"github.com/quiverlab/homkit/intmat"
)

// opDecompose tags wrapped errors originating in Decompose.
const opDecompose = "Decompose"

// chainPassFactor bounds the divisibility fixpoint: every repaired pair
// at least halves its leading entry, and int64 entries cannot be halved
// more than 63 times, so 64 passes per diagonal slot is a safe ceiling.
const chainPassFactor = 64

// smithErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil.
func smithErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// reduction carries the mutable state of one Decompose call.
//   - a: the working matrix, transformed in place toward D.
//   - u: accumulated row operations (rows×rows, starts as identity).
//   - v: accumulated column operations (cols×cols, starts as identity).
//
// Invariant after every step: u·A·v == a, where A is the original input.
type reduction struct {
	a *intmat.Dense // working matrix (becomes D)
	u *intmat.Dense // accumulated row transform
	v *intmat.Dense // accumulated column transform
}

// Decompose reduces an arbitrary integer matrix A to its Smith Normal
// Form, returning {U, D, V} with U·A·V = D.
//
// Implementation:
//   - Stage 1: validate input; clone it; initialize U, V to identities.
//   - Stage 2: iterative pivot elimination — for each diagonal slot k,
//     select the smallest-magnitude nonzero entry of the active
//     submatrix (rows ≥ k, cols ≥ k; first in scan order on ties), swap
//     it to (k,k), and subtract integer multiples of the pivot row and
//     column from the rows below and columns right, leaving remainders
//     strictly smaller than the pivot; re-select the pivot after every
//     round until its row and column are clear, then normalize its
//     sign. Per-round re-selection keeps quotients, and with them the
//     coefficients accumulated into U and V, small: a fixed pivot lets
//     them compound multiplicatively toward int64 wraparound.
//   - Stage 3: divisibility enforcement — repair adjacent diagonal
//     pairs to (gcd, lcm) until the chain d_0 | d_1 | … holds.
//
// Behavior highlights:
//   - Handles zero, non-square, and rank-deficient inputs uniformly.
//   - The input matrix is never mutated; D, U, V are fresh.
//   - U and V are unimodular by construction (only elementary
//     operations are ever applied to them).
//
// Inputs:
//   - a: any rows×cols integer matrix.
//
// Returns:
//   - *Decomposition: terminal {U, D, V}; never mutated afterward.
//
// Errors:
//   - intmat.ErrNilMatrix (nil input).
//   - ErrNoProgress (an iterative pass failed to advance — an
//     implementation defect trap, not an input condition).
//
// Determinism:
//   - Pivot tie-break is first-in-scan-order; all loops are fixed
//     order. U, D, V are a deterministic function of the input (though
//     not unique among all valid SNF decompositions — D is unique up to
//     the sign convention, U and V are not).
//
// Complexity:
//   - Time roughly O(min(r,c)·r·c·log(max|a_ij|)); Space O(r² + c²).
func Decompose(a *intmat.Dense) (*Decomposition, error) {
	// Validate input before touching it.
	if err := intmat.ValidateNotNil(a); err != nil {
		return nil, smithErrorf(opDecompose, err)
	}

	// Prepare the arena: working clone plus identity transforms.
	work := a.Clone()
	u, err := intmat.Identity(a.Rows())
	if err != nil {
		return nil, smithErrorf(opDecompose, err)
	}
	v, err := intmat.Identity(a.Cols())
	if err != nil {
		return nil, smithErrorf(opDecompose, err)
	}
	red := &reduction{a: work, u: u, v: v}

	// Stage 2: diagonal pivot sweep.
	n := minInt(a.Rows(), a.Cols())
	var (
		k        int
		advanced bool // whether the active submatrix still had a nonzero
	)
	for k = 0; k < n; k++ {
		// 2.1 Select, place, and isolate the pivot for slot k.
		advanced, err = red.isolatePivot(k)
		if err != nil {
			return nil, smithErrorf(opDecompose, err)
		}
		if !advanced {
			break // remaining submatrix is all zero — terminal state
		}
		// 2.2 Normalize the pivot's sign to nonnegative.
		if err = red.normalizeSign(k); err != nil {
			return nil, smithErrorf(opDecompose, err)
		}
	}

	// Stage 3: enforce the divisibility chain on the diagonal.
	if err = red.enforceChain(n); err != nil {
		return nil, smithErrorf(opDecompose, err)
	}

	return &Decomposition{U: red.u, D: red.a, V: red.v}, nil
}

// findPivot scans the active submatrix (rows ≥ k, cols ≥ k) in
// row-major order for the smallest-magnitude nonzero entry.
// The minimal-magnitude policy minimizes coefficient growth; the
// first-in-scan-order tie-break makes the reduction deterministic.
// Returns found == false when the submatrix is entirely zero.
// Complexity: O(r*c).
func (red *reduction) findPivot(k int) (row, col int, found bool) {
	var best int64 // magnitude of the best candidate so far
	var i, j int
	var val, mag int64
	for i = k; i < red.a.Rows(); i++ {
		for j = k; j < red.a.Cols(); j++ {
			val, _ = red.a.At(i, j) // indices in range by construction
			if val == 0 {
				continue
			}
			mag = val
			if mag < 0 {
				mag = -mag
			}
			// Strict < keeps the first entry among equal magnitudes.
			if !found || mag < best {
				best, row, col, found = mag, i, j, true
			}
		}
	}

	return row, col, found
}

// movePivot brings the entry at (pr, pc) to (k, k) with one row swap
// and one column swap, mirrored into U and V (swaps are themselves
// unimodular operations). Complexity: O(r + c).
func (red *reduction) movePivot(k, pr, pc int) error {
	// Row swap on the working matrix and on U.
	if err := red.a.SwapRows(k, pr); err != nil {
		return err
	}
	if err := red.u.SwapRows(k, pr); err != nil {
		return err
	}
	// Column swap on the working matrix and on V.
	if err := red.a.SwapCols(k, pc); err != nil {
		return err
	}

	return red.v.SwapCols(k, pc)
}

// reduceColumn subtracts the truncated-quotient multiple of the pivot
// row from every row below it: each entry (r, k) becomes its remainder
// modulo the pivot, strictly smaller in magnitude. The pivot cell
// itself is never touched. Reports whether column k ended fully clear
// below the pivot. Complexity: O(r*c).
func (red *reduction) reduceColumn(k int) (clean bool, err error) {
	clean = true
	pivot, _ := red.a.At(k, k)
	var q, quo int64
	for r := k + 1; r < red.a.Rows(); r++ {
		q, _ = red.a.At(r, k)
		if q == 0 {
			continue
		}
		quo = q / pivot // truncated: |q - quo·pivot| < |pivot|
		if quo != 0 {
			if err = red.a.AddScaledRow(r, k, -quo); err != nil {
				return false, err
			}
			if err = red.u.AddScaledRow(r, k, -quo); err != nil {
				return false, err
			}
		}
		if q-quo*pivot != 0 {
			clean = false // remainder survives, smaller than the pivot
		}
	}

	return clean, nil
}

// reduceRow is the column-side mirror of reduceColumn, tracked in V:
// every entry (k, c) right of the pivot becomes its remainder modulo
// the pivot. Reports whether row k ended fully clear. Complexity: O(r*c).
func (red *reduction) reduceRow(k int) (clean bool, err error) {
	clean = true
	pivot, _ := red.a.At(k, k)
	var q, quo int64
	for c := k + 1; c < red.a.Cols(); c++ {
		q, _ = red.a.At(k, c)
		if q == 0 {
			continue
		}
		quo = q / pivot
		if quo != 0 {
			if err = red.a.AddScaledCol(c, k, -quo); err != nil {
				return false, err
			}
			if err = red.v.AddScaledCol(c, k, -quo); err != nil {
				return false, err
			}
		}
		if q-quo*pivot != 0 {
			clean = false
		}
	}

	return clean, nil
}

// isolatePivot diagonalizes slot k. Each round re-selects the
// smallest-magnitude nonzero entry of the active submatrix as the
// pivot, moves it to (k,k), and reduces the pivot column and row by
// division with remainder. Any surviving remainder is strictly smaller
// in magnitude than the pivot that produced it, so the re-selected
// pivot shrinks round over round and the loop terminates with both the
// column below and the row right of (k,k) zero. Re-selecting per round
// keeps every quotient near-minimal, which is what bounds the
// coefficients accumulated into U and V: reducing against one fixed
// pivot lets those coefficients compound multiplicatively and wrap
// int64 even on small inputs. Rows above and columns left of the pivot
// stay zero throughout: earlier slots are already isolated and all
// operations here act inside the active block.
// Returns false when the active submatrix is entirely zero.
func (red *reduction) isolatePivot(k int) (bool, error) {
	pr, pc, found := red.findPivot(k)
	if !found {
		return false, nil
	}
	for {
		if err := red.movePivot(k, pr, pc); err != nil {
			return false, err
		}
		colClean, err := red.reduceColumn(k)
		if err != nil {
			return false, err
		}
		rowClean, err := red.reduceRow(k)
		if err != nil {
			return false, err
		}
		if colClean && rowClean {
			return true, nil
		}
		pr, pc, found = red.findPivot(k)
		if !found {
			// The pivot cell is never zeroed, so an empty re-scan is an
			// implementation defect, not a reachable state.
			return false, ErrNoProgress
		}
	}
}

// normalizeSign makes the pivot at (k,k) nonnegative by negating its
// row (a unimodular operation, mirrored in U). Complexity: O(c).
func (red *reduction) normalizeSign(k int) error {
	pivot, _ := red.a.At(k, k)
	if pivot >= 0 {
		return nil
	}
	if err := red.a.NegateRow(k); err != nil {
		return err
	}

	return red.u.NegateRow(k)
}

// enforceChain repairs adjacent diagonal pairs until d_k | d_{k+1}
// holds for every consecutive nonzero pair, walking pairs in ascending
// order and restarting until a full pass is clean (a fix at position k
// can violate the chain at k-1).
//
// Each repair replaces (a, b) with (gcd(a,b), lcm(a,b)) through a
// unimodular 2×2 recombination:
//  1. col_k += col_{k+1}            (tracked in V) — brings b into column k
//  2. Bézout rows k, k+1            (tracked in U) — pivot becomes gcd
//  3. col_{k+1} -= (residue/g)·col_k (tracked in V) — clears the fill-in
//
// The leading entry at least halves on every repair, so total work is
// bounded; exceeding the bound returns ErrNoProgress.
func (red *reduction) enforceChain(n int) error {
	if n < 2 {
		return nil
	}
	bound := chainPassFactor*n + 1 // termination assertion, never hit in practice

	var a, b, g, x, y, residue int64
	for pass := 0; pass < bound; pass++ {
		dirty := false
		for k := 0; k+1 < n; k++ {
			a, _ = red.a.At(k, k)
			b, _ = red.a.At(k+1, k+1)
			// Zero entries sit at the tail of the diagonal; a == 0
			// implies b == 0, and b == 0 divides trivially.
			if a == 0 || b == 0 || b%a == 0 {
				continue
			}

			// Step 1: bring b into column k below the pivot.
			if err := red.a.AddScaledCol(k, k+1, 1); err != nil {
				return err
			}
			if err := red.v.AddScaledCol(k, k+1, 1); err != nil {
				return err
			}

			// Step 2: Bézout rows — (a, b) column pair becomes (g, 0),
			// leaving the pair diagonal as (g, lcm) plus one fill-in at
			// (k, k+1).
			g, x, y = intmat.ExtendedGCD(a, b)
			if err := red.a.CombineRows(k, k+1, x, y, -b/g, a/g); err != nil {
				return err
			}
			if err := red.u.CombineRows(k, k+1, x, y, -b/g, a/g); err != nil {
				return err
			}

			// Step 3: clear the fill-in (g divides it by construction).
			residue, _ = red.a.At(k, k+1)
			if residue != 0 {
				if err := red.a.AddScaledCol(k+1, k, -residue/g); err != nil {
					return err
				}
				if err := red.v.AddScaledCol(k+1, k, -residue/g); err != nil {
					return err
				}
			}
			dirty = true
		}
		if !dirty {
			return nil // full clean pass: chain holds everywhere
		}
	}

	return ErrNoProgress
}

// minInt returns the smaller of two ints. Complexity: O(1).
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
