// Package smith defines result types and sentinel errors for Smith
// Normal Form computation.
package smith

import (
	"errors"

	"github.com/quiverlab/homkit/intmat"
)

// ErrSingular indicates that UnimodularInverse found no nonzero pivot
// candidate in some column: the matrix is not invertible over ℤ.
var ErrSingular = errors.New("smith: singular matrix")

// ErrNotUnimodular indicates that UnimodularInverse finished its
// reduction with a pivot of magnitude != 1: the input violated the
// det = ±1 contract. This is a caller contract violation, not a
// recoverable condition.
var ErrNotUnimodular = errors.New("smith: matrix is not unimodular")

// ErrNoProgress indicates that an iterative reduction pass failed to
// advance: the pivot vanished mid-isolation, or the divisibility
// enforcement sweep exceeded its iteration bound. Both passes strictly
// shrink a positive quantity per round, so hitting this means an
// implementation defect, never a property of the input.
var ErrNoProgress = errors.New("smith: reduction pass made no progress")

// Decomposition is the terminal output of Decompose: U·A·V = D with
//   - U: rows×rows, unimodular (a product of elementary operations),
//   - V: cols×cols, unimodular,
//   - D: rows×cols, diagonal, nonzero entries nonnegative and forming
//     the divisibility chain d_0 | d_1 | … .
//
// A Decomposition is constructed once per input matrix and never
// mutated afterward.
type Decomposition struct {
	U *intmat.Dense
	D *intmat.Dense
	V *intmat.Dense
}

// Certificate is the result of Verify: either OK, or a witness
// pinpointing the first cell (row-major order) where U·A·V differs
// from D. A failed certificate is a normal value, never an error —
// detecting the mismatch is the verifier's entire purpose.
type Certificate struct {
	// OK reports whether U·A·V == D exactly.
	OK bool

	// Row, Col locate the first differing cell (zero when OK).
	Row, Col int

	// Got is the recomputed (U·A·V)[Row,Col]; Want is D[Row,Col]
	// (both zero when OK).
	Got, Want int64
}

// DiagonalSummary is a derived view of a diagonal matrix as an
// abelian-group decomposition.
//
// Fields:
//   - Rank           — count of nonzero diagonal entries (the SNF rank;
//     this is what the homology rank formula consumes).
//   - FreeRank       — count of unit invariant factors (|d| == 1), the
//     ℤ-summand count rendered in PrettyForm.
//   - TorsionFactors — ascending |d_i| for entries with |d_i| > 1.
//   - PrettyForm     — "ℤ^r ⊕ ℤ/t1 ⊕ …", or "0" for the trivial group.
//
// The two rank fields answer different questions: Rank is the matrix
// rank over ℚ, while FreeRank is the free rank of the cokernel group
// PrettyForm renders. For diag(1, 2) they are 2 and 1 respectively;
// callers counting the ℤ summands of a group decomposition want
// FreeRank, not Rank.
type DiagonalSummary struct {
	Rank           int
	FreeRank       int
	TorsionFactors []int64
	PrettyForm     string
}
