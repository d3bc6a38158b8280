// SPDX-License-Identifier: MIT
// Package smith - certificate verification of SNF decompositions.

package smith

import (
	"github.com/quiverlab/homkit/intmat"
)

// opVerify tags wrapped errors originating in Verify.
const opVerify = "Verify"

// Verify recomputes U·A·V exactly via the integer kernel's multiply and
// compares it to D element-wise, returning either an OK certificate or
// a witness pinpointing the first differing cell in row-major order.
//
// This exact-recomputation design — rather than trusting the reducer —
// exists so bugs in the reducer are caught by an independent pass, and
// so library consumers can audit results without re-deriving the
// algorithm.
//
// A mismatch is a normal return value, never an error: detecting it is
// the verifier's entire purpose. The error return covers only misuse
// (nil inputs, incompatible shapes).
//
// Errors:
//   - intmat.ErrNilMatrix (nil A, decomposition, or component).
//   - intmat.ErrDimensionMismatch (U·A·V not computable, or its shape
//     differs from D's).
//
// Determinism:
//   - Row-major comparison order; the reported witness is always the
//     first differing cell.
//
// Complexity:
//   - Time O(r·c·(r + c)) for the two products, Space O(r·c).
func Verify(a *intmat.Dense, dec *Decomposition) (Certificate, error) {
	// Validate the tuple before computing anything.
	if dec == nil {
		return Certificate{}, smithErrorf(opVerify, intmat.ErrNilMatrix)
	}
	for _, m := range []*intmat.Dense{a, dec.U, dec.D, dec.V} {
		if err := intmat.ValidateNotNil(m); err != nil {
			return Certificate{}, smithErrorf(opVerify, err)
		}
	}

	// Recompute (U·A)·V with the independent kernel multiply.
	ua, err := intmat.Mul(dec.U, a)
	if err != nil {
		return Certificate{}, smithErrorf(opVerify, err)
	}
	uav, err := intmat.Mul(ua, dec.V)
	if err != nil {
		return Certificate{}, smithErrorf(opVerify, err)
	}

	// Shape disagreement between U·A·V and D is misuse, not a witness.
	if uav.Rows() != dec.D.Rows() || uav.Cols() != dec.D.Cols() {
		return Certificate{}, smithErrorf(opVerify, intmat.ErrDimensionMismatch)
	}

	// Element-wise comparison, first mismatch wins.
	var i, j int
	var got, want int64
	for i = 0; i < uav.Rows(); i++ {
		for j = 0; j < uav.Cols(); j++ {
			got, _ = uav.At(i, j)
			want, _ = dec.D.At(i, j)
			if got != want {
				return Certificate{OK: false, Row: i, Col: j, Got: got, Want: want}, nil
			}
		}
	}

	return Certificate{OK: true}, nil
}
