// SPDX-License-Identifier: MIT
// Package intmat - whole-matrix kernels: multiplication, equality,
// identity construction. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches; operands
// are never mutated.

package intmat

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul      = "Mul"
	opIdentity = "Identity"
)

// kernelErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs exact integer matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate A, B (not nil) and inner dimensions
//     (A.Cols == B.Rows).
//   - Stage 2: triple loop i→k→j with row-major strides, skipping zero
//     A[i,k] (boundary matrices are sparse in practice).
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c); operands untouched.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed i→k→j loop order.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Zero-skip avoids useless multiplies.
func Mul(a, b *Dense) (*Dense, error) {
	// Validate inputs via the canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, kernelErrorf(opMul, err)
	}

	// Allocate the result (zero-filled, accumulated in place).
	res, err := New(a.r, b.c)
	if err != nil {
		return nil, kernelErrorf(opMul, err)
	}

	// Row-major multiplication into res.data:
	// a.data layout i*a.c + k, b.data layout k*b.c + j.
	var (
		i, j, k                            int   // loop iterators
		av                                 int64 // current A[i,k]
		rowOffsetA, rowOffsetB, rowOffsetR int   // flat row bases
	)
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Equal reports element-wise integer equality of a and b.
// Different shapes compare as not equal; two nils are equal, a single
// nil is not. Never errors.
//
// Determinism: flat 0..n-1 scan. Complexity: O(r*c).
func Equal(a, b *Dense) bool {
	// Nil handling: equality of absence, inequality of presence vs absence.
	if a == nil || b == nil {
		return a == b
	}
	// Shape gate: different shapes are simply unequal, not an error.
	if a.r != b.r || a.c != b.c {
		return false
	}
	// Flat element-wise compare.
	for idx := 0; idx < len(a.data); idx++ {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// Identity returns the n×n identity matrix.
//
// Errors: ErrBadShape for n <= 0. Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, kernelErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}
