// SPDX-License-Identifier: MIT
// Package intmat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// intmat package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package intmat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "intmat: ..." for consistency and to
// allow easy grepping across logs. Do not %w-wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers still
// match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0, cols <= 0, or ragged row input).
	ErrBadShape = errors.New("intmat: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers and elementary operations MUST return this,
	// not panic.
	ErrOutOfRange = errors.New("intmat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("intmat: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument)
	// was used.
	ErrNilMatrix = errors.New("intmat: nil matrix")
)
