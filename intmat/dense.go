// SPDX-License-Identifier: MIT

// Package intmat - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major int64 buffer with the explicit
//     index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors
//     instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); String: O(r*c).

package intmat

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite
// indices, preserving the sentinel via %w for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major integer matrix.
//   - r, c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order
//     (offset = i*c + j).
//
// A Dense is mutable while an algorithm owns it and treated as immutable
// once returned as a result; nothing in this package mutates an operand
// it does not own.
type Dense struct {
	r, c int     // row and column counts (> 0)
	data []int64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// New creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows > 0 && cols > 0; else ErrBadShape.
//   - Stage 2: allocate a zero-filled flat buffer.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Dense, error) {
	// Validate dimensions before any allocation.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	// Allocate zero-initialized backing storage.
	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewFromRows builds a Dense from a rectangular [][]int64, copying every
// entry (the input remains owned by the caller).
//
// Implementation:
//   - Stage 1: validate non-empty input and equal row lengths.
//   - Stage 2: copy row by row into flat storage.
//
// Errors:
//   - ErrBadShape (empty input, empty first row, or ragged rows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]int64) (*Dense, error) {
	// Reject empty input: a 0×n matrix has no valid shape here.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	r, c := len(rows), len(rows[0])

	// Copy rows, validating rectangularity as we go.
	data := make([]int64, r*c)
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrBadShape // ragged input
		}
		copy(data[i*c:(i+1)*c], rows[i])
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or reports the method
// that failed via a wrapped ErrOutOfRange. Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Diagonal returns a copy of the main diagonal, length min(r, c).
// Complexity: O(min(r,c)).
func (m *Dense) Diagonal() []int64 {
	n := m.r
	if m.c < n {
		n = m.c
	}
	d := make([]int64, n)
	for i := 0; i < n; i++ {
		d[i] = m.data[i*m.c+i] // flat offset of (i,i)
	}

	return d
}

// String implements fmt.Stringer for easy debugging: one "[a, b, c]"
// line per row. Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int // loop iterators (deterministic order)
	for i = 0; i < m.r; i++ {
		sb.WriteString(fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(fmtSep)
			}
			sb.WriteString(fmt.Sprintf("%d", m.data[i*m.c+j]))
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}
