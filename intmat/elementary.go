// SPDX-License-Identifier: MIT
// Package intmat - elementary unimodular row/column operations.
//
// Purpose:
//   - Provide the in-place primitives every integer reduction is built
//     from: swaps, add-scaled, negation, and 2×2 Bézout combinations.
//   - Each operation, when mirrored onto an accompanying transform
//     matrix, preserves that matrix's unimodularity: every primitive
//     here is an elementary unimodular operation (det ±1), except
//     CombineRows/CombineCols whose coefficients the caller must take
//     from a Bézout identity (ad−bc = ±1).
//
// Determinism & Performance:
//   - All operations run a single fixed-order pass over the touched
//     rows/columns; no allocation beyond CombineRows/CombineCols
//     scratch already folded into the pass.

package intmat

// ---------- method context tags ----------

const (
	ctxSwapRows     = "SwapRows"
	ctxSwapCols     = "SwapCols"
	ctxAddScaledRow = "AddScaledRow"
	ctxAddScaledCol = "AddScaledCol"
	ctxNegateRow    = "NegateRow"
	ctxNegateCol    = "NegateCol"
	ctxCombineRows  = "CombineRows"
	ctxCombineCols  = "CombineCols"
)

// checkRow validates a row index for the named operation.
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense) checkRow(method string, row int) error {
	if row < 0 || row >= m.r {
		return denseErrorf(method, row, -1, ErrOutOfRange)
	}

	return nil
}

// checkCol validates a column index for the named operation.
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense) checkCol(method string, col int) error {
	if col < 0 || col >= m.c {
		return denseErrorf(method, -1, col, ErrOutOfRange)
	}

	return nil
}

// SwapRows exchanges rows r1 and r2 in place (a no-op when r1 == r2).
// Errors: ErrOutOfRange. Complexity: O(c).
func (m *Dense) SwapRows(r1, r2 int) error {
	if err := m.checkRow(ctxSwapRows, r1); err != nil {
		return err
	}
	if err := m.checkRow(ctxSwapRows, r2); err != nil {
		return err
	}
	if r1 == r2 {
		return nil
	}
	base1, base2 := r1*m.c, r2*m.c
	for j := 0; j < m.c; j++ {
		m.data[base1+j], m.data[base2+j] = m.data[base2+j], m.data[base1+j]
	}

	return nil
}

// SwapCols exchanges columns c1 and c2 in place (a no-op when c1 == c2).
// Errors: ErrOutOfRange. Complexity: O(r).
func (m *Dense) SwapCols(c1, c2 int) error {
	if err := m.checkCol(ctxSwapCols, c1); err != nil {
		return err
	}
	if err := m.checkCol(ctxSwapCols, c2); err != nil {
		return err
	}
	if c1 == c2 {
		return nil
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		m.data[base+c1], m.data[base+c2] = m.data[base+c2], m.data[base+c1]
	}

	return nil
}

// AddScaledRow performs row_dst += k·row_src in place.
// dst == src is rejected as out-of-contract (it would scale the row by
// 1+k, which is not an elementary transvection).
// Errors: ErrOutOfRange. Complexity: O(c).
func (m *Dense) AddScaledRow(dst, src int, k int64) error {
	if err := m.checkRow(ctxAddScaledRow, dst); err != nil {
		return err
	}
	if err := m.checkRow(ctxAddScaledRow, src); err != nil {
		return err
	}
	if dst == src {
		return denseErrorf(ctxAddScaledRow, dst, -1, ErrOutOfRange)
	}
	if k == 0 {
		return nil // identity transvection, nothing to do
	}
	baseD, baseS := dst*m.c, src*m.c
	for j := 0; j < m.c; j++ {
		m.data[baseD+j] += k * m.data[baseS+j]
	}

	return nil
}

// AddScaledCol performs col_dst += k·col_src in place; dst == src is
// rejected (see AddScaledRow).
// Errors: ErrOutOfRange. Complexity: O(r).
func (m *Dense) AddScaledCol(dst, src int, k int64) error {
	if err := m.checkCol(ctxAddScaledCol, dst); err != nil {
		return err
	}
	if err := m.checkCol(ctxAddScaledCol, src); err != nil {
		return err
	}
	if dst == src {
		return denseErrorf(ctxAddScaledCol, -1, dst, ErrOutOfRange)
	}
	if k == 0 {
		return nil
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		m.data[base+dst] += k * m.data[base+src]
	}

	return nil
}

// NegateRow flips the sign of every entry in the row.
// Errors: ErrOutOfRange. Complexity: O(c).
func (m *Dense) NegateRow(row int) error {
	if err := m.checkRow(ctxNegateRow, row); err != nil {
		return err
	}
	base := row * m.c
	for j := 0; j < m.c; j++ {
		m.data[base+j] = -m.data[base+j]
	}

	return nil
}

// NegateCol flips the sign of every entry in the column.
// Errors: ErrOutOfRange. Complexity: O(r).
func (m *Dense) NegateCol(col int) error {
	if err := m.checkCol(ctxNegateCol, col); err != nil {
		return err
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+col] = -m.data[i*m.c+col]
	}

	return nil
}

// CombineRows applies the 2×2 integer transform
//
//	(row_r1', row_r2') = (a·row_r1 + b·row_r2, c·row_r1 + d·row_r2)
//
// in a single pass. This is the Bézout elimination primitive: with
// (g, x, y) = ExtendedGCD(p, q) the matrix [[x, y], [-q/g, p/g]] has
// determinant +1 and replaces the pivot pair (p, q) with (g, 0).
// Unimodularity of (a b; c d) is the caller's contract and is not
// re-checked per call.
//
// Errors: ErrOutOfRange (also for r1 == r2). Complexity: O(c).
func (m *Dense) CombineRows(r1, r2 int, a, b, c, d int64) error {
	if err := m.checkRow(ctxCombineRows, r1); err != nil {
		return err
	}
	if err := m.checkRow(ctxCombineRows, r2); err != nil {
		return err
	}
	if r1 == r2 {
		return denseErrorf(ctxCombineRows, r1, -1, ErrOutOfRange)
	}
	base1, base2 := r1*m.c, r2*m.c
	var v1, v2 int64 // originals, read before either write
	for j := 0; j < m.c; j++ {
		v1, v2 = m.data[base1+j], m.data[base2+j]
		m.data[base1+j] = a*v1 + b*v2
		m.data[base2+j] = c*v1 + d*v2
	}

	return nil
}

// CombineCols applies the 2×2 integer transform
//
//	(col_c1', col_c2') = (a·col_c1 + b·col_c2, c·col_c1 + d·col_c2)
//
// in a single pass — the column-side Bézout primitive (see CombineRows).
//
// Errors: ErrOutOfRange (also for c1 == c2). Complexity: O(r).
func (m *Dense) CombineCols(c1, c2 int, a, b, c, d int64) error {
	if err := m.checkCol(ctxCombineCols, c1); err != nil {
		return err
	}
	if err := m.checkCol(ctxCombineCols, c2); err != nil {
		return err
	}
	if c1 == c2 {
		return denseErrorf(ctxCombineCols, -1, c1, ErrOutOfRange)
	}
	var v1, v2 int64 // originals, read before either write
	for i := 0; i < m.r; i++ {
		base := i * m.c
		v1, v2 = m.data[base+c1], m.data[base+c2]
		m.data[base+c1] = a*v1 + b*v2
		m.data[base+c2] = c*v1 + d*v2
	}

	return nil
}
