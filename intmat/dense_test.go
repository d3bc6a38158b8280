// Package intmat_test contains unit tests for Dense storage and accessors.
package intmat_test

import (
	"testing"

	"github.com/quiverlab/homkit/intmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustFromRows builds a Dense or fails the test immediately.
func mustFromRows(t *testing.T, rows [][]int64) *intmat.Dense {
	t.Helper()
	m, err := intmat.NewFromRows(rows)
	require.NoError(t, err, "NewFromRows should accept rectangular input")

	return m
}

// TestNewDefaultZero verifies that a fresh Dense is all zeros.
func TestNewDefaultZero(t *testing.T) {
	m, err := intmat.New(3, 4)
	require.NoError(t, err)

	var i, j int // loop iterators
	for i = 0; i < 3; i++ {
		for j = 0; j < 4; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			if v != 0 {
				t.Fatalf("element [%d,%d] of a new Dense must be 0, got %d", i, j, v)
			}
		}
	}
}

// TestNewBadShape ensures non-positive dimensions are rejected.
func TestNewBadShape(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 3}, {3, 0}, {-1, 2}, {2, -1}, {0, 0},
	} {
		_, err := intmat.New(tc.rows, tc.cols)
		assert.ErrorIs(t, err, intmat.ErrBadShape, "New(%d,%d) must fail", tc.rows, tc.cols)
	}
}

// TestNewFromRows verifies copy semantics and ragged-input rejection.
func TestNewFromRows(t *testing.T) {
	src := [][]int64{{1, 2}, {3, 4}}
	m := mustFromRows(t, src)

	// Mutating the source must not affect the matrix (deep copy).
	src[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v, "NewFromRows must copy input rows")

	// Ragged and empty inputs are shape violations.
	_, err = intmat.NewFromRows([][]int64{{1, 2}, {3}})
	assert.ErrorIs(t, err, intmat.ErrBadShape, "ragged rows must be rejected")
	_, err = intmat.NewFromRows(nil)
	assert.ErrorIs(t, err, intmat.ErrBadShape, "nil input must be rejected")
	_, err = intmat.NewFromRows([][]int64{{}})
	assert.ErrorIs(t, err, intmat.ErrBadShape, "empty first row must be rejected")
}

// TestAtSetBounds ensures out-of-range access errors instead of panicking.
func TestAtSetBounds(t *testing.T) {
	m := mustFromRows(t, [][]int64{{1, 2}, {3, 4}})

	for _, tc := range []struct{ r, c int }{
		{-1, 0}, {0, -1}, {2, 0}, {0, 2},
	} {
		_, err := m.At(tc.r, tc.c)
		assert.ErrorIs(t, err, intmat.ErrOutOfRange, "At(%d,%d)", tc.r, tc.c)
		err = m.Set(tc.r, tc.c, 7)
		assert.ErrorIs(t, err, intmat.ErrOutOfRange, "Set(%d,%d)", tc.r, tc.c)
	}

	// In-range round trip still works.
	require.NoError(t, m.Set(1, 1, -5))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), v)
}

// TestCloneIndependence verifies deep-copy semantics of Clone.
func TestCloneIndependence(t *testing.T) {
	m := mustFromRows(t, [][]int64{{1, 2}, {3, 4}})
	cp := m.Clone()

	require.NoError(t, m.Set(0, 0, 42))
	v, err := cp.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v, "Clone must not alias the original storage")
	assert.True(t, intmat.Equal(m, m.Clone()), "clone of mutated matrix equals it")
}

// TestDiagonal covers square and rectangular shapes.
func TestDiagonal(t *testing.T) {
	m := mustFromRows(t, [][]int64{{5, 0, 0}, {0, -7, 0}})
	assert.Equal(t, []int64{5, -7}, m.Diagonal(), "diagonal of a 2x3 has length 2")
}

// TestString renders rows in bracketed lines.
func TestString(t *testing.T) {
	m := mustFromRows(t, [][]int64{{1, -2}, {0, 3}})
	assert.Equal(t, "[1, -2]\n[0, 3]\n", m.String())
}
