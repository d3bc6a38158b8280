// Package smith_test contains unit tests for certificate verification.
package smith_test

import (
	"testing"

	"github.com/quiverlab/homkit/intmat"
	"github.com/quiverlab/homkit/smith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVerifyOK passes on a genuine decomposition.
func TestVerifyOK(t *testing.T) {
	a := mustFromRows(t, [][]int64{{6, 4}, {2, 8}})
	dec := mustDecompose(t, a)

	cert, err := smith.Verify(a, dec)
	require.NoError(t, err)
	assert.True(t, cert.OK)
	assert.Zero(t, cert.Row)
	assert.Zero(t, cert.Col)
	assert.Zero(t, cert.Got)
	assert.Zero(t, cert.Want)
}

// TestVerifyCorrupted corrupts D at (1,1) and expects a witness with
// that exact position and both differing values, returned as a value,
// never as an error.
func TestVerifyCorrupted(t *testing.T) {
	a := mustFromRows(t, [][]int64{{2, 0}, {0, 6}})
	dec := mustDecompose(t, a)

	// Corrupt a copy of D at (1,1).
	bad := dec.D.Clone()
	orig, err := bad.At(1, 1)
	require.NoError(t, err)
	require.NoError(t, bad.Set(1, 1, orig+5))
	corrupted := &smith.Decomposition{U: dec.U, D: bad, V: dec.V}

	cert, err := smith.Verify(a, corrupted)
	require.NoError(t, err, "a mismatch is a result, not an error")
	assert.False(t, cert.OK)
	assert.Equal(t, 1, cert.Row)
	assert.Equal(t, 1, cert.Col)
	assert.Equal(t, orig, cert.Got, "Got carries the recomputed U·A·V entry")
	assert.Equal(t, orig+5, cert.Want, "Want carries the corrupted D entry")
}

// TestVerifyFirstMismatch pins the row-major "first differing cell"
// contract when several cells disagree.
func TestVerifyFirstMismatch(t *testing.T) {
	a := mustFromRows(t, [][]int64{{1, 0}, {0, 1}})
	dec := mustDecompose(t, a)

	bad := dec.D.Clone()
	require.NoError(t, bad.Set(0, 1, 9))
	require.NoError(t, bad.Set(1, 0, 9))
	cert, err := smith.Verify(a, &smith.Decomposition{U: dec.U, D: bad, V: dec.V})
	require.NoError(t, err)
	assert.False(t, cert.OK)
	assert.Equal(t, 0, cert.Row, "row-major scan reports (0,1) first")
	assert.Equal(t, 1, cert.Col)
}

// TestVerifyMisuse reserves the error return for nil/shape misuse.
func TestVerifyMisuse(t *testing.T) {
	a := mustFromRows(t, [][]int64{{1, 2}, {3, 4}})
	dec := mustDecompose(t, a)

	_, err := smith.Verify(nil, dec)
	assert.ErrorIs(t, err, intmat.ErrNilMatrix)

	_, err = smith.Verify(a, nil)
	assert.ErrorIs(t, err, intmat.ErrNilMatrix)

	_, err = smith.Verify(a, &smith.Decomposition{U: dec.U, D: dec.D, V: nil})
	assert.ErrorIs(t, err, intmat.ErrNilMatrix)

	// Wrong-shaped A: U·A·V not computable.
	wide := mustFromRows(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	_, err = smith.Verify(wide, dec)
	assert.ErrorIs(t, err, intmat.ErrDimensionMismatch)
}
