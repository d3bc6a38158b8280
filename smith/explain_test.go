// Package smith_test contains unit tests for the diagonal interpreter.
package smith_test

import (
	"testing"

	"github.com/quiverlab/homkit/smith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExplainScenario reads a mixed diagonal: diag(1,2) has one unit
// factor (a ℤ summand) and one torsion factor ℤ/2.
func TestExplainScenario(t *testing.T) {
	d := mustFromRows(t, [][]int64{{1, 0}, {0, 2}})
	sum := smith.Explain(d)

	assert.Equal(t, 2, sum.Rank, "both diagonal entries are nonzero")
	assert.Equal(t, 1, sum.FreeRank, "one unit invariant factor")
	assert.Equal(t, []int64{2}, sum.TorsionFactors)
	assert.Equal(t, "ℤ ⊕ ℤ/2", sum.PrettyForm)
}

// TestExplainTable sweeps representative diagonals.
func TestExplainTable(t *testing.T) {
	for _, tc := range []struct {
		name     string
		rows     [][]int64
		rank     int
		free     int
		torsion  []int64
		rendered string
	}{
		{"trivial", [][]int64{{0, 0}, {0, 0}}, 0, 0, nil, "0"},
		{"free_only", [][]int64{{1, 0}, {0, 1}}, 2, 2, nil, "ℤ^2"},
		{"torsion_only", [][]int64{{2, 0}, {0, 6}}, 2, 0, []int64{2, 6}, "ℤ/2 ⊕ ℤ/6"},
		{"mixed_rect", [][]int64{{1, 0, 0}, {0, 4, 0}}, 2, 1, []int64{4}, "ℤ ⊕ ℤ/4"},
		{"negative_units", [][]int64{{-1, 0}, {0, -3}}, 2, 1, []int64{3}, "ℤ ⊕ ℤ/3"},
		{"unsorted_torsion", [][]int64{{6, 0, 0}, {0, 2, 0}, {0, 0, 0}}, 2, 0, []int64{2, 6}, "ℤ/2 ⊕ ℤ/6"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d := mustFromRows(t, tc.rows)
			sum := smith.Explain(d)

			assert.Equal(t, tc.rank, sum.Rank)
			assert.Equal(t, tc.free, sum.FreeRank)
			assert.Equal(t, tc.torsion, sum.TorsionFactors)
			assert.Equal(t, tc.rendered, sum.PrettyForm)
		})
	}
}

// TestExplainNil treats a nil diagonal as the trivial group.
func TestExplainNil(t *testing.T) {
	sum := smith.Explain(nil)
	assert.Equal(t, 0, sum.Rank)
	assert.Equal(t, "0", sum.PrettyForm)
}

// TestExplainAfterDecompose chains the reducer and the interpreter:
// diag(4,6) reduces to diag(2,12) = ℤ/2 ⊕ ℤ/12.
func TestExplainAfterDecompose(t *testing.T) {
	a := mustFromRows(t, [][]int64{{4, 0}, {0, 6}})
	dec, err := smith.Decompose(a)
	require.NoError(t, err)

	sum := smith.Explain(dec.D)
	assert.Equal(t, 2, sum.Rank)
	assert.Equal(t, 0, sum.FreeRank)
	assert.Equal(t, []int64{2, 12}, sum.TorsionFactors)
	assert.Equal(t, "ℤ/2 ⊕ ℤ/12", sum.PrettyForm)
}
