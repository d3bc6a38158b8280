// Package homology_test contains unit tests for chain complex
// construction.
package homology_test

import (
	"testing"

	"github.com/quiverlab/homkit/homology"
	"github.com/quiverlab/homkit/intmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineQuiver is u -e-> v -f-> w.
func lineQuiver() *homology.Quiver {
	return &homology.Quiver{
		Objects: []string{"u", "v", "w"},
		Edges: []homology.Edge{
			{Src: "u", Dst: "v", Label: "e"},
			{Src: "v", Dst: "w", Label: "f"},
		},
	}
}

// torusQuiver is a single vertex with two self-loops.
func torusQuiver() *homology.Quiver {
	return &homology.Quiver{
		Objects: []string{"v"},
		Edges: []homology.Edge{
			{Src: "v", Dst: "v", Label: "a"},
			{Src: "v", Dst: "v", Label: "b"},
		},
	}
}

// pathKeys flattens C1 into strings for readable assertions.
func pathKeys(paths []homology.Path) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.String()
	}

	return out
}

// TestBuildComplexLine pins every basis and both boundaries of a
// two-edge line quiver.
func TestBuildComplexLine(t *testing.T) {
	cc, err := homology.BuildComplex(lineQuiver())
	require.NoError(t, err)

	assert.Equal(t, []string{"u", "v", "w"}, cc.C0)
	assert.Equal(t, []string{"u -e-> v", "v -f-> w", "u -e;f-> w"}, pathKeys(cc.C1))
	assert.Equal(t, [][2]int{{0, 1}}, cc.C2, "only e followed by f composes within the bound")

	// ∂1 columns: e = v - u, f = w - v, e;f = w - u.
	wantD1, err := intmat.NewFromRows([][]int64{
		{-1, 0, -1},
		{1, -1, 0},
		{0, 1, 1},
	})
	require.NoError(t, err)
	assert.True(t, intmat.Equal(cc.D1, wantD1), "D1 mismatch:\n%v", cc.D1)

	// ∂2(e, f) = f - e;f + e.
	wantD2, err := intmat.NewFromRows([][]int64{{1}, {1}, {-1}})
	require.NoError(t, err)
	assert.True(t, intmat.Equal(cc.D2, wantD2), "D2 mismatch:\n%v", cc.D2)
}

// TestBuildComplexTorus pins the basis sizes and degenerate-cell
// accumulation of the one-vertex two-loop quiver.
func TestBuildComplexTorus(t *testing.T) {
	cc, err := homology.BuildComplex(torusQuiver())
	require.NoError(t, err)

	assert.Equal(t, []string{"v"}, cc.C0)
	assert.Equal(t, []string{
		"v -a-> v", "v -b-> v",
		"v -a;a-> v", "v -a;b-> v", "v -b;a-> v", "v -b;b-> v",
	}, pathKeys(cc.C1))
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, cc.C2)

	// Self-loops cancel in ∂1.
	zero1, err := intmat.New(1, 6)
	require.NoError(t, err)
	assert.True(t, intmat.Equal(cc.D1, zero1), "self-loop boundaries must cancel:\n%v", cc.D1)

	// ∂2(a, a) = a + a - a;a accumulates to 2 on the shared face.
	wantD2, err := intmat.NewFromRows([][]int64{
		{2, 1, 1, 0},
		{0, 1, 1, 2},
		{-1, 0, 0, 0},
		{0, -1, 0, 0},
		{0, 0, -1, 0},
		{0, 0, 0, -1},
	})
	require.NoError(t, err)
	assert.True(t, intmat.Equal(cc.D2, wantD2), "D2 mismatch:\n%v", cc.D2)
}

// TestBuildComplexPathBound verifies the length bound: with L = 1 no
// composites and no pairs exist, and D2 stays nil.
func TestBuildComplexPathBound(t *testing.T) {
	cc, err := homology.BuildComplex(torusQuiver(), homology.WithMaxPathLen(1))
	require.NoError(t, err)

	assert.Len(t, cc.C1, 2, "only the loops themselves at L=1")
	assert.Empty(t, cc.C2)
	assert.Nil(t, cc.D2, "empty pair basis has no boundary matrix")

	// L = 3 on the line quiver adds nothing: the quiver has no walk
	// longer than 2.
	cc, err = homology.BuildComplex(lineQuiver(), homology.WithMaxPathLen(3))
	require.NoError(t, err)
	assert.Len(t, cc.C1, 3)
}

// TestBuildComplexDedup drops duplicate vertex names, keeping the
// first appearance.
func TestBuildComplexDedup(t *testing.T) {
	q := &homology.Quiver{
		Objects: []string{"x", "y", "x", "y", "x"},
		Edges:   []homology.Edge{{Src: "x", Dst: "y", Label: "e"}},
	}
	cc, err := homology.BuildComplex(q)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, cc.C0)
}

// TestBuildComplexNoEdges leaves every edge-dependent field empty.
func TestBuildComplexNoEdges(t *testing.T) {
	cc, err := homology.BuildComplex(&homology.Quiver{Objects: []string{"a", "b"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, cc.C0)
	assert.Empty(t, cc.C1)
	assert.Empty(t, cc.C2)
	assert.Nil(t, cc.D1)
	assert.Nil(t, cc.D2)
}

// TestBuildComplexValidation exercises each sentinel.
func TestBuildComplexValidation(t *testing.T) {
	_, err := homology.BuildComplex(nil)
	assert.ErrorIs(t, err, homology.ErrNilQuiver)

	_, err = homology.BuildComplex(&homology.Quiver{
		Objects: []string{"u"},
		Edges:   []homology.Edge{{Src: "u", Dst: "ghost", Label: "e"}},
	})
	assert.ErrorIs(t, err, homology.ErrUnknownVertex)

	_, err = homology.BuildComplex(&homology.Quiver{
		Objects: []string{"u", "v"},
		Edges: []homology.Edge{
			{Src: "u", Dst: "v", Label: "e"},
			{Src: "v", Dst: "u", Label: "e"},
		},
	})
	assert.ErrorIs(t, err, homology.ErrDuplicateLabel)

	_, err = homology.BuildComplex(lineQuiver(), homology.WithMaxPathLen(0))
	assert.ErrorIs(t, err, homology.ErrBadPathLimit)
}

// TestBuildComplexDeterministic demands identical bases and matrices
// across repeated builds.
func TestBuildComplexDeterministic(t *testing.T) {
	a, err := homology.BuildComplex(torusQuiver())
	require.NoError(t, err)
	b, err := homology.BuildComplex(torusQuiver())
	require.NoError(t, err)

	assert.Equal(t, a.C0, b.C0)
	assert.Equal(t, pathKeys(a.C1), pathKeys(b.C1))
	assert.Equal(t, a.C2, b.C2)
	assert.True(t, intmat.Equal(a.D1, b.D1))
	assert.True(t, intmat.Equal(a.D2, b.D2))
}
