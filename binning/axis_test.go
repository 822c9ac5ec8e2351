// SPDX-License-Identifier: MIT

package binning_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssrothman/simon-mpl-util/binning"
)

func TestNewAxis_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		axis  string
		edges []float64
	}{
		{"single edge", "x", []float64{0}},
		{"no edges", "x", nil},
		{"NaN edge", "x", []float64{0, math.NaN(), 2}},
		{"equal edges", "x", []float64{0, 1, 1}},
		{"decreasing", "x", []float64{2, 1}},
		{"inf inside", "x", []float64{0, math.Inf(1), 3}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := binning.NewAxis(tc.axis, tc.edges...)
			require.ErrorIs(t, err, binning.ErrBadEdges)
		})
	}
}

func TestNewAxis_RejectsKeySeparators(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "a-b", "pt_reco", "-", "x_"} {
		_, err := binning.NewAxis(name, 0, 1)
		require.ErrorIs(t, err, binning.ErrBadName, name)
	}
	_, err := binning.NewAxis("R·L", 0, 1)
	require.NoError(t, err)
}

func TestAxis_EdgesAreCopies(t *testing.T) {
	t.Parallel()

	src := []float64{0, 1, 2}
	ax := mustAxis(t, "x", src...)
	src[0] = -5
	require.Equal(t, []float64{0, 1, 2}, ax.Edges())

	e := ax.Edges()
	e[1] = 42
	require.Equal(t, []float64{0, 1, 2}, ax.Edges())

	require.Equal(t, 2, ax.NBins())
	require.Equal(t, []float64{0, 1}, ax.LowerEdges())
	require.Equal(t, []float64{1, 2}, ax.UpperEdges())
}

func TestAxis_OpenEndedEdges(t *testing.T) {
	t.Parallel()

	ax := mustAxis(t, "pt", math.Inf(-1), 0, 10, math.Inf(1))
	require.Equal(t, 3, ax.NBins())
	require.Equal(t, 0, ax.Bin(-1e300))
	require.Equal(t, 2, ax.Bin(11))
	require.Equal(t, -1, ax.Bin(math.NaN()))
}

func TestAxis_BinRangeFor(t *testing.T) {
	t.Parallel()

	ax := mustAxis(t, "x", 0, 1, 2, 3, 4)
	cases := []struct {
		name       string
		low, high  float64
		wantI0, i1 int
	}{
		{"exact edges", 1, 3, 1, 3},
		{"partial overlap keeps both", 0.5, 2.5, 0, 3},
		{"whole axis", 0, 4, 0, 4},
		{"low below domain", -10, 1, 0, 1},
		{"high above domain", 3.5, 100, 3, 4},
		{"inside one bin", 1.2, 1.3, 1, 2},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			i0, i1, err := ax.BinRangeFor(tc.low, tc.high)
			require.NoError(t, err)
			require.Equal(t, tc.wantI0, i0)
			require.Equal(t, tc.i1, i1)
		})
	}
}

func TestAxis_BinRangeFor_Errors(t *testing.T) {
	t.Parallel()

	ax := mustAxis(t, "x", 0, 1, 2)
	for _, r := range []binning.Range{
		{Low: 1, High: 1},
		{Low: 2, High: 1},
		{Low: math.NaN(), High: 1},
		{Low: -5, High: -1},
		{Low: 3, High: 5},
		{Low: 2, High: 5}, // touches the last edge but overlaps no bin
	} {
		_, _, err := ax.BinRangeFor(r.Low, r.High)
		require.ErrorIs(t, err, binning.ErrInvalidRange, r.String())
	}
}

func TestAxis_SubAndEqual(t *testing.T) {
	t.Parallel()

	ax := mustAxis(t, "x", 0, 1, 2, 3)
	sub := ax.Sub(1, 3)
	require.Equal(t, []float64{1, 2, 3}, sub.Edges())
	require.Equal(t, "x", sub.Name())
	require.True(t, sub.Equal(mustAxis(t, "x", 1, 2, 3)))
	require.False(t, sub.Equal(mustAxis(t, "y", 1, 2, 3)))
	require.False(t, ax.Equal(sub))
}

func TestRange_String(t *testing.T) {
	t.Parallel()
	require.Equal(t, "[0.5, 2)", binning.Range{Low: 0.5, High: 2}.String())
}

func TestAxis_NamesAreNFC(t *testing.T) {
	t.Parallel()

	decomposed := "e\u0301ta"
	composed := "\u00e9ta"
	ax := mustAxis(t, decomposed, 0, 1)
	require.Equal(t, composed, ax.Name())

	b := mustBinning(t, ax, mustAxis(t, "x", 0, 1, 2))
	require.True(t, b.HasAxis(decomposed))
	require.True(t, b.HasAxis(composed))

	_, reduced, err := b.ProjectOut([]float64{1, 2}, decomposed)
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, reduced.AxisNames())
}
