// SPDX-License-Identifier: MIT

package plotprep_test

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/ssrothman/simon-mpl-util/dataset"
	"github.com/ssrothman/simon-mpl-util/matrix"
	"github.com/ssrothman/simon-mpl-util/plotprep"
)

func dense(t *testing.T, r, c int, data ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

func TestParseNorm(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"none", "ax1", "ax2", "correl"} {
		n, err := plotprep.ParseNorm(s)
		require.NoError(t, err)
		require.Equal(t, s, string(n))
	}
	n, err := plotprep.ParseNorm("")
	require.NoError(t, err)
	require.Equal(t, plotprep.NormNone, n)

	_, err = plotprep.ParseNorm("AX1")
	require.ErrorIs(t, err, plotprep.ErrInvalidNormalization)
}

func TestNormalize_RowsAndColumns(t *testing.T) {
	t.Parallel()

	m := dense(t, 2, 3,
		1, 1, 2,
		0, 0, 0,
	)
	rows, err := plotprep.Normalize(m, plotprep.NormAx1, dataset.Transfer)
	require.NoError(t, err)
	require.Equal(t, []float64{0.25, 0.25, 0.5, 0, 0, 0}, rows.RawData())

	cols, err := plotprep.Normalize(m, plotprep.NormAx2, dataset.Transfer)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 1, 0, 0, 0}, cols.RawData())

	_, err = plotprep.Normalize(m, plotprep.NormAx1, dataset.Covariance)
	require.ErrorIs(t, err, plotprep.ErrInvalidNormalization)
}

func TestNormalize_Correl(t *testing.T) {
	t.Parallel()

	m := dense(t, 2, 2,
		4, 3,
		3, 9,
	)
	corr, err := plotprep.Normalize(m, plotprep.NormCorrel, dataset.Covariance)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 0.5, 0.5, 1}, corr.RawData(), 1e-12)

	_, err = plotprep.Normalize(m, plotprep.NormCorrel, dataset.Transfer)
	require.ErrorIs(t, err, plotprep.ErrInvalidNormalization)

	same, err := plotprep.Normalize(m, plotprep.NormNone, dataset.Covariance)
	require.NoError(t, err)
	require.Equal(t, m.RawData(), same.RawData())

	_, err = plotprep.Normalize(m, plotprep.Norm("log"), dataset.Covariance)
	require.ErrorIs(t, err, plotprep.ErrInvalidNormalization)
}

func TestNormalize_CorrelRejectsNonSquare(t *testing.T) {
	t.Parallel()

	m := dense(t, 2, 3,
		1, 0, 0,
		0, 1, 0,
	)
	out, err := plotprep.Normalize(m, plotprep.NormCorrel, dataset.Covariance)
	require.Nil(t, out)
	require.ErrorIs(t, err, plotprep.ErrInvalidNormalization)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestScaleFor(t *testing.T) {
	t.Parallel()

	signed := dense(t, 1, 3, -2, 0.5, 1)
	require.True(t, plotprep.Symmetric(signed))
	require.Equal(t, plotprep.ColorScale{Diverging: true, VMin: -2, VMax: 2}, plotprep.ScaleFor(signed, nil, false))
	require.Equal(t, plotprep.ColorScale{Diverging: true, Log: true, VMin: -2, VMax: 2, LinThresh: 2e-3},
		plotprep.ScaleFor(signed, nil, true))

	positive := dense(t, 1, 3, 0, 0.5, 1)
	require.False(t, plotprep.Symmetric(positive))
	require.Equal(t, plotprep.ColorScale{VMin: 0, VMax: 1}, plotprep.ScaleFor(positive, nil, false))

	force := true
	require.True(t, plotprep.ScaleFor(positive, &force, false).Diverging)
}

func TestOutputName_Golden(t *testing.T) {
	t.Parallel()

	cases := []struct {
		prefix, cut, dset string
		norm              plotprep.Norm
		logc              bool
	}{
		{"matrix", "NOOP", "data", plotprep.NormNone, false},
		{"matrix", "PROJECT(a-b)", "mc", plotprep.NormCorrel, true},
		{"resp", "SLICE(pt-0.0to10.0)", "response", plotprep.NormAx1, false},
		{"", "SHAPE[cat](NOOP)", "h", plotprep.NormAx2, true},
	}
	var buf bytes.Buffer
	for _, tc := range cases {
		fmt.Fprintln(&buf, plotprep.OutputName(tc.prefix, tc.cut, tc.dset, tc.norm, tc.logc))
	}

	g := goldie.New(t, goldie.WithFixtureDir(filepath.Join("testdata", "golden")), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "output_names", buf.Bytes())
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		filepath.Join("plots", "m_CUT-NOOP_DSET-d_NORM-none"),
		plotprep.OutputPath("plots", "m", "NOOP", "d", plotprep.NormNone, false),
	)
}
