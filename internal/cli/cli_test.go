// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssrothman/simon-mpl-util/binning"
	"github.com/ssrothman/simon-mpl-util/dataset"
	"github.com/ssrothman/simon-mpl-util/plotprep"
)

var (
	catxPath     = filepath.Join("testdata", "catx.json")
	responsePath = filepath.Join("testdata", "response.yaml")
	configPath   = filepath.Join("testdata", "config.yaml")
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func decode[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(s), &v))

	return v
}

func TestEval_Projection(t *testing.T) {
	t.Parallel()

	out, err := run(t, "eval", "--dataset", catxPath, "--project", "x")
	require.NoError(t, err)
	got := decode[EvalOutput](t, out)

	assert.Equal(t, "PROJECT(x)", got.Key)
	assert.Equal(t, "Integrated over x", got.PlotText)
	assert.Equal(t, "cat", got.XLabel)
	assert.Equal(t, "catx", got.Dataset)
	assert.Equal(t, []float64{6, 100}, got.Values)
	assert.Equal(t, [][]float64{{6, 0}, {0, 100}}, got.Cov)
	require.Len(t, got.Axes, 1)
	assert.Equal(t, "cat", got.Axes[0].Name)
}

func TestEval_Shape(t *testing.T) {
	t.Parallel()

	out, err := run(t, "eval", "--dataset", catxPath, "--derive", "shape", "--block", "cat")
	require.NoError(t, err)
	got := decode[EvalOutput](t, out)

	assert.Equal(t, "SHAPE[cat](NOOP)", got.Key)
	assert.Equal(t, "cat@x bin index", got.XLabel)
	assert.InDeltaSlice(t, []float64{1.0 / 6, 2.0 / 6, 3.0 / 6, 0.1, 0.2, 0.7}, got.Values, 1e-12)
	require.Len(t, got.Cov, 6)
}

func TestEval_DensityWithConfig(t *testing.T) {
	t.Parallel()

	out, err := run(t, "--config", configPath, "eval", "--dataset", catxPath, "--derive", "density")
	require.NoError(t, err)
	got := decode[EvalOutput](t, out)

	assert.Equal(t, "DENSITY{x-0.0to4.0}(NOOP)", got.Key)
	assert.Equal(t, "Category@x bin index", got.XLabel)
	assert.InDeltaSlice(t, []float64{1, 2, 1.5, 10, 20, 35}, got.Values, 1e-12)
}

func TestBinning_Slice(t *testing.T) {
	t.Parallel()

	out, err := run(t, "binning", "--dataset", catxPath, "--slice", "x=0:2")
	require.NoError(t, err)
	got := decode[BinningOutput](t, out)

	assert.Equal(t, "SLICE(x-0.0to2.0)", got.Key)
	require.Len(t, got.Axes, 2)
	assert.Equal(t, "x", got.Axes[1].Name)
	require.Len(t, got.Axes[1].Edges, 3)
	assert.Equal(t, 2.0, float64(got.Axes[1].Edges[2]))
}

func TestMatrix_RowNormalization(t *testing.T) {
	t.Parallel()

	out, err := run(t, "matrix", "--dataset", responsePath, "--norm", "ax1", "--prefix", "resp")
	require.NoError(t, err)
	got := decode[MatrixOutput](t, out)

	assert.Equal(t, "resp_CUT-NOOP_DSET-response_NORM-ax1", got.Name)
	assert.False(t, got.Scale.Diverging)
	require.Len(t, got.Matrix, 4)
	for _, row := range got.Matrix {
		var s float64
		for _, v := range row {
			s += v
		}
		assert.InDelta(t, 1, s, 1e-12)
	}
}

func TestMatrix_Rejections(t *testing.T) {
	t.Parallel()

	_, err := run(t, "matrix", "--dataset", responsePath, "--norm", "correl")
	require.ErrorIs(t, err, plotprep.ErrInvalidNormalization)

	_, err = run(t, "matrix", "--dataset", catxPath, "--norm", "ax2")
	require.ErrorIs(t, err, plotprep.ErrInvalidNormalization)

	_, err = run(t, "matrix", "--dataset", catxPath, "--norm", "bogus")
	require.ErrorIs(t, err, plotprep.ErrInvalidNormalization)

	_, err = run(t, "matrix", "--dataset", catxPath, "--project", "eta")
	require.ErrorIs(t, err, binning.ErrUnknownAxis)
}

func TestName(t *testing.T) {
	t.Parallel()

	out, err := run(t, "name", "--dataset", catxPath, "--prefix", "m", "--project", "x", "--norm", "correl", "--logc")
	require.NoError(t, err)
	assert.Equal(t, "m_CUT-PROJECT(x)_DSET-catx_NORM-correl_LOGC\n", out)

	out, err = run(t, "name", "--dataset", catxPath, "--prefix", "m", "--folder", "plots")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("plots", "m_CUT-NOOP_DSET-catx_NORM-none")+"\n", out)
}

func TestRoot_Errors(t *testing.T) {
	t.Parallel()

	_, err := run(t, "--log-level", "loud", "eval", "--dataset", catxPath)
	require.Error(t, err)

	_, err = run(t, "eval", "--dataset", catxPath, "--derive", "cube")
	require.ErrorContains(t, err, "unknown --derive")

	_, err = run(t, "eval")
	require.Error(t, err)

	_, err = run(t, "--config", filepath.Join("testdata", "bad_clip.yaml"), "eval", "--dataset", catxPath)
	require.ErrorContains(t, err, "clip")
}

func TestConfig_PSDCheck(t *testing.T) {
	t.Parallel()

	notPSD := filepath.Join("testdata", "not_psd.json")
	_, err := run(t, "eval", "--dataset", notPSD)
	require.NoError(t, err)

	_, err = run(t, "--config", filepath.Join("testdata", "psd.yaml"), "eval", "--dataset", notPSD)
	require.ErrorIs(t, err, dataset.ErrInvalidCovariance)

	_, err = run(t, "--config", filepath.Join("testdata", "psd.yaml"), "eval", "--dataset", catxPath)
	require.NoError(t, err)
}

func TestParseSlice(t *testing.T) {
	t.Parallel()

	name, r, err := ParseSlice("pt=-inf:0.25")
	require.NoError(t, err)
	assert.Equal(t, "pt", name)
	assert.Equal(t, 0.25, r.High)
	assert.True(t, r.Low < -1e308)

	for _, bad := range []string{"pt", "=0:1", "pt=0", "pt=a:1", "pt=0:b"} {
		_, _, err := ParseSlice(bad)
		assert.Error(t, err, bad)
	}
}

func TestBuildOperation_DuplicateSlice(t *testing.T) {
	t.Parallel()

	_, err := BuildOperation(PipelineOptions{Slice: []string{"x=0:1", "x=1:2"}}, Config{})
	require.ErrorContains(t, err, "given twice")

	op, err := BuildOperation(PipelineOptions{Project: []string{"y"}, Slice: []string{"x=0.5:2"}}, Config{})
	require.NoError(t, err)
	assert.Equal(t, "PROJECT(y)_SLICE(x-0.5to2.0)", op.Key())
}
