// SPDX-License-Identifier: MIT

package binning_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssrothman/simon-mpl-util/binning"
	"github.com/ssrothman/simon-mpl-util/matrix"
)

func mustAxis(t *testing.T, name string, edges ...float64) binning.Axis {
	t.Helper()
	ax, err := binning.NewAxis(name, edges...)
	require.NoError(t, err)

	return ax
}

func mustBinning(t *testing.T, axes ...binning.Axis) *binning.ArbitraryBinning {
	t.Helper()
	b, err := binning.New(axes...)
	require.NoError(t, err)

	return b
}

// catX is the 2×3 binning {cat: 2 bins, x: 3 bins}.
func catX(t *testing.T) *binning.ArbitraryBinning {
	t.Helper()

	return mustBinning(t,
		mustAxis(t, "cat", 0, 1, 2),
		mustAxis(t, "x", 0, 1, 2, 3),
	)
}

// syntheticCov returns an n×n symmetric, diagonally dominant matrix.
func syntheticCov(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				data[i*n+j] = 1 + 0.5*float64(i)
				continue
			}
			data[i*n+j] = 0.1 / (1 + math.Abs(float64(i-j)))
		}
	}
	m, err := matrix.NewDenseFrom(n, n, data)
	require.NoError(t, err)

	return m
}

func at(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func sum(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x
	}

	return s
}
