// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the propagation kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssrothman/simon-mpl-util/matrix"
)

// MustDenseFrom builds an r×c *Dense from row-major data or fails the test.
func MustDenseFrom(t *testing.T, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareClose asserts element-wise |a-b| ≤ tol for identical shapes.
func CompareClose(t *testing.T, got, want *matrix.Dense, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			g, w := MustAt(t, got, i, j), MustAt(t, want, i, j)
			if math.Abs(g-w) > tol {
				t.Fatalf("(%d,%d): got %g want %g", i, j, g, w)
			}
		}
	}
}

// symmetricFixture returns a 4×4 symmetric positive-definite covariance.
func symmetricFixture(t *testing.T) *matrix.Dense {
	t.Helper()

	return MustDenseFrom(t, 4, 4, []float64{
		4, 1, 0.5, 0,
		1, 9, 2, 0.3,
		0.5, 2, 16, 1,
		0, 0.3, 1, 1,
	})
}

// mul is the textbook triple-loop product a·b.
func mul(t *testing.T, a, b *matrix.Dense) *matrix.Dense {
	t.Helper()
	require.Equal(t, a.Cols(), b.Rows(), "inner dimensions")
	out, err := matrix.NewDense(a.Rows(), b.Cols())
	require.NoError(t, err)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			var s float64
			for k := 0; k < a.Cols(); k++ {
				s += MustAt(t, a, i, k) * MustAt(t, b, k, j)
			}
			require.NoError(t, out.Set(i, j, s))
		}
	}

	return out
}

// transpose returns mᵀ.
func transpose(t *testing.T, m *matrix.Dense) *matrix.Dense {
	t.Helper()
	out, err := matrix.NewDense(m.Cols(), m.Rows())
	require.NoError(t, err)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(t, out.Set(j, i, MustAt(t, m, i, j)))
		}
	}

	return out
}

// sandwich is the dense reference J·C·Jᵀ.
func sandwich(t *testing.T, J, C *matrix.Dense) *matrix.Dense {
	t.Helper()

	return mul(t, mul(t, J, C), transpose(t, J))
}

// summationMatrix is the explicit 0/1 matrix with J[g,i] = 1 iff groups[i] == g.
func summationMatrix(t *testing.T, groups []int, n int) *matrix.Dense {
	t.Helper()
	J, err := matrix.NewDense(n, len(groups))
	require.NoError(t, err)
	for i, g := range groups {
		if g >= 0 {
			require.NoError(t, J.Set(g, i, 1))
		}
	}

	return J
}
