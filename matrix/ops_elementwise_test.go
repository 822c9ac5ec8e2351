// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssrothman/simon-mpl-util/matrix"
)

func TestDivideOuter_UnitDivisorPolicy(t *testing.T) {
	t.Parallel()

	X := MustDenseFrom(t, 2, 2, []float64{8, 6, 4, 2})
	got, err := matrix.DivideOuter(X, []float64{2, 0}, []float64{2, 3})
	require.NoError(t, err)
	// Row 1 has a zero divisor everywhere: values are kept as-is.
	require.Equal(t, []float64{2, 1, 4, 2}, got.RawData())
}

func TestRowColSums(t *testing.T) {
	t.Parallel()

	X := MustDenseFrom(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	rs, err := matrix.RowSums(X)
	require.NoError(t, err)
	require.Equal(t, []float64{6, 15}, rs)
	cs, err := matrix.ColSums(X)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, cs)
	require.Equal(t, []float64{1, 1}, matrix.Ones(2))
}
