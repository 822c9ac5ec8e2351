// SPDX-License-Identifier: MIT

package labels_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssrothman/simon-mpl-util/binning"
	"github.com/ssrothman/simon-mpl-util/labels"
)

func binningOf(t *testing.T, names ...string) *binning.ArbitraryBinning {
	t.Helper()
	axes := make([]binning.Axis, len(names))
	for i, n := range names {
		ax, err := binning.NewAxis(n, 0, 1)
		require.NoError(t, err)
		axes[i] = ax
	}
	b, err := binning.New(axes...)
	require.NoError(t, err)

	return b
}

func TestTable_FallsBackToName(t *testing.T) {
	t.Parallel()

	tab := labels.NewTable(map[string]string{"pt": "pT"})
	require.Equal(t, "pT", tab.Label("pt"))
	require.Equal(t, "eta", tab.Label("eta"))
	require.Equal(t, "eta", labels.Table{}.Label("eta"))

	m := tab.Map()
	m["pt"] = "changed"
	require.Equal(t, "pT", tab.Label("pt"))
}

func TestAxisLabel(t *testing.T) {
	t.Parallel()

	tab := labels.NewTable(map[string]string{"pt": "pT", "eta": "η"})
	cases := []struct {
		name string
		axes []string
		want string
	}{
		{"scalar", nil, ""},
		{"single", []string{"pt"}, "pT"},
		{"flattened", []string{"pt", "eta", "phi"}, "pT@η@phi bin index"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, labels.AxisLabel(tab, binningOf(t, tc.axes...)))
		})
	}
}

func TestLoadTable(t *testing.T) {
	t.Parallel()

	tab, err := labels.LoadTable(filepath.Join("testdata", "labels.yaml"))
	require.NoError(t, err)
	require.Equal(t, "$p_T$ [GeV]", tab.Label("pt"))
	require.Equal(t, `$\eta$`, tab.Label("eta"))

	_, err = labels.LoadTable(filepath.Join("testdata", "unknown.yaml"))
	require.ErrorIs(t, err, labels.ErrLoad)

	_, err = labels.LoadTable(filepath.Join("testdata", "missing.yaml"))
	require.ErrorIs(t, err, labels.ErrLoad)
}
