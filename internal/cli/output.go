// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/ssrothman/simon-mpl-util/binning"
	"github.com/ssrothman/simon-mpl-util/dataset"
	"github.com/ssrothman/simon-mpl-util/labels"
	"github.com/ssrothman/simon-mpl-util/matrix"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BinningOutput describes the binning of a result.
type BinningOutput struct {
	Key      string                 `json:"key"`
	PlotText string                 `json:"plottext"`
	XLabel   string                 `json:"xlabel"`
	Axes     []dataset.AxisDocument `json:"axes"`
}

// EvalOutput is what eval prints.
type EvalOutput struct {
	BinningOutput
	Dataset string      `json:"dataset"`
	Values  []float64   `json:"values,omitempty"`
	Cov     [][]float64 `json:"cov,omitempty"`
}

// MatrixOutput is what matrix prints.
type MatrixOutput struct {
	Name   string      `json:"name"`
	Norm   string      `json:"norm"`
	Scale  ScaleOutput `json:"scale"`
	Matrix [][]float64 `json:"matrix"`
}

// ScaleOutput is the JSON form of a color scale.
type ScaleOutput struct {
	Diverging bool    `json:"diverging"`
	Log       bool    `json:"log"`
	VMin      float64 `json:"vmin"`
	VMax      float64 `json:"vmax"`
	LinThresh float64 `json:"linthresh,omitempty"`
}

func binningOutput(key, plotText string, l labels.Lookup, b *binning.ArbitraryBinning) BinningOutput {
	return BinningOutput{
		Key:      key,
		PlotText: plotText,
		XLabel:   labels.AxisLabel(l, b),
		Axes:     dataset.AxisDocuments(b),
	}
}

func rows(m *matrix.Dense) [][]float64 {
	if m == nil {
		return nil
	}
	data, c := m.RawData(), m.Cols()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = data[i*c : (i+1)*c : (i+1)*c]
	}

	return out
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)

	return err
}
