// SPDX-License-Identifier: MIT

package plotprep

import (
	"fmt"
	"math"
	"strings"

	"github.com/ssrothman/simon-mpl-util/dataset"
	"github.com/ssrothman/simon-mpl-util/matrix"
)

// Norm selects how a matrix is normalized before drawing.
type Norm string

const (
	NormNone   Norm = "none"
	NormAx1    Norm = "ax1"    // divide each row by its sum
	NormAx2    Norm = "ax2"    // divide each column by its sum
	NormCorrel Norm = "correl" // divide by outer(√diag, √diag)
)

var norms = []Norm{NormNone, NormAx1, NormAx2, NormCorrel}

// ParseNorm accepts the mode names exactly; "" means NormNone.
func ParseNorm(s string) (Norm, error) {
	if s == "" {
		return NormNone, nil
	}
	for _, n := range norms {
		if string(n) == s {
			return n, nil
		}
	}
	valid := make([]string, len(norms))
	for i, n := range norms {
		valid[i] = string(n)
	}

	return "", fmt.Errorf("%w: %q, must be one of %s", ErrInvalidNormalization, s, strings.Join(valid, ", "))
}

// Normalize returns a normalized copy of m.
//
// Row and column normalization apply to transfer matrices only; correlation
// applies to covariance matrices only and requires a square matrix. Zero
// sums and zero variances divide by 1.
//
// Errors: ErrInvalidNormalization (also wrapping matrix.ErrNonSquare for a
// non-square correl request), matrix.ErrNilMatrix,
// matrix.ErrNegativeVariance.
func Normalize(m *matrix.Dense, norm Norm, qtype dataset.QuantityType) (*matrix.Dense, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}
	switch norm {
	case NormNone:
		return m.Clone(), nil

	case NormAx1, NormAx2:
		if qtype != dataset.Transfer {
			return nil, fmt.Errorf("%w: %s on a %s matrix", ErrInvalidNormalization, norm, qtype)
		}
		if norm == NormAx1 {
			sums, err := matrix.RowSums(m)
			if err != nil {
				return nil, err
			}
			return matrix.DivideOuter(m, sums, matrix.Ones(m.Cols()))
		}
		sums, err := matrix.ColSums(m)
		if err != nil {
			return nil, err
		}
		return matrix.DivideOuter(m, matrix.Ones(m.Rows()), sums)

	case NormCorrel:
		if qtype != dataset.Covariance {
			return nil, fmt.Errorf("%w: %s on a %s matrix", ErrInvalidNormalization, norm, qtype)
		}
		if !m.IsSquare() {
			return nil, fmt.Errorf("%w: %s on a %dx%d matrix: %w", ErrInvalidNormalization, norm, m.Rows(), m.Cols(), matrix.ErrNonSquare)
		}
		corr, _, err := matrix.CovToCorr(m)
		return corr, err
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidNormalization, string(norm))
}

// ColorScale describes the color mapping of a matrix plot.
type ColorScale struct {
	Diverging bool    // centered on zero
	Log       bool    // logarithmic (symmetric-log when Diverging)
	VMin      float64 // lower limit
	VMax      float64 // upper limit
	LinThresh float64 // linear region half-width of a symmetric-log scale
}

// Symmetric reports whether m holds values of both signs.
func Symmetric(m *matrix.Dense) bool {
	return m.Min() < 0 && m.Max() > 0
}

// ScaleFor picks the color scale of m. sym forces the diverging choice;
// nil detects it with Symmetric.
func ScaleFor(m *matrix.Dense, sym *bool, logc bool) ColorScale {
	diverging := Symmetric(m)
	if sym != nil {
		diverging = *sym
	}
	if !diverging {
		return ColorScale{Log: logc, VMin: m.Min(), VMax: m.Max()}
	}
	extreme := math.Max(math.Abs(m.Min()), math.Abs(m.Max()))
	cs := ColorScale{Diverging: true, Log: logc, VMin: -extreme, VMax: extreme}
	if logc {
		cs.LinThresh = extreme / 1e3
	}

	return cs
}
