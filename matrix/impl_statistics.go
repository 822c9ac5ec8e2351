// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Convert a covariance matrix into a correlation matrix and per-bin
//     standard deviations, with the degenerate-std policy of the column
//     statistics kernels: a zero standard deviation is replaced by a unit
//     divisor so the corresponding rows/columns stay zero instead of NaN.

package matrix

import "math"

// CovToCorr returns corr = cov / outer(std, std) and std = sqrt(diag(cov)).
//
// Implementation:
//   - Stage 1: validate cov is square; reject negative diagonal entries.
//   - Stage 2: std[i] = √cov[i,i].
//   - Stage 3: DivideOuter(cov, std, std) (zero products → divisor 1).
//
// Behavior highlights:
//   - Diagonal of corr is exactly 1 where variance > 0, and 0 where it is 0.
//   - std is returned unguarded (zeros kept) so callers can apply their own
//     unit-divisor policy when rescaling values.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNegativeVariance, ErrNaNInf (diagonal).
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func CovToCorr(cov *Dense) (*Dense, []float64, error) {
	// Stage 1 (Validate).
	if err := ValidateSquare(cov); err != nil {
		return nil, nil, matrixErrorf(opCovToCorr, err)
	}

	// Stage 2 (Execute): standard deviations from the diagonal.
	n := cov.r
	std := make([]float64, n)
	var v float64
	for i := 0; i < n; i++ {
		v = cov.data[i*n+i]
		if isNonFinite(v) {
			return nil, nil, matrixErrorf(opCovToCorr, ErrNaNInf)
		}
		if v < 0 {
			return nil, nil, matrixErrorf(opCovToCorr, ErrNegativeVariance)
		}
		std[i] = math.Sqrt(v)
	}

	// Stage 3 (Apply): normalize by the outer product of std.
	corr, err := DivideOuter(cov, std, std)
	if err != nil {
		return nil, nil, matrixErrorf(opCovToCorr, err)
	}
	// Pin the diagonal to exactly 1 (or 0) so rounding in √v·√v never leaks.
	for i := 0; i < n; i++ {
		if std[i] > 0 {
			corr.data[i*n+i] = 1
		} else {
			corr.data[i*n+i] = 0
		}
	}

	return corr, std, nil
}
