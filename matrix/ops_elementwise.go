// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise micro-kernels shared by density correction and matrix
//     normalization for display.
//   - Division kernels never produce ±Inf/NaN from a zero divisor: a zero
//     divisor is replaced by 1 (unit-divisor policy).

package matrix

// unitIfZero returns 1 for a zero divisor and d otherwise.
func unitIfZero(d float64) float64 {
	if d == 0 {
		return 1
	}

	return d
}

// DivideOuter computes out[i,j] = X[i,j] / (u[i] * v[j]).
// A zero product u[i]*v[j] is replaced by 1, so cells with a degenerate
// divisor keep their raw value.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(u) != rows or len(v) != cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func DivideOuter(X *Dense, u, v []float64) (*Dense, error) {
	if X == nil {
		return nil, matrixErrorf(opDivideOuter, ErrNilMatrix)
	}
	if err := ValidateVecLen(u, X.r); err != nil {
		return nil, matrixErrorf(opDivideOuter, err)
	}
	if err := ValidateVecLen(v, X.c); err != nil {
		return nil, matrixErrorf(opDivideOuter, err)
	}
	out := &Dense{r: X.r, c: X.c, data: make([]float64, len(X.data))}
	for i := 0; i < X.r; i++ {
		base := i * X.c
		for j := 0; j < X.c; j++ {
			out.data[base+j] = X.data[base+j] / unitIfZero(u[i]*v[j])
		}
	}

	return out, nil
}

// RowSums returns r where r[i] = Σ_j X[i,j].
// Complexity: O(r*c).
func RowSums(X *Dense) ([]float64, error) {
	if X == nil {
		return nil, matrixErrorf(opRowSums, ErrNilMatrix)
	}
	sums := make([]float64, X.r)
	for i := 0; i < X.r; i++ {
		base := i * X.c
		for j := 0; j < X.c; j++ {
			sums[i] += X.data[base+j]
		}
	}

	return sums, nil
}

// ColSums returns c where c[j] = Σ_i X[i,j].
// Complexity: O(r*c).
func ColSums(X *Dense) ([]float64, error) {
	if X == nil {
		return nil, matrixErrorf(opColSums, ErrNilMatrix)
	}
	sums := make([]float64, X.c)
	for i := 0; i < X.r; i++ {
		base := i * X.c
		for j := 0; j < X.c; j++ {
			sums[j] += X.data[base+j]
		}
	}

	return sums, nil
}

// Ones returns a vector of n ones.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}

	return out
}
