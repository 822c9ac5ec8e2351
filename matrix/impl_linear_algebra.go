// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Linear error propagation out = J·C·Jᵀ for the two Jacobian structures
//     histogram operations produce, without building J: the 0/1 summation
//     matrix of a projection (GroupSum, GroupSumVec) and the block-affine
//     matrix of a per-block normalization (BlockAffineSandwich).
//
// Determinism & Performance:
//   - Fixed row-major loop orders on flat buffers.
//   - Kernels are O(N^2) in the input size; inputs are never mutated.

package matrix

import "fmt"

// BlockAffineSandwich computes out = J·C·Jᵀ for the block-sparse Jacobian
//
//	J[i,k] = scale[i]·(δ_ik − shift[i])   when groups[k] == groups[i],
//	J[i,k] = 0                            otherwise,
//
// without materializing J. A zero scale[i] zeroes row and column i.
//
// Implementation:
//   - Stage 1: validate C (N×N) against groups, shift and scale (length N);
//     every group lies in [0, n).
//   - Stage 2: column block sums B[g,l] = Σ_{k∈g} C[k,l].
//   - Stage 3: T = J·C row by row, T[i,l] = scale_i·(C[i,l] − shift_i·B[g_i,l]),
//     accumulating the row block sums R[i,g] = Σ_{l∈g} T[i,l].
//   - Stage 4: out[i,j] = scale_j·(T[i,j] − shift_j·R[i,g_j]).
//
// Every cell is computed (C is not assumed symmetric).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrBadShape (n < 0),
//     ErrOutOfRange (group outside [0, n)).
//
// Complexity:
//   - Time O(N^2), Space O(N^2 + n*N).
func BlockAffineSandwich(C *Dense, groups []int, n int, shift, scale []float64) (*Dense, error) {
	// Stage 1 (Validate)
	if err := ValidateSquare(C); err != nil {
		return nil, matrixErrorf(opBlockAffine, err)
	}
	N := C.r
	if err := ValidateVecLen(shift, N); err != nil {
		return nil, matrixErrorf(opBlockAffine, err)
	}
	if err := ValidateVecLen(scale, N); err != nil {
		return nil, matrixErrorf(opBlockAffine, err)
	}
	if len(groups) != N {
		return nil, matrixErrorf(opBlockAffine, ErrDimensionMismatch)
	}
	if n < 0 {
		return nil, matrixErrorf(opBlockAffine, ErrBadShape)
	}
	for i, g := range groups {
		if g < 0 || g >= n {
			return nil, matrixErrorf(opBlockAffine, fmt.Errorf("group of row %d is %d: %w", i, g, ErrOutOfRange))
		}
	}

	// Stage 2 (Column block sums)
	B := make([]float64, n*N)
	for k := 0; k < N; k++ {
		dst := B[groups[k]*N : (groups[k]+1)*N]
		for l, v := range C.data[k*N : (k+1)*N] {
			dst[l] += v
		}
	}

	// Stage 3 (Left product)
	T := make([]float64, N*N)
	R := make([]float64, N*n)
	for i := 0; i < N; i++ {
		s := scale[i]
		if s == 0 {
			continue
		}
		u := shift[i]
		bg := B[groups[i]*N : (groups[i]+1)*N]
		src := C.data[i*N : (i+1)*N]
		dst := T[i*N : (i+1)*N]
		rs := R[i*n : (i+1)*n]
		for l := range dst {
			dst[l] = s * (src[l] - u*bg[l])
			rs[groups[l]] += dst[l]
		}
	}

	// Stage 4 (Right product)
	out := &Dense{r: N, c: N, data: make([]float64, N*N)}
	for i := 0; i < N; i++ {
		base := i * N
		for j := 0; j < N; j++ {
			if s := scale[j]; s != 0 {
				out.data[base+j] = s * (T[base+j] - shift[j]*R[i*n+groups[j]])
			}
		}
	}

	return out, nil
}

// GroupSum computes J·C·Jᵀ for the 0/1 summation matrix J defined by
// groups: J[g, i] = 1 iff groups[i] == g. Entries with a negative group are
// dropped (their row and column of C do not contribute).
//
// Behavior highlights:
//   - Equal to J·C·Jᵀ with the explicit J, in O(N²) time.
//   - out[g,h] = Σ_{i∈g} Σ_{j∈h} C[i,j].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(groups) != N),
//     ErrOutOfRange (group index ≥ n).
//
// Complexity:
//   - Time O(N^2), Space O(n^2).
func GroupSum(C *Dense, groups []int, n int) (*Dense, error) {
	if err := ValidateSquare(C); err != nil {
		return nil, matrixErrorf(opGroupSum, err)
	}
	if len(groups) != C.r {
		return nil, matrixErrorf(opGroupSum, ErrDimensionMismatch)
	}
	if n < 0 {
		return nil, matrixErrorf(opGroupSum, ErrBadShape)
	}
	for i, g := range groups {
		if g >= n {
			return nil, matrixErrorf(opGroupSum, fmt.Errorf("group of row %d is %d: %w", i, g, ErrOutOfRange))
		}
	}

	N := C.r
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var gi, gj int
	for i := 0; i < N; i++ {
		gi = groups[i]
		if gi < 0 {
			continue // dropped row
		}
		base := i * N
		for j := 0; j < N; j++ {
			gj = groups[j]
			if gj < 0 {
				continue // dropped column
			}
			out.data[gi*n+gj] += C.data[base+j]
		}
	}

	return out, nil
}

// GroupSumVec computes J·v for the same 0/1 J as GroupSum.
// Complexity: O(N).
func GroupSumVec(v []float64, groups []int, n int) ([]float64, error) {
	if len(groups) != len(v) {
		return nil, matrixErrorf(opGroupSumVec, ErrDimensionMismatch)
	}
	if n < 0 {
		return nil, matrixErrorf(opGroupSumVec, ErrBadShape)
	}
	out := make([]float64, n)
	for i, g := range groups {
		if g >= n {
			return nil, matrixErrorf(opGroupSumVec, fmt.Errorf("group of entry %d is %d: %w", i, g, ErrOutOfRange))
		}
		if g < 0 {
			continue
		}
		out[g] += v[i]
	}

	return out, nil
}
