// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Eigen-decompose a real symmetric matrix with cyclic Jacobi rotations.
//   - Back the positive-semidefinite check of covariance matrices.

package matrix

import "math"

// DefaultEigenSweeps bounds the rotations SymEigen performs, per n².
const DefaultEigenSweeps = 64

// SymEigen returns the eigenvalues of a symmetric m and the matrix Q whose
// columns are the matching eigenvectors (m = Q·diag(eig)·Qᵀ).
//
// tol is relative to max(1, max|m|) and must be positive; it bounds both
// the accepted asymmetry and the off-diagonal residue at convergence.
//
// Implementation:
//   - Stage 1: validate m is square and symmetric within tol.
//   - Stage 2: A = clone(m), Q = I.
//   - Stage 3: repeatedly rotate away the largest off-diagonal |A[p,q]|
//     until it is below tol, at most maxSweeps·n² rotations.
//   - Stage 4: eigenvalues are the diagonal of A.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrNotConverged.
// Complexity: O(n²) per rotation.
func SymEigen(m *Dense, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	// Stage 1 (Validate)
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opSymEigen, err)
	}
	scale := math.Max(1, math.Max(math.Abs(m.Min()), math.Abs(m.Max())))
	tol *= scale
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opSymEigen, err)
	}

	// Stage 2 (Prepare)
	n := m.r
	A := m.Clone()
	Q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opSymEigen, err)
	}

	// Stage 3 (Execute)
	var (
		p, q          int
		maxOff, v     float64
		app, aqq, apq float64
		arp, arq      float64
		theta, t      float64
		c, s          float64
	)
	converged := n < 2
	for rot := 0; !converged && rot < maxSweeps*n*n; rot++ {
		maxOff = 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if v = math.Abs(A.data[i*n+j]); v > maxOff {
					maxOff, p, q = v, i, j
				}
			}
		}
		if maxOff <= tol {
			converged = true
			break
		}

		app, aqq, apq = A.data[p*n+p], A.data[q*n+q], A.data[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		for r := 0; r < n; r++ {
			if r == p || r == q {
				continue
			}
			arp, arq = A.data[r*n+p], A.data[r*n+q]
			A.data[r*n+p] = c*arp - s*arq
			A.data[p*n+r] = A.data[r*n+p]
			A.data[r*n+q] = s*arp + c*arq
			A.data[q*n+r] = A.data[r*n+q]
		}
		A.data[p*n+p] = app - t*apq
		A.data[q*n+q] = aqq + t*apq
		A.data[p*n+q], A.data[q*n+p] = 0, 0

		for r := 0; r < n; r++ {
			arp, arq = Q.data[r*n+p], Q.data[r*n+q]
			Q.data[r*n+p] = c*arp - s*arq
			Q.data[r*n+q] = s*arp + c*arq
		}
	}
	if !converged {
		return nil, nil, matrixErrorf(opSymEigen, ErrNotConverged)
	}

	// Stage 4 (Finalize)
	return A.Diag(), Q, nil
}

// ValidatePSD checks that a symmetric m has no eigenvalue below
// -tol·max(1, max|eig|).
//
// Errors: those of SymEigen, ErrNotPositiveSemidefinite.
func ValidatePSD(m *Dense, tol float64) error {
	eig, _, err := SymEigen(m, tol, DefaultEigenSweeps)
	if err != nil {
		return matrixErrorf(opValidatePSD, err)
	}
	scale := 1.0
	for _, e := range eig {
		scale = math.Max(scale, math.Abs(e))
	}
	for _, e := range eig {
		if e < -tol*scale {
			return matrixErrorf(opValidatePSD, ErrNotPositiveSemidefinite)
		}
	}

	return nil
}
