// SPDX-License-Identifier: MIT

package dataset

import (
	"math"

	"github.com/ssrothman/simon-mpl-util/matrix"
)

// DefaultSymmetryTolerance is the relative tolerance of the covariance
// symmetry check: |C[i,j]-C[j,i]| <= eps * max(1, max|C|).
const DefaultSymmetryTolerance = 1e-9

const (
	panicToleranceInvalid = "dataset: WithSymmetryTolerance: eps must be finite, non-negative"
	panicPSDInvalid       = "dataset: WithPSDCheck: tol must be finite and positive"
)

// Option configures a Histogram at construction.
type Option func(*options)

type options struct {
	cov    *matrix.Dense
	qtype  QuantityType
	symTol float64
	psdTol float64 // 0 disables the eigenvalue check
}

func defaultOptions() options {
	return options{qtype: Covariance, symTol: DefaultSymmetryTolerance}
}

// WithCov attaches a matrix (copied) to the histogram.
func WithCov(m *matrix.Dense) Option {
	return func(o *options) {
		if m == nil {
			o.cov = nil
			return
		}
		o.cov = m.Clone()
	}
}

// WithQuantityType sets the matrix semantics (default Covariance).
func WithQuantityType(q QuantityType) Option {
	return func(o *options) { o.qtype = q }
}

// WithSymmetryTolerance sets the relative covariance symmetry tolerance.
// Panics on a negative or non-finite eps.
func WithSymmetryTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.symTol = eps }
}

// WithPSDCheck additionally requires a covariance matrix to be positive
// semidefinite: no eigenvalue below -tol·max(1, max|eig|). The check costs a
// full eigen decomposition. Panics unless tol is finite and positive.
func WithPSDCheck(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicPSDInvalid)
	}

	return func(o *options) { o.psdTol = tol }
}
