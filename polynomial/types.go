// SPDX-License-Identifier: MIT

package polynomial

import "golang.org/x/exp/constraints"

// Polynomial is a univariate polynomial with float64 coefficients.
// coefs[i] holds the coefficient of X^i. The zero value is the empty
// polynomial, which has no valid degree.
type Polynomial struct {
	coefs []float64 // lowest degree first, never normalized
}

// Scalar wraps a single float64 so that scalar multiplication reads apart
// from polynomial multiplication at call sites.
type Scalar struct {
	Value float64
}

// New builds a Polynomial from coefficients given lowest degree first.
// The input slice is copied; later changes to it are not observed.
// Complexity: O(n).
func New(coefs ...float64) Polynomial {
	return Polynomial{coefs: cloneCoefs(coefs)}
}

// FromValues lifts an integer or float coefficient slice to a Polynomial.
// Complexity: O(n).
func FromValues[T constraints.Integer | constraints.Float](vals []T) Polynomial {
	coefs := make([]float64, len(vals))
	for i, v := range vals {
		coefs[i] = float64(v)
	}

	return Polynomial{coefs: coefs}
}

// cloneCoefs returns an independent copy of coefs, keeping nil as an empty slice.
func cloneCoefs(coefs []float64) []float64 {
	out := make([]float64, len(coefs))
	copy(out, coefs)

	return out
}
