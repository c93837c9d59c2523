// SPDX-License-Identifier: MIT

package polynomial

import (
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Len returns the number of stored coefficients, trailing zeros included.
// Complexity: O(1).
func (p Polynomial) Len() int {
	return len(p.coefs)
}

// Coefficients returns a copy of the coefficient sequence, lowest degree first.
// Complexity: O(n).
func (p Polynomial) Coefficients() []float64 {
	return cloneCoefs(p.coefs)
}

// Coeff returns the coefficient of X^i, or 0 when i lies outside the stored
// sequence. This is the implicit zero-padding used by two-operand operations.
// Complexity: O(1).
func (p Polynomial) Coeff(i int) float64 {
	if i < 0 || i >= len(p.coefs) {
		return 0
	}

	return p.coefs[i]
}

// Degree returns Len()-1.
// Returns an error wrapping ErrInvalidState when the sequence is empty.
// Complexity: O(1).
func (p Polynomial) Degree() (int, error) {
	if len(p.coefs) == 0 {
		return 0, polyErrorf("Degree", ErrInvalidState)
	}

	return len(p.coefs) - 1, nil
}

// Evaluate computes Σ coefs[i]·x^i by direct power summation.
// The empty polynomial evaluates to 0.
// Complexity: O(n).
func (p Polynomial) Evaluate(x float64) float64 {
	var res float64
	for deg, c := range p.coefs {
		res += c * math.Pow(x, float64(deg))
	}

	return res
}

// Equal reports whether p and q store exactly the same coefficients.
// Lengths must match: [1] and [1, 0] are different values. NaN never equals NaN.
func (p Polynomial) Equal(q Polynomial) bool {
	return cmp.Equal(p.coefs, q.coefs, cmpopts.EquateEmpty())
}

// ApproxEqual is Equal with an absolute per-coefficient tolerance.
func (p Polynomial) ApproxEqual(q Polynomial, tol float64) bool {
	return cmp.Equal(p.coefs, q.coefs, cmpopts.EquateEmpty(), cmpopts.EquateApprox(0, tol))
}
