// SPDX-License-Identifier: MIT

package polynomial

// Derivative returns dp/dX.
// Constants and the empty polynomial differentiate to the single-term
// zero polynomial [0]. Otherwise out[i] = (i+1)·p[i+1] and the result is
// one coefficient shorter than p.
// Complexity: O(n).
func (p Polynomial) Derivative() Polynomial {
	if len(p.coefs) <= 1 {
		return Polynomial{coefs: []float64{0}}
	}

	out := make([]float64, len(p.coefs)-1)
	for i := range out {
		out[i] = float64(i+1) * p.coefs[i+1]
	}

	return Polynomial{coefs: out}
}

// Primitive returns the antiderivative of p with integration constant 0:
// out[0] = 0 and out[i+1] = p[i]/(i+1). The result is one coefficient
// longer than p.
// Complexity: O(n).
func (p Polynomial) Primitive() Polynomial {
	out := make([]float64, len(p.coefs)+1)
	for i, c := range p.coefs {
		out[i+1] = c / float64(i+1)
	}

	return Polynomial{coefs: out}
}
