// SPDX-License-Identifier: MIT

package polynomial

// Scale returns a new polynomial with every coefficient multiplied by k.
// Length is unchanged.
// Complexity: O(n).
func (p Polynomial) Scale(k float64) Polynomial {
	out := make([]float64, len(p.coefs))
	for i, c := range p.coefs {
		out[i] = c * k
	}

	return Polynomial{coefs: out}
}

// Add returns p + q.
// The result has exactly max(p.Len(), q.Len()) coefficients; positions past
// an operand's own length read as zero, so no term is ever dropped.
// Complexity: O(max(n, m)).
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := max(len(p.coefs), len(q.coefs))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = p.Coeff(i) + q.Coeff(i)
	}

	return Polynomial{coefs: out}
}

// Multiply returns the product p·q by discrete convolution:
//
//	out[k] = Σ_{j=0..k} p[j]·q[k-j]
//
// The result has p.Len()+q.Len()-1 coefficients. When either operand is
// empty there is nothing to convolve and the empty polynomial is returned.
// Complexity: O(n·m).
func (p Polynomial) Multiply(q Polynomial) Polynomial {
	n, m := len(p.coefs), len(q.coefs)
	if n == 0 || m == 0 {
		return Polynomial{coefs: []float64{}}
	}

	out := make([]float64, n+m-1)
	for k := range out {
		for j := 0; j <= k; j++ {
			out[k] += p.Coeff(j) * q.Coeff(k-j)
		}
	}

	return Polynomial{coefs: out}
}

// Plus is the operator form of Add.
func (p Polynomial) Plus(q Polynomial) Polynomial {
	return p.Add(q)
}

// Mul is the operator form of Multiply.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	return p.Multiply(q)
}

// MulScalar returns p·s, identical to p.Scale(s.Value).
func (p Polynomial) MulScalar(s Scalar) Polynomial {
	return p.Scale(s.Value)
}

// Mul returns s·p. Scalar multiplication commutes: s.Mul(p) equals p.MulScalar(s).
func (s Scalar) Mul(p Polynomial) Polynomial {
	return p.Scale(s.Value)
}
