// Package polynomial implements univariate polynomials over float64
// coefficients: evaluation, arithmetic, calculus and canonical rendering.
//
// 🚀 What is a Polynomial here?
//
//	An ordered coefficient sequence, lowest degree first:
//	  polynomial.New(1, 2, 1)  ≡  1 + 2X + X²
//
//	The sequence is never normalized: trailing zeros are kept and count
//	towards Len and Degree. Every operation returns a fresh value and never
//	touches its operands, so Polynomial values are safe to share between
//	goroutines without locking.
//
// ✨ Key features:
//   - Evaluate by direct power summation
//   - Add / Multiply with implicit zero-padding on ragged lengths
//   - Derivative and Primitive (integration constant fixed at 0)
//   - Scalar multiplication through Scale or the Scalar wrapper
//   - Canonical String form: "1.0 + 2.0*X + X^2"
//
// ⚙️ Usage:
//
//	p := polynomial.New(1, 2)
//	q := polynomial.New(1, 2, 3)
//	r := p.Multiply(q)                  // 1 + 4X + 7X² + 6X³
//	v := r.Evaluate(2)                  // 85
//	d := r.Derivative()                 // 4 + 14X + 18X²
//	deg, err := polynomial.New().Degree() // err wraps ErrInvalidState
//
// Complexity:
//
//	Evaluate, Scale, Add, Derivative, Primitive, String: O(n)
//	Multiply: O(n·m)
package polynomial
