package polynomial_test

import (
	"errors"
	"fmt"

	"github.com/MNIKIEMA/maths/polynomial"
)

// ExamplePolynomial_Multiply shows convolution and canonical rendering.
func ExamplePolynomial_Multiply() {
	p := polynomial.New(1, 2)
	q := polynomial.New(1, 2, 3)

	r := p.Multiply(q)
	fmt.Println(r.Coefficients())
	fmt.Println(r)
	fmt.Println(r.Evaluate(2))

	// Output:
	// [1 4 7 6]
	// 1.0 + 4.0*X + 7.0*X^2 + 6.0*X^3
	// 85
}

// ExamplePolynomial_Derivative shows both calculus operators.
func ExamplePolynomial_Derivative() {
	p := polynomial.New(1, 2, 3)

	fmt.Println(p.Derivative())
	fmt.Println(p.Primitive())

	// Output:
	// 2.0 + 6.0*X
	// X + X^2 + X^3
}

// ExampleScalar_Mul shows scalar multiplication from both sides.
func ExampleScalar_Mul() {
	p := polynomial.New(-1, -1)
	s := polynomial.Scalar{Value: 2}

	fmt.Println(p)
	fmt.Println(s.Mul(p))
	fmt.Println(p.MulScalar(s))

	// Output:
	// -1.0 - X
	// -2.0 - 2.0*X
	// -2.0 - 2.0*X
}

// ExamplePolynomial_Degree shows the empty-sequence error.
func ExamplePolynomial_Degree() {
	deg, err := polynomial.New(1, 0, 0).Degree()
	fmt.Println(deg, err)

	_, err = polynomial.New().Degree()
	fmt.Println(errors.Is(err, polynomial.ErrInvalidState))
	fmt.Println(err)

	// Output:
	// 2 <nil>
	// true
	// Polynomial.Degree: polynomial: invalid state
}
