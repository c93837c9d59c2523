// Package maths is a small numeric toolkit: univariate polynomials over
// float64 and a row-major matrix container.
//
// Under the hood, everything is organized under two subpackages:
//
//	polynomial/ — Polynomial and Scalar types: Evaluate, Add, Multiply,
//	              Scale, Derivative, Primitive and canonical String form
//	matrix/     — Matrix[T] (shape, row and element access) and COO[T]
//
// Quick example:
//
//	p := polynomial.New(1, 2, 1)
//	fmt.Println(p)             // 1.0 + 2.0*X + X^2
//	fmt.Println(p.Evaluate(3)) // 16
//
//	go get github.com/MNIKIEMA/maths
package maths
