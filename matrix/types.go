// SPDX-License-Identifier: MIT

package matrix

// Matrix is a rectangular row-major container of T values.
// Every row has the same length; the column count is taken from row 0.
type Matrix[T any] struct {
	data [][]T // data[i] is row i
}

// COO is a coordinate-list sparse matrix.
// Entries are kept in insertion order; duplicates are not merged.
type COO[T any] struct {
	data []Entry[T]
}

// Entry is a single (Row, Col, Value) triple stored in a COO matrix.
type Entry[T any] struct {
	Row   int
	Col   int
	Value T
}
