// SPDX-License-Identifier: MIT

package matrix

// NewCOO returns an empty coordinate-list matrix.
func NewCOO[T any]() *COO[T] {
	return &COO[T]{}
}

// Push appends the triple (row, col, value).
// Complexity: amortized O(1).
func (m *COO[T]) Push(row, col int, value T) {
	m.data = append(m.data, Entry[T]{Row: row, Col: col, Value: value})
}

// Entries returns a copy of the stored triples in insertion order.
// Complexity: O(nnz).
func (m *COO[T]) Entries() []Entry[T] {
	return append([]Entry[T](nil), m.data...)
}

// Len returns the number of stored triples.
func (m *COO[T]) Len() int {
	return len(m.data)
}
