// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// New builds a Matrix from rows, deep-copying the input.
// Stage 1 (Validate): every row must match the length of row 0.
// Stage 2 (Prepare): allocate fresh row slices.
// Stage 3 (Finalize): return the Matrix or ErrBadShape.
// Complexity: O(r*c) time and memory.
func New[T any](rows [][]T) (*Matrix[T], error) {
	// Validate rectangular shape
	for i := range rows {
		if len(rows[i]) != len(rows[0]) {
			return nil, matrixErrorf("New", i, len(rows[i]), ErrBadShape)
		}
	}

	// Copy rows so the caller's slices stay independent
	data := make([][]T, len(rows))
	for i, row := range rows {
		data[i] = append([]T(nil), row...)
	}

	return &Matrix[T]{data: data}, nil
}

// Shape returns (rowCount, colCount). A matrix with no rows is (0, 0).
// Complexity: O(1).
func (m *Matrix[T]) Shape() (int, int) {
	if len(m.data) == 0 {
		return 0, 0
	}

	return len(m.data), len(m.data[0])
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= len(m.data) {
		return nil, matrixErrorf("Row", i, 0, ErrOutOfRange)
	}

	return append([]T(nil), m.data[i]...), nil
}

// SetRow replaces row i with a copy of row.
// Returns ErrOutOfRange for a bad index and ErrBadShape when len(row)
// differs from the column count.
// Complexity: O(c).
func (m *Matrix[T]) SetRow(i int, row []T) error {
	if i < 0 || i >= len(m.data) {
		return matrixErrorf("SetRow", i, 0, ErrOutOfRange)
	}
	if _, cols := m.Shape(); len(row) != cols {
		return matrixErrorf("SetRow", i, len(row), ErrBadShape)
	}
	m.data[i] = append([]T(nil), row...)

	return nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if err := m.checkIndex("At", row, col); err != nil {
		return zero, err
	}

	return m.data[row][col], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if err := m.checkIndex("Set", row, col); err != nil {
		return err
	}
	m.data[row][col] = v

	return nil
}

// checkIndex validates 0 ≤ row < rows and 0 ≤ col < cols.
func (m *Matrix[T]) checkIndex(method string, row, col int) error {
	rows, cols := m.Shape()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return nil
}

// String implements fmt.Stringer for easy debugging, one bracketed row per line.
// Complexity: O(r*c).
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for _, row := range m.data {
		sb.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ") // separate values with comma
			}
			fmt.Fprint(&sb, v)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
