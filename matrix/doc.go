// Package matrix provides small row-major containers used alongside the
// polynomial package.
//
// The matrix package provides:
//
//   - Matrix[T], a rectangular row-major container built from a nested
//     slice, with Shape, row access (Row/SetRow) and element access (At/Set).
//   - COO[T], a coordinate-list sparse layout that records (row, col, value)
//     triples in insertion order.
//
// All accessors bounds-check and return ErrOutOfRange instead of panicking.
// Writes are not synchronized; callers sharing a Matrix across goroutines
// must guard it themselves.
package matrix
