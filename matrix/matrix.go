// Package matrix provides the dense numeric primitives used by the
// matching engine: cost matrices are built from graph weights, reduced
// into excess matrices, and handed to the assignment solver.
//
// Matrix is the minimal read/write contract; Dense is its row-major
// float64 implementation. All indexers return sentinel errors instead
// of panicking, matched via errors.Is.
package matrix

import "errors"

// ErrBadShape is returned when requested matrix dimensions are not positive.
var ErrBadShape = errors.New("matrix: invalid shape")

// ErrOutOfRange indicates that a row or column index is outside valid bounds.
var ErrOutOfRange = errors.New("matrix: index out of range")

// Matrix is a minimal mutable 2-D float64 container.
//
// Implementations must be deterministic: At/Set never reorder or
// normalize values, and Clone yields an independent deep copy.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At retrieves the element at (row, col) or returns ErrOutOfRange.
	At(row, col int) (float64, error)
	// Set assigns v at (row, col) or returns ErrOutOfRange.
	Set(row, col int, v float64) error
	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
