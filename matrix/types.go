// SPDX-License-Identifier: MIT

package matrix

// Matrix is the minimal read/write contract shared by matrix values in this
// module. Dense is the canonical implementation; kernels accept the
// interface and return concrete results.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At retrieves the element at (row, col) or ErrOutOfRange.
	At(row, col int) (float64, error)
	// Set assigns v at (row, col) or returns ErrOutOfRange.
	Set(row, col int, v float64) error
	// Clone returns a deep copy sharing no storage with the receiver.
	Clone() Matrix
}
