// SPDX-License-Identifier: MIT
// Dense is the concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Errors: ErrBadShape on non-positive dimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from caller-supplied row data, copying
// every element — the result shares no storage with rows.
// Stage 1 (Validate): ValidateRows rejects nil/empty/ragged input.
// Stage 2 (Ingest): copy row by row; under validateNaNInf, reject the first
// non-finite element encountered (fixed i→j scan order).
// Errors: ErrInvalidInput (structure), ErrNaNInf (numeric policy).
// Complexity: O(r*c) time and memory.
func NewDenseFromRows(rows [][]float64, validateNaNInf bool) (*Dense, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, err
	}
	r, c := len(rows), len(rows[0])
	d := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		if validateNaNInf {
			for j = 0; j < c; j++ {
				if err := ValidateFinite(rows[i][j]); err != nil {
					return nil, denseErrorf("NewDenseFromRows", i, j, ErrNaNInf)
				}
			}
		}
		copy(d.data[i*c:(i+1)*c], rows[i])
	}
	return d, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// index computes the flat offset for (row, col) or returns ErrOutOfRange.
func (m *Dense) index(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.index("At", row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.index("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep copy of the matrix; the copy shares no storage with
// the receiver. Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer, one bracketed row per line.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}
	return b.String()
}
