// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcache/matrix"
)

// TestNewDenseBadShape ensures that NewDense rejects non-positive dimensions.
func TestNewDenseBadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 5) // zero rows
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(5, -1) // negative columns
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNewDenseFromRowsCopies verifies ingestion copies the caller's data.
func TestNewDenseFromRowsCopies(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.NewDenseFromRows(rows, true)
	require.NoError(t, err)

	rows[0][0] = 99 // mutate the source after ingestion

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // the matrix must not observe the mutation
}

// TestNewDenseFromRowsMalformed covers nil, empty and ragged input.
func TestNewDenseFromRowsMalformed(t *testing.T) {
	cases := map[string][][]float64{
		"nil":       nil,
		"empty":     {},
		"empty row": {{}},
		"ragged":    {{1, 2}, {3}},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.NewDenseFromRows(rows, true)
			require.ErrorIs(t, err, matrix.ErrInvalidInput)
		})
	}
}

// TestNewDenseFromRowsNumericPolicy checks NaN/Inf rejection and the opt-out.
func TestNewDenseFromRowsNumericPolicy(t *testing.T) {
	bad := [][]float64{{1, math.NaN()}, {3, 4}}

	_, err := matrix.NewDenseFromRows(bad, true) // strict policy
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	inf := [][]float64{{math.Inf(1), 2}, {3, 4}}
	_, err = matrix.NewDenseFromRows(inf, true)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewDenseFromRows(bad, false) // policy disabled
	require.NoError(t, err)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
}

// TestAtSetOutOfRange ensures At and Set return ErrOutOfRange on bad indices.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set followed by At on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 7.89))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
}

// TestCloneIndependence ensures Clone returns a deep copy with no shared
// storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 2}}, true)
	require.NoError(t, err)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig) // original untouched

	got, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, got) // clone reflects the write
}

// TestStringOutput checks the one-row-per-line format.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}}, true)
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
