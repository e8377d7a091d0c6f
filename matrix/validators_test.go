// Package matrix_test: validator coverage. Each validator returns its
// sentinel through errors.Is regardless of tag wrapping.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcache/matrix"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m))
}

func TestValidateSquare(t *testing.T) {
	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquare(sq))

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
}

func TestValidateSameShape(t *testing.T) {
	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSameShape(a, b))

	c, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSameShape(a, c), matrix.ErrDimensionMismatch)
}

func TestValidateMulCompatible(t *testing.T) {
	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateMulCompatible(a, b))

	// inner dimensions disagree: 2x3 × 2x3
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)

	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
}

func TestValidateFinite(t *testing.T) {
	require.NoError(t, matrix.ValidateFinite(0))
	require.NoError(t, matrix.ValidateFinite(-12.5))
	require.ErrorIs(t, matrix.ValidateFinite(math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(math.Inf(-1)), matrix.ErrNaNInf)
}

func TestValidateRows(t *testing.T) {
	require.NoError(t, matrix.ValidateRows([][]float64{{1}, {2}}))

	require.ErrorIs(t, matrix.ValidateRows(nil), matrix.ErrInvalidInput)
	require.ErrorIs(t, matrix.ValidateRows([][]float64{}), matrix.ErrInvalidInput)
	require.ErrorIs(t, matrix.ValidateRows([][]float64{{}}), matrix.ErrInvalidInput)
	require.ErrorIs(t, matrix.ValidateRows([][]float64{{1, 2}, {3}}), matrix.ErrInvalidInput)
}
