// SPDX-License-Identifier: MIT
// Package matrix: canonical validators.
//
// Purpose:
//   - Provide a single source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape/compatibility checks here.
//   - Return sentinel errors wrapped with the validator tag so call sites
//     can wrap once more with their operation tag.
//
// All checks are pure, deterministic and allocation-free.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps a sentinel with the given validator tag, keeping a
// stable "Tag: underlying" shape while preserving errors.Is matching.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix when m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure).
// Returns ErrNonSquare on violation. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns ErrDimensionMismatch on violation. Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}
	return nil
}

// ValidateMulCompatible — composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}
	return nil
}

// ValidateSquareNonNil — composite: NotNil → Square.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	return nil
}

// ValidateFinite rejects NaN and ±Inf under the strict numeric policy.
// Returns ErrNaNInf on violation. Complexity: O(1).
func ValidateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}
	return nil
}

// ValidateRows checks that rows is a well-formed two-dimensional array:
// non-nil, at least one row, at least one column, and rectangular (every
// row has the same length).
//
// Returns ErrInvalidInput on any structural violation.
// Complexity: O(r) — lengths only; element values are not inspected here.
func ValidateRows(rows [][]float64) error {
	if len(rows) == 0 {
		return validatorErrorf("ValidateRows", ErrInvalidInput)
	}
	width := len(rows[0])
	if width == 0 {
		return validatorErrorf("ValidateRows", ErrInvalidInput)
	}
	for i := 1; i < len(rows); i++ {
		// A ragged row breaks the rectangular contract.
		if len(rows[i]) != width {
			return validatorErrorf("ValidateRows", ErrInvalidInput)
		}
	}
	return nil
}
