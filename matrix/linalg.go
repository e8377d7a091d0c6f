// SPDX-License-Identifier: MIT
// Package matrix: deterministic linear-algebra kernels.
//
// Purpose:
//   - Provide the inversion pipeline the cache layer defers to:
//     LU (Doolittle, no pivoting) → triangular solves → Inverse.
//   - Provide Mul / Identity / Equal helpers used both by callers and by
//     correctness tests (value × inverse ≈ I).
//
// Notes:
//   - All kernels use the central validators and wrap failures with an
//     operation tag via matrixErrorf; the underlying sentinel stays
//     matchable through errors.Is.
//   - Kernels never mutate operands; non-*Dense inputs are densified once
//     up front so every hot loop runs on flat slices.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for substitution and dot loops.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul     = "Mul"
	opLU      = "LU"
	opInverse = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m as a *Dense, copying through the interface when m is a
// foreign implementation. Assumes m is non-nil and shape-validated; At
// cannot fail inside the validated bounds.
func toDense(m Matrix) *Dense {
	if d, ok := m.(*Dense); ok {
		return d
	}
	r, c := m.Rows(), m.Cols()
	d := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, _ = m.At(i, j) // bounds hold after shape validation
			d.data[i*c+j] = v
		}
	}
	return d
}

// Mul performs standard matrix multiplication C = A × B.
// Stage 1 (Validate): ValidateMulCompatible (non-nil, a.Cols == b.Rows).
// Stage 2 (Execute): densify operands, then a fixed i→k→j triple loop with
// row-major strides, skipping zero A[i,k] terms.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c) for the fresh result.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, db := toDense(a), toDense(b)
	rows, inner, cols := da.r, da.c, db.c
	res := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}

	var i, j, k int
	var av float64
	var baseA, baseB, baseR int
	for i = 0; i < rows; i++ {
		baseA = i * inner
		baseR = i * cols
		for k = 0; k < inner; k++ {
			av = da.data[baseA+k]
			if av == 0 {
				continue // zero term contributes nothing
			}
			baseB = k * cols
			for j = 0; j < cols; j++ {
				res.data[baseR+j] += av * db.data[baseB+j]
			}
		}
	}
	return res, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L,
// without pivoting (deterministic by construction).
// Stage 1 (Validate): non-nil and square.
// Stage 2 (Factorize): for i=0..n-1, build row i of U, guard the pivot,
// then column i of L — fixed visitation order.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (zero pivot U[i,i]).
// Complexity: Time O(n^3), Space O(n^2).
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a := toDense(m)
	n := a.r
	l := &Dense{r: n, c: n, data: make([]float64, n*n)}
	u := &Dense{r: n, c: n, data: make([]float64, n*n)}

	// Unit lower-triangular diagonal.
	var i, j, k int
	for i = 0; i < n; i++ {
		l.data[i*n+i] = 1.0
	}

	var sum, pivot float64
	var baseI, baseJ int
	for i = 0; i < n; i++ {
		baseI = i * n
		// U[i][j] for j >= i.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[baseI+k] * u.data[k*n+j]
			}
			u.data[baseI+j] = a.data[baseI+j] - sum
		}
		// Zero-pivot guard: deterministic singularity detection.
		pivot = u.data[baseI+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		// L[j][i] for j > i.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += l.data[baseJ+k] * u.data[k*n+i]
			}
			l.data[baseJ+i] = (a.data[baseJ+i] - sum) / pivot
		}
	}
	return l, u, nil
}

// Inverse computes A⁻¹ via LU factorization and per-column triangular
// solves. The input is never mutated; the result is a fresh Dense.
// Stage 1 (Validate + Factorize): ValidateSquareNonNil, then LU(m).
// Stage 2 (Solve): for each canonical basis column e_col, forward solve
// L*y = e_col top-down, backward solve U*x = y bottom-up, and write x into
// column col of the result.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (zero pivot, surfaced by
// LU before any solve runs).
// Complexity: Time O(n^3), Space O(n^2).
// Notes: no pivoting means near-singular inputs pass the exact-zero guard;
// callers needing stability must precondition upstream.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	l, u, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.Rows()
	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	y := make([]float64, n) // forward-substitution workspace
	x := make([]float64, n) // backward-substitution workspace

	var col, i, k, base int
	var sum float64
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = e_col.
		for i = 0; i < n; i++ {
			sum = ZeroSum
			base = i * n
			for k = 0; k < i; k++ {
				sum += l.data[base+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y. Pivots are non-zero — LU already
		// rejected singular input.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			base = i * n
			for k = i + 1; k < n; k++ {
				sum += u.data[base+k] * x[k]
			}
			x[i] = (y[i] - sum) / u.data[base+i]
		}
		// Write x into column col.
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}
	return inv, nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrBadShape when n <= 0. Complexity: O(n^2).
func Identity(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1.0
	}
	return d, nil
}

// Equal reports whether a and b have identical shape and exactly equal
// elements. Nil operands are equal only to nil. Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	da, db := toDense(a), toDense(b)
	for i := range da.data {
		if da.data[i] != db.data[i] {
			return false
		}
	}
	return true
}

// EqualApprox reports whether a and b agree element-wise within tol
// (|a[i,j]-b[i,j]| <= tol). Shape mismatch or nil operands report false.
// Complexity: O(r*c).
func EqualApprox(a, b Matrix, tol float64) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	da, db := toDense(a), toDense(b)
	for i := range da.data {
		if math.Abs(da.data[i]-db.data[i]) > tol {
			return false
		}
	}
	return true
}
