// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra layer underneath the
// matcache inversion cache.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix backed by a single flat slice,
//     plus NewDenseFromRows for ingesting caller-supplied [][]float64 data
//     under an explicit numeric policy (NaN/±Inf rejection).
//   - A unified sentinel error set (ErrBadShape, ErrOutOfRange,
//     ErrNonSquare, ErrSingular, ...) matched via errors.Is.
//   - Central validators so kernels and callers share one source of truth
//     for nil/shape/compatibility checks.
//   - Deterministic kernels: Mul, LU (Doolittle, no pivoting) and Inverse
//     (LU plus triangular solves), with Identity/Equal/EqualApprox helpers.
//
// All kernels are pure: operands are never mutated, results are freshly
// allocated. Determinism is favored over numerical robustness — LU runs
// without pivoting and reports an exactly-zero pivot as ErrSingular, so
// ill-conditioned inputs are the caller's concern.
package matrix
