// Package matcache is a small library for memoized matrix inversion:
// wrap a dense matrix in a cache-aware container, mutate it freely, and
// let the solver recompute the inverse only when the matrix actually
// changed.
//
// 🚀 What is matcache?
//
//	A single, well-tested mechanism split across two subpackages:
//		• matrix/ — row-major Dense matrices + deterministic LU/Inverse/Mul kernels
//		• cache/  — CacheableMatrix (value + invalidated-on-write inverse) and Solve
//
// ✨ Why choose matcache?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Explicit contracts – sentinel errors, errors.Is everywhere, no panics
//     on user input
//   - Observable – cache hit / cache miss / no-op mutations surface as
//     structured zap events you can assert in tests
//   - Deterministic – fixed loop orders, no pivoting, reproducible results
//
// Typical flow:
//
//	m, _ := cache.New([][]float64{{4, 7}, {2, 6}})
//	inv, _ := cache.Solve(m) // miss: computes and stores
//	inv, _ = cache.Solve(m)  // hit: returns the stored inverse
//	m.SetElement(0, 0, 5)    // invalidates
//	inv, _ = cache.Solve(m)  // miss again: fresh inverse
//
// Each CacheableMatrix is single-owner by contract: the library takes no
// locks, so embedding an instance in a concurrent context requires the
// caller to serialize access.
//
//	go get github.com/katalvlaran/matcache
package matcache
