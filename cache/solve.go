// SPDX-License-Identifier: MIT

package cache

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/matcache/matrix"
)

// Solve returns the inverse of m's current matrix, consulting the cache
// before recomputing.
//
// Stage 1 (Hit): when the cache slot is Valid, log MsgCacheHit at Debug and
// return the stored inverse — the same value on every hit until the next
// invalidation, never a copy.
// Stage 2 (Miss): otherwise compute matrix.Inverse of the current value,
// store it via SetInverse, log MsgCacheMiss at Debug, and return it.
//
// Inversion failures propagate uncaught and leave the cache Empty:
// ErrNonSquare for a non-square value, ErrSingular when a zero pivot is
// detected. No retry, no fallback.
//
// Callers must treat the returned matrix as read-only; mutating it would
// corrupt the cached inverse behind the container's back.
//
// Complexity: O(1) on a hit, O(n^3) on a miss.
func Solve(m *CacheableMatrix) (matrix.Matrix, error) {
	if m == nil {
		return nil, cacheErrorf(opSolve, matrix.ErrNilMatrix)
	}
	if inv, ok := m.Inverse(); ok {
		m.hits++
		m.logger.Debug(MsgCacheHit, zap.Uint64("hits", m.hits))
		return inv, nil
	}
	inv, err := matrix.Inverse(m.value)
	if err != nil {
		return nil, cacheErrorf(opSolve, err)
	}
	m.SetInverse(inv)
	m.misses++
	m.logger.Debug(MsgCacheMiss, zap.Uint64("misses", m.misses))
	return inv, nil
}
