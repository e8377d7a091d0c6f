// SPDX-License-Identifier: MIT

// Package cache implements a memoized matrix-inversion cache.
//
// Two collaborating elements:
//
//   - CacheableMatrix: a mutable container owning a matrix value and an
//     optional cached inverse. Every content-changing mutation (SetMatrix
//     with different data, SetElement with a different value) clears the
//     cached inverse in the same call, so the pair is never observable in
//     an inconsistent state.
//   - Solve: a stateless driver that returns the cached inverse when
//     present and otherwise computes it via matrix.Inverse, stores it, and
//     returns it.
//
// The cache slot has exactly two states, Empty and Valid. Empty→Valid on a
// successful Solve or an explicit SetInverse; Valid→Empty on any
// content-changing mutation. SetMatrix called with data element-wise equal
// to the current value is a deliberate no-op: the value and the cache are
// left untouched and an informational "unchanged" event is logged.
//
// Observability: hit, miss and no-op paths emit structured zap events
// (silent by default via zap.NewNop; inject a logger with WithLogger).
// The exact message text is not load-bearing; tests assert the path taken
// through a zap observer.
//
// Concurrency: instances are single-owner by contract. No locks are taken;
// embedding a CacheableMatrix in a concurrent context requires the owner
// to serialize access (external mutex or single-writer discipline).
package cache
