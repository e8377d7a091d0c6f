// Package cache_test: shared fixtures and assertion helpers.
package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/matcache/cache"
	"github.com/katalvlaran/matcache/matrix"
)

// identityTol bounds the round-off accepted by the identity check.
const identityTol = 1e-9

// seedRows is the canonical invertible 3×3 fixture used across tests.
func seedRows() [][]float64 {
	return [][]float64{{11, 14, 17}, {67, 45, 18}, {13, 16, 19}}
}

// newObserved builds a CacheableMatrix whose trace events are captured for
// assertion.
func newObserved(t *testing.T, rows [][]float64, opts ...cache.Option) (*cache.CacheableMatrix, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	opts = append(opts, cache.WithLogger(zap.New(core)))
	m, err := cache.New(rows, opts...)
	require.NoError(t, err)
	return m, logs
}

// requireInverts asserts value × inv ≈ I within identityTol.
func requireInverts(t *testing.T, value, inv matrix.Matrix) {
	t.Helper()
	prod, err := matrix.Mul(value, inv)
	require.NoError(t, err)
	id, err := matrix.Identity(value.Rows())
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(id, prod, identityTol),
		"value × inverse must approximate the identity")
}
