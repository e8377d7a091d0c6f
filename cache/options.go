// SPDX-License-Identifier: MIT

// Package cache: functional configuration for CacheableMatrix.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical
//     values — programmer error, never data-driven),
//   - gatherOptions helper (internal) that resolves the effective set.

package cache

import "go.uber.org/zap"

// DefaultValidateNaNInf toggles strict finite-value validation on matrix
// ingestion (New, SetMatrix) and element writes (SetElement).
const DefaultValidateNaNInf = true

// panicNilLogger is the programmer-error message for WithLogger(nil);
// callers wanting silence should rely on the default zap.NewNop.
const panicNilLogger = "cache: WithLogger: logger must be non-nil"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported; public entry points accept ...Option and
// resolve them via gatherOptions.
type options struct {
	logger         *zap.Logger // never nil after gatherOptions
	validateNaNInf bool        // DefaultValidateNaNInf
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		logger:         zap.NewNop(),
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger injects the zap logger that receives cache-hit, cache-miss and
// unchanged-mutation events. The default is zap.NewNop (silent).
// Panics on a nil logger (programmer error).
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *options) { o.logger = l }
}

// WithValidateNaNInf toggles rejection of NaN/±Inf values at ingestion and
// on element writes. Disabling it lets non-finite values flow into the
// matrix and, eventually, into the inverse — use only when the caller
// guarantees finiteness upstream.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *options) { o.validateNaNInf = enabled }
}
