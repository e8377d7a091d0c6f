// SPDX-License-Identifier: MIT

package cache

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/matcache/matrix"
)

// Trace event messages. They are part of the behavioral contract only in
// the sense that each names a distinct path; the exact wording may change.
const (
	// MsgCacheHit is logged by Solve when the stored inverse is returned.
	MsgCacheHit = "cache hit"
	// MsgCacheMiss is logged by Solve after computing and storing a fresh
	// inverse.
	MsgCacheMiss = "cache miss"
	// MsgUnchanged is logged by SetMatrix when the new data is element-wise
	// identical to the current value and the call is a no-op.
	MsgUnchanged = "matrix unchanged"
)

// Operation name constants for unified error wrapping.
const (
	opNew        = "New"
	opSetMatrix  = "SetMatrix"
	opSetElement = "SetElement"
	opSolve      = "Solve"
)

// cacheErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is. Call only with err != nil.
func cacheErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// CacheableMatrix owns a matrix value and an optional cached inverse.
//
// Invariant: whenever inverse is non-nil it equals the mathematical inverse
// of value as of the moment it was last computed or set, and value has not
// changed since. Every mutation that changes value's content nils inverse
// in the same call; all validation happens before any write, so there is
// no window where the pair is inconsistent.
//
// Not safe for concurrent use — see the package documentation.
type CacheableMatrix struct {
	value   *matrix.Dense // owned exclusively; never aliased to callers
	inverse matrix.Matrix // nil == Empty cache slot

	logger         *zap.Logger
	validateNaNInf bool

	hits, misses uint64 // Solve path counters, see Stats
}

// New constructs a CacheableMatrix from an initial matrix given as row
// data. The data is copied; the caller keeps ownership of rows.
//
// Errors: ErrInvalidInput (nil/empty/ragged rows), ErrNaNInf (non-finite
// element under the default numeric policy).
func New(rows [][]float64, opts ...Option) (*CacheableMatrix, error) {
	o := gatherOptions(opts...)
	v, err := matrix.NewDenseFromRows(rows, o.validateNaNInf)
	if err != nil {
		return nil, cacheErrorf(opNew, err)
	}
	return &CacheableMatrix{
		value:          v,
		logger:         o.logger,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Matrix returns a deep copy of the current matrix value. A copy (rather
// than a view) keeps the invalidation invariant unforgeable: no caller can
// mutate the value without going through SetMatrix/SetElement.
// Complexity: O(r*c).
func (m *CacheableMatrix) Matrix() matrix.Matrix {
	return m.value.Clone()
}

// SetMatrix replaces the matrix value with newRows.
//
// Stage 1 (Validate): build the replacement first; malformed input fails
// with ErrInvalidInput/ErrNaNInf before any state changes.
// Stage 2 (Compare): if the replacement is element-wise identical to the
// current value, leave both value and cached inverse untouched, log
// MsgUnchanged at Info, and return the retained value.
// Stage 3 (Replace): otherwise adopt the replacement and clear the cached
// inverse in the same step. Returns (a copy of) the value now held.
//
// Complexity: O(r*c).
func (m *CacheableMatrix) SetMatrix(newRows [][]float64) (matrix.Matrix, error) {
	next, err := matrix.NewDenseFromRows(newRows, m.validateNaNInf)
	if err != nil {
		return nil, cacheErrorf(opSetMatrix, err)
	}
	if matrix.Equal(m.value, next) {
		// Deliberate no-op: same content means the cached inverse, if any,
		// is still correct.
		m.logger.Info(MsgUnchanged,
			zap.Int("rows", m.value.Rows()),
			zap.Int("cols", m.value.Cols()),
		)
		return m.value.Clone(), nil
	}
	m.value = next // next was built from copied data, safe to own
	m.inverse = nil
	return m.value.Clone(), nil
}

// SetElement updates the element at (row, col) to v.
//
// Out-of-range coordinates fail with ErrOutOfRange; a non-finite v fails
// with ErrNaNInf under the default policy — both before any state changes.
// When the element already equals v, the call is a no-op and the cached
// inverse is preserved; otherwise the element is written and the cached
// inverse is cleared in the same step. Returns v on success.
//
// Complexity: O(1).
func (m *CacheableMatrix) SetElement(row, col int, v float64) (float64, error) {
	if m.validateNaNInf {
		if err := matrix.ValidateFinite(v); err != nil {
			return 0, cacheErrorf(opSetElement, err)
		}
	}
	cur, err := m.value.At(row, col)
	if err != nil {
		return 0, cacheErrorf(opSetElement, err)
	}
	if cur == v {
		return v, nil // unchanged element: no invalidation needed
	}
	_ = m.value.Set(row, col, v) // bounds already checked by At
	m.inverse = nil
	return v, nil
}

// Inverse returns the cached inverse as-is and whether the slot is Valid.
// It performs no computation; use Solve to populate the cache.
func (m *CacheableMatrix) Inverse() (matrix.Matrix, bool) {
	if m.inverse == nil {
		return nil, false
	}
	return m.inverse, true
}

// SetInverse unconditionally overwrites the cached inverse with inv.
// No validation is performed that inv actually inverts the current value:
// this is a trust boundary the caller (normally Solve) must respect.
func (m *CacheableMatrix) SetInverse(inv matrix.Matrix) {
	m.inverse = inv
}

// Stats reports how many Solve calls were served from the cache (hits) and
// how many computed a fresh inverse (misses). Failed inversions count as
// neither — the counters mirror the emitted trace events.
func (m *CacheableMatrix) Stats() (hits, misses uint64) {
	return m.hits, m.misses
}
