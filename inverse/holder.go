package inverse

import (
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/goliatone/go-matrix-cache/matrix"
)

// Holder owns a mutable square matrix and a single-slot cache for its
// inverse. The holder exclusively owns both values: accessors exchange
// copies, never aliases, so no caller can mutate the matrix behind the
// cache's back.
//
// Holders are safe for concurrent use. A reader-biased lock keeps the
// cache-hit path cheap while guaranteeing that SetMatrix replaces the
// matrix and clears the cached inverse atomically.
type Holder struct {
	id string
	mu *xsync.RBMutex

	mat    matrix.Matrix
	inv    matrix.Matrix
	hasInv bool
}

// NewHolder creates a Holder from row-major input. The input is validated
// with the same rules as SetMatrix (non-nil, non-empty, rectangular,
// square) and fails with matrix.ErrInvalidMatrix otherwise. The cached
// inverse starts out absent.
func NewHolder(rows [][]float64) (*Holder, error) {
	m, err := matrix.New(rows)
	if err != nil {
		return nil, err
	}
	return newHolder(m), nil
}

// NewHolderFromMatrix creates a Holder around an already constructed
// Matrix value.
func NewHolderFromMatrix(m matrix.Matrix) (*Holder, error) {
	if m.IsZero() {
		return nil, matrix.ErrInvalidMatrix
	}
	return newHolder(m), nil
}

func newHolder(m matrix.Matrix) *Holder {
	return &Holder{
		id:  uuid.NewString(),
		mu:  xsync.NewRBMutex(),
		mat: m,
	}
}

// ID returns the holder's unique identifier, used to correlate diagnostic
// log entries.
func (h *Holder) ID() string {
	return h.id
}

// Matrix returns the currently stored matrix. Matrix values carry no
// mutators and slice accessors copy, so the result cannot be used to
// mutate the holder's state. No side effects.
func (h *Holder) Matrix() matrix.Matrix {
	tk := h.mu.RLock()
	defer h.mu.RUnlock(tk)
	return h.mat
}

// SetMatrix validates rows with the same rules as NewHolder and, on
// success, replaces the stored matrix and clears the cached inverse in one
// critical section — there is no window where the old inverse is visible
// alongside the new matrix. On failure the holder keeps its prior matrix
// and prior cache untouched.
func (h *Holder) SetMatrix(rows [][]float64) error {
	m, err := matrix.New(rows)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.mat = m
	h.inv = matrix.Matrix{}
	h.hasInv = false
	return nil
}

// CachedInverse returns the cached inverse and whether one is present. It
// never computes and has no side effects.
func (h *Holder) CachedInverse() (matrix.Matrix, bool) {
	tk := h.mu.RLock()
	defer h.mu.RUnlock(tk)
	return h.inv, h.hasInv
}

// SetCachedInverse unconditionally stores inv as the cached inverse. The
// holder does not verify that inv actually inverts the current matrix;
// the Solver is the trusted writer and maintains that invariant.
func (h *Holder) SetCachedInverse(inv matrix.Matrix) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.inv = inv
	h.hasInv = true
}

// clearInverse drops the cached inverse without touching the matrix.
func (h *Holder) clearInverse() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.inv = matrix.Matrix{}
	h.hasInv = false
}
