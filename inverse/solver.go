package inverse

import (
	"fmt"

	"github.com/apex/log"

	"github.com/goliatone/go-matrix-cache/matrix"
)

// LinearSolver is the external solve primitive: given square matrices a
// and b of matching dimension, Solve returns X such that a×X = b. The
// Solver uses it with b set to the identity to obtain the inverse of a.
// Implementations fail with matrix.ErrSingular when a has no inverse and
// matrix.ErrDimensionMismatch when the dimensions disagree.
type LinearSolver interface {
	Solve(a, b matrix.Matrix) (matrix.Matrix, error)
}

// Solver memoizes matrix inversion over Holders. On a hit it returns the
// holder's cached inverse untouched; on a miss it computes the inverse via
// the LinearSolver, stores it back into the holder and returns it.
type Solver struct {
	linsolve LinearSolver
	logger   log.Interface
}

// NewSolver creates a Solver from the given configuration. The
// configuration is validated first; use DefaultConfig for the standard
// gonum-backed setup.
func NewSolver(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver{linsolve: cfg.Solver, logger: cfg.Logger}, nil
}

// Solve returns the inverse of the holder's current matrix.
//
// The cached inverse, when present, is returned immediately: no
// recomputation and no check that the matrix is unchanged. Correctness of
// that shortcut rests entirely on SetMatrix clearing the cache on every
// replacement. On a miss the inverse is computed against the
// same-dimension identity and stored before returning.
//
// The stored matrix must be invertible; a singular matrix surfaces as an
// error wrapping matrix.ErrSingular and leaves the cache absent so a later
// call can retry after the caller repairs the matrix.
func (s *Solver) Solve(h *Holder) (matrix.Matrix, error) {
	tk := h.mu.RLock()
	if h.hasInv {
		inv := h.inv
		fields := s.fields(h, h.mat)
		h.mu.RUnlock(tk)
		s.logger.WithFields(fields).Info("cache hit")
		return inv, nil
	}
	h.mu.RUnlock(tk)

	h.mu.Lock()
	defer h.mu.Unlock()

	// Another caller may have computed the inverse between the read and
	// write sections; serve it as a hit rather than solving twice.
	if h.hasInv {
		s.logger.WithFields(s.fields(h, h.mat)).Info("cache hit")
		return h.inv, nil
	}

	m := h.mat
	inv, err := s.linsolve.Solve(m, matrix.Identity(m.Dim()))
	if err != nil {
		return matrix.Matrix{}, fmt.Errorf("inverse: solve %dx%d: %w", m.Dim(), m.Dim(), err)
	}

	h.inv = inv
	h.hasInv = true
	s.logger.WithFields(s.fields(h, m)).Info("cache miss")
	return inv, nil
}

// Invalidate clears the holder's cached inverse without replacing the
// matrix. The next Solve call recomputes. SetMatrix performs the same
// clear as part of replacing the matrix; this entry point exists for
// callers that want to force a recomputation.
func (s *Solver) Invalidate(h *Holder) {
	h.clearInverse()
	s.logger.WithFields(log.Fields{"holder": h.id}).Info("cache invalidated")
}

func (s *Solver) fields(h *Holder, m matrix.Matrix) log.Fields {
	return log.Fields{
		"holder":      h.id,
		"dim":         m.Dim(),
		"fingerprint": fmt.Sprintf("%016x", m.Fingerprint()),
	}
}
