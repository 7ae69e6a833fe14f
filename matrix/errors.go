package matrix

import "errors"

// Sentinel errors for the matrix package. Callers match these with
// errors.Is; contextual information is added by wrapping at the call site.
var (
	// ErrInvalidMatrix is returned when raw input cannot form a valid
	// matrix: nil or empty input, ragged rows, or a non-square shape.
	ErrInvalidMatrix = errors.New("matrix: invalid matrix")

	// ErrDimensionMismatch is returned when two matrices with incompatible
	// dimensions are combined, e.g. multiplying a 2×2 by a 3×3.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned by linear solvers when the coefficient matrix
	// has no inverse (or is too ill-conditioned to invert reliably).
	ErrSingular = errors.New("matrix: singular matrix")
)
