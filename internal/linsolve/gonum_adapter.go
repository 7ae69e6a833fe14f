// Package linsolve provides the gonum-backed implementation of the linear
// solve primitive used by the inverse package. The concrete adapter lives
// here, behind the public inverse.LinearSolver interface, so the gonum
// dependency never leaks into the public API surface.
package linsolve

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/goliatone/go-matrix-cache/matrix"
)

// GonumSolver solves A×X = B with gonum's dense LU-based solver.
//
// Version compatibility note: this implementation assumes the gonum v0.15
// mat API. Dense.Solve reports singular and near-singular systems through
// its error return; we never inspect the concrete error type, only that it
// is non-nil, so minor gonum upgrades stay safe.
type GonumSolver struct{}

// NewGonumSolver creates the default solve primitive.
func NewGonumSolver() *GonumSolver {
	return &GonumSolver{}
}

// Solve returns X such that a×X = b. Both operands must be square with the
// same dimension; a mismatch fails with matrix.ErrDimensionMismatch. A
// singular (or numerically near-singular) coefficient matrix fails with an
// error wrapping matrix.ErrSingular and leaves no partial result behind.
func (s *GonumSolver) Solve(a, b matrix.Matrix) (matrix.Matrix, error) {
	if a.IsZero() || b.IsZero() {
		return matrix.Matrix{}, fmt.Errorf("linsolve: %w: zero-value operand", matrix.ErrInvalidMatrix)
	}
	if a.Dim() != b.Dim() {
		return matrix.Matrix{}, fmt.Errorf("linsolve: a is %dx%d, b is %dx%d: %w",
			a.Dim(), a.Dim(), b.Dim(), b.Dim(), matrix.ErrDimensionMismatch)
	}

	n := a.Dim()
	var x mat.Dense
	err := x.Solve(mat.NewDense(n, n, a.Flat()), mat.NewDense(n, n, b.Flat()))
	if err != nil {
		return matrix.Matrix{}, fmt.Errorf("linsolve: %w: %v", matrix.ErrSingular, err)
	}

	flat := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			flat = append(flat, x.At(i, j))
		}
	}
	return matrix.NewFromFlat(n, flat)
}
