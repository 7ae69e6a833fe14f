package matrix

import "fmt"

// Matrix is an N×N dense matrix of float64 values in row-major order.
// The zero value is an empty matrix with no dimension; useful values are
// created through New, NewFromFlat or Identity. A Matrix carries no
// mutators: replacing a matrix means constructing a new value.
type Matrix struct {
	n    int
	data []float64 // row-major, length n*n
}

// New builds a Matrix from row-major input. The input must be non-nil,
// non-empty, rectangular and square; anything else fails with an error
// wrapping ErrInvalidMatrix. The input is deep-copied, so the caller keeps
// no alias into the new value.
func New(rows [][]float64) (Matrix, error) {
	if err := validateRows(rows); err != nil {
		return Matrix{}, err
	}
	n := len(rows)
	data := make([]float64, 0, n*n)
	for _, row := range rows {
		data = append(data, row...)
	}
	return Matrix{n: n, data: data}, nil
}

// NewFromFlat builds an n×n Matrix from a flat row-major slice of length
// n*n. The slice is copied. Fails with ErrInvalidMatrix when n < 1 or the
// slice length does not match.
func NewFromFlat(n int, data []float64) (Matrix, error) {
	if n < 1 {
		return Matrix{}, fmt.Errorf("%w: dimension %d, want >= 1", ErrInvalidMatrix, n)
	}
	if len(data) != n*n {
		return Matrix{}, fmt.Errorf("%w: %d elements for a %dx%d matrix", ErrInvalidMatrix, len(data), n, n)
	}
	out := make([]float64, n*n)
	copy(out, data)
	return Matrix{n: n, data: out}, nil
}

// Identity returns the n×n identity matrix. Panics if n < 1: identity
// dimensions always come from an already-validated Matrix, so a bad n is a
// programmer error, not input.
func Identity(n int) Matrix {
	if n < 1 {
		panic(fmt.Sprintf("matrix: Identity dimension %d, want >= 1", n))
	}
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return Matrix{n: n, data: data}
}

// Dim returns the matrix dimension N. The zero Matrix reports 0.
func (m Matrix) Dim() int {
	return m.n
}

// IsZero reports whether m is the zero Matrix (no dimension, no storage).
func (m Matrix) IsZero() bool {
	return m.n == 0
}

// At returns the element at row i, column j. Indexes are 0-based; out of
// range indexes panic like slice access does.
func (m Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d", i, j, m.n, m.n))
	}
	return m.data[i*m.n+j]
}

// Rows returns the matrix as a freshly allocated [][]float64. Mutating the
// result does not affect m.
func (m Matrix) Rows() [][]float64 {
	rows := make([][]float64, m.n)
	for i := 0; i < m.n; i++ {
		row := make([]float64, m.n)
		copy(row, m.data[i*m.n:(i+1)*m.n])
		rows[i] = row
	}
	return rows
}

// Flat returns a copy of the row-major backing data.
func (m Matrix) Flat() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	return Matrix{n: m.n, data: m.Flat()}
}

// Mul returns the matrix product m×other. Both operands must share the
// same dimension; otherwise the call fails with ErrDimensionMismatch.
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.n != other.n {
		return Matrix{}, fmt.Errorf("%w: %dx%d × %dx%d", ErrDimensionMismatch, m.n, m.n, other.n, other.n)
	}
	n := m.n
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			a := m.data[i*n+k]
			if a == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				data[i*n+j] += a * other.data[k*n+j]
			}
		}
	}
	return Matrix{n: n, data: data}, nil
}

// EqualApprox reports whether m and other have the same dimension and all
// elements within tol of each other.
func (m Matrix) EqualApprox(other Matrix, tol float64) bool {
	if m.n != other.n {
		return false
	}
	for i, v := range m.data {
		d := v - other.data[i]
		if d < -tol || d > tol {
			return false
		}
	}
	return true
}

// String renders the shape and elements, mostly for test failure output.
func (m Matrix) String() string {
	return fmt.Sprintf("%dx%d%v", m.n, m.n, m.Rows())
}
