package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-matrix-cache/matrix"
)

func TestNew_ValidInput(t *testing.T) {
	m, err := matrix.New([][]float64{{3, 0}, {1, 2}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Dim())
	assert.Equal(t, 3.0, m.At(0, 0))
	assert.Equal(t, 0.0, m.At(0, 1))
	assert.Equal(t, 1.0, m.At(1, 0))
	assert.Equal(t, 2.0, m.At(1, 1))
}

func TestNew_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
	}{
		{"nil", nil},
		{"empty", [][]float64{}},
		{"zero width row", [][]float64{{}}},
		{"ragged", [][]float64{{1, 2}, {3}}},
		{"wide", [][]float64{{1, 2, 3}, {4, 5, 6}}},
		{"tall", [][]float64{{1}, {2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.New(tc.rows)
			require.ErrorIs(t, err, matrix.ErrInvalidMatrix)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.New(rows)
	require.NoError(t, err)

	rows[0][0] = 99
	assert.Equal(t, 1.0, m.At(0, 0), "mutating the input must not reach the matrix")
}

func TestRows_ReturnsACopy(t *testing.T) {
	m, err := matrix.New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	out := m.Rows()
	out[1][1] = 99
	assert.Equal(t, 4.0, m.At(1, 1), "mutating the output must not reach the matrix")
}

func TestNewFromFlat(t *testing.T) {
	m, err := matrix.NewFromFlat(2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Rows())

	_, err = matrix.NewFromFlat(0, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidMatrix)

	_, err = matrix.NewFromFlat(2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrInvalidMatrix)
}

func TestIdentity(t *testing.T) {
	id := matrix.Identity(3)
	require.Equal(t, 3, id.Dim())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.Equal(t, want, id.At(i, j))
		}
	}

	assert.Panics(t, func() { matrix.Identity(0) })
}

func TestMul(t *testing.T) {
	a, err := matrix.New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.New([][]float64{{5, 6}, {7, 8}})
	require.NoError(t, err)

	got, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{19, 22}, {43, 50}}, got.Rows())

	id := matrix.Identity(2)
	got, err = a.Mul(id)
	require.NoError(t, err)
	assert.True(t, got.EqualApprox(a, 0))
}

func TestMul_DimensionMismatch(t *testing.T) {
	a, err := matrix.New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b := matrix.Identity(3)

	_, err = a.Mul(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEqualApprox(t *testing.T) {
	a, err := matrix.New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.New([][]float64{{1.0000001, 2}, {3, 4}})
	require.NoError(t, err)

	assert.True(t, a.EqualApprox(b, 1e-6))
	assert.False(t, a.EqualApprox(b, 1e-9))
	assert.False(t, a.EqualApprox(matrix.Identity(3), 1))
}

func TestClone_Independent(t *testing.T) {
	a, err := matrix.New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := a.Clone()
	assert.True(t, a.EqualApprox(c, 0))

	flat := c.Flat()
	flat[0] = 99
	assert.Equal(t, 1.0, c.At(0, 0), "Flat must return a copy")
}

func TestFingerprint_StableAndShapeAware(t *testing.T) {
	a, err := matrix.New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	c, err := matrix.New([][]float64{{4, 3}, {2, 1}})
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), a.Fingerprint(), "fingerprint must be stable")
	assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "equal values must hash equal")
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint(), "different values should differ")
}
