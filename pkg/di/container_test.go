package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-matrix-cache/inverse"
	"github.com/goliatone/go-matrix-cache/matrix"
	"github.com/goliatone/go-matrix-cache/pkg/testsupport"
)

func TestNewContainerWithDefaults(t *testing.T) {
	container, err := NewContainerWithDefaults()
	require.NoError(t, err)

	require.NotNil(t, container.Solver())
	require.NotNil(t, container.Logger())
	assert.NotNil(t, container.Config().Solver)
}

func TestNewContainer_RejectsInvalidConfig(t *testing.T) {
	_, err := NewContainer(inverse.Config{})

	var cfgErr *inverse.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestContainer_EndToEnd(t *testing.T) {
	logger, handler := testsupport.CaptureLogger()
	cfg := inverse.DefaultConfig()
	cfg.Logger = logger

	container, err := NewContainer(cfg)
	require.NoError(t, err)

	holder, err := container.NewHolder([][]float64{{3, 0}, {1, 2}})
	require.NoError(t, err)

	inv, err := container.Solver().Solve(holder)
	require.NoError(t, err)

	product, err := holder.Matrix().Mul(inv)
	require.NoError(t, err)
	assert.True(t, product.EqualApprox(matrix.Identity(2), 1e-9))

	_, err = container.Solver().Solve(holder)
	require.NoError(t, err)
	assert.Equal(t, 1, testsupport.CountLogMessage(handler, "cache hit"))
	assert.Equal(t, 1, testsupport.CountLogMessage(handler, "cache miss"))
}

func TestContainer_NewHolderValidates(t *testing.T) {
	container, err := NewContainerWithDefaults()
	require.NoError(t, err)

	_, err = container.NewHolder([][]float64{{1, 2, 3}})
	require.ErrorIs(t, err, matrix.ErrInvalidMatrix)
}
