// Package di wires the inverse cache's collaborators together for
// applications that embed the library and want a single place to configure
// the solve primitive and the diagnostic logger.
package di

import (
	"github.com/apex/log"

	"github.com/goliatone/go-matrix-cache/inverse"
)

// Container provides dependency injection for the inverse cache. It
// manages singleton instances of the solver and its collaborators, and
// provides factory methods for creating holders.
type Container struct {
	solver *inverse.Solver
	config inverse.Config
}

// NewContainer creates a new DI container with the provided configuration.
// The configuration is validated by the solver constructor; invalid
// configurations fail here rather than at first use.
func NewContainer(config inverse.Config) (*Container, error) {
	solver, err := inverse.NewSolver(config)
	if err != nil {
		return nil, err
	}

	return &Container{
		solver: solver,
		config: config,
	}, nil
}

// NewContainerWithDefaults creates a new DI container using the default
// configuration: the gonum-backed solve primitive and the apex standard
// logger. This is a convenience constructor for typical use cases where
// custom configuration is not required.
func NewContainerWithDefaults() (*Container, error) {
	return NewContainer(inverse.DefaultConfig())
}

// Solver returns the singleton memoized solver instance.
func (c *Container) Solver() *inverse.Solver {
	return c.solver
}

// Logger returns the logger the solver writes its diagnostics to.
func (c *Container) Logger() log.Interface {
	return c.config.Logger
}

// Config returns a copy of the configuration used by this container.
// This is useful for debugging and monitoring purposes.
func (c *Container) Config() inverse.Config {
	return c.config
}

// NewHolder creates a holder for the given matrix, validated with the
// library's construction rules. Holders created here work with the
// container's solver but are not retained by the container; their
// lifecycle belongs to the caller.
func (c *Container) NewHolder(rows [][]float64) (*inverse.Holder, error) {
	return inverse.NewHolder(rows)
}
