package inverse

import (
	"github.com/apex/log"

	"github.com/goliatone/go-matrix-cache/internal/linsolve"
)

// Config carries the collaborators a Solver needs: the solve primitive and
// the diagnostic log sink.
type Config struct {
	// Solver is the linear-solve primitive invoked on a cache miss.
	// Defaults to the gonum-backed dense solver.
	Solver LinearSolver

	// Logger receives the cache-hit/cache-miss diagnostic entries.
	// Defaults to the apex standard logger.
	Logger log.Interface
}

// DefaultConfig returns a Config populated with the default gonum solve
// primitive and the apex standard logger.
func DefaultConfig() Config {
	return Config{
		Solver: linsolve.NewGonumSolver(),
		Logger: log.Log,
	}
}

// Validate checks whether the configuration is usable.
func (c Config) Validate() error {
	if c.Solver == nil {
		return &ConfigError{Field: "Solver", Message: "cannot be nil"}
	}
	if c.Logger == nil {
		return &ConfigError{Field: "Logger", Message: "cannot be nil"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}
