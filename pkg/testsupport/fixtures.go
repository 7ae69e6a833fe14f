// Package testsupport provides shared helpers for this module's tests:
// matrix fixture loading and a capturing logger for asserting on the
// solver's diagnostic entries.
package testsupport

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
)

// MatrixFixture pairs a named test matrix with its known inverse.
type MatrixFixture struct {
	Name    string      `json:"name"`
	Rows    [][]float64 `json:"rows"`
	Inverse [][]float64 `json:"inverse"`
}

// LoadFixture loads test data from a fixture file.
// The path is relative to the test package directory.
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture from %s: %v", path, err)
	}

	return data
}

// LoadFixtureJSON loads JSON test data from a fixture file and unmarshals it.
// The path is relative to the test package directory.
func LoadFixtureJSON(t *testing.T, path string, dest interface{}) {
	t.Helper()

	data := LoadFixture(t, path)
	if err := json.Unmarshal(data, dest); err != nil {
		t.Fatalf("failed to unmarshal JSON fixture from %s: %v", path, err)
	}
}

// LoadMatrixFixtures loads a slice of MatrixFixture values from a JSON
// fixture file.
func LoadMatrixFixtures(t *testing.T, path string) []MatrixFixture {
	t.Helper()

	var fixtures []MatrixFixture
	LoadFixtureJSON(t, path, &fixtures)

	if len(fixtures) == 0 {
		t.Fatalf("fixture file %s contains no matrices", path)
	}

	return fixtures
}

// CaptureLogger returns a logger whose entries are captured in memory, for
// tests that assert on the solver's cache-hit/cache-miss diagnostics.
func CaptureLogger() (*log.Logger, *memory.Handler) {
	handler := memory.New()
	logger := &log.Logger{
		Handler: handler,
		Level:   log.DebugLevel,
	}
	return logger, handler
}

// LogMessages returns the messages of all captured entries, in order.
func LogMessages(handler *memory.Handler) []string {
	messages := make([]string, 0, len(handler.Entries))
	for _, entry := range handler.Entries {
		messages = append(messages, entry.Message)
	}
	return messages
}

// CountLogMessage returns how many captured entries carry the given message.
func CountLogMessage(handler *memory.Handler, message string) int {
	count := 0
	for _, entry := range handler.Entries {
		if entry.Message == message {
			count++
		}
	}
	return count
}
