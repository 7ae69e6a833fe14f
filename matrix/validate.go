package matrix

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// validateRows checks that raw input can form a valid square matrix. The
// same rule set applies everywhere raw [][]float64 is accepted, both at
// construction and at replacement time.
func validateRows(rows [][]float64) error {
	err := validation.Validate(rows,
		validation.Required.Error("must be non-nil and non-empty"),
		validation.By(rectangular),
		validation.By(square),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMatrix, err)
	}
	return nil
}

// rectangular rejects ragged input: every row must have the same number of
// columns as the first.
func rectangular(value any) error {
	rows, ok := value.([][]float64)
	if !ok {
		return errors.New("must be a 2-D float64 slice")
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d columns, want %d", i, len(row), cols)
		}
	}
	return nil
}

// square rejects non-square shapes, including rows of zero width. Assumes
// rectangular has already passed.
func square(value any) error {
	rows, ok := value.([][]float64)
	if !ok {
		return errors.New("must be a 2-D float64 slice")
	}
	if len(rows[0]) != len(rows) {
		return fmt.Errorf("shape is %dx%d, want square", len(rows), len(rows[0]))
	}
	return nil
}
