package thermocouple

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *RangeError.
var ErrOutOfRange = errors.New("value outside of the calibration table")

// ErrTooShort is returned when a table has fewer than two points.
var ErrTooShort = errors.New("calibration table needs at least two points")

// ErrNotMonotonic is returned when a table decreases anywhere.
var ErrNotMonotonic = errors.New("calibration table is not monotonically non-decreasing")

// ErrInvalidStep is returned for a non-positive or non-finite table step.
var ErrInvalidStep = errors.New("calibration table step must be positive and finite")

// ErrUnknownUnit is returned by ParseUnit.
var ErrUnknownUnit = errors.New("unknown temperature unit")

// RangeError reports an input outside the domain of a table operation.
type RangeError struct {
	Op    string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("thermocouple: %s: %g outside [%g, %g]", e.Op, e.Value, e.Min, e.Max)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
