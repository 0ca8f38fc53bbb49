// Package thermocouple provides thermocouple calibration tables and the
// conversions built on them. The type K table is the NIST ITS-90 reference
// table, transcribed entry for entry, and exposed as an immutable Table.
package thermocouple

import (
	"fmt"
	"math"
)

// Table is an immutable calibration curve sampled at a fixed temperature step.
// Index 0 corresponds to Origin degrees Celsius and every following entry is
// Step degrees further. A Table is safe for concurrent use.
type Table struct {
	values []float32
	origin float64
	step   float64
}

// NewTable copies values into a new Table. The values must hold at least two
// points and be monotonically non-decreasing.
func NewTable(values []float32, origin, step float64) (*Table, error) {
	if len(values) < 2 {
		return nil, ErrTooShort
	}
	if !(step > 0) || math.IsInf(step, 0) || math.IsNaN(origin) || math.IsInf(origin, 0) {
		return nil, ErrInvalidStep
	}

	t := &Table{
		values: make([]float32, len(values)),
		origin: origin,
		step:   step,
	}
	copy(t.values, values)
	if err := t.Verify(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustTable is like NewTable but panics on error. It is meant for tables
// compiled into the binary.
func MustTable(values []float32, origin, step float64) *Table {
	t, err := NewTable(values, origin, step)
	if err != nil {
		panic(fmt.Sprintf("thermocouple: invalid table: %v", err))
	}
	return t
}

// Len returns the number of calibration points.
func (t *Table) Len() int {
	return len(t.values)
}

// Origin returns the temperature of the first entry in °C.
func (t *Table) Origin() float64 {
	return t.origin
}

// Step returns the temperature increment between entries in °C.
func (t *Table) Step() float64 {
	return t.step
}

// Values returns a copy of the calibration points.
func (t *Table) Values() []float32 {
	out := make([]float32, len(t.values))
	copy(out, t.values)
	return out
}

// Domain returns the temperature span covered by the table in °C.
func (t *Table) Domain() (min, max float64) {
	return t.origin, t.origin + float64(len(t.values)-1)*t.step
}

// Range returns the first and last calibration values.
func (t *Table) Range() (min, max float64) {
	return float64(t.values[0]), float64(t.values[len(t.values)-1])
}

// Verify checks that the table is monotonically non-decreasing.
func (t *Table) Verify() error {
	for i := 0; i+1 < len(t.values); i++ {
		a, b := t.values[i], t.values[i+1]
		if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) || a > b {
			return fmt.Errorf("%w: index %d (%g > %g)", ErrNotMonotonic, i, a, b)
		}
	}
	return nil
}

// ValueAt returns the stored value at index. Indexes outside [0, Len()-1]
// return a *RangeError.
func (t *Table) ValueAt(index int) (float32, error) {
	if index < 0 || index >= len(t.values) {
		return 0, &RangeError{Op: "value", Value: float64(index), Min: 0, Max: float64(len(t.values) - 1)}
	}
	return t.values[index], nil
}

// Interpolate returns the value at a fractional index, linearly interpolated
// between the two nearest entries.
func (t *Table) Interpolate(position float64) (float64, error) {
	last := float64(len(t.values) - 1)
	if math.IsNaN(position) || position < 0 || position > last {
		return 0, &RangeError{Op: "interpolate", Value: position, Min: 0, Max: last}
	}
	return t.interpolate(position), nil
}

// interpolate expects position to be within the table.
func (t *Table) interpolate(position float64) float64 {
	lo := math.Floor(position)
	i := int(lo)
	a := float64(t.values[i])
	if i == len(t.values)-1 {
		return a
	}
	b := float64(t.values[i+1])
	return a + (b-a)*(position-lo)
}
