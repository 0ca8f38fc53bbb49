package thermocouple

import (
	"math"
	"sort"
)

// Millivolts returns the thermoelectric voltage at celsius with the reference
// junction at 0 °C.
func (t *Table) Millivolts(celsius float64) (float64, error) {
	lo, hi := t.Domain()
	if math.IsNaN(celsius) || celsius < lo || celsius > hi {
		return 0, &RangeError{Op: "millivolts", Value: celsius, Min: lo, Max: hi}
	}
	pos := (celsius - t.origin) / t.step
	// guard against rounding past the last index at the upper bound
	if last := float64(len(t.values) - 1); pos > last {
		pos = last
	}
	return t.interpolate(pos), nil
}

// Celsius returns the temperature producing millivolts with the reference
// junction at 0 °C. The table is searched with a binary search and the
// bracketing entries are interpolated linearly. Inputs are compared with the
// table at float32 precision, so a value that rounds to a stored entry
// returns that entry's temperature exactly.
func (t *Table) Celsius(millivolts float64) (float64, error) {
	n := len(t.values)
	mv32 := float32(millivolts)
	if math.IsNaN(millivolts) || mv32 < t.values[0] || mv32 > t.values[n-1] {
		lo, hi := t.Range()
		return 0, &RangeError{Op: "celsius", Value: millivolts, Min: lo, Max: hi}
	}

	i := sort.Search(n, func(i int) bool {
		return t.values[i] >= mv32
	})
	if t.values[i] == mv32 {
		// first of a run of equal values
		return t.origin + float64(i)*t.step, nil
	}
	a := float64(t.values[i-1])
	b := float64(t.values[i])
	frac := (millivolts - a) / (b - a)
	return t.origin + (float64(i-1)+frac)*t.step, nil
}

// Compensate converts a measured thermocouple voltage to a temperature given
// the temperature of the cold (reference) junction.
func (t *Table) Compensate(millivolts, coldJunctionCelsius float64) (float64, error) {
	cj, err := t.Millivolts(coldJunctionCelsius)
	if err != nil {
		return 0, err
	}
	return t.Celsius(millivolts + cj)
}
