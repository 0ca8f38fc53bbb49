package thermocouple

import (
	"fmt"
	"strings"
)

// Unit is a temperature scale.
type Unit string

// Supported units.
const (
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
	Kelvin     Unit = "K"
)

// ParseUnit accepts the unit symbol or name, case-insensitively.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(s, "°"))) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	case "k", "kelvin":
		return Kelvin, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// FromCelsius converts c to the unit.
func (u Unit) FromCelsius(c float64) float64 {
	switch u {
	case Fahrenheit:
		return CelsiusToFahrenheit(c)
	case Kelvin:
		return CelsiusToKelvin(c)
	}
	return c
}

// ToCelsius converts v in the unit to °C.
func (u Unit) ToCelsius(v float64) float64 {
	switch u {
	case Fahrenheit:
		return FahrenheitToCelsius(v)
	case Kelvin:
		return KelvinToCelsius(v)
	}
	return v
}

func (u Unit) String() string {
	if u == Kelvin {
		return "K"
	}
	return "°" + string(u)
}

func CelsiusToFahrenheit(c float64) float64 {
	return c*1.8 + 32
}

func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) / 1.8
}

func CelsiusToKelvin(c float64) float64 {
	return c + 273.15
}

func KelvinToCelsius(k float64) float64 {
	return k - 273.15
}
