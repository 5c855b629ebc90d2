package weather

import (
	"math"
	"strings"
)

// Units is the temperature scale a report is expressed in.
type Units string

const (
	Celsius    Units = "celsius"
	Fahrenheit Units = "fahrenheit"
	Kelvin     Units = "kelvin"
)

// DefaultUnits applies when a caller omits units or sends one we do not know.
const DefaultUnits = Celsius

const kelvinOffset = 273.15

// ParseUnits resolves a caller-supplied unit name. Unknown or empty values
// resolve to fallback, and an invalid fallback resolves to DefaultUnits.
func ParseUnits(raw string, fallback Units) Units {
	if !fallback.Valid() {
		fallback = DefaultUnits
	}
	u := Units(strings.ToLower(strings.TrimSpace(raw)))
	if u.Valid() {
		return u
	}
	return fallback
}

// Valid reports whether u is one of the supported scales.
func (u Units) Valid() bool {
	switch u {
	case Celsius, Fahrenheit, Kelvin:
		return true
	}
	return false
}

// Symbol is the single-letter label used in summaries ("C", "F", "K").
func (u Units) Symbol() string {
	switch u {
	case Fahrenheit:
		return "F"
	case Kelvin:
		return "K"
	default:
		return "C"
	}
}

// FromKelvin converts a provider temperature into u, rounded to one decimal.
func (u Units) FromKelvin(k float64) float64 {
	switch u {
	case Fahrenheit:
		return roundTenth((k-kelvinOffset)*9/5 + 32)
	case Kelvin:
		return roundTenth(k)
	default:
		return roundTenth(k - kelvinOffset)
	}
}

// ToCelsius converts a value already expressed in u back to Celsius.
func (u Units) ToCelsius(v float64) float64 {
	switch u {
	case Fahrenheit:
		return (v - 32) * 5 / 9
	case Kelvin:
		return v - kelvinOffset
	default:
		return v
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
