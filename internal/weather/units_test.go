package weather

import (
	"math"
	"testing"
)

func TestParseUnits(t *testing.T) {
	tests := []struct {
		raw      string
		fallback Units
		want     Units
	}{
		{"", Celsius, Celsius},
		{"fahrenheit", Celsius, Fahrenheit},
		{"  KELVIN ", Celsius, Kelvin},
		{"rankine", Celsius, Celsius},
		{"rankine", Fahrenheit, Fahrenheit},
		{"", "bogus", Celsius},
	}
	for _, tt := range tests {
		if got := ParseUnits(tt.raw, tt.fallback); got != tt.want {
			t.Errorf("ParseUnits(%q, %q) = %q, want %q", tt.raw, tt.fallback, got, tt.want)
		}
	}
}

func TestFromKelvin(t *testing.T) {
	tests := []struct {
		k     float64
		units Units
		want  float64
	}{
		{273.15, Celsius, 0.0},
		{273.15, Fahrenheit, 32.0},
		{300, Kelvin, 300},
		{373.15, Celsius, 100.0},
		{373.15, Fahrenheit, 212.0},
		{255.37, Fahrenheit, 0.0},
		{288.71, Celsius, 15.6},
		{263.15, Celsius, -10.0},
	}
	for _, tt := range tests {
		got := tt.units.FromKelvin(tt.k)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s.FromKelvin(%v) = %v, want %v", tt.units, tt.k, got, tt.want)
		}
	}
}

func TestConversionsAgreeWithFormulas(t *testing.T) {
	for k := 200.0; k <= 330.0; k += 0.37 {
		c := Celsius.FromKelvin(k)
		f := Fahrenheit.FromKelvin(k)
		if math.Abs(c-(k-273.15)) > 0.05 {
			t.Fatalf("celsius drift at %v K: %v", k, c)
		}
		if math.Abs(f-((k-273.15)*9/5+32)) > 0.05 {
			t.Fatalf("fahrenheit drift at %v K: %v", k, f)
		}
		if math.Abs(Fahrenheit.ToCelsius(f)-c) > 0.1 {
			t.Fatalf("round trip at %v K: %v °F -> %v °C, want %v", k, f, Fahrenheit.ToCelsius(f), c)
		}
	}
}

func TestSymbol(t *testing.T) {
	if Celsius.Symbol() != "C" || Fahrenheit.Symbol() != "F" || Kelvin.Symbol() != "K" {
		t.Fatalf("unexpected symbols %q %q %q", Celsius.Symbol(), Fahrenheit.Symbol(), Kelvin.Symbol())
	}
}
