package temperature

import (
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"
)

var into = map[string]func(Temperature) Temperature{
	"K":  func(t Temperature) Temperature { return To[Kelvin](t) },
	"°C": func(t Temperature) Temperature { return To[Celsius](t) },
	"°R": func(t Temperature) Temperature { return To[Rankine](t) },
	"°F": func(t Temperature) Temperature { return To[Fahrenheit](t) },
}

func assertClose(t *testing.T, want, got float64) {
	t.Helper()
	if math.Abs(want-got) > 1e-9*math.Max(1, math.Abs(want)) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFixedPoints(t *testing.T) {
	tests := []struct {
		name string
		from Temperature
		want map[string]float64
	}{
		{
			name: "AbsoluteZero",
			from: Kelvin(0),
			want: map[string]float64{"K": 0, "°C": -273.15, "°R": 0, "°F": -459.67},
		},
		{
			name: "Freezing",
			from: Celsius(0),
			want: map[string]float64{"K": 273.15, "°C": 0, "°R": 491.67, "°F": 32},
		},
		{
			name: "Boiling",
			from: Fahrenheit(212),
			want: map[string]float64{"K": 373.15, "°C": 100, "°R": 671.67, "°F": 212},
		},
		{
			name: "MinusForty",
			from: Celsius(-40),
			want: map[string]float64{"K": 233.15, "°C": -40, "°R": 419.67, "°F": -40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for sym, want := range tt.want {
				assertClose(t, want, into[sym](tt.from).Value())
			}
		})
	}
}

func TestConversionGraph(t *testing.T) {
	assert.Equal(t, len(Units()), len(into))

	for _, v := range []float64{-100, 0, 36.6, 5000} {
		for _, a := range Units() {
			start := into[a.Symbol()](Celsius(v))
			for _, b := range Units() {
				there := into[b.Symbol()](start)
				assertClose(t, start.Value(), into[a.Symbol()](there).Value())

				for _, c := range Units() {
					assertClose(t, into[c.Symbol()](start).Value(), into[c.Symbol()](there).Value())
				}
			}
		}
	}
}

func TestAffineArithmetic(t *testing.T) {
	assertClose(t, -258.15, Celsius(10).Add(Kelvin(5)).Value())
	assertClose(t, 278.15, Kelvin(5).Add(Celsius(0)).Value())
	assert.Equal(t, Celsius(30), Celsius(10).Add(Celsius(20)))
	assert.True(t, Fahrenheit(100).Less(Celsius(40)))
	assert.Equal(t, 1, Celsius(40).Compare(Fahrenheit(100)))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "21.5°C", Celsius(21.5).String())
	assert.Equal(t, "300K", Kelvin(300).String())
	assert.Equal(t, "-40°F", Fahrenheit(-40).String())
}
