package length

import (
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"
)

var into = map[string]func(Length) Length{
	"m":   func(l Length) Length { return To[Meter](l) },
	"km":  func(l Length) Length { return To[Kilometer](l) },
	"cm":  func(l Length) Length { return To[Centimeter](l) },
	"mm":  func(l Length) Length { return To[Millimeter](l) },
	"µm":  func(l Length) Length { return To[Micrometer](l) },
	"nm":  func(l Length) Length { return To[Nanometer](l) },
	"pm":  func(l Length) Length { return To[Picometer](l) },
	"fm":  func(l Length) Length { return To[Femtometer](l) },
	"au":  func(l Length) Length { return To[AU](l) },
	"ly":  func(l Length) Length { return To[Lightyear](l) },
	"ft":  func(l Length) Length { return To[Foot](l) },
	"in":  func(l Length) Length { return To[Inch](l) },
	"yd":  func(l Length) Length { return To[Yard](l) },
	"mi":  func(l Length) Length { return To[Mile](l) },
	"nmi": func(l Length) Length { return To[NauticalMile](l) },
}

func assertClose(t *testing.T, want, got float64) {
	t.Helper()
	if math.Abs(want-got) > 1e-9*math.Max(1, math.Abs(want)) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestEveryUnitConverts(t *testing.T) {
	assert.Equal(t, len(Units()), len(into))
	for _, u := range Units() {
		_, ok := into[u.Symbol()]
		assert.True(t, ok, "no conversion for %s", u.Symbol())
	}
}

// sample returns a value of unit sym worth v meters.
func sample(sym string, v float64) Length {
	return into[sym](Meter(v))
}

func TestRoundTrip(t *testing.T) {
	for _, a := range Units() {
		for _, b := range Units() {
			t.Run(a.Symbol()+"->"+b.Symbol(), func(t *testing.T) {
				for _, v := range []float64{-3.5, 0, 1, 1234.5678} {
					start := sample(a.Symbol(), v)
					back := into[a.Symbol()](into[b.Symbol()](start))
					assertClose(t, start.Value(), back.Value())
				}
			})
		}
	}
}

func TestTransitive(t *testing.T) {
	for _, a := range Units() {
		start := sample(a.Symbol(), 42)
		for _, b := range Units() {
			for _, c := range Units() {
				direct := into[c.Symbol()](start)
				chained := into[c.Symbol()](into[b.Symbol()](start))
				assertClose(t, direct.Value(), chained.Value())
			}
		}
	}
}

func TestConstants(t *testing.T) {
	tests := []struct {
		name string
		from Length
		to   func(Length) Length
		want float64
	}{
		{name: "MeterToCentimeter", from: Meter(100), to: into["cm"], want: 10000},
		{name: "KilometerToMeter", from: Kilometer(2.5), to: into["m"], want: 2500},
		{name: "InchToCentimeter", from: Inch(1), to: into["cm"], want: 2.54},
		{name: "FootToInch", from: Foot(1), to: into["in"], want: 12},
		{name: "YardToFoot", from: Yard(1), to: into["ft"], want: 3},
		{name: "MileToFoot", from: Mile(1), to: into["ft"], want: 5280},
		{name: "MileToMeter", from: Mile(1), to: into["m"], want: 1609.344},
		{name: "NauticalMileToMeter", from: NauticalMile(1), to: into["m"], want: 1852},
		{name: "AUToKilometer", from: AU(1), to: into["km"], want: 149597870.7},
		{name: "LightyearToAU", from: Lightyear(1), to: into["au"], want: 63241.07708426628},
		{name: "MillimeterToNanometer", from: Millimeter(1), to: into["nm"], want: 1e6},
		{name: "FemtometerToPicometer", from: Femtometer(1000), to: into["pm"], want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertClose(t, tt.want, tt.to(tt.from).Value())
		})
	}
}

func TestLeftUnitWins(t *testing.T) {
	assert.Equal(t, Meter(1001), Meter(1).Add(Kilometer(1)))
	assertClose(t, 1.001, Kilometer(1).Add(Meter(1)).Value())
	assertClose(t, 0.5, Foot(1).Sub(Inch(6)).Value())
	assertClose(t, 3, Yard(1).Ratio(Foot(1)))
}

func TestOrdering(t *testing.T) {
	assert.True(t, Meter(1000).Equal(Kilometer(1)))
	assertClose(t, 1, Inch(12).Ratio(Foot(1)))
	assert.True(t, Foot(1).Less(Meter(1)))
	assert.False(t, Meter(1).Less(Foot(1)))
	assert.Equal(t, 1, Mile(1).Compare(Kilometer(1)))
	assert.Equal(t, -1, NauticalMile(1).Compare(Kilometer(2)))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "5m", Meter(5).String())
	assert.Equal(t, "2.5km", Kilometer(2.5).String())
	assert.Equal(t, "3µm", Micrometer(3).String())
	assert.Equal(t, "6ft", Feet(6).String())
}
