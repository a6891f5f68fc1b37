package timespan

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

var into = map[string]func(Span) Span{
	"s":          func(s Span) Span { return To[Second](s) },
	"ms":         func(s Span) Span { return To[Millisecond](s) },
	"min":        func(s Span) Span { return To[Minute](s) },
	"h":          func(s Span) Span { return To[Hour](s) },
	"d":          func(s Span) Span { return To[Day](s) },
	"week":       func(s Span) Span { return To[Week](s) },
	"yr":         func(s Span) Span { return To[Year](s) },
	"decade":     func(s Span) Span { return To[Decade](s) },
	"century":    func(s Span) Span { return To[Century](s) },
	"millennium": func(s Span) Span { return To[Millennium](s) },
}

func closeTo(want, got float64) bool {
	return math.Abs(want-got) <= 1e-9*math.Max(1, math.Abs(want))
}

func TestConversionGraph(t *testing.T) {
	assert.Equal(t, len(Units()), len(into))

	for _, a := range Units() {
		start := into[a.Symbol()](Hour(36.5))
		for _, b := range Units() {
			there := into[b.Symbol()](start)
			back := into[a.Symbol()](there)
			assert.True(t, closeTo(start.Value(), back.Value()), "%s -> %s", a.Symbol(), b.Symbol())

			for _, c := range Units() {
				assert.True(t, closeTo(into[c.Symbol()](start).Value(), into[c.Symbol()](there).Value()),
					"%s -> %s -> %s", a.Symbol(), b.Symbol(), c.Symbol())
			}
		}
	}
}

func TestConstants(t *testing.T) {
	assert.Equal(t, Second(3600), To[Second](Hour(1)))
	assert.Equal(t, Second(86400), To[Second](Day(1)))
	assert.Equal(t, Minute(90), To[Minute](Hour(1.5)))
	assert.Equal(t, Millisecond(1500), To[Millisecond](Second(1.5)))
	assert.True(t, closeTo(7, To[Day](Week(1)).Value()))
	assert.True(t, closeTo(365.25, To[Day](Year(1)).Value()))
	assert.True(t, closeTo(31557600, To[Second](Year(1)).Value()))
	assert.True(t, closeTo(1000, To[Year](Millennium(1)).Value()))
	assert.True(t, closeTo(10, To[Decade](Century(1)).Value()))
}

func TestDurationBridge(t *testing.T) {
	assert.Equal(t, Second(5400), FromDuration(90*time.Minute))
	assert.Equal(t, Second(0.25), FromDuration(250*time.Millisecond))
	assert.Equal(t, 90*time.Minute, Duration(Hour(1.5)))
	assert.Equal(t, 36*time.Hour, Duration(Day(1.5)))
	assert.Equal(t, 1500*time.Millisecond, Duration(Millisecond(1500)))
	assert.Equal(t, -2*time.Second, Duration(Second(-2)))
}

func TestDurationSaturates(t *testing.T) {
	assert.Equal(t, time.Duration(math.MaxInt64), Duration(Millennium(1e6)))
	assert.Equal(t, time.Duration(math.MinInt64), Duration(Millennium(-1e6)))
	assert.Equal(t, time.Duration(math.MaxInt64), Duration(Second(math.Inf(1))))
	assert.Equal(t, time.Duration(0), Duration(Second(math.NaN())))
}

func TestFormatPlurals(t *testing.T) {
	tests := []struct {
		q    Span
		want string
	}{
		{q: Second(30), want: "30s"},
		{q: Hour(1), want: "1h"},
		{q: Week(1), want: "1 week"},
		{q: Weeks(2), want: "2 weeks"},
		{q: Decade(1), want: "1 decade"},
		{q: Century(0.5), want: "0.5 centuries"},
		{q: Millennium(1), want: "1 millennium"},
		{q: Millennia(3), want: "3 millennia"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, fmt.Sprint(tt.q))
		})
	}
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, Minute(61), Minute(1).Add(Hour(1)))
	assert.Equal(t, Hour(0.5), Hour(1).Sub(Minute(30)))
	assert.True(t, Day(6).Less(Week(1)))
	assert.True(t, Minute(60).Equal(Hour(1)))
}
