package kunits

import (
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestSymbolOf(t *testing.T) {
	assert.Equal(t, "m", SymbolOf[meter]())
	assert.Equal(t, "m*s", SymbolOf[Mul[meter, second]]())
	assert.Equal(t, "(m)/(s)", SymbolOf[Div[meter, second]]())
	assert.Equal(t, "(m)/(s*s)", SymbolOf[Div[meter, Mul[second, second]]]())
	assert.Equal(t, "(m*ft)/((s)/(s))", SymbolOf[Div[Mul[meter, foot], Div[second, second]]]())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		q    Quantity
		want string
	}{
		{name: "Base", q: meter(5), want: "5m"},
		{name: "Fraction", q: foot(0.25), want: "0.25ft"},
		{name: "Negative", q: meter(-3), want: "-3m"},
		{name: "Large", q: meter(1e21), want: "1e+21m"},
		{name: "Singular", q: week(1), want: "1 week"},
		{name: "Plural", q: week(3), want: "3 weeks"},
		{name: "PluralZero", q: week(0), want: "0 weeks"},
		{name: "Mul", q: Times(meter(2), second(3)), want: "6 m*s"},
		{name: "Div", q: Per(meter(3), second(2)), want: "1.5 (m)/(s)"},
		{name: "NaN", q: meter(math.NaN()), want: "NaNm"},
		{name: "Inf", q: Per(meter(1), second(0)), want: "+Inf (m)/(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.q))
		})
	}
}

func TestCompositeString(t *testing.T) {
	assert.Equal(t, "6 m*s", Times(meter(2), second(3)).String())
	assert.Equal(t, "2 (m)/(s)", Per(meter(4), second(2)).String())
}
