package kunits

import (
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestCancellation(t *testing.T) {
	t.Run("Multiply", func(t *testing.T) {
		rate := Per(meter(10), second(2))
		var got meter = rate.Multiply(second(3))
		assert.Equal(t, meter(15), got)
	})

	t.Run("DivideRight", func(t *testing.T) {
		var got meter = Times(meter(3), second(4)).DivideRight(second(2))
		assert.Equal(t, meter(6), got)
	})

	t.Run("DivideLeft", func(t *testing.T) {
		var got second = Times(meter(3), second(4)).DivideLeft(meter(3))
		assert.Equal(t, second(4), got)
	})

	t.Run("Integrate", func(t *testing.T) {
		accel := NewDiv[meter, Mul[second, second]](2)
		var got Div[meter, second] = Integrate(accel, second(3))
		assert.Equal(t, 6.0, got.Value())
		assert.Equal(t, "(m)/(s)", got.Symbol())
	})

	t.Run("Sqrt", func(t *testing.T) {
		var got meter = Sqrt(Times(meter(3), meter(3)))
		assert.Equal(t, meter(3), got)
	})

	t.Run("Dimensionless", func(t *testing.T) {
		assert.Equal(t, 2.0, Dimensionless(Per(meter(6), meter(3))))
	})

	t.Run("Invert", func(t *testing.T) {
		var got Div[second, meter] = Per(meter(8), second(2)).Invert()
		assert.Equal(t, 0.25, got.Value())
	})
}

func TestCancellationFloatEdgeCases(t *testing.T) {
	got := Times(meter(3), second(4)).DivideRight(second(0))
	assert.True(t, math.IsInf(float64(got), 1))

	nan := Per(meter(0), second(0))
	assert.True(t, math.IsNaN(nan.Value()))

	assert.True(t, math.IsNaN(float64(Sqrt(NewMul[meter, meter](-1)))))
}
