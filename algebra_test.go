package kunits

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestBaseProducts(t *testing.T) {
	t.Run("Times", func(t *testing.T) {
		var got Mul[meter, second] = Times(meter(2), second(3))
		assert.Equal(t, 6.0, got.Value())
		assert.Equal(t, "m*s", got.Symbol())
	})

	t.Run("Per", func(t *testing.T) {
		var got Div[meter, second] = Per(meter(10), second(4))
		assert.Equal(t, 2.5, got.Value())
		assert.Equal(t, "(m)/(s)", got.Symbol())
	})

	t.Run("TimesComposite", func(t *testing.T) {
		var got Mul[foot, Div[meter, second]] = Times(foot(2), Per(meter(6), second(2)))
		assert.Equal(t, 6.0, got.Value())
		assert.Equal(t, "ft*(m)/(s)", got.Symbol())
	})

	t.Run("PerComposite", func(t *testing.T) {
		var got Div[meter, Mul[second, second]] = Per(meter(12), Times(second(2), second(3)))
		assert.Equal(t, 2.0, got.Value())
		assert.Equal(t, "(m)/(s*s)", got.Symbol())
	})
}

func TestCompositeProducts(t *testing.T) {
	t.Run("MulMul", func(t *testing.T) {
		var got Mul[meter, Mul[second, Mul[foot, second]]] = ProductMM(Times(meter(2), second(3)), Times(foot(5), second(7)))
		assert.Equal(t, 210.0, got.Value())
		assert.Equal(t, "m*s*ft*s", got.Symbol())
	})

	t.Run("MulDiv", func(t *testing.T) {
		var got Mul[meter, Mul[second, Div[foot, second]]] = ProductMD(Times(meter(2), second(3)), Per(foot(10), second(5)))
		assert.Equal(t, 12.0, got.Value())
		assert.Equal(t, "m*s*(ft)/(s)", got.Symbol())
	})

	t.Run("DivMul", func(t *testing.T) {
		var got Mul[meter, Mul[foot, Div[second, second]]] = ProductDM(Per(meter(6), second(2)), Times(foot(2), second(5)))
		assert.Equal(t, 30.0, got.Value())
	})

	t.Run("DivDiv", func(t *testing.T) {
		var got Mul[meter, Div[foot, Mul[second, second]]] = ProductDD(Per(meter(6), second(2)), Per(foot(8), second(4)))
		assert.Equal(t, 6.0, got.Value())
		assert.Equal(t, "m*(ft)/(s*s)", got.Symbol())
	})
}

func TestCompositeQuotients(t *testing.T) {
	t.Run("MulMul", func(t *testing.T) {
		var got Mul[meter, Div[second, Mul[foot, second]]] = QuotientMM(Times(meter(4), second(8)), Times(foot(2), second(2)))
		assert.Equal(t, 8.0, got.Value())
		assert.Equal(t, "m*(s)/(ft*s)", got.Symbol())
	})

	t.Run("MulDiv", func(t *testing.T) {
		var got Mul[meter, Mul[second, Div[second, foot]]] = QuotientMD(Times(meter(4), second(8)), Per(foot(8), second(2)))
		assert.Equal(t, 8.0, got.Value())
	})

	t.Run("DivMul", func(t *testing.T) {
		var got Div[meter, Mul[second, Mul[foot, second]]] = QuotientDM(Per(meter(6), second(2)), Times(foot(1), second(3)))
		assert.Equal(t, 1.0, got.Value())
		assert.Equal(t, "(m)/(s*ft*s)", got.Symbol())
	})

	t.Run("DivDiv", func(t *testing.T) {
		var got Mul[meter, Div[second, Mul[foot, second]]] = QuotientDD(Per(meter(6), second(2)), Per(foot(6), second(4)))
		assert.Equal(t, 2.0, got.Value())
	})
}

func TestCompositeWithBase(t *testing.T) {
	t.Run("MulTimesBase", func(t *testing.T) {
		var got Mul[meter, Mul[foot, second]] = ProductMB(Times(meter(2), second(3)), foot(4))
		assert.Equal(t, 24.0, got.Value())
		assert.Equal(t, "m*ft*s", got.Symbol())
	})

	t.Run("DivTimesBase", func(t *testing.T) {
		var got Mul[meter, Div[foot, second]] = ProductDB(Per(meter(6), second(2)), foot(4))
		assert.Equal(t, 12.0, got.Value())
	})

	t.Run("MulOverBase", func(t *testing.T) {
		var got Mul[meter, Div[second, foot]] = QuotientMB(Times(meter(2), second(3)), foot(4))
		assert.Equal(t, 1.5, got.Value())
	})

	t.Run("DivOverBase", func(t *testing.T) {
		var got Div[meter, Mul[foot, second]] = QuotientDB(Per(meter(6), second(2)), foot(4))
		assert.Equal(t, 0.75, got.Value())
		assert.Equal(t, "(m)/(ft*s)", got.Symbol())
	})
}

// Every rule multiplies or divides the magnitudes, whatever shape it
// produces.
func TestShapeRulesPreserveMagnitude(t *testing.T) {
	a, b, c, d := meter(1.5), second(4), foot(0.5), second(3)
	want := a.Value() * b.Value() * c.Value() * d.Value()

	assert.Equal(t, want, ProductMM(Times(a, b), Times(c, d)).Value())
	assert.Equal(t, want, ProductMB(Times(a, b), Times(c, d)).Value())
	assert.Equal(t, want, Times(a, ProductMB(Times(b, c), d)).Value())
}
