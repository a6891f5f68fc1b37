package kunits

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestCompositeArithmetic(t *testing.T) {
	a := NewMul[meter, second](5)
	b := NewMul[meter, second](3)

	assert.Equal(t, 8.0, a.Add(b).Value())
	assert.Equal(t, 2.0, a.Sub(b).Value())
	assert.Equal(t, 10.0, a.Times(2).Value())
	assert.Equal(t, 2.5, a.Over(2).Value())

	// Operands are untouched.
	assert.Equal(t, 5.0, a.Value())
	assert.Equal(t, 3.0, b.Value())
}

func TestCompositeAssign(t *testing.T) {
	m := NewMul[meter, second](5)
	m.AddAssign(NewMul[meter, second](3))
	assert.Equal(t, 8.0, m.Value())
	m.SubAssign(NewMul[meter, second](2))
	assert.Equal(t, 6.0, m.Value())
	m.TimesAssign(3)
	assert.Equal(t, 18.0, m.Value())
	m.OverAssign(9)
	assert.Equal(t, 2.0, m.Value())

	d := NewDiv[meter, second](4)
	d.AddAssign(NewDiv[meter, second](1))
	d.SubAssign(NewDiv[meter, second](2))
	d.TimesAssign(4)
	d.OverAssign(3)
	assert.Equal(t, 4.0, d.Value())
}

func TestCompositeOrdering(t *testing.T) {
	small := NewDiv[meter, second](1)
	large := NewDiv[meter, second](2)

	assert.Equal(t, -1, small.Compare(large))
	assert.Equal(t, 1, large.Compare(small))
	assert.Equal(t, 0, small.Compare(NewDiv[meter, second](1)))
	assert.True(t, small.Less(large))
	assert.False(t, large.Less(small))
	assert.True(t, small.Equal(NewDiv[meter, second](1)))

	m := NewMul[meter, second](3)
	assert.True(t, m.Equal(Times(meter(1), second(3))))
	assert.True(t, m.Less(NewMul[meter, second](4)))
	assert.Equal(t, 1, m.Compare(NewMul[meter, second](-3)))
}

func TestCompositeLeft(t *testing.T) {
	assert.Equal(t, meter(6), Times(meter(2), second(3)).Left())
	assert.Equal(t, meter(5), Per(meter(10), second(2)).Left())
}

func TestCompositeInterfaces(t *testing.T) {
	var (
		_ Unit[Mul[meter, second]]     = Mul[meter, second]{}
		_ Unit[Div[meter, second]]     = Div[meter, second]{}
		_ Ordered[Mul[meter, second]]  = Mul[meter, second]{}
		_ Ordered[Div[meter, second]]  = Div[meter, second]{}
		_ Scalable[Mul[meter, second]] = Mul[meter, second]{}
		_ Scalable[Div[meter, second]] = Div[meter, second]{}
	)
}
