package kunits

import "cmp"

// Measure is a value of some unit belonging to dimension D. D is a marker
// type declared by the dimension's package; units of different dimensions
// never satisfy the same Measure.
type Measure[D any] interface {
	Quantity
	// Base returns the magnitude expressed in the hub unit of D.
	Base() float64
	Dimension() D
}

// MeasureUnit is a concrete unit T of dimension D.
type MeasureUnit[D, T any] interface {
	Unit[T]
	Measure[D]
	// FromBase builds a T from a magnitude expressed in the hub unit of D.
	FromBase(v float64) T
}

// Ordered is implemented by everything that compares against an operand of
// type O. Base units take any measure of their dimension as O; composites
// take exactly their own shape.
type Ordered[O any] interface {
	Compare(o O) int
	Equal(o O) bool
	Less(o O) bool
}

// Convert expresses m in unit T. The conversion goes through the hub of D,
// so every pair of units in a dimension converts without a dedicated edge.
// A value that already is a T is returned unchanged.
func Convert[D any, T MeasureUnit[D, T]](m Measure[D]) T {
	if t, ok := m.(T); ok {
		return t
	}
	var t T
	return t.FromBase(m.Base())
}

// Sum adds b to a. b is converted into a's unit first and the result is in
// a's unit: the left operand's unit always wins.
func Sum[D any, T MeasureUnit[D, T]](a T, b Measure[D]) T {
	return a.New(a.Value() + Convert[D, T](b).Value())
}

// Difference subtracts b from a in a's unit.
func Difference[D any, T MeasureUnit[D, T]](a T, b Measure[D]) T {
	return a.New(a.Value() - Convert[D, T](b).Value())
}

// Compare converts b into a's unit and compares the magnitudes. NaN sorts
// before every other value, matching cmp.Compare.
func Compare[D any, T MeasureUnit[D, T]](a T, b Measure[D]) int {
	return cmp.Compare(a.Value(), Convert[D, T](b).Value())
}

// Equal reports whether a and b have the same magnitude once b is expressed
// in a's unit.
func Equal[D any, T MeasureUnit[D, T]](a T, b Measure[D]) bool {
	return a.Value() == Convert[D, T](b).Value()
}

// Less reports whether a is smaller than b once b is expressed in a's unit.
func Less[D any, T MeasureUnit[D, T]](a T, b Measure[D]) bool {
	return a.Value() < Convert[D, T](b).Value()
}

// Ratio divides a by b after converting b into a's unit. The result is
// dimensionless.
func Ratio[D any, T MeasureUnit[D, T]](a T, b Measure[D]) float64 {
	return a.Value() / Convert[D, T](b).Value()
}
