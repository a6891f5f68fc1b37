package kunits

import "cmp"

// Mul is the product of unit T and unit U.
//
// It stores a single magnitude expressed in the composite unit T*U. U exists
// only in the type: Mul[Meter, Second] and Mul[Meter, Hour] are different
// types with the same layout as a float64.
type Mul[T Unit[T], U Unit[U]] struct {
	v float64
}

// Div is the quotient of unit T by unit U, stored like Mul.
type Div[T Unit[T], U Unit[U]] struct {
	v float64
}

// NewMul wraps a magnitude already expressed in T*U.
func NewMul[T Unit[T], U Unit[U]](v float64) Mul[T, U] {
	return Mul[T, U]{v: v}
}

// NewDiv wraps a magnitude already expressed in T/U.
func NewDiv[T Unit[T], U Unit[U]](v float64) Div[T, U] {
	return Div[T, U]{v: v}
}

func (Mul[T, U]) composite() {}
func (Div[T, U]) composite() {}

func (m Mul[T, U]) Value() float64 {
	return m.v
}

func (Mul[T, U]) New(v float64) Mul[T, U] {
	return Mul[T, U]{v: v}
}

func (Mul[T, U]) Symbol() string {
	return SymbolOf[T]() + "*" + SymbolOf[U]()
}

func (m Mul[T, U]) String() string {
	return Format(m)
}

// Left returns the left factor carrying the composite's magnitude.
func (m Mul[T, U]) Left() T {
	var t T
	return t.New(m.v)
}

// Add sums two composites of identical shape. No conversion happens.
func (m Mul[T, U]) Add(o Mul[T, U]) Mul[T, U] {
	return Mul[T, U]{v: m.v + o.v}
}

func (m Mul[T, U]) Sub(o Mul[T, U]) Mul[T, U] {
	return Mul[T, U]{v: m.v - o.v}
}

func (m Mul[T, U]) Times(k float64) Mul[T, U] {
	return Mul[T, U]{v: m.v * k}
}

func (m Mul[T, U]) Over(k float64) Mul[T, U] {
	return Mul[T, U]{v: m.v / k}
}

func (m *Mul[T, U]) AddAssign(o Mul[T, U]) {
	m.v += o.v
}

func (m *Mul[T, U]) SubAssign(o Mul[T, U]) {
	m.v -= o.v
}

func (m *Mul[T, U]) TimesAssign(k float64) {
	m.v *= k
}

func (m *Mul[T, U]) OverAssign(k float64) {
	m.v /= k
}

func (m Mul[T, U]) Compare(o Mul[T, U]) int {
	return cmp.Compare(m.v, o.v)
}

func (m Mul[T, U]) Equal(o Mul[T, U]) bool {
	return m.v == o.v
}

func (m Mul[T, U]) Less(o Mul[T, U]) bool {
	return m.v < o.v
}

func (d Div[T, U]) Value() float64 {
	return d.v
}

func (Div[T, U]) New(v float64) Div[T, U] {
	return Div[T, U]{v: v}
}

func (Div[T, U]) Symbol() string {
	return "(" + SymbolOf[T]() + ")/(" + SymbolOf[U]() + ")"
}

func (d Div[T, U]) String() string {
	return Format(d)
}

// Left returns the numerator carrying the composite's magnitude.
func (d Div[T, U]) Left() T {
	var t T
	return t.New(d.v)
}

// Add sums two composites of identical shape. No conversion happens.
func (d Div[T, U]) Add(o Div[T, U]) Div[T, U] {
	return Div[T, U]{v: d.v + o.v}
}

func (d Div[T, U]) Sub(o Div[T, U]) Div[T, U] {
	return Div[T, U]{v: d.v - o.v}
}

func (d Div[T, U]) Times(k float64) Div[T, U] {
	return Div[T, U]{v: d.v * k}
}

func (d Div[T, U]) Over(k float64) Div[T, U] {
	return Div[T, U]{v: d.v / k}
}

func (d *Div[T, U]) AddAssign(o Div[T, U]) {
	d.v += o.v
}

func (d *Div[T, U]) SubAssign(o Div[T, U]) {
	d.v -= o.v
}

func (d *Div[T, U]) TimesAssign(k float64) {
	d.v *= k
}

func (d *Div[T, U]) OverAssign(k float64) {
	d.v /= k
}

func (d Div[T, U]) Compare(o Div[T, U]) int {
	return cmp.Compare(d.v, o.v)
}

func (d Div[T, U]) Equal(o Div[T, U]) bool {
	return d.v == o.v
}

func (d Div[T, U]) Less(o Div[T, U]) bool {
	return d.v < o.v
}

// Invert returns the reciprocal quotient U/T.
func (d Div[T, U]) Invert() Div[U, T] {
	return Div[U, T]{v: 1 / d.v}
}
