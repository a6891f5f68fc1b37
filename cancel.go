package kunits

import "math"

// Multiply cancels the denominator: (T/U) * U = T.
func (d Div[T, U]) Multiply(u U) T {
	var t T
	return t.New(d.v * u.Value())
}

// DivideRight cancels the right factor: (T*U) / U = T.
func (m Mul[T, U]) DivideRight(u U) T {
	var t T
	return t.New(m.v / u.Value())
}

// DivideLeft cancels the left factor: (T*U) / T = U.
func (m Mul[T, U]) DivideLeft(t T) U {
	var u U
	return u.New(m.v / t.Value())
}

// Integrate performs one step of integration of a rate of change over U:
// (T/(U*U)) * U = T/U. An acceleration integrated over a duration is a
// velocity.
func Integrate[T Unit[T], U Unit[U]](d Div[T, Mul[U, U]], u U) Div[T, U] {
	return Div[T, U]{v: d.v * u.Value()}
}

// Sqrt returns the side of a squared unit: sqrt(T*T) = T. Both factors must
// be the same unit type; Mul[Meter, Foot] has no square root.
func Sqrt[T Unit[T]](m Mul[T, T]) T {
	var t T
	return t.New(math.Sqrt(m.v))
}

// Dimensionless collapses a quotient of identical units into a plain ratio.
func Dimensionless[T Unit[T]](d Div[T, T]) float64 {
	return d.v
}
