package kunits

// Shape rules.
//
// Go cannot overload operators, so every combination of operand shapes is a
// function of its own. Each rule multiplies or divides the magnitudes and
// fixes the result shape; none of them cancels a unit. Cancellation is only
// available through Multiply, DivideRight, DivideLeft, Integrate and Sqrt.
//
// Suffixes name the operand shapes: M is Mul, D is Div, B is any unit on the
// right-hand side (usually a base unit).

// Times multiplies two units into Mul[A, B]. It is the rule for base*base and
// for base*composite.
func Times[A Unit[A], B Unit[B]](a A, b B) Mul[A, B] {
	return Mul[A, B]{v: a.Value() * b.Value()}
}

// Per divides a by b into Div[A, B]. It is the rule for base/base and for
// base/composite.
func Per[A Unit[A], B Unit[B]](a A, b B) Div[A, B] {
	return Div[A, B]{v: a.Value() / b.Value()}
}

// ProductMM is (W*X) * (T*U) = W*(X*(T*U)).
func ProductMM[W Unit[W], X Unit[X], T Unit[T], U Unit[U]](a Mul[W, X], b Mul[T, U]) Mul[W, Mul[X, Mul[T, U]]] {
	return Mul[W, Mul[X, Mul[T, U]]]{v: a.v * b.v}
}

// ProductMD is (W*X) * (T/U) = W*(X*(T/U)).
func ProductMD[W Unit[W], X Unit[X], T Unit[T], U Unit[U]](a Mul[W, X], b Div[T, U]) Mul[W, Mul[X, Div[T, U]]] {
	return Mul[W, Mul[X, Div[T, U]]]{v: a.v * b.v}
}

// ProductDM is (W/X) * (T*U) = W*(T*(U/X)).
func ProductDM[W Unit[W], X Unit[X], T Unit[T], U Unit[U]](a Div[W, X], b Mul[T, U]) Mul[W, Mul[T, Div[U, X]]] {
	return Mul[W, Mul[T, Div[U, X]]]{v: a.v * b.v}
}

// ProductDD is (W/X) * (T/U) = W*(T/(X*U)).
func ProductDD[W Unit[W], X Unit[X], T Unit[T], U Unit[U]](a Div[W, X], b Div[T, U]) Mul[W, Div[T, Mul[X, U]]] {
	return Mul[W, Div[T, Mul[X, U]]]{v: a.v * b.v}
}

// QuotientMM is (W*X) / (T*U) = W*(X/(T*U)).
func QuotientMM[W Unit[W], X Unit[X], T Unit[T], U Unit[U]](a Mul[W, X], b Mul[T, U]) Mul[W, Div[X, Mul[T, U]]] {
	return Mul[W, Div[X, Mul[T, U]]]{v: a.v / b.v}
}

// QuotientMD is (W*X) / (T/U) = W*(X*(U/T)).
func QuotientMD[W Unit[W], X Unit[X], T Unit[T], U Unit[U]](a Mul[W, X], b Div[T, U]) Mul[W, Mul[X, Div[U, T]]] {
	return Mul[W, Mul[X, Div[U, T]]]{v: a.v / b.v}
}

// QuotientDM is (W/X) / (T*U) = W/(X*(T*U)).
func QuotientDM[W Unit[W], X Unit[X], T Unit[T], U Unit[U]](a Div[W, X], b Mul[T, U]) Div[W, Mul[X, Mul[T, U]]] {
	return Div[W, Mul[X, Mul[T, U]]]{v: a.v / b.v}
}

// QuotientDD is (W/X) / (T/U) = W*(U/(T*X)).
func QuotientDD[W Unit[W], X Unit[X], T Unit[T], U Unit[U]](a Div[W, X], b Div[T, U]) Mul[W, Div[U, Mul[T, X]]] {
	return Mul[W, Div[U, Mul[T, X]]]{v: a.v / b.v}
}

// ProductMB is (T*U) * A = T*(A*U).
func ProductMB[T Unit[T], U Unit[U], A Unit[A]](m Mul[T, U], a A) Mul[T, Mul[A, U]] {
	return Mul[T, Mul[A, U]]{v: m.v * a.Value()}
}

// ProductDB is (T/U) * A = T*(A/U).
func ProductDB[T Unit[T], U Unit[U], A Unit[A]](d Div[T, U], a A) Mul[T, Div[A, U]] {
	return Mul[T, Div[A, U]]{v: d.v * a.Value()}
}

// QuotientMB is (T*U) / A = T*(U/A).
func QuotientMB[T Unit[T], U Unit[U], A Unit[A]](m Mul[T, U], a A) Mul[T, Div[U, A]] {
	return Mul[T, Div[U, A]]{v: m.v / a.Value()}
}

// QuotientDB is (T/U) / A = T/(A*U).
func QuotientDB[T Unit[T], U Unit[U], A Unit[A]](d Div[T, U], a A) Div[T, Mul[A, U]] {
	return Div[T, Mul[A, U]]{v: d.v / a.Value()}
}
