package kunits

import "golang.org/x/exp/constraints"

// Number is any dimensionless scalar accepted by Scale and Shrink.
type Number interface {
	constraints.Integer | constraints.Float
}

// Scalable is implemented by base units and composites. Scaling never
// changes the unit.
type Scalable[T any] interface {
	Times(k float64) T
	Over(k float64) T
}

// Scale multiplies q by k.
func Scale[T Scalable[T], N Number](q T, k N) T {
	return q.Times(float64(k))
}

// Shrink divides q by k. Dividing by zero follows float64 semantics.
func Shrink[T Scalable[T], N Number](q T, k N) T {
	return q.Over(float64(k))
}
