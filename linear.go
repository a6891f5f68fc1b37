package kunits

// Linear is a conversion edge from a unit onto another unit of the same
// dimension, usually the hub: to = from*num/den + offset.
//
// Constant-factor edges have a zero offset. Only temperature scales need the
// affine form. Keeping the scale as a fraction lets an inverted factor divide
// by an exact constant (1cm = 1/100m) instead of multiplying by a rounded
// reciprocal. The zero Linear is invalid; hub units use Identity.
type Linear struct {
	num    float64
	den    float64
	offset float64
}

// Identity is the edge of a hub unit onto itself.
func Identity() Linear {
	return Linear{num: 1, den: 1}
}

// Factor returns the edge for a unit worth k target units.
func Factor(k float64) Linear {
	return Linear{num: k, den: 1}
}

// Affine returns the edge to = from*scale + offset.
func Affine(scale, offset float64) Linear {
	return Linear{num: scale, den: 1, offset: offset}
}

// Forward converts v along the edge.
func (l Linear) Forward(v float64) float64 {
	return v*l.num/l.den + l.offset
}

// Backward converts v against the edge. Backward(Forward(v)) equals v up to
// rounding.
func (l Linear) Backward(v float64) float64 {
	return (v - l.offset) * l.den / l.num
}

// Inverse returns the edge pointing the other way.
func (l Linear) Inverse() Linear {
	return Linear{
		num:    l.den,
		den:    l.num,
		offset: -l.offset * l.den / l.num,
	}
}

// Then chains l with next, where next starts at l's target unit. This is how
// a unit is defined through an intermediary:
//
//	inch := Factor(12).Inverse().Then(foot) // in -> ft -> m
func (l Linear) Then(next Linear) Linear {
	return Linear{
		num:    l.num * next.num,
		den:    l.den * next.den,
		offset: l.offset*next.num/next.den + next.offset,
	}
}

// Scale returns the multiplicative part of the edge.
func (l Linear) Scale() float64 {
	return l.num / l.den
}

// Offset returns the additive part of the edge.
func (l Linear) Offset() float64 {
	return l.offset
}
