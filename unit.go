package kunits

import (
	"strconv"
)

// Quantity is implemented by every base unit and every composite.
type Quantity interface {
	// Value returns the magnitude in the unit's own scale.
	Value() float64
	// Symbol returns the canonical label of the unit. It never depends on
	// the receiver's magnitude, so calling it on a zero value is valid.
	Symbol() string
}

// Unit is a Quantity that can construct values of its own type. The
// constructor is what lets generic code produce a T from a raw magnitude.
type Unit[T any] interface {
	Quantity
	New(v float64) T
}

// Pluralizer is implemented by units whose label is a word with distinct
// singular and plural forms. Symbol returns the singular.
type Pluralizer interface {
	Plural() string
}

type composite interface {
	composite()
}

// SymbolOf returns the label of T without needing a value.
func SymbolOf[T Quantity]() string {
	var zero T
	return zero.Symbol()
}

// Format renders q with its magnitude.
//
//	Format(length.Meter(5))                 // "5m"
//	Format(timespan.Decade(3))              // "3 decades"
//	Format(Times(km, h))                    // "6 km*h"
func Format(q Quantity) string {
	v := q.Value()
	num := strconv.FormatFloat(v, 'g', -1, 64)

	if _, ok := q.(composite); ok {
		return num + " " + q.Symbol()
	}

	if p, ok := q.(Pluralizer); ok {
		if v == 1.0 {
			return num + " " + q.Symbol()
		}
		return num + " " + p.Plural()
	}

	return num + q.Symbol()
}
