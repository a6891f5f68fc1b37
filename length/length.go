// Package length provides length units. Meter is the hub: every unit
// converts to every other one through meters.
package length

import "github.com/birdayz/kunits"

//go:generate go run github.com/birdayz/kunits/cmd/kunitgen units.yaml

// Dimension marks length units.
type Dimension struct{}

// Length is a value of any length unit.
type Length = kunits.Measure[Dimension]

type unit[T any] interface {
	kunits.MeasureUnit[Dimension, T]
}

// To converts l to unit T.
//
//	cm := length.To[length.Centimeter](length.Meter(1)) // 100cm
func To[T unit[T]](l Length) T {
	return kunits.Convert[Dimension, T](l)
}
