// Package mass provides mass units with Kilogram as hub.
package mass

import "github.com/birdayz/kunits"

//go:generate go run github.com/birdayz/kunits/cmd/kunitgen units.yaml

// Dimension marks mass units.
type Dimension struct{}

// Mass is a value of any mass unit.
type Mass = kunits.Measure[Dimension]

type unit[T any] interface {
	kunits.MeasureUnit[Dimension, T]
}

// To converts m to unit T.
func To[T unit[T]](m Mass) T {
	return kunits.Convert[Dimension, T](m)
}
