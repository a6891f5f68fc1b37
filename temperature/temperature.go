// Package temperature provides temperature scales with Kelvin as hub.
//
// Celsius and Fahrenheit are affine scales. Adding two temperatures converts
// the right operand to the left operand's scale and sums the readings, so
// Celsius(10).Add(Kelvin(5)) is -258.15°C: 5K is -268.15°C. To add a
// temperature difference, scale the reading instead or add values of the
// same scale.
package temperature

import "github.com/birdayz/kunits"

//go:generate go run github.com/birdayz/kunits/cmd/kunitgen units.yaml

// Dimension marks temperature units.
type Dimension struct{}

// Temperature is a value of any temperature scale.
type Temperature = kunits.Measure[Dimension]

type unit[T any] interface {
	kunits.MeasureUnit[Dimension, T]
}

// To converts t to scale T.
//
//	f := temperature.To[temperature.Fahrenheit](temperature.Celsius(100)) // 212°F
func To[T unit[T]](t Temperature) T {
	return kunits.Convert[Dimension, T](t)
}
