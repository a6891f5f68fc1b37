// Package kunits provides compile-time dimensional analysis.
//
// # Overview
//
// Every unit is its own Go type wrapping a float64: length.Meter,
// timespan.Hour, temperature.Kelvin. The unit of a value lives only in its
// type, so adding a length to a mass or passing seconds where meters are
// expected does not compile. Values of the same dimension convert into each
// other exactly, through the dimension's hub unit.
//
// # Base units
//
// Base units are declared in one package per dimension (length, mass,
// timespan, temperature). Each package defines a Dimension marker type and a
// Measure alias such as length.Length, which every unit of the package
// satisfies:
//
//	d := length.Kilometer(1).Add(length.Meter(500)) // 1.5km
//	cm := length.To[length.Centimeter](length.Meter(1)) // 100cm
//
// Arithmetic and comparison between two units of a dimension converts the
// right operand into the left operand's unit. The left unit always wins.
//
// # Composites
//
// Mul and Div represent products and quotients of units. They hold a single
// magnitude, expressed in the composite unit; the right-hand unit exists only
// in the type:
//
//	work := kunits.Times(length.Kilometer(2), timespan.Hour(3)) // 6 km*h
//	speed := kunits.Per(length.Meter(100), timespan.Second(8)) // 12.5 (m)/(s)
//
// Go has no operator overloading, so each combination of operand shapes has
// its own function (ProductMM, QuotientDB, ...). These never cancel units;
// they re-nest the operands into a deeper composite. Cancellation is explicit:
//
//	speed.Multiply(timespan.Second(2)) // 25m
//
// Composites only add to and compare with composites of the identical type.
// No conversion happens between Mul[Meter, Second] and Mul[Foot, Second].
//
// # Adding units
//
// Unit packages are generated from a units.yaml table by cmd/kunitgen. A
// table lists each unit's symbol and a single conversion edge, either to the
// hub or to another unit of the table.
package kunits
