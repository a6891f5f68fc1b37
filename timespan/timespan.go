// Package timespan provides units of elapsed time with Second as hub. A Year
// is a Julian year of 365.25 days.
//
// The package is not named time so that it can be imported next to the
// standard library; FromDuration and Duration convert from and to
// time.Duration.
package timespan

import (
	"math"
	"time"

	"github.com/birdayz/kunits"
)

//go:generate go run github.com/birdayz/kunits/cmd/kunitgen units.yaml

// Dimension marks time span units.
type Dimension struct{}

// Span is a value of any time span unit.
type Span = kunits.Measure[Dimension]

type unit[T any] interface {
	kunits.MeasureUnit[Dimension, T]
}

// To converts s to unit T.
func To[T unit[T]](s Span) T {
	return kunits.Convert[Dimension, T](s)
}

// FromDuration converts d to seconds.
func FromDuration(d time.Duration) Second {
	return Second(d.Seconds())
}

// Duration converts s to a time.Duration, rounded to the nearest
// nanosecond. Spans beyond the range of time.Duration saturate.
func Duration(s Span) time.Duration {
	ns := math.Round(float64(To[Second](s)) * float64(time.Second))
	switch {
	case math.IsNaN(ns):
		return 0
	case ns >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case ns <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(ns)
}
