package kunits

import (
	"math"
	"testing"
)

type testLength struct{}

type meter float64

func (u meter) Value() float64         { return float64(u) }
func (meter) Symbol() string           { return "m" }
func (meter) New(v float64) meter      { return meter(v) }
func (meter) Dimension() testLength    { return testLength{} }
func (u meter) Base() float64          { return float64(u) }
func (meter) FromBase(v float64) meter { return meter(v) }
func (u meter) Times(k float64) meter  { return meter(float64(u) * k) }
func (u meter) Over(k float64) meter   { return meter(float64(u) / k) }

var testFoot = Factor(0.3048)

type foot float64

func (u foot) Value() float64        { return float64(u) }
func (foot) Symbol() string          { return "ft" }
func (foot) New(v float64) foot      { return foot(v) }
func (foot) Dimension() testLength   { return testLength{} }
func (u foot) Base() float64         { return testFoot.Forward(float64(u)) }
func (foot) FromBase(v float64) foot { return foot(testFoot.Backward(v)) }

type second float64

func (u second) Value() float64     { return float64(u) }
func (second) Symbol() string       { return "s" }
func (second) New(v float64) second { return second(v) }

type week float64

func (u week) Value() float64   { return float64(u) }
func (week) Symbol() string     { return "week" }
func (week) Plural() string     { return "weeks" }
func (week) New(v float64) week { return week(v) }

var (
	_ MeasureUnit[testLength, meter] = meter(0)
	_ MeasureUnit[testLength, foot]  = foot(0)
	_ Unit[second]                   = second(0)
	_ Pluralizer                     = week(0)
)

func assertClose(t *testing.T, want, got float64) {
	t.Helper()
	if math.Abs(want-got) > 1e-9*math.Max(1, math.Abs(want)) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
