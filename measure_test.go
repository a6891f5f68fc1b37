package kunits

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestConvert(t *testing.T) {
	t.Run("SameUnit", func(t *testing.T) {
		assert.Equal(t, meter(3), Convert[testLength, meter](meter(3)))
	})

	t.Run("ThroughHub", func(t *testing.T) {
		assertClose(t, 1, float64(Convert[testLength, foot](meter(0.3048))))
		assertClose(t, 0.3048, float64(Convert[testLength, meter](foot(1))))
	})

	t.Run("RoundTrip", func(t *testing.T) {
		for _, v := range []float64{-7, 0, 0.5, 1e9} {
			ft := Convert[testLength, foot](meter(v))
			assertClose(t, v, float64(Convert[testLength, meter](ft)))
		}
	})
}

func TestLeftUnitWins(t *testing.T) {
	var sum meter = Sum[testLength](meter(1), foot(1))
	assertClose(t, 1.3048, float64(sum))

	var diff foot = Difference[testLength](foot(2), meter(0.3048))
	assertClose(t, 1, float64(diff))

	assert.Equal(t, 2.0, Ratio[testLength](meter(0.6096), foot(1)))
}

func TestMeasureOrdering(t *testing.T) {
	assert.Equal(t, 1, Compare[testLength](meter(1), foot(1)))
	assert.Equal(t, -1, Compare[testLength](foot(1), meter(1)))
	assert.Equal(t, 0, Compare[testLength](meter(0.3048), foot(1)))

	assert.True(t, Equal[testLength](meter(0.3048), foot(1)))
	assert.False(t, Equal[testLength](meter(1), foot(1)))

	assert.True(t, Less[testLength](foot(1), meter(1)))
	assert.False(t, Less[testLength](meter(1), foot(1)))
}
