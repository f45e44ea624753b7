package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayNightFlipsAtLowerBound(t *testing.T) {
	d := NewDayNight()
	require.False(t, d.Morning)
	require.InDelta(t, 0.5, d.Ambient, 1e-6)

	ticks := 0
	for !d.Morning && ticks < 10000 {
		d.Tick()
		ticks++
	}

	require.True(t, d.Morning, "direction never flipped")
	assert.Less(t, d.Ambient, d.Lower)
	assert.GreaterOrEqual(t, d.Ambient, d.Lower-d.Step-1e-4)
	assert.InDelta(t, 401, ticks, 2)
}

func TestDayNightStaysInRange(t *testing.T) {
	d := NewDayNight()
	sawMorning, sawEvening := false, false

	for i := 0; i < 5000; i++ {
		d.Tick()
		assert.LessOrEqual(t, d.Ambient, d.Upper+d.Step+1e-4)
		assert.GreaterOrEqual(t, d.Ambient, d.Lower-d.Step-1e-4)
		if d.Morning {
			sawMorning = true
		} else if sawMorning {
			sawEvening = true
		}
	}

	assert.True(t, sawMorning)
	assert.True(t, sawEvening, "should darken again after the upper bound")
}

func TestLightingModeNext(t *testing.T) {
	assert.Equal(t, LightingOn, LightingOff.Next())
	assert.Equal(t, LightingOff, LightingOn.Next())
	assert.Equal(t, "on", LightingOn.String())
}

func TestLightFollow(t *testing.T) {
	base := mgl32.Vec3{0, 0, 9}
	got := LightFollow(base, 1.7)

	assert.InDelta(t, 5.1, got.Z(), 1e-5)
	assert.Equal(t, base.X(), got.X())
	assert.Equal(t, float32(9), base.Z(), "base is not modified")
}
