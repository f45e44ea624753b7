package game

import "github.com/go-gl/mathgl/mgl32"

// LightingMode selects whether solid cubes and walls are lit.
type LightingMode int

const (
	LightingOff LightingMode = iota
	LightingOn
)

// Next cycles to the other mode.
func (m LightingMode) Next() LightingMode {
	if m == LightingOff {
		return LightingOn
	}
	return LightingOff
}

func (m LightingMode) String() string {
	if m == LightingOn {
		return "on"
	}
	return "off"
}

// DayNight is a frame-driven triangle wave over the ambient light strength.
type DayNight struct {
	Ambient float32
	Morning bool // true while brightening

	Step  float32
	Upper float32
	Lower float32
}

// NewDayNight starts at half brightness, darkening.
func NewDayNight() DayNight {
	return DayNight{
		Ambient: 0.5,
		Morning: false,
		Step:    0.001,
		Upper:   0.9,
		Lower:   0.1,
	}
}

// Tick advances the cycle by one frame. Ambient may pass a bound by at most
// one Step before the direction flips.
func (d *DayNight) Tick() {
	if d.Morning {
		d.Ambient += d.Step
		if d.Ambient > d.Upper {
			d.Morning = false
		}
		return
	}
	d.Ambient -= d.Step
	if d.Ambient < d.Lower {
		d.Morning = true
	}
}

// lightDepthFactor keeps the light level with the active cube in world space.
const lightDepthFactor = 3

// LightFollow returns base with its depth replaced by the active cube's.
func LightFollow(base mgl32.Vec3, activeZ float32) mgl32.Vec3 {
	base[2] = activeZ * lightDepthFactor
	return base
}
