package game

import "github.com/go-gl/mathgl/mgl32"

// TubeConfig holds the tube geometry and every threshold the collision and
// placement rules depend on. Values are in lattice units; WorldScale maps them
// into world space for rendering.
type TubeConfig struct {
	Step        float32 // distance between neighbouring lattice cells
	Tolerance   float32 // two coordinates closer than this are the same cell
	LockEpsilon float32
	Lateral     float32 // |x| and |y| may not exceed this
	BackZ       float32 // resting depth against the back wall
	TopZ        float32 // a cube at or above this depth never locks
	FilledZ     float32 // a solid deeper than this (numerically) fills its column
	Start       mgl32.Vec3

	FallInterval float64 // seconds between automatic steps

	WorldScale float32
	Columns    int
	Depth      int
}

// DefaultTube is the 5x5x10 tube.
func DefaultTube() TubeConfig {
	return TubeConfig{
		Step:         0.2,
		Tolerance:    0.0001,
		LockEpsilon:  0.001,
		Lateral:      0.4,
		BackZ:        0.1,
		TopZ:         1.81,
		FilledZ:      1.71,
		Start:        mgl32.Vec3{-0.4, -0.4, 1.9},
		FallInterval: 2.0,
		WorldScale:   3,
		Columns:      5,
		Depth:        10,
	}
}

// Equal reports whether a and b lie within Tolerance of each other.
func (t TubeConfig) Equal(a, b float32) bool {
	return mgl32.Abs(a-b) < t.Tolerance
}

// SamePosition compares all three components with Equal.
func (t TubeConfig) SamePosition(a, b mgl32.Vec3) bool {
	return t.Equal(a.X(), b.X()) && t.Equal(a.Y(), b.Y()) && t.Equal(a.Z(), b.Z())
}

// SameColumn reports whether a and b share x and y.
func (t TubeConfig) SameColumn(a, b mgl32.Vec3) bool {
	return t.Equal(a.X(), b.X()) && t.Equal(a.Y(), b.Y())
}

// InLateralBounds reports whether v is a legal x or y coordinate.
func (t TubeConfig) InLateralBounds(v float32) bool {
	return v <= t.Lateral+t.Tolerance && v >= -t.Lateral-t.Tolerance
}

// Model returns the world transform for a cube centred at pos.
func (t TubeConfig) Model(pos mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Scale3D(t.WorldScale, t.WorldScale, t.WorldScale).Mul4(mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()))
}

// CubeSize is the edge length of one cube in lattice units.
func (t TubeConfig) CubeSize() float32 {
	return t.Step
}
