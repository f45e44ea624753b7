package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"BlockOutGolang/game"
)

// Quad is a unit square in the XY plane, two triangles of 2D positions.
var Quad = []float32{
	-0.5, -0.5,
	0.5, -0.5,
	0.5, 0.5,
	-0.5, -0.5,
	0.5, 0.5,
	-0.5, 0.5,
}

// Wall is one checkered panel of the tube.
type Wall struct {
	Name      string
	Model     mgl32.Mat4
	Normal    mgl32.Vec3 // points into the tube
	Divisions mgl32.Vec2 // checker cells along the panel's local x and y
	Pattern   int32      // alternates so neighbouring panels do not start on the same color
	Back      bool
}

// Walls lays out the back wall and the four sides of the tube in world space.
// The back wall sits at z=0 and the mouth at Depth cubes towards the camera.
func Walls(tube game.TubeConfig) []Wall {
	cell := tube.Step * tube.WorldScale
	width := cell * float32(tube.Columns)
	depth := cell * float32(tube.Depth)
	half := width / 2
	mid := depth / 2
	cols := float32(tube.Columns)
	rows := float32(tube.Depth)

	sideX := mgl32.HomogRotate3DY(mgl32.DegToRad(90))
	sideY := mgl32.HomogRotate3DX(mgl32.DegToRad(90))

	return []Wall{
		{
			Name:      "back",
			Model:     mgl32.Scale3D(width, width, 1),
			Normal:    mgl32.Vec3{0, 0, 1},
			Divisions: mgl32.Vec2{cols, cols},
			Pattern:   0,
			Back:      true,
		},
		{
			Name:      "left",
			Model:     mgl32.Translate3D(-half, 0, mid).Mul4(sideX).Mul4(mgl32.Scale3D(depth, width, 1)),
			Normal:    mgl32.Vec3{1, 0, 0},
			Divisions: mgl32.Vec2{rows, cols},
			Pattern:   1,
		},
		{
			Name:      "right",
			Model:     mgl32.Translate3D(half, 0, mid).Mul4(sideX).Mul4(mgl32.Scale3D(depth, width, 1)),
			Normal:    mgl32.Vec3{-1, 0, 0},
			Divisions: mgl32.Vec2{rows, cols},
			Pattern:   1,
		},
		{
			Name:      "top",
			Model:     mgl32.Translate3D(0, half, mid).Mul4(sideY).Mul4(mgl32.Scale3D(width, depth, 1)),
			Normal:    mgl32.Vec3{0, -1, 0},
			Divisions: mgl32.Vec2{cols, rows},
			Pattern:   0,
		},
		{
			Name:      "bottom",
			Model:     mgl32.Translate3D(0, -half, mid).Mul4(sideY).Mul4(mgl32.Scale3D(width, depth, 1)),
			Normal:    mgl32.Vec3{0, 1, 0},
			Divisions: mgl32.Vec2{cols, rows},
			Pattern:   0,
		},
	}
}
