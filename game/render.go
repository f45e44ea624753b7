package game

import "github.com/go-gl/mathgl/mgl32"

// Clock is the resettable timer behind the automatic drop.
type Clock interface {
	Elapsed() float64
	Reset()
}

// Scene carries the per-frame parameters shared by every draw.
type Scene struct {
	Ambient    float32
	LightPos   mgl32.Vec3
	CameraPos  mgl32.Vec3
	Lighting   bool
	Texture    bool
	Background mgl32.Vec4
}

// CubeParams is everything the renderer needs to draw one cube.
type CubeParams struct {
	Model    mgl32.Mat4
	Color    mgl32.Vec4
	Outline  mgl32.Vec4
	Active   bool
	Lighting bool
	Texture  bool

	Ambient  float32
	Specular float32
	Diffuse  float32

	LightPos  mgl32.Vec3
	CameraPos mgl32.Vec3
}

// RenderSink receives the frame's draw parameters. DrawScene is called once per
// frame before any DrawCube.
type RenderSink interface {
	DrawScene(scene Scene)
	DrawCube(cube CubeParams)
}

var (
	backgroundColor = mgl32.Vec4{0.5, 0.5, 0.5, 1.0}
	activeColor     = mgl32.Vec4{0.0, 1.0, 0.0, 0.3}
	activeOutline   = mgl32.Vec4{0.0, 0.0, 1.0, 1.0}
	solidOutline    = mgl32.Vec4{1.0, 1.0, 0.0, 1.0}
)

const (
	solidSpecular = 0.5
	solidDiffuse  = 0.7
)

// Render hands the current state to sink: one scene, then one cube per slot
// with the active cube last.
func (s *GameState) Render(sink RenderSink) {
	lit := s.Lighting == LightingOn
	scene := Scene{
		Ambient:    s.DayNight.Ambient,
		LightPos:   s.LightPos,
		CameraPos:  s.CameraPos,
		Lighting:   lit,
		Texture:    s.Texture,
		Background: backgroundColor,
	}
	if lit {
		scene.Background = backgroundColor.Mul(s.DayNight.Ambient)
	}
	sink.DrawScene(scene)

	for _, slot := range s.Tracker.Slots() {
		cube := CubeParams{
			Model:     slot.Model,
			Texture:   s.Texture,
			Ambient:   s.DayNight.Ambient,
			LightPos:  s.LightPos,
			CameraPos: s.CameraPos,
		}
		if slot.Solid {
			cube.Color = BandColor(slot.Position.Z())
			cube.Outline = solidOutline
			cube.Lighting = lit
			cube.Specular = solidSpecular
			cube.Diffuse = solidDiffuse
		} else {
			cube.Color = activeColor
			cube.Outline = activeOutline
			cube.Active = true
		}
		sink.DrawCube(cube)
	}
}
