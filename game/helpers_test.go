package game

import "github.com/go-gl/mathgl/mgl32"

type fakeClock struct {
	now    float64
	resets int
}

func (c *fakeClock) Elapsed() float64 { return c.now }

func (c *fakeClock) Reset() {
	c.now = 0
	c.resets++
}

// place freezes a solid cube at pos regardless of the placement rules.
func place(t *Tracker, pos mgl32.Vec3) {
	last := len(t.slots) - 1
	t.slots[last].Position = pos
	t.slots[last].Solid = true
	t.slots[last].Model = t.tube.Model(pos)
	t.placed = append(t.placed, pos)
	t.spawn()
}

func keysFor(actions ...Action) KeyState {
	var k KeyState
	for _, a := range actions {
		k.Press(a)
	}
	return k
}

type recordingSink struct {
	scenes []Scene
	cubes  []CubeParams
}

func (r *recordingSink) DrawScene(scene Scene) { r.scenes = append(r.scenes, scene) }
func (r *recordingSink) DrawCube(cube CubeParams) { r.cubes = append(r.cubes, cube) }
