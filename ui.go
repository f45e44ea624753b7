package main

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"BlockOutGolang/game"
	"BlockOutGolang/hud"
)

const (
	hudWidth    = 512
	hudHeight   = 160
	hudFontSize = 18
	hudMargin   = 10
)

// hudOverlay draws the status text in the top-left corner.
type hudOverlay struct {
	program uint32
	vao     uint32
	texture uint32
	canvas  *hud.Canvas
	fps     hud.FPSCounter

	projection mgl32.Mat4
	model      mgl32.Mat4
}

func newHUDOverlay(width, height int) (*hudOverlay, error) {
	program, err := newProgram("hud")
	if err != nil {
		return nil, fmt.Errorf("hud program: %w", err)
	}
	canvas, err := hud.NewCanvas(hudWidth, hudHeight, hudFontSize)
	if err != nil {
		return nil, err
	}

	o := &hudOverlay{
		program: program,
		canvas:  canvas,
		model:   mgl32.Translate3D(hudMargin, hudMargin, 0).Mul4(mgl32.Scale3D(hudWidth, hudHeight, 1)),
	}
	o.resize(width, height)
	o.vao = newTextVAO()
	gl.ActiveTexture(gl.TEXTURE0)
	o.texture = uploadTexture(canvas.Image())
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	return o, nil
}

// Quad from (0,0) to (1,1); texture rows run top down like screen y.
func newTextVAO() uint32 {
	vertices := []float32{
		0.0, 0.0, 0.0, 0.0, // Top-left
		0.0, 1.0, 0.0, 1.0, // Bottom-left
		1.0, 1.0, 1.0, 1.0, // Bottom-right

		0.0, 0.0, 0.0, 0.0, // Top-left
		1.0, 1.0, 1.0, 1.0, // Bottom-right
		1.0, 0.0, 1.0, 0.0, // Top-right
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, nil)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, uintptr(2*4))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao
}

func (o *hudOverlay) resize(width, height int) {
	o.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

func (o *hudOverlay) draw(state *game.GameState, now time.Time) error {
	fps := o.fps.Frame(now)
	if err := o.canvas.Draw(hud.Lines(state, fps)); err != nil {
		return err
	}

	gl.ActiveTexture(gl.TEXTURE0)
	updateTexture(o.texture, o.canvas.Image())

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.UseProgram(o.program)
	gl.UniformMatrix4fv(uniform(o.program, "projection"), 1, false, &o.projection[0])
	gl.UniformMatrix4fv(uniform(o.program, "model"), 1, false, &o.model[0])
	gl.Uniform1i(uniform(o.program, "text"), 0)

	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
	return nil
}
