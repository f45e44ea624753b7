package main

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"BlockOutGolang/game"
	"BlockOutGolang/mesh"
)

const (
	fieldOfView   = 45
	nearClipPlane = 0.1
	farClipPlane  = 100

	wallSpecular = 0.7
	wallDiffuse  = 0.7
)

var (
	cameraPosition = mgl32.Vec3{0, 0, 10}
	cameraTarget   = mgl32.Vec3{0, 0, 0}
	cameraUp       = mgl32.Vec3{0, 1, 0}
)

// renderer draws the tube and its cubes. It implements game.RenderSink.
type renderer struct {
	cubeProgram uint32
	wallProgram uint32

	cubeVAO     uint32
	cubeCount   int32
	wallVAO     uint32
	walls       []mesh.Wall
	floorTex    uint32
	cubeTex     uint32
	projection  mgl32.Mat4
	view        mgl32.Mat4
}

func newRenderer(tube game.TubeConfig, floor, cube *image.RGBA, width, height int) (*renderer, error) {
	cubeProgram, err := newProgram("cube")
	if err != nil {
		return nil, fmt.Errorf("cube program: %w", err)
	}
	wallProgram, err := newProgram("wall")
	if err != nil {
		return nil, fmt.Errorf("wall program: %w", err)
	}

	r := &renderer{
		cubeProgram: cubeProgram,
		wallProgram: wallProgram,
		cubeCount:   mesh.CubeVertexCount(),
		walls:       mesh.Walls(tube),
		view:        mgl32.LookAtV(cameraPosition, cameraTarget, cameraUp),
	}
	r.resize(width, height)
	r.cubeVAO = newCubeVAO(mesh.Cube(tube.CubeSize()))
	r.wallVAO = newWallVAO(mesh.Quad)

	gl.ActiveTexture(gl.TEXTURE0)
	r.floorTex = uploadTexture(floor)
	gl.ActiveTexture(gl.TEXTURE1)
	r.cubeTex = uploadCubeMap(cube)
	gl.ActiveTexture(gl.TEXTURE0)

	gl.UseProgram(wallProgram)
	gl.Uniform1i(uniform(wallProgram, "floorTexture"), 0)
	gl.UseProgram(cubeProgram)
	gl.Uniform1i(uniform(cubeProgram, "cubeTexture"), 1)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.CULL_FACE) // the tube is seen from inside
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.PolygonOffset(1, 1)
	return r, nil
}

func newCubeVAO(vertices []float32) uint32 {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(mesh.FloatsPerVertex * 4)
	// Position attribute
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	// Normal attribute
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, uintptr(3*4))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao
}

func newWallVAO(vertices []float32) uint32 {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao
}

func (r *renderer) resize(width, height int) {
	if height == 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	aspectRatio := float32(width) / float32(height)
	r.projection = mgl32.Perspective(mgl32.DegToRad(fieldOfView), aspectRatio, nearClipPlane, farClipPlane)
}

func (r *renderer) setCamera(prog uint32) {
	gl.UniformMatrix4fv(uniform(prog, "projection"), 1, false, &r.projection[0])
	gl.UniformMatrix4fv(uniform(prog, "view"), 1, false, &r.view[0])
}

func setLight(prog uint32, ambient, specular, diffuse float32, lightPos, viewPos mgl32.Vec3) {
	gl.Uniform1f(uniform(prog, "ambient"), ambient)
	gl.Uniform1f(uniform(prog, "specularStrength"), specular)
	gl.Uniform1f(uniform(prog, "diffuseStrength"), diffuse)
	gl.Uniform3fv(uniform(prog, "lightPos"), 1, &lightPos[0])
	gl.Uniform3fv(uniform(prog, "viewPos"), 1, &viewPos[0])
}

// DrawScene clears the frame and draws the tube walls.
func (r *renderer) DrawScene(scene game.Scene) {
	bg := scene.Background
	gl.ClearColor(bg.X(), bg.Y(), bg.Z(), bg.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Disable(gl.BLEND)
	gl.UseProgram(r.wallProgram)
	r.setCamera(r.wallProgram)
	setLight(r.wallProgram, scene.Ambient, wallSpecular, wallDiffuse, scene.LightPos, scene.CameraPos)
	gl.Uniform1i(uniform(r.wallProgram, "lighting"), boolToInt(scene.Lighting))
	gl.Uniform1i(uniform(r.wallProgram, "useTexture"), boolToInt(scene.Texture))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.floorTex)
	gl.BindVertexArray(r.wallVAO)
	for _, w := range r.walls {
		gl.UniformMatrix4fv(uniform(r.wallProgram, "model"), 1, false, &w.Model[0])
		gl.Uniform3fv(uniform(r.wallProgram, "normal"), 1, &w.Normal[0])
		gl.Uniform2fv(uniform(r.wallProgram, "divisions"), 1, &w.Divisions[0])
		gl.Uniform1i(uniform(r.wallProgram, "pattern"), w.Pattern)
		gl.Uniform1i(uniform(r.wallProgram, "back"), boolToInt(w.Back))
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(mesh.Quad)/2))
	}
	gl.BindVertexArray(0)
}

// DrawCube draws one cube body followed by its wireframe outline.
func (r *renderer) DrawCube(c game.CubeParams) {
	prog := r.cubeProgram
	gl.UseProgram(prog)
	r.setCamera(prog)
	gl.UniformMatrix4fv(uniform(prog, "model"), 1, false, &c.Model[0])
	setLight(prog, c.Ambient, c.Specular, c.Diffuse, c.LightPos, c.CameraPos)

	// Lit solids are opaque; everything else keeps its alpha.
	if !c.Active && c.Lighting {
		gl.Disable(gl.BLEND)
	} else {
		gl.Enable(gl.BLEND)
	}
	if c.Active {
		gl.DepthMask(false)
	}

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, r.cubeTex)
	gl.BindVertexArray(r.cubeVAO)

	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.Uniform4fv(uniform(prog, "color"), 1, &c.Color[0])
	gl.Uniform1i(uniform(prog, "lighting"), boolToInt(c.Lighting))
	gl.Uniform1i(uniform(prog, "useTexture"), boolToInt(c.Texture && !c.Active))
	gl.DrawArrays(gl.TRIANGLES, 0, r.cubeCount)
	gl.Disable(gl.POLYGON_OFFSET_FILL)

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	gl.Uniform4fv(uniform(prog, "color"), 1, &c.Outline[0])
	gl.Uniform1i(uniform(prog, "lighting"), 0)
	gl.Uniform1i(uniform(prog, "useTexture"), 0)
	gl.DrawArrays(gl.TRIANGLES, 0, r.cubeCount)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	gl.DepthMask(true)
	gl.BindVertexArray(0)
}
