package mesh

// FloatsPerVertex is position (3) followed by normal (3).
const FloatsPerVertex = 6

// unitCube is a unit cube centred on the origin, two triangles per face,
// each vertex carrying its face normal.
var unitCube = []float32{
	// Front face
	-0.5, -0.5, 0.5, 0, 0, 1, // Bottom-left
	0.5, -0.5, 0.5, 0, 0, 1, // Bottom-right
	0.5, 0.5, 0.5, 0, 0, 1, // Top-right
	-0.5, -0.5, 0.5, 0, 0, 1, // Bottom-left
	0.5, 0.5, 0.5, 0, 0, 1, // Top-right
	-0.5, 0.5, 0.5, 0, 0, 1, // Top-left

	// Back face
	-0.5, -0.5, -0.5, 0, 0, -1, // Bottom-left
	-0.5, 0.5, -0.5, 0, 0, -1, // Top-left
	0.5, 0.5, -0.5, 0, 0, -1, // Top-right
	-0.5, -0.5, -0.5, 0, 0, -1, // Bottom-left
	0.5, 0.5, -0.5, 0, 0, -1, // Top-right
	0.5, -0.5, -0.5, 0, 0, -1, // Bottom-right

	// Left face
	-0.5, -0.5, -0.5, -1, 0, 0, // Bottom-left
	-0.5, -0.5, 0.5, -1, 0, 0, // Bottom-right
	-0.5, 0.5, 0.5, -1, 0, 0, // Top-right
	-0.5, -0.5, -0.5, -1, 0, 0, // Bottom-left
	-0.5, 0.5, 0.5, -1, 0, 0, // Top-right
	-0.5, 0.5, -0.5, -1, 0, 0, // Top-left

	// Right face
	0.5, -0.5, -0.5, 1, 0, 0, // Bottom-left
	0.5, 0.5, -0.5, 1, 0, 0, // Top-left
	0.5, 0.5, 0.5, 1, 0, 0, // Top-right
	0.5, -0.5, -0.5, 1, 0, 0, // Bottom-left
	0.5, 0.5, 0.5, 1, 0, 0, // Top-right
	0.5, -0.5, 0.5, 1, 0, 0, // Bottom-right

	// Top face
	-0.5, 0.5, -0.5, 0, 1, 0, // Bottom-left
	-0.5, 0.5, 0.5, 0, 1, 0, // Bottom-right
	0.5, 0.5, 0.5, 0, 1, 0, // Top-right
	-0.5, 0.5, -0.5, 0, 1, 0, // Bottom-left
	0.5, 0.5, 0.5, 0, 1, 0, // Top-right
	0.5, 0.5, -0.5, 0, 1, 0, // Top-left

	// Bottom face
	-0.5, -0.5, -0.5, 0, -1, 0, // Bottom-left
	0.5, -0.5, -0.5, 0, -1, 0, // Bottom-right
	0.5, -0.5, 0.5, 0, -1, 0, // Top-right
	-0.5, -0.5, -0.5, 0, -1, 0, // Bottom-left
	0.5, -0.5, 0.5, 0, -1, 0, // Top-right
	-0.5, -0.5, 0.5, 0, -1, 0, // Top-left
}

// Cube returns the interleaved vertices of a cube with the given edge length.
// Normals are left at unit length.
func Cube(size float32) []float32 {
	out := make([]float32, len(unitCube))
	for i, v := range unitCube {
		if i%FloatsPerVertex < 3 {
			v *= size
		}
		out[i] = v
	}
	return out
}

// CubeVertexCount is the number of vertices Cube returns.
func CubeVertexCount() int32 {
	return int32(len(unitCube) / FloatsPerVertex)
}
