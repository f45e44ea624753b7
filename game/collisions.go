package game

import "github.com/go-gl/mathgl/mgl32"

// BlocksAlongY reports whether a placed cube occupies the cell dy away from pos
// along y, at the same depth and column x.
func (t TubeConfig) BlocksAlongY(pos mgl32.Vec3, placed []mgl32.Vec3, dy float32) bool {
	for _, p := range placed {
		if t.Equal(p.Z(), pos.Z()) &&
			t.Equal(p.Y(), pos.Y()+dy) &&
			t.Equal(p.X(), pos.X()) {
			return true
		}
	}
	return false
}

// BlocksAlongX reports whether a placed cube occupies the cell dx away from pos
// along x, at the same depth and row y.
func (t TubeConfig) BlocksAlongX(pos mgl32.Vec3, placed []mgl32.Vec3, dx float32) bool {
	for _, p := range placed {
		if t.Equal(p.Z(), pos.Z()) &&
			t.Equal(p.Y(), pos.Y()) &&
			t.Equal(p.X(), pos.X()+dx) {
			return true
		}
	}
	return false
}

// BlocksAlongZ reports whether the cell one step deeper than pos is taken.
// Inward motion stops exactly when it touches the next obstruction.
func (t TubeConfig) BlocksAlongZ(pos mgl32.Vec3, placed []mgl32.Vec3) bool {
	for _, p := range placed {
		if t.SameColumn(pos, p) && t.Equal(pos.Z()-t.Step, p.Z()) {
			return true
		}
	}
	return false
}

// FloorZ is the hard-drop target: one step in front of the top cube in pos's
// column, or the back wall when the column is empty.
func (t TubeConfig) FloorZ(pos mgl32.Vec3, placed []mgl32.Vec3) float32 {
	bot := t.BackZ
	for _, p := range placed {
		if t.SameColumn(pos, p) && p.Z()+t.Step > bot {
			bot = p.Z() + t.Step
		}
	}
	return bot
}

// ColumnFilled reports whether pos's column already holds a cube in the top row.
func (t TubeConfig) ColumnFilled(pos mgl32.Vec3, placed []mgl32.Vec3) bool {
	for _, p := range placed {
		if t.SameColumn(pos, p) && p.Z() > t.FilledZ {
			return true
		}
	}
	return false
}
