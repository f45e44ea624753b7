package game

import "github.com/go-gl/mathgl/mgl32"

// Slot is one cube of the session: the active one or a solid one.
type Slot struct {
	Position mgl32.Vec3
	Solid    bool
	Model    mgl32.Mat4
}

// Outcome is what Settle did with the active cube.
type Outcome int

const (
	OutcomeFalling Outcome = iota
	OutcomeLocked
	OutcomeDiscarded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLocked:
		return "locked"
	case OutcomeDiscarded:
		return "discarded"
	default:
		return "falling"
	}
}

// Tracker owns the cubes of one session. The last slot is always the single
// active cube; every slot before it is solid and never changes again.
//
// The sentinel is the start cell. The inward check counts it as an
// obstruction; the lateral and floor checks do not.
type Tracker struct {
	tube     TubeConfig
	sentinel mgl32.Vec3
	slots    []Slot
	placed   []mgl32.Vec3 // positions of solid slots, parallel to slots[:len-1]
}

// NewTracker returns a tracker with one active cube at the start cell.
func NewTracker(tube TubeConfig) *Tracker {
	t := &Tracker{
		tube:     tube,
		sentinel: tube.Start,
	}
	t.spawn()
	return t
}

func (t *Tracker) spawn() {
	t.slots = append(t.slots, Slot{
		Position: t.tube.Start,
		Model:    t.tube.Model(t.tube.Start),
	})
}

// Active returns the falling cube's slot.
func (t *Tracker) Active() Slot {
	return t.slots[len(t.slots)-1]
}

// ActivePosition returns the falling cube's position.
func (t *Tracker) ActivePosition() mgl32.Vec3 {
	return t.slots[len(t.slots)-1].Position
}

// Slots returns every slot, solid ones first and the active one last.
// The slice must not be modified.
func (t *Tracker) Slots() []Slot {
	return t.slots
}

// Placed returns the positions of all solid cubes. The slice must not be
// modified.
func (t *Tracker) Placed() []mgl32.Vec3 {
	return t.placed
}

// SolidCount is the number of locked cubes.
func (t *Tracker) SolidCount() int {
	return len(t.placed)
}

// obstacles is Placed plus the sentinel, for the inward check.
func (t *Tracker) obstacles() []mgl32.Vec3 {
	obs := make([]mgl32.Vec3, 0, len(t.placed)+1)
	obs = append(obs, t.sentinel)
	return append(obs, t.placed...)
}

func (t *Tracker) occupied(pos mgl32.Vec3) bool {
	for _, p := range t.placed {
		if t.tube.SamePosition(pos, p) {
			return true
		}
	}
	return false
}

// MoveActive places the active cube at pos and refreshes its transform.
// Callers validate pos first.
func (t *Tracker) MoveActive(pos mgl32.Vec3) {
	last := len(t.slots) - 1
	t.slots[last].Position = pos
	t.slots[last].Model = t.tube.Model(pos)
}

// TryLateral moves the active cube by (dx, dy) when the target cell is inside
// the tube and free. It reports whether the cube moved.
func (t *Tracker) TryLateral(dx, dy float32) bool {
	pos := t.ActivePosition()
	target := pos.Add(mgl32.Vec3{dx, dy, 0})
	if !t.tube.InLateralBounds(target.X()) || !t.tube.InLateralBounds(target.Y()) {
		return false
	}
	if dy != 0 && t.tube.BlocksAlongY(pos, t.placed, dy) {
		return false
	}
	if dx != 0 && t.tube.BlocksAlongX(pos, t.placed, dx) {
		return false
	}
	t.MoveActive(target)
	return true
}

// canAdvance is the shared gate of step-in and drop.
func (t *Tracker) canAdvance() bool {
	pos := t.ActivePosition()
	return pos.Z() > 0 && !t.tube.BlocksAlongZ(pos, t.obstacles())
}

// TryStepIn moves the active cube one cell deeper.
func (t *Tracker) TryStepIn() bool {
	if !t.canAdvance() {
		return false
	}
	pos := t.ActivePosition()
	pos[2] -= t.tube.Step
	t.MoveActive(pos)
	return true
}

// TryDrop sends the active cube straight to its resting depth.
func (t *Tracker) TryDrop() bool {
	if !t.canAdvance() {
		return false
	}
	pos := t.ActivePosition()
	pos[2] = t.tube.FloorZ(pos, t.placed)
	t.MoveActive(pos)
	return true
}

// Fall advances the active cube one cell without any gate; Settle catches it
// on the next frame.
func (t *Tracker) Fall() {
	pos := t.ActivePosition()
	pos[2] -= t.tube.Step
	t.MoveActive(pos)
}

// Settle decides whether the active cube locks this frame. A cube resting on
// the back wall or on another cube becomes solid and a new active cube
// appears at the start cell. If its column already reaches the top row the
// placement is thrown away and the cube only returns to the start cell.
//
// Settle also discards a cube that sits in a cell already holding a solid.
// The plain lock rule (rest depth, below TopZ, column not filled) does not
// check this: a column stacked to 1.7 never counts as filled, so Fall can push
// the active cube onto the top solid and the plain rule would lock a second
// cube in the same cell.
func (t *Tracker) Settle() Outcome {
	pos := t.ActivePosition()
	bot := t.tube.FloorZ(pos, t.placed) + t.tube.LockEpsilon
	if pos.Z() > bot || pos.Z() >= t.tube.TopZ {
		return OutcomeFalling
	}
	if t.tube.ColumnFilled(pos, t.placed) || t.occupied(pos) {
		t.MoveActive(t.tube.Start)
		return OutcomeDiscarded
	}

	last := len(t.slots) - 1
	t.slots[last].Solid = true
	t.slots[last].Model = t.tube.Model(pos)
	t.placed = append(t.placed, pos)
	t.spawn()
	return OutcomeLocked
}
