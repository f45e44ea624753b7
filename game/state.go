package game

import "github.com/go-gl/mathgl/mgl32"

// GameState is everything one session mutates. It is created when the window
// opens, stepped once per frame and dropped on quit.
type GameState struct {
	Tube     TubeConfig
	Tracker  *Tracker
	DayNight DayNight

	Texture  bool
	Lighting LightingMode

	CameraPos mgl32.Vec3
	LightPos  mgl32.Vec3

	Locked    int
	Discarded int

	pending bool
	clock   Clock
}

// FrameEvents reports what happened during one Update.
type FrameEvents struct {
	Action  Action // dispatched action, ActionNone if debounced or idle
	Applied bool   // the action passed its gate
	Outcome Outcome
	Fell    bool // the automatic drop fired
}

// NewState starts a session. The light starts at the camera and then tracks
// the active cube's depth.
func NewState(tube TubeConfig, clock Clock, camera mgl32.Vec3) *GameState {
	s := &GameState{
		Tube:      tube,
		Tracker:   NewTracker(tube),
		DayNight:  NewDayNight(),
		Lighting:  LightingOff,
		CameraPos: camera,
		clock:     clock,
	}
	s.LightPos = LightFollow(camera, s.Tracker.ActivePosition().Z())
	return s
}

// Pending reports whether input is waiting for every key to be released.
func (s *GameState) Pending() bool {
	return s.pending
}

// Update runs one frame of simulation on the key snapshot.
func (s *GameState) Update(keys KeyState) FrameEvents {
	var ev FrameEvents

	s.DayNight.Tick()

	ev.Action, s.pending = MapInput(keys, s.pending)
	ev.Applied = s.apply(ev.Action)

	ev.Outcome = s.Tracker.Settle()
	switch ev.Outcome {
	case OutcomeLocked:
		s.Locked++
	case OutcomeDiscarded:
		s.Discarded++
	case OutcomeFalling:
		if s.clock != nil && s.clock.Elapsed() > s.Tube.FallInterval {
			s.Tracker.Fall()
			s.clock.Reset()
			ev.Fell = true
		}
	}

	s.LightPos = LightFollow(s.LightPos, s.Tracker.ActivePosition().Z())
	return ev
}

func (s *GameState) apply(a Action) bool {
	step := s.Tube.Step
	switch a {
	case ActionMoveUp:
		return s.Tracker.TryLateral(0, step)
	case ActionMoveDown:
		return s.Tracker.TryLateral(0, -step)
	case ActionMoveLeft:
		return s.Tracker.TryLateral(-step, 0)
	case ActionMoveRight:
		return s.Tracker.TryLateral(step, 0)
	case ActionStepIn:
		return s.Tracker.TryStepIn()
	case ActionDrop:
		return s.Tracker.TryDrop()
	case ActionToggleTexture:
		s.Texture = !s.Texture
		return true
	case ActionToggleLighting:
		s.Lighting = s.Lighting.Next()
		return true
	}
	return false
}
