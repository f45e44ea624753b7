package game

// Action is a discrete game command derived from the keyboard.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionStepIn
	ActionDrop
	ActionToggleTexture
	ActionToggleLighting

	// ActionQuit is not debounced; the frame loop checks it directly.
	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:           "none",
	ActionMoveUp:         "move-up",
	ActionMoveDown:       "move-down",
	ActionMoveLeft:       "move-left",
	ActionMoveRight:      "move-right",
	ActionStepIn:         "step-in",
	ActionDrop:           "drop",
	ActionToggleTexture:  "toggle-texture",
	ActionToggleLighting: "toggle-lighting",
	ActionQuit:           "quit",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Tracked reports whether the action takes part in debouncing.
func (a Action) Tracked() bool {
	return a > ActionNone && a < ActionQuit
}

// KeyState is a snapshot of which action keys are held this frame.
type KeyState [actionCount]bool

// Press marks the key for a as held.
func (k *KeyState) Press(a Action) {
	if a > ActionNone && a < actionCount {
		k[a] = true
	}
}

// Release marks the key for a as up.
func (k *KeyState) Release(a Action) {
	if a > ActionNone && a < actionCount {
		k[a] = false
	}
}

// Held reports whether the key for a is down.
func (k KeyState) Held(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return k[a]
}

// AnyTracked reports whether at least one debounced key is down.
func (k KeyState) AnyTracked() bool {
	for a := range k {
		if k[a] && Action(a).Tracked() {
			return true
		}
	}
	return false
}

// MapInput turns a key snapshot into at most one action. Once an action has
// been dispatched the mapper stays pending, ignoring every key, until all
// tracked keys are released together; a held key fires once, not per frame.
// The returned bool is the new pending state.
func MapInput(keys KeyState, pending bool) (Action, bool) {
	if pending {
		return ActionNone, keys.AnyTracked()
	}
	for a := range keys {
		if keys[a] && Action(a).Tracked() {
			return Action(a), true
		}
	}
	return ActionNone, false
}
