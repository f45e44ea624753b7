// Package controls turns platform key events into the game's key snapshot.
package controls

import (
	"github.com/kamstrup/intmap"

	"BlockOutGolang/game"
)

// Key is a platform key code.
type Key int

// Bindings maps key codes to game actions. Several keys may share an action.
type Bindings struct {
	actions *intmap.Map[Key, game.Action]
}

func NewBindings() *Bindings {
	return &Bindings{actions: intmap.New[Key, game.Action](16)}
}

func (b *Bindings) Bind(key Key, action game.Action) {
	b.actions.Put(key, action)
}

func (b *Bindings) Unbind(key Key) {
	b.actions.Del(key)
}

// Lookup returns the action bound to key.
func (b *Bindings) Lookup(key Key) (game.Action, bool) {
	return b.actions.Get(key)
}

// Keyboard tracks which bound keys are down. An action stays held while any of
// its keys is down.
type Keyboard struct {
	bindings *Bindings
	down     *intmap.Map[Key, game.Action]
	holders  *intmap.Map[game.Action, int]
	state    game.KeyState
}

func NewKeyboard(bindings *Bindings) *Keyboard {
	return &Keyboard{
		bindings: bindings,
		down:     intmap.New[Key, game.Action](8),
		holders:  intmap.New[game.Action, int](8),
	}
}

// Press records a key going down. Repeats and unbound keys are ignored.
func (k *Keyboard) Press(key Key) {
	if _, ok := k.down.Get(key); ok {
		return
	}
	action, ok := k.bindings.Lookup(key)
	if !ok {
		return
	}
	k.down.Put(key, action)
	n, _ := k.holders.Get(action)
	k.holders.Put(action, n+1)
	k.state.Press(action)
}

// Release records a key going up.
func (k *Keyboard) Release(key Key) {
	action, ok := k.down.Get(key)
	if !ok {
		return
	}
	k.down.Del(key)
	n, _ := k.holders.Get(action)
	if n <= 1 {
		k.holders.Del(action)
		k.state.Release(action)
		return
	}
	k.holders.Put(action, n-1)
}

// Reset forgets every held key, e.g. when the window loses focus and release
// events will not arrive.
func (k *Keyboard) Reset() {
	k.down.Clear()
	k.holders.Clear()
	k.state = game.KeyState{}
}

// State is the snapshot handed to the game each frame.
func (k *Keyboard) State() game.KeyState {
	return k.state
}
