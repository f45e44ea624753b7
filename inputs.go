package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"BlockOutGolang/controls"
	"BlockOutGolang/game"
)

func defaultBindings() *controls.Bindings {
	b := controls.NewBindings()
	b.Bind(controls.Key(glfw.KeyUp), game.ActionMoveUp)
	b.Bind(controls.Key(glfw.KeyDown), game.ActionMoveDown)
	b.Bind(controls.Key(glfw.KeyLeft), game.ActionMoveLeft)
	b.Bind(controls.Key(glfw.KeyRight), game.ActionMoveRight)
	b.Bind(controls.Key(glfw.KeyX), game.ActionStepIn)
	b.Bind(controls.Key(glfw.KeySpace), game.ActionDrop)
	b.Bind(controls.Key(glfw.KeyT), game.ActionToggleTexture)
	b.Bind(controls.Key(glfw.KeyL), game.ActionToggleLighting)
	b.Bind(controls.Key(glfw.KeyQ), game.ActionQuit)
	b.Bind(controls.Key(glfw.KeyEscape), game.ActionQuit)
	return b
}

// attachKeyboard routes the window's key events into keyboard.
func attachKeyboard(window *glfw.Window, keyboard *controls.Keyboard) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			keyboard.Press(controls.Key(key))
		case glfw.Release:
			keyboard.Release(controls.Key(key))
		}
	})
	// Releases are lost while unfocused.
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused {
			keyboard.Reset()
		}
	})
}
