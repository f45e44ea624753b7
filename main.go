package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"BlockOutGolang/config"
	"BlockOutGolang/controls"
	"BlockOutGolang/game"
	"BlockOutGolang/sfx"
	"BlockOutGolang/texture"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	settings, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%s: %v", config.ProgramName, err)
	}

	if err := run(settings); err != nil {
		log.Fatalf("%s: %v", config.ProgramName, err)
	}
}

func createWindow(settings config.Settings) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	title := fmt.Sprintf("%s %s", config.ProgramName, config.Version)
	window, err := glfw.CreateWindow(settings.Width, settings.Height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if settings.Vsync {
		glfw.SwapInterval(1)
	}
	return window, nil
}

func run(settings config.Settings) error {
	fmt.Printf("%s %s\n", config.ProgramName, config.Version)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := createWindow(settings)
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("init gl: %w", err)
	}
	fmt.Println("GL vendor:  ", gl.GoStr(gl.GetString(gl.VENDOR)))
	fmt.Println("GL renderer:", gl.GoStr(gl.GetString(gl.RENDERER)))
	fmt.Println("GL version: ", gl.GoStr(gl.GetString(gl.VERSION)))

	floorImage, err := texture.Load(settings.FloorTexture, texture.FloorSeed, texture.FloorTint)
	if err != nil {
		return err
	}
	cubeImage, err := texture.Load(settings.CubeTexture, texture.CubeSeed, texture.CubeTint)
	if err != nil {
		return err
	}

	tube := settings.Tube()
	fbWidth, fbHeight := window.GetFramebufferSize()
	scene, err := newRenderer(tube, floorImage, cubeImage, fbWidth, fbHeight)
	if err != nil {
		return err
	}

	var overlay *hudOverlay
	if settings.HUD {
		winWidth, winHeight := window.GetSize()
		overlay, err = newHUDOverlay(winWidth, winHeight)
		if err != nil {
			return err
		}
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		scene.resize(width, height)
	})
	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		if overlay != nil {
			overlay.resize(width, height)
		}
	})

	keyboard := controls.NewKeyboard(defaultBindings())
	attachKeyboard(window, keyboard)

	audio := newSounds(settings.Mute)
	defer audio.close()

	state := game.NewState(tube, glfwClock{}, cameraPosition)
	glfwClock{}.Reset()

	for !window.ShouldClose() {
		glfw.PollEvents()

		keys := keyboard.State()
		if keys.Held(game.ActionQuit) {
			break
		}

		events := state.Update(keys)
		if events.Outcome == game.OutcomeDiscarded {
			log.Printf("column full, cube discarded (%d so far)", state.Discarded)
		}
		audio.play(sfx.ForEvents(events))

		state.Render(scene)
		if overlay != nil {
			if err := overlay.draw(state, time.Now()); err != nil {
				return err
			}
		}

		window.SwapBuffers()
	}

	fmt.Printf("placed %d cubes, discarded %d\n", state.Locked, state.Discarded)
	return nil
}
