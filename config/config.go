package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"BlockOutGolang/game"
)

const (
	ProgramName = "BlockOut"
	Version     = "1.0"
)

var (
	// Vsync caps the frame loop at the display refresh; the day/night cycle
	// and input polling are frame driven.
	Vsync = true

	DefaultWidth  = 800
	DefaultHeight = 800
)

// Settings is what the command line can change.
type Settings struct {
	Width  int
	Height int
	Vsync  bool

	FallInterval float64 // seconds

	FloorTexture string // empty selects the generated texture
	CubeTexture  string

	Mute bool
	HUD  bool
}

// Default returns the settings used when no flags are given.
func Default() Settings {
	return Settings{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Vsync:        Vsync,
		FallInterval: game.DefaultTube().FallInterval,
		HUD:          true,
	}
}

// Parse reads settings from command line arguments (without the program
// name). Help output and errors are written to out.
func Parse(args []string, out io.Writer) (Settings, error) {
	s := Default()

	fs := flag.NewFlagSet(ProgramName, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&s.Width, "w", s.Width, "window width")
	fs.IntVar(&s.Width, "width", s.Width, "window width")
	fs.IntVar(&s.Height, "g", s.Height, "window height")
	fs.IntVar(&s.Height, "height", s.Height, "window height")
	fs.BoolVar(&s.Vsync, "vsync", s.Vsync, "wait for the display refresh between frames")
	fs.Float64Var(&s.FallInterval, "fall", s.FallInterval, "seconds between automatic steps")
	fs.StringVar(&s.FloorTexture, "floor-texture", "", "image for the tube walls (generated when empty)")
	fs.StringVar(&s.CubeTexture, "cube-texture", "", "image for the cube faces (generated when empty)")
	fs.BoolVar(&s.Mute, "mute", false, "disable sound effects")
	fs.BoolVar(&s.HUD, "hud", s.HUD, "show the status overlay")

	if err := fs.Parse(args); err != nil {
		return s, err
	}
	if fs.NArg() > 0 {
		return s, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate rejects settings the window layer cannot honour.
func (s Settings) Validate() error {
	var errs []error
	if s.Width <= 0 {
		errs = append(errs, fmt.Errorf("width must be positive, got %d", s.Width))
	}
	if s.Height <= 0 {
		errs = append(errs, fmt.Errorf("height must be positive, got %d", s.Height))
	}
	if s.FallInterval <= 0 {
		errs = append(errs, fmt.Errorf("fall interval must be positive, got %v", s.FallInterval))
	}
	return errors.Join(errs...)
}

// Tube returns the tube configuration with the command line overrides applied.
func (s Settings) Tube() game.TubeConfig {
	tube := game.DefaultTube()
	tube.FallInterval = s.FallInterval
	return tube
}
