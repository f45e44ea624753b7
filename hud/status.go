package hud

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"BlockOutGolang/game"
)

// FPSCounter averages frames over a short window.
type FPSCounter struct {
	frames int
	start  time.Time
	fps    float64
}

// Frame records one frame at now and returns the current average.
func (f *FPSCounter) Frame(now time.Time) float64 {
	if f.start.IsZero() {
		f.start = now
	}
	f.frames++
	elapsed := now.Sub(f.start)
	if elapsed >= 250*time.Millisecond {
		f.fps = float64(f.frames) / elapsed.Seconds()
		f.frames = 0
		f.start = now
	}
	return f.fps
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Lines formats the overlay for the current state.
func Lines(s *game.GameState, fps float64) []string {
	pos := s.Tracker.ActivePosition()
	return []string{
		"FPS: " + strconv.FormatFloat(mgl64.Round(fps, 1), 'f', -1, 64),
		fmt.Sprintf("Placed: %d  Discarded: %d", s.Locked, s.Discarded),
		fmt.Sprintf("Cube: %.1f %.1f %.1f", pos.X(), pos.Y(), pos.Z()),
		"Lighting: " + s.Lighting.String() + "  Texture: " + onOff(s.Texture),
		"Ambient: " + strconv.FormatFloat(mgl64.Round(float64(s.DayNight.Ambient), 2), 'f', -1, 32),
	}
}
