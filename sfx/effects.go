package sfx

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"BlockOutGolang/game"
)

// SampleRate is the rate every effect is generated at.
const SampleRate = beep.SampleRate(44100)

// Kind names a sound effect.
type Kind int

const (
	Lock Kind = iota
	Discard
	Toggle
)

type note struct {
	freq     float64
	duration time.Duration
}

var notes = map[Kind][]note{
	Lock:    {{220, 60 * time.Millisecond}, {165, 90 * time.Millisecond}},
	Discard: {{110, 200 * time.Millisecond}},
	Toggle:  {{880, 30 * time.Millisecond}},
}

// Duration is how long the effect plays.
func (k Kind) Duration() time.Duration {
	var d time.Duration
	for _, n := range notes[k] {
		d += n.duration
	}
	return d
}

// New builds the streamer for an effect at the given linear volume (1 is
// unchanged, 0 is silent).
func New(kind Kind, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	seq, ok := notes[kind]
	if !ok {
		return nil, fmt.Errorf("unknown sound effect %d", kind)
	}

	parts := make([]beep.Streamer, 0, len(seq))
	for _, n := range seq {
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %vHz: %w", n.freq, err)
		}
		samples := rate.N(n.duration)
		parts = append(parts, &fadeOut{streamer: beep.Take(samples, tone), total: samples})
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// ForEvents picks the effects to play for one frame.
func ForEvents(ev game.FrameEvents) []Kind {
	var kinds []Kind
	switch ev.Outcome {
	case game.OutcomeLocked:
		kinds = append(kinds, Lock)
	case game.OutcomeDiscarded:
		kinds = append(kinds, Discard)
	}
	if ev.Applied && (ev.Action == game.ActionToggleTexture || ev.Action == game.ActionToggleLighting) {
		kinds = append(kinds, Toggle)
	}
	return kinds
}

// fadeOut ramps a finite streamer linearly down to silence.
type fadeOut struct {
	streamer beep.Streamer
	pos      int
	total    int
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1 - float64(f.pos)/float64(f.total)
		if gain < 0 {
			gain = 0
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
