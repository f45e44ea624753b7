package main

import (
	"log"
	"time"

	"github.com/gopxl/beep/speaker"

	"BlockOutGolang/sfx"
)

const soundVolume = 0.4

type sounds struct {
	enabled bool
}

// newSounds opens the audio device. Failure leaves the game silent.
func newSounds(mute bool) *sounds {
	if mute {
		return &sounds{}
	}
	if err := speaker.Init(sfx.SampleRate, sfx.SampleRate.N(time.Second/20)); err != nil {
		log.Printf("audio disabled: %v", err)
		return &sounds{}
	}
	return &sounds{enabled: true}
}

func (s *sounds) play(kinds []sfx.Kind) {
	if !s.enabled {
		return
	}
	for _, kind := range kinds {
		streamer, err := sfx.New(kind, sfx.SampleRate, soundVolume)
		if err != nil {
			log.Printf("sound effect: %v", err)
			continue
		}
		speaker.Play(streamer)
	}
}

func (s *sounds) close() {
	if s.enabled {
		speaker.Close()
	}
}
