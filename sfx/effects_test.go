package sfx

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BlockOutGolang/game"
)

func drain(t *testing.T, s beep.Streamer) (count int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		count += n
		if !ok {
			break
		}
	}
	require.NoError(t, s.Err())
	return count, peak
}

func TestEffectLength(t *testing.T) {
	for _, kind := range []Kind{Lock, Discard, Toggle} {
		s, err := New(kind, SampleRate, 1)
		require.NoError(t, err)

		count, peak := drain(t, s)
		assert.InDelta(t, SampleRate.N(kind.Duration()), count, float64(len(notes[kind])), "kind %d", kind)
		assert.Greater(t, peak, 0.1)
		assert.LessOrEqual(t, peak, 1.0)
	}
}

func TestSilentVolume(t *testing.T) {
	s, err := New(Lock, SampleRate, 0)
	require.NoError(t, err)

	count, peak := drain(t, s)
	assert.Positive(t, count)
	assert.Zero(t, peak)
}

func TestUnknownEffect(t *testing.T) {
	_, err := New(Kind(42), SampleRate, 1)
	assert.Error(t, err)
}

func TestDurations(t *testing.T) {
	assert.Equal(t, 150*time.Millisecond, Lock.Duration())
	assert.Equal(t, 200*time.Millisecond, Discard.Duration())
}

func TestForEvents(t *testing.T) {
	tests := []struct {
		name string
		ev   game.FrameEvents
		want []Kind
	}{
		{"quiet frame", game.FrameEvents{}, nil},
		{"lock", game.FrameEvents{Action: game.ActionDrop, Applied: true, Outcome: game.OutcomeLocked}, []Kind{Lock}},
		{"discard", game.FrameEvents{Outcome: game.OutcomeDiscarded, Fell: true}, []Kind{Discard}},
		{"toggle", game.FrameEvents{Action: game.ActionToggleLighting, Applied: true}, []Kind{Toggle}},
		{"blocked move", game.FrameEvents{Action: game.ActionMoveLeft}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForEvents(tt.ev))
		})
	}
}
