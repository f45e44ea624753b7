package config

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	s, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.Equal(t, 800, s.Width)
	assert.Equal(t, 800, s.Height)
	assert.InDelta(t, 2.0, s.FallInterval, 1e-9)
	assert.True(t, s.HUD)
	assert.False(t, s.Mute)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want func(*Settings)
	}{
		{"short size", []string{"-w", "1024", "-g", "600"}, func(s *Settings) { s.Width, s.Height = 1024, 600 }},
		{"long size", []string{"-width=640", "-height=480"}, func(s *Settings) { s.Width, s.Height = 640, 480 }},
		{"fall", []string{"-fall", "0.5"}, func(s *Settings) { s.FallInterval = 0.5 }},
		{"textures", []string{"-floor-texture", "a.png", "-cube-texture", "b.png"}, func(s *Settings) {
			s.FloorTexture, s.CubeTexture = "a.png", "b.png"
		}},
		{"switches", []string{"-mute", "-hud=false", "-vsync=false"}, func(s *Settings) {
			s.Mute, s.HUD, s.Vsync = true, false, false
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := Default()
			tt.want(&want)

			got, err := Parse(tt.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-depth", "12"}},
		{"bad number", []string{"-w", "wide"}},
		{"zero width", []string{"-w", "0"}},
		{"negative fall", []string{"-fall", "-1"}},
		{"stray argument", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args, &bytes.Buffer{})
			assert.Error(t, err)
		})
	}
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := Parse([]string{"-h"}, &out)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, out.String(), "window width")
}

func TestTube(t *testing.T) {
	s := Default()
	s.FallInterval = 0.75

	tube := s.Tube()
	assert.InDelta(t, 0.75, tube.FallInterval, 1e-9)
	assert.InDelta(t, 0.2, tube.Step, 1e-6)
}
