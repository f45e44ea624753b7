package texture

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(FloorSeed, 32, FloorTint)
	b := Generate(FloorSeed, 32, FloorTint)
	c := Generate(CubeSeed, 32, FloorTint)

	assert.Equal(t, a.Pix, b.Pix)
	assert.NotEqual(t, a.Pix, c.Pix)
	assert.Equal(t, 32, a.Bounds().Dx())
	assert.Equal(t, 32, a.Bounds().Dy())
}

func TestGenerateStaysNearTint(t *testing.T) {
	tint := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	img := Generate(1, 16, tint)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			px := img.RGBAAt(x, y)
			assert.Equal(t, uint8(255), px.A)
			assert.GreaterOrEqual(t, px.R, uint8(float32(tint.R)*0.6)-1)
			assert.LessOrEqual(t, px.R, tint.R)
		}
	}
}

func TestLoadWithoutPathGenerates(t *testing.T) {
	img, err := Load("", CubeSeed, CubeTint)
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"), CubeSeed, CubeTint)
	assert.Error(t, err)
}
