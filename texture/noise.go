package texture

import (
	"image"
	"image/color"

	"github.com/ojrac/opensimplex-go"
)

// Palette tints for the generated textures.
var (
	FloorTint = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	CubeTint  = color.RGBA{R: 235, G: 225, B: 200, A: 255}
)

const (
	FloorSeed int64 = 12
	CubeSeed  int64 = 31
)

// fractalNoise sums octaves of simplex noise. The result stays within
// [-amplitude*(1+persistence+...), +...].
func fractalNoise(noise opensimplex.Noise32, x, y float32, octaves int, lacunarity, persistence, scale float32) float32 {
	var val float32
	amplitude := float32(1)
	for i := 0; i < octaves; i++ {
		val += noise.Eval2(x/scale, y/scale) * amplitude
		x *= lacunarity
		y *= lacunarity
		amplitude *= persistence
	}
	return val
}

// Generate returns a size x size opaque image of tint modulated by fractal
// noise. The same seed always produces the same pixels.
func Generate(seed int64, size int, tint color.RGBA) *image.RGBA {
	noise := opensimplex.New32(seed)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := fractalNoise(noise, float32(x), float32(y), 4, 2, 0.5, 24)
			shade := 0.8 + 0.2*clamp(v, -1, 1)
			img.SetRGBA(x, y, color.RGBA{
				R: scale(tint.R, shade),
				G: scale(tint.G, shade),
				B: scale(tint.B, shade),
				A: 255,
			})
		}
	}
	return img
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func scale(c uint8, f float32) uint8 {
	return uint8(clamp(float32(c)*f, 0, 255))
}
