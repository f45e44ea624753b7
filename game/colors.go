package game

import "github.com/go-gl/mathgl/mgl32"

// bandThresholds split the tube into depth bands. A cube whose depth is below
// bandThresholds[i] gets bandColors[i]; anything deeper than the last
// threshold falls into the final band.
var bandThresholds = [...]float32{0.21, 0.41, 0.61, 0.81, 1.01, 1.21, 1.41}

var bandColors = [...]mgl32.Vec4{
	{1.0, 0.5, 0.5, 1.0},
	{0.4, 0.1, 0.5, 1.0},
	{0.7, 0.0, 0.3, 1.0},
	{0.5, 0.3, 0.5, 1.0},
	{0.0, 1.0, 1.0, 1.0},
	{1.0, 0.0, 0.0, 1.0},
	{0.3, 0.5, 0.1, 1.0},
	{0.6, 0.2, 1.0, 1.0},
}

// BandCount is the number of distinct solid cube colors.
const BandCount = len(bandColors)

// Band returns the color band index for a cube locked at depth z.
func Band(z float32) int {
	for i, threshold := range bandThresholds {
		if z < threshold {
			return i
		}
	}
	return BandCount - 1
}

// BandColor returns the RGBA color for a cube locked at depth z.
func BandColor(z float32) mgl32.Vec4 {
	return bandColors[Band(z)]
}
