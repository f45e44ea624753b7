package texture

import (
	"fmt"
	"image"
	"image/color"

	stbi "neilpa.me/go-stbi"
)

// DefaultSize is the edge length of generated textures.
const DefaultSize = 128

// Load reads an image file, or generates one from seed and tint when path is
// empty.
func Load(path string, seed int64, tint color.RGBA) (*image.RGBA, error) {
	if path == "" {
		return Generate(seed, DefaultSize, tint), nil
	}
	img, err := stbi.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", path, err)
	}
	return img, nil
}
