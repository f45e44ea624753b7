package hud

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Canvas rasterises lines of text into a transparent RGBA image that the
// renderer uploads as a texture.
type Canvas struct {
	ctx      *freetype.Context
	dst      *image.RGBA
	fontSize float64
}

// NewCanvas sets up a freetype context drawing white Go Regular text.
func NewCanvas(width, height int, fontSize float64) (*Canvas, error) {
	font, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse hud font: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(font)
	ctx.SetFontSize(fontSize)
	ctx.SetDst(dst)
	ctx.SetClip(dst.Bounds())
	ctx.SetSrc(image.White)
	ctx.SetHinting(2) // For sharp text

	return &Canvas{ctx: ctx, dst: dst, fontSize: fontSize}, nil
}

// Image is the canvas backing store.
func (c *Canvas) Image() *image.RGBA {
	return c.dst
}

func (c *Canvas) clear() {
	draw.Draw(c.dst, c.dst.Bounds(), &image.Uniform{C: color.Transparent}, image.Point{}, draw.Src)
}

// Draw clears the canvas and writes lines top to bottom.
func (c *Canvas) Draw(lines []string) error {
	c.clear()

	lineHeight := c.ctx.PointToFixed(c.fontSize * 1.3)
	pt := freetype.Pt(8, 0).Add(fixed.Point26_6{Y: c.ctx.PointToFixed(c.fontSize)})
	for _, line := range lines {
		if _, err := c.ctx.DrawString(line, pt); err != nil {
			return fmt.Errorf("draw hud line %q: %w", line, err)
		}
		pt.Y += lineHeight
	}
	return nil
}
