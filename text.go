package ansicanvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawString rasterizes a string into the buffer with the built-in
// 7x13 bitmap face, placing the baseline at (x, y). The same buffer is
// returned for chaining.
func (b *PixelBuffer) DrawString(x, y int, s string, c RGBA) *PixelBuffer {
	return b.DrawStringFace(basicfont.Face7x13, x, y, s, c)
}

// DrawStringFace rasterizes a string into the buffer with a caller-
// supplied font face, placing the baseline at (x, y). Glyph coverage
// blends the text color over the existing pixels; pixels clipped by
// the buffer edge are dropped like any other out-of-bounds write.
func (b *PixelBuffer) DrawStringFace(face font.Face, x, y int, s string, c RGBA) *PixelBuffer {
	d := &font.Drawer{
		Dst:  b,
		Src:  image.NewUniform(color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
	return b
}

// ParseFontFace parses TrueType font data and returns a face at the
// given point size, suitable for DrawStringFace. The caller owns the
// font bytes; nothing is read from disk.
func ParseFontFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}
