package ansicanvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidDimensions is returned when a buffer is requested with a
// non-positive width or height. It is the only hard failure the
// library surfaces; every other out-of-range condition is absorbed.
var ErrInvalidDimensions = errors.New("buffer dimensions must be positive")

// PixelBuffer is a rectangular grid of RGBA pixels addressed by
// (x, y) with the origin at the top left. Pixels are stored row-major
// in a single flat slice. The buffer is the only mutable state in the
// library and is owned exclusively by the caller; drawing primitives
// mutate it in place and rendering never modifies it.
//
// Out-of-bounds access never fails: reads outside the buffer behave
// as opaque black and writes outside the buffer are dropped. This is
// deliberate, since host animation loops routinely produce transient
// out-of-range coordinates every frame.
type PixelBuffer struct {
	width  int
	height int
	pix    []RGBA
}

// NewBuffer creates a pixel buffer with the given dimensions. An
// optional fill color initializes every pixel; without one the buffer
// starts as opaque black. Non-positive dimensions return
// ErrInvalidDimensions.
func NewBuffer(width, height int, fill ...RGBA) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	b := &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]RGBA, width*height),
	}
	c := RGB(0, 0, 0)
	if len(fill) > 0 {
		c = fill[0]
	}
	b.Clear(c)
	return b, nil
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int { return b.height }

// SetPixel writes a pixel at (x, y). Writes outside the buffer bounds
// are silently dropped.
func (b *PixelBuffer) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = c
}

// GetPixel reads the pixel at (x, y). The second return value is false
// when the coordinates lie outside the buffer.
func (b *PixelBuffer) GetPixel(x, y int) (RGBA, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return RGBA{}, false
	}
	return b.pix[y*b.width+x], true
}

// sample reads the pixel at (x, y), substituting opaque black for any
// coordinate outside the buffer. The glyph mapper uses it so partial
// trailing sub-grids pad with black instead of failing.
func (b *PixelBuffer) sample(x, y int) RGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return RGB(0, 0, 0)
	}
	return b.pix[y*b.width+x]
}

// Clear overwrites every pixel with the given color. Pixels are value
// copies, so mutating one afterwards is never visible at another.
func (b *PixelBuffer) Clear(c RGBA) *PixelBuffer {
	for i := range b.pix {
		b.pix[i] = c
	}
	return b
}

// ColorModel implements image.Image.
func (b *PixelBuffer) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image. Out-of-bounds reads return opaque black,
// matching the buffer's sampling behavior.
func (b *PixelBuffer) At(x, y int) color.Color {
	c := b.sample(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Set writes a standard library color at (x, y), converting it to the
// buffer's 8-bit RGBA representation. Together with At and Bounds this
// makes PixelBuffer a draw.Image destination for the x/image scalers
// and font rasterizers. Out-of-bounds writes are dropped, same as
// SetPixel.
func (b *PixelBuffer) Set(x, y int, c color.Color) {
	r, g, bl, a := c.RGBA()
	b.SetPixel(x, y, RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(bl >> 8),
		A: uint8(a >> 8),
	})
}
