package ansicanvas

import (
	"math"
	"strconv"
)

// RGBA represents a color with 8-bit red, green, blue, and alpha
// channels. The zero value is fully transparent black; colors built
// through the constructors default alpha to 255 (fully opaque).
type RGBA struct {
	R, G, B, A uint8
}

// RGB constructs a fully opaque color from red, green, and blue
// channel values.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// RGBWithAlpha constructs a color from red, green, blue, and alpha
// channel values.
func RGBWithAlpha(r, g, b, a uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// ClampByte rounds a floating-point value to the nearest integer and
// clamps the result to the [0, 255] byte range. It is the common
// funnel for all channel arithmetic, so a channel can never hold an
// out-of-range or fractional value.
func ClampByte(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// Brightness returns the perceived brightness of a color using the
// ITU-R BT.601 luma coefficients (0.299 R + 0.587 G + 0.114 B).
func (c RGBA) Brightness() uint8 {
	return ClampByte(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B))
}

// IsOn reports whether a pixel counts as "lit" for glyph pattern
// quantization. Pixels with alpha below 128 are always off, regardless
// of the caller-supplied brightness threshold; otherwise a pixel is on
// when its brightness meets the threshold.
func (c RGBA) IsOn(threshold uint8) bool {
	if c.A < 128 {
		return false
	}
	return c.Brightness() >= threshold
}

// Average returns the componentwise mean of a set of colors, clamped
// per channel. An empty input yields opaque black.
func Average(colors []RGBA) RGBA {
	if len(colors) == 0 {
		return RGB(0, 0, 0)
	}
	var r, g, b, a float64
	for _, c := range colors {
		r += float64(c.R)
		g += float64(c.G)
		b += float64(c.B)
		a += float64(c.A)
	}
	n := float64(len(colors))
	return RGBA{
		R: ClampByte(r / n),
		G: ClampByte(g / n),
		B: ClampByte(b / n),
		A: ClampByte(a / n),
	}
}

// Blend composites fg over bg using standard source-over alpha
// compositing in normalized alpha space. When the combined alpha is
// zero the result is fully transparent black rather than a division
// by zero.
func Blend(fg, bg RGBA) RGBA {
	fa := float64(fg.A) / 255
	ba := float64(bg.A) / 255
	outA := fa + ba*(1-fa)
	if outA == 0 {
		return RGBA{}
	}
	blend := func(f, b uint8) uint8 {
		return ClampByte((float64(f)*fa + float64(b)*ba*(1-fa)) / outA)
	}
	return RGBA{
		R: blend(fg.R, bg.R),
		G: blend(fg.G, bg.G),
		B: blend(fg.B, bg.B),
		A: ClampByte(outA * 255),
	}
}

// Interpolate linearly interpolates between two colors across all four
// channels. The parameter t is clamped to [0, 1], so t=0 yields c1 and
// t=1 yields c2.
func Interpolate(c1, c2 RGBA, t float64) RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	lerp := func(a, b uint8) uint8 {
		return ClampByte(float64(a) + (float64(b)-float64(a))*t)
	}
	return RGBA{
		R: lerp(c1.R, c2.R),
		G: lerp(c1.G, c2.G),
		B: lerp(c1.B, c2.B),
		A: lerp(c1.A, c2.A),
	}
}

// Invert returns the color with each of the red, green, and blue
// channels flipped to 255 minus its value. Alpha is preserved.
func (c RGBA) Invert() RGBA {
	return RGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// Equal reports whether two colors are channel-wise identical.
func Equal(c1, c2 RGBA) bool {
	return c1 == c2
}

// Hex parses a "#RGB" or "#RRGGBB" hex color string into an opaque
// color. Malformed input of any kind returns opaque black rather than
// an error, so callers inside a draw loop never need to handle a
// failure.
func Hex(s string) RGBA {
	if len(s) == 0 || s[0] != '#' {
		return RGB(0, 0, 0)
	}
	digits := s[1:]
	switch len(digits) {
	case 3:
		v, err := strconv.ParseUint(digits, 16, 16)
		if err != nil {
			return RGB(0, 0, 0)
		}
		// Expand each nibble: #ABC -> #AABBCC
		r := uint8(v >> 8 & 0xF)
		g := uint8(v >> 4 & 0xF)
		b := uint8(v & 0xF)
		return RGB(r<<4|r, g<<4|g, b<<4|b)
	case 6:
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return RGB(0, 0, 0)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
	default:
		return RGB(0, 0, 0)
	}
}

// Rainbow maps a parameter t (taken modulo 1) onto a cyclic rainbow
// palette built from three sine waves offset by 120 and 240 degrees,
// each remapped from [-1, 1] to the [0, 255] channel range.
func Rainbow(t float64) RGBA {
	t = math.Mod(t, 1)
	if t < 0 {
		t++
	}
	angle := t * 2 * math.Pi
	wave := func(phase float64) uint8 {
		return ClampByte((math.Sin(angle+phase) + 1) / 2 * 255)
	}
	return RGB(
		wave(0),
		wave(2*math.Pi/3),
		wave(4*math.Pi/3),
	)
}
