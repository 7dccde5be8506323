package ansicanvas

import "math"

// Gradient is a start/end color pair interpolated linearly along a
// line's parametric length.
type Gradient struct {
	Start RGBA
	End   RGBA
}

// LineStyle carries the optional styling for DrawLine. The zero value
// (and a nil pointer) draws a solid, single-pixel line.
type LineStyle struct {
	// Dash is a cycle of 0/1 flags indexed by Bresenham step; a pixel
	// is drawn only when its step's flag is 1. Nil means solid.
	Dash []int

	// Thickness is the line width in pixels, applied perpendicular to
	// the line's dominant axis. Values below 2 draw a single pixel per
	// step.
	Thickness int

	// Gradient, when set, overrides the line color with a linear
	// interpolation from Start to End along the line.
	Gradient *Gradient
}

// dashOn reports whether the dash cycle permits drawing at step s.
func (s *LineStyle) dashOn(step int) bool {
	if s == nil || len(s.Dash) == 0 {
		return true
	}
	return s.Dash[step%len(s.Dash)] != 0
}

// DrawLine draws a line between two endpoints using integer Bresenham
// stepping, honoring the optional dash pattern, thickness, and color
// gradient in style. Endpoint coordinates are accepted as floats
// because host animation loops produce them; a non-finite coordinate
// makes the call a no-op so the stepping loop can never run away.
// The step index starts at 0 on the first pixel and increments once
// per Bresenham step; it drives both the dash cycle and the gradient
// parameter (step / Euclidean length). The same buffer is returned
// for chaining.
func (b *PixelBuffer) DrawLine(x1f, y1f, x2f, y2f float64, c RGBA, style *LineStyle) *PixelBuffer {
	for _, v := range [4]float64{x1f, y1f, x2f, y2f} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return b
		}
	}
	x1, y1 := int(math.Round(x1f)), int(math.Round(y1f))
	x2, y2 := int(math.Round(x2f)), int(math.Round(y2f))

	dx, dy := absInt(x2-x1), absInt(y2-y1)
	// Classified once for the whole line: steep lines thicken along x,
	// shallow lines along y. This keeps dash gaps open, since the
	// extra thickness pixels of one step never land on the primary
	// pixels of an adjacent step.
	steep := dy > dx
	length := math.Hypot(float64(x2-x1), float64(y2-y1))

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	thickness := 1
	if style != nil && style.Thickness > 1 {
		thickness = style.Thickness
	}
	var grad *Gradient
	if style != nil {
		grad = style.Gradient
	}

	x, y := x1, y1
	e := dx - dy
	for step := 0; ; step++ {
		if style.dashOn(step) {
			col := c
			if grad != nil {
				t := 0.0
				if length > 0 {
					t = float64(step) / length
				}
				col = Interpolate(grad.Start, grad.End, t)
			}
			b.plotThick(x, y, steep, thickness, col)
		}
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x += sx
		}
		if e2 < dx {
			e += dx
			y += sy
		}
	}
	return b
}

// plotThick writes the primary pixel of a line step plus any extra
// thickness pixels, placed perpendicular to the line's dominant axis
// and centered on the primary pixel via offset = thickness/2.
func (b *PixelBuffer) plotThick(x, y int, steep bool, thickness int, c RGBA) {
	if thickness <= 1 {
		b.SetPixel(x, y, c)
		return
	}
	offset := thickness / 2
	for i := 0; i < thickness; i++ {
		o := i - offset
		if steep {
			b.SetPixel(x+o, y, c)
		} else {
			b.SetPixel(x, y+o, c)
		}
	}
}

// DrawRect draws a rectangle anchored at (x, y) with the given width
// and height. A non-positive extent is a no-op. Without fill, exactly
// the four boundary edges are drawn; corner pixels are touched twice,
// which is harmless since writes are idempotent.
func (b *PixelBuffer) DrawRect(x, y, w, h int, c RGBA, fill bool) *PixelBuffer {
	if w <= 0 || h <= 0 {
		return b
	}
	if fill {
		for yy := y; yy < y+h; yy++ {
			for xx := x; xx < x+w; xx++ {
				b.SetPixel(xx, yy, c)
			}
		}
		return b
	}
	for xx := x; xx < x+w; xx++ {
		b.SetPixel(xx, y, c)
		b.SetPixel(xx, y+h-1, c)
	}
	for yy := y; yy < y+h; yy++ {
		b.SetPixel(x, yy, c)
		b.SetPixel(x+w-1, yy, c)
	}
	return b
}

// DrawCircle draws a circle centered at (cx, cy) using the integer
// midpoint algorithm, tracking one octant and mirroring it to the
// other seven. A negative radius is a no-op and radius 0 draws only
// the center pixel. The filled variant draws horizontal spans between
// mirrored offsets at each y (and the symmetric spans at each x), so
// the disk is a union of scanlines with no interior gaps.
func (b *PixelBuffer) DrawCircle(cx, cy, r int, c RGBA, fill bool) *PixelBuffer {
	if r < 0 {
		return b
	}
	if r == 0 {
		b.SetPixel(cx, cy, c)
		return b
	}

	if fill {
		b.hspan(cx-r, cx+r, cy, c)
		b.SetPixel(cx, cy-r, c)
		b.SetPixel(cx, cy+r, c)
	} else {
		b.SetPixel(cx+r, cy, c)
		b.SetPixel(cx-r, cy, c)
		b.SetPixel(cx, cy+r, c)
		b.SetPixel(cx, cy-r, c)
	}

	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x, y := 0, r
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		if fill {
			b.hspan(cx-x, cx+x, cy+y, c)
			b.hspan(cx-x, cx+x, cy-y, c)
			b.hspan(cx-y, cx+y, cy+x, c)
			b.hspan(cx-y, cx+y, cy-x, c)
		} else {
			b.SetPixel(cx+x, cy+y, c)
			b.SetPixel(cx-x, cy+y, c)
			b.SetPixel(cx+x, cy-y, c)
			b.SetPixel(cx-x, cy-y, c)
			b.SetPixel(cx+y, cy+x, c)
			b.SetPixel(cx-y, cy+x, c)
			b.SetPixel(cx+y, cy-x, c)
			b.SetPixel(cx-y, cy-x, c)
		}
	}
	return b
}

// hspan writes a horizontal run of pixels from x1 to x2 inclusive.
func (b *PixelBuffer) hspan(x1, x2, y int, c RGBA) {
	for x := x1; x <= x2; x++ {
		b.SetPixel(x, y, c)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
