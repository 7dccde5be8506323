package ansicanvas

// Cell is one output grid position: a glyph plus the resolved
// foreground and background colors for the pixel region it covers.
type Cell struct {
	Char rune
	FG   RGBA
	BG   RGBA
}

// Grid is a row-major grid of cells, rebuilt from scratch on every
// render pass and never persisted.
type Grid [][]Cell

// brailleDotMasks assigns each cell of a 2x4 region (indexed
// [row][column]) its bit in the braille pattern, following the Unicode
// dot numbering: dots 1, 2, 3, 7 run down the left column and dots
// 4, 5, 6, 8 down the right. This ordering is deliberately not
// row-major; it must agree with the catalog's 0x2800+pattern glyph
// formula, which is what makes the braille lookup a constant-time
// array access instead of a pattern search.
var brailleDotMasks = [4][2]uint16{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// regionPattern quantizes a w x h sub-region of the buffer anchored at
// (x0, y0) into an on/off bit pattern using the brightness threshold.
// Bits are assigned in row-major scan order (bit 0 is the first pixel
// scanned). Pixels outside the buffer read as opaque black. The
// returned colors are the averages of the on pixels (foreground) and
// the off pixels (background).
func regionPattern(buf *PixelBuffer, x0, y0, w, h int, threshold uint8) (uint16, RGBA, RGBA) {
	var pattern uint16
	on := make([]RGBA, 0, w*h)
	off := make([]RGBA, 0, w*h)
	bit := 0
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c := buf.sample(x0+dx, y0+dy)
			if c.IsOn(threshold) {
				pattern |= 1 << bit
				on = append(on, c)
			} else {
				off = append(off, c)
			}
			bit++
		}
	}
	return pattern, Average(on), Average(off)
}

// brailleRegion is the 2x4 specialization of regionPattern using the
// braille dot-bit assignment instead of row-major bit order.
func brailleRegion(buf *PixelBuffer, x0, y0 int, threshold uint8) (uint16, RGBA, RGBA) {
	var pattern uint16
	on := make([]RGBA, 0, 8)
	off := make([]RGBA, 0, 8)
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 2; dx++ {
			c := buf.sample(x0+dx, y0+dy)
			if c.IsOn(threshold) {
				pattern |= brailleDotMasks[dy][dx]
				on = append(on, c)
			} else {
				off = append(off, c)
			}
		}
	}
	return pattern, Average(on), Average(off)
}

// MapPixelsToCells converts an entire pixel buffer into a glyph grid
// for the given symbol set. The cell grid is the ceiling division of
// the pixel dimensions by the set's sub-grid size; partial trailing
// sub-grids pad with out-of-bounds reads, which behave as opaque
// black. A nil or empty buffer yields an empty grid.
func MapPixelsToCells(buf *PixelBuffer, symbolSet string, threshold uint8) Grid {
	if buf == nil || buf.width == 0 || buf.height == 0 {
		return Grid{}
	}
	table := SymbolsFor(symbolSet)
	sw, sh := table[0].W, table[0].H
	braille := sw == 2 && sh == 4

	cols := (buf.width + sw - 1) / sw
	rows := (buf.height + sh - 1) / sh
	grid := make(Grid, rows)
	for cy := 0; cy < rows; cy++ {
		row := make([]Cell, cols)
		for cx := 0; cx < cols; cx++ {
			var pattern uint16
			var fg, bg RGBA
			if braille {
				pattern, fg, bg = brailleRegion(buf, cx*sw, cy*sh, threshold)
			} else {
				pattern, fg, bg = regionPattern(buf, cx*sw, cy*sh, sw, sh, threshold)
			}
			sym := FindBestSymbol(pattern, table)
			row[cx] = Cell{Char: sym.Char, FG: fg, BG: bg}
		}
		grid[cy] = row
	}
	return grid
}
