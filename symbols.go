package ansicanvas

import "math/bits"

// Symbol maps a sub-grid pixel pattern to a display glyph. Pattern is
// a bit mask over the sub-grid cells; for every set except braille the
// bit index is the cell's row-major position (bit 0 is the first pixel
// scanned, left to right, top to bottom). The braille set instead uses
// the Unicode braille dot numbering, where the glyph for a pattern is
// always rune(0x2800 + pattern).
type Symbol struct {
	Char    rune
	Pattern uint16
	W, H    int
}

// Symbol set names accepted by SymbolsFor, DimensionsFor, and the
// renderer configuration.
const (
	SymbolSetASCII    = "ascii"
	SymbolSetHalf     = "half"
	SymbolSetQuadrant = "quadrant"
	SymbolSetSextant  = "sextant"
	SymbolSetBraille  = "braille"
)

// asciiSymbols is a 1x1 density ramp from dark to bright. It is not a
// coverage bitmask: every non-blank glyph shares the single "on" bit,
// so pattern matching can only distinguish blank from non-blank. The
// glyph ordering still expresses a brightness ramp and is kept in
// catalog order for the nearest-match tie break.
var asciiSymbols = []Symbol{
	{' ', 0x0, 1, 1},
	{'.', 0x1, 1, 1},
	{':', 0x1, 1, 1},
	{'-', 0x1, 1, 1},
	{'=', 0x1, 1, 1},
	{'+', 0x1, 1, 1},
	{'*', 0x1, 1, 1},
	{'#', 0x1, 1, 1},
	{'%', 0x1, 1, 1},
	{'@', 0x1, 1, 1},
}

// halfSymbols is the exhaustive 1x2 half-block set. Bit 0 is the top
// pixel, bit 1 the bottom.
var halfSymbols = []Symbol{
	{' ', 0x0, 1, 2},
	{'▀', 0x1, 1, 2},
	{'▄', 0x2, 1, 2},
	{'█', 0x3, 1, 2},
}

// quadrantSymbols is the exhaustive 2x2 quadrant block set in pattern
// order. Bit 0 is the top-left cell, bit 1 top-right, bit 2 bottom-
// left, bit 3 bottom-right.
var quadrantSymbols = []Symbol{
	{' ', 0x0, 2, 2},
	{'▘', 0x1, 2, 2},
	{'▝', 0x2, 2, 2},
	{'▀', 0x3, 2, 2},
	{'▖', 0x4, 2, 2},
	{'▌', 0x5, 2, 2},
	{'▞', 0x6, 2, 2},
	{'▛', 0x7, 2, 2},
	{'▗', 0x8, 2, 2},
	{'▚', 0x9, 2, 2},
	{'▐', 0xA, 2, 2},
	{'▜', 0xB, 2, 2},
	{'▄', 0xC, 2, 2},
	{'▙', 0xD, 2, 2},
	{'▟', 0xE, 2, 2},
	{'█', 0xF, 2, 2},
}

// sextantSymbols is the exhaustive 2x3 sextant set, generated from the
// Unicode block-sextant code page. Bit order is row-major, which
// coincides with the Unicode sextant cell numbering.
var sextantSymbols = makeSextantSymbols()

// brailleSymbols is the exhaustive 2x4 braille set. The table index
// equals the pattern, so lookup is a closed-form array access rather
// than a scan.
var brailleSymbols = makeBrailleSymbols()

// makeSextantSymbols builds the 64-entry sextant table. The Unicode
// block sextants at U+1FB00..U+1FB3B omit four patterns that already
// exist elsewhere: empty (space), the left and right half blocks, and
// the full block. Every other pattern maps to
// 0x1FB00 + pattern - 1 - (holes skipped below it).
func makeSextantSymbols() []Symbol {
	const (
		leftHalf  = 0x15 // bits 0, 2, 4: full left column
		rightHalf = 0x2A // bits 1, 3, 5: full right column
	)
	syms := make([]Symbol, 64)
	for p := 0; p < 64; p++ {
		var ch rune
		switch p {
		case 0:
			ch = ' '
		case leftHalf:
			ch = '▌'
		case rightHalf:
			ch = '▐'
		case 63:
			ch = '█'
		default:
			offset := p - 1
			if p > leftHalf {
				offset--
			}
			if p > rightHalf {
				offset--
			}
			ch = rune(0x1FB00 + offset)
		}
		syms[p] = Symbol{Char: ch, Pattern: uint16(p), W: 2, H: 3}
	}
	return syms
}

// makeBrailleSymbols builds the 256-entry braille table by iterating
// every 8-bit pattern. The glyph is a pure function of the pattern,
// rune(0x2800 + pattern), with the dot-to-bit assignment matching the
// braille region mapper (dots 1, 2, 3, 7 down the left column, dots
// 4, 5, 6, 8 down the right).
func makeBrailleSymbols() []Symbol {
	syms := make([]Symbol, 256)
	for p := 0; p < 256; p++ {
		syms[p] = Symbol{Char: rune(0x2800 + p), Pattern: uint16(p), W: 2, H: 4}
	}
	return syms
}

// SymbolsFor returns the immutable symbol table for a set name. An
// unrecognized name falls back to the half-block set rather than
// failing. Callers must not mutate the returned slice.
func SymbolsFor(name string) []Symbol {
	switch name {
	case SymbolSetASCII:
		return asciiSymbols
	case SymbolSetQuadrant:
		return quadrantSymbols
	case SymbolSetSextant:
		return sextantSymbols
	case SymbolSetBraille:
		return brailleSymbols
	default:
		return halfSymbols
	}
}

// DimensionsFor returns the sub-grid width and height of a symbol set,
// taken from the first entry of its table.
func DimensionsFor(name string) (width, height int) {
	table := SymbolsFor(name)
	return table[0].W, table[0].H
}

// FindBestSymbol resolves a pixel pattern to a symbol from the given
// table. Tables whose entries are indexed by their own pattern (the
// generated braille and sextant tables, and in practice every
// exhaustive set) resolve in constant time; otherwise an exact linear
// scan runs first, then the entry with the minimum Hamming distance to
// the query wins, ties broken by catalog order. Every possible pattern
// therefore resolves to some glyph, even for the non-exhaustive ASCII
// ramp.
func FindBestSymbol(pattern uint16, table []Symbol) Symbol {
	if int(pattern) < len(table) && table[pattern].Pattern == pattern {
		return table[pattern]
	}
	for _, s := range table {
		if s.Pattern == pattern {
			return s
		}
	}
	best := table[0]
	bestDist := bits.OnesCount16(pattern ^ best.Pattern)
	for _, s := range table[1:] {
		if d := bits.OnesCount16(pattern ^ s.Pattern); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}
