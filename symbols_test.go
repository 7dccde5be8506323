package ansicanvas

import "testing"

func TestSymbolsForFallback(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		set      string
		expected int
	}{
		{"ASCII", SymbolSetASCII, 10},
		{"Half", SymbolSetHalf, 4},
		{"Quadrant", SymbolSetQuadrant, 16},
		{"Sextant", SymbolSetSextant, 64},
		{"Braille", SymbolSetBraille, 256},
		{"Unknown", "no-such-set", 4},
		{"Empty", "", 4},
	}

	for _, tc := range testCases {
		if got := len(SymbolsFor(tc.set)); got != tc.expected {
			t.Errorf("%s: SymbolsFor(%q) has %d entries, expected %d",
				tc.name, tc.set, got, tc.expected)
		}
	}
}

func TestDimensionsFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		set  string
		w, h int
	}{
		{SymbolSetASCII, 1, 1},
		{SymbolSetHalf, 1, 2},
		{SymbolSetQuadrant, 2, 2},
		{SymbolSetSextant, 2, 3},
		{SymbolSetBraille, 2, 4},
		{"bogus", 1, 2},
	}

	for _, tc := range testCases {
		w, h := DimensionsFor(tc.set)
		if w != tc.w || h != tc.h {
			t.Errorf("DimensionsFor(%q) = %dx%d, expected %dx%d",
				tc.set, w, h, tc.w, tc.h)
		}
	}
}

// TestExhaustiveTables verifies that the half, quadrant, and sextant
// tables declare a unique pattern for every value in their range, so
// lookup never needs the nearest-match fallback.
func TestExhaustiveTables(t *testing.T) {
	t.Parallel()

	tables := []struct {
		name  string
		table []Symbol
		size  int
	}{
		{"half", halfSymbols, 4},
		{"quadrant", quadrantSymbols, 16},
		{"sextant", sextantSymbols, 64},
		{"braille", brailleSymbols, 256},
	}

	for _, tc := range tables {
		if len(tc.table) != tc.size {
			t.Errorf("%s: table has %d entries, expected %d", tc.name, len(tc.table), tc.size)
			continue
		}
		seen := make(map[uint16]bool, tc.size)
		for _, s := range tc.table {
			if seen[s.Pattern] {
				t.Errorf("%s: duplicate pattern %#x", tc.name, s.Pattern)
			}
			seen[s.Pattern] = true
		}
		for p := 0; p < tc.size; p++ {
			if !seen[uint16(p)] {
				t.Errorf("%s: no exact match for pattern %#x", tc.name, p)
			}
		}
	}
}

// TestBrailleClosedForm verifies that pattern lookup on the braille
// table agrees with the direct 0x2800+pattern code-point formula for
// every possible 8-bit pattern.
func TestBrailleClosedForm(t *testing.T) {
	t.Parallel()

	for p := 0; p < 256; p++ {
		got := FindBestSymbol(uint16(p), brailleSymbols)
		if got.Char != rune(0x2800+p) {
			t.Fatalf("Pattern %#x resolved to %q, expected %q",
				p, got.Char, rune(0x2800+p))
		}
	}
}

func TestSextantGlyphs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		pattern  uint16
		expected rune
	}{
		{0x00, ' '},
		{0x01, '\U0001FB00'}, // top-left cell only
		{0x03, '\U0001FB02'}, // top row
		{0x15, '▌'},          // left column, a hole in the sextant page
		{0x2A, '▐'},          // right column, a hole in the sextant page
		{0x3F, '█'},
	}

	for _, tc := range testCases {
		got := sextantSymbols[tc.pattern].Char
		if got != tc.expected {
			t.Errorf("Sextant pattern %#x = %q, expected %q", tc.pattern, got, tc.expected)
		}
	}
}

func TestFindBestSymbolQuadrant(t *testing.T) {
	t.Parallel()

	if got := FindBestSymbol(0x1, quadrantSymbols); got.Char != '▘' {
		t.Errorf("Quadrant pattern 0x1 = %q, expected '▘'", got.Char)
	}
	if got := FindBestSymbol(0xF, quadrantSymbols); got.Char != '█' {
		t.Errorf("Quadrant pattern 0xF = %q, expected '█'", got.Char)
	}
}

// TestFindBestSymbolHammingFallback covers the non-exhaustive ASCII
// ramp: pattern 0 matches blank exactly, and every other pattern falls
// through to the Hamming search, which lands on the first one-bit
// entry in catalog order ('.').
func TestFindBestSymbolHammingFallback(t *testing.T) {
	t.Parallel()

	if got := FindBestSymbol(0x0, asciiSymbols); got.Char != ' ' {
		t.Errorf("ASCII pattern 0x0 = %q, expected ' '", got.Char)
	}
	if got := FindBestSymbol(0x1, asciiSymbols); got.Char != '.' {
		t.Errorf("ASCII pattern 0x1 = %q, expected '.' (first exact match wins)", got.Char)
	}
	// A pattern no ASCII entry declares still resolves to some glyph.
	if got := FindBestSymbol(0xFF, asciiSymbols); got.Char != '.' {
		t.Errorf("ASCII pattern 0xFF = %q, expected '.' (tie broken by catalog order)", got.Char)
	}
}
