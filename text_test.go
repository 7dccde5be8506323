package ansicanvas

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestDrawString(t *testing.T) {
	t.Parallel()

	buf, err := NewBuffer(20, 16)
	if err != nil {
		t.Fatalf("Failed to create buffer: %v", err)
	}
	got := buf.DrawString(1, 12, "X", RGB(255, 255, 255))
	if got != buf {
		t.Error("DrawString must return the same buffer reference")
	}

	lit := 0
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			if c, _ := buf.GetPixel(x, y); c != RGB(0, 0, 0) {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("DrawString should rasterize glyph coverage into the buffer")
	}
}

func TestParseFontFace(t *testing.T) {
	t.Parallel()

	if _, err := ParseFontFace([]byte("definitely not a font"), 12); err == nil {
		t.Error("Malformed font data should return an error")
	}

	face, err := ParseFontFace(goregular.TTF, 12)
	if err != nil {
		t.Fatalf("Failed to parse Go Regular: %v", err)
	}

	buf, err := NewBuffer(32, 20)
	if err != nil {
		t.Fatalf("Failed to create buffer: %v", err)
	}
	buf.DrawStringFace(face, 2, 14, "Go", RGB(0, 255, 0))

	lit := 0
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			if c, _ := buf.GetPixel(x, y); c != RGB(0, 0, 0) {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("DrawStringFace should rasterize glyph coverage into the buffer")
	}
}
