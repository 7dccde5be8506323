package ansicanvas

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewBufferValidation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		width, height int
		expectErr     bool
	}{
		{"Valid", 4, 4, false},
		{"SinglePixel", 1, 1, false},
		{"ZeroWidth", 0, 4, true},
		{"ZeroHeight", 4, 0, true},
		{"NegativeWidth", -1, 4, true},
		{"NegativeHeight", 4, -1, true},
	}

	for _, tc := range testCases {
		buf, err := NewBuffer(tc.width, tc.height)
		if tc.expectErr {
			if err == nil {
				t.Errorf("%s: expected error, got none", tc.name)
			}
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("%s: expected ErrInvalidDimensions, got %v", tc.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if buf.Width() != tc.width || buf.Height() != tc.height {
			t.Errorf("%s: dimensions %dx%d, expected %dx%d",
				tc.name, buf.Width(), buf.Height(), tc.width, tc.height)
		}
	}
}

func TestNewBufferFill(t *testing.T) {
	t.Parallel()

	// Default fill is opaque black.
	buf, err := NewBuffer(2, 2)
	if err != nil {
		t.Fatalf("Failed to create buffer: %v", err)
	}
	if c, _ := buf.GetPixel(1, 1); c != RGB(0, 0, 0) {
		t.Errorf("Default fill = %+v, expected opaque black", c)
	}

	red := RGB(255, 0, 0)
	buf, err = NewBuffer(3, 3, red)
	if err != nil {
		t.Fatalf("Failed to create buffer: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if c, _ := buf.GetPixel(x, y); c != red {
				t.Fatalf("Fill pixel (%d,%d) = %+v, expected %+v", x, y, c, red)
			}
		}
	}
}

func TestBufferBounds(t *testing.T) {
	t.Parallel()

	buf, err := NewBuffer(4, 3)
	if err != nil {
		t.Fatalf("Failed to create buffer: %v", err)
	}

	// Out-of-bounds writes are silently dropped.
	buf.SetPixel(-1, 0, RGB(255, 0, 0))
	buf.SetPixel(0, -1, RGB(255, 0, 0))
	buf.SetPixel(4, 0, RGB(255, 0, 0))
	buf.SetPixel(0, 3, RGB(255, 0, 0))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c, _ := buf.GetPixel(x, y); c != RGB(0, 0, 0) {
				t.Fatalf("Out-of-bounds write leaked into (%d,%d): %+v", x, y, c)
			}
		}
	}

	// Out-of-bounds reads report absence.
	if _, ok := buf.GetPixel(4, 0); ok {
		t.Error("GetPixel outside bounds should report false")
	}
	if _, ok := buf.GetPixel(0, -1); ok {
		t.Error("GetPixel outside bounds should report false")
	}

	// Internal sampling substitutes opaque black.
	if c := buf.sample(100, 100); c != RGB(0, 0, 0) {
		t.Errorf("sample outside bounds = %+v, expected opaque black", c)
	}
}

func TestClearIndependentPixels(t *testing.T) {
	t.Parallel()

	buf, err := NewBuffer(2, 1)
	if err != nil {
		t.Fatalf("Failed to create buffer: %v", err)
	}
	buf.Clear(RGB(10, 20, 30))

	// Mutating one pixel must not be visible at another.
	buf.SetPixel(0, 0, RGB(200, 0, 0))
	if c, _ := buf.GetPixel(1, 0); c != RGB(10, 20, 30) {
		t.Errorf("Pixel (1,0) changed after writing (0,0): %+v", c)
	}
}

func TestBufferImageInterface(t *testing.T) {
	t.Parallel()

	buf, err := NewBuffer(3, 2)
	if err != nil {
		t.Fatalf("Failed to create buffer: %v", err)
	}

	var img image.Image = buf
	if got := img.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds = %v, expected (0,0)-(3,2)", got)
	}

	buf.SetPixel(1, 1, RGB(5, 6, 7))
	r, g, b, a := img.At(1, 1).RGBA()
	if uint8(r>>8) != 5 || uint8(g>>8) != 6 || uint8(b>>8) != 7 || uint8(a>>8) != 255 {
		t.Errorf("At(1,1) = (%d,%d,%d,%d), expected (5,6,7,255)", r>>8, g>>8, b>>8, a>>8)
	}

	// The color.Color setter converts into the 8-bit representation.
	buf.Set(0, 0, color.RGBA{R: 9, G: 8, B: 7, A: 255})
	if c, _ := buf.GetPixel(0, 0); c != RGB(9, 8, 7) {
		t.Errorf("Set via color.Color = %+v, expected RGB(9,8,7)", c)
	}
}
