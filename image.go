package ansicanvas

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for buffer
// resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom, the high-quality choice for
	// downscaling host frames to terminal-sized buffers.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

// scalerFor maps an Interpolation to its x/image scaler.
func scalerFor(interp Interpolation) xdraw.Scaler {
	switch interp {
	case InterpolationLinear:
		return xdraw.BiLinear
	case InterpolationNearest:
		return xdraw.NearestNeighbor
	default:
		return xdraw.CatmullRom
	}
}

// FromImage copies an in-memory image into a new pixel buffer. The
// buffer takes the image's bounds size, so an empty image returns
// ErrInvalidDimensions. This is the hand-off point for hosts that
// produce frames as standard library images; the library itself never
// decodes image files.
func FromImage(img image.Image) (*PixelBuffer, error) {
	bounds := img.Bounds()
	buf, err := NewBuffer(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			buf.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return buf, nil
}

// ResizeBuffer scales a pixel buffer to the given dimensions using the
// requested interpolation. The source buffer is left untouched; a new
// buffer is returned. Non-positive target dimensions return
// ErrInvalidDimensions.
func ResizeBuffer(buf *PixelBuffer, width, height int, interp Interpolation) (*PixelBuffer, error) {
	dst, err := NewBuffer(width, height)
	if err != nil {
		return nil, err
	}
	scalerFor(interp).Scale(dst, dst.Bounds(), buf, buf.Bounds(), xdraw.Src, nil)
	return dst, nil
}
