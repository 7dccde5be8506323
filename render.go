package ansicanvas

import (
	"fmt"
	"strings"
)

const (
	// ESC is the ANSI escape character that introduces every control
	// sequence emitted by the serializer.
	ESC = ""

	ansiReset = ESC + "[0m"
)

// ColorMode selects how cell colors are serialized.
type ColorMode string

const (
	// ColorModeNone emits bare glyphs with no escape codes at all.
	ColorModeNone ColorMode = "none"

	// ColorModeTruecolor emits 24-bit foreground and background
	// escape sequences.
	ColorModeTruecolor ColorMode = "truecolor"
)

// RenderOptions is the renderer configuration: which symbol set maps
// pixel regions to glyphs, how colors are serialized, and the
// brightness threshold that separates foreground from background
// pixels.
type RenderOptions struct {
	SymbolSet string
	ColorMode ColorMode
	Threshold uint8
}

// DefaultOptions returns the renderer defaults: half-block symbols,
// truecolor output, threshold 128.
func DefaultOptions() RenderOptions {
	return RenderOptions{
		SymbolSet: SymbolSetHalf,
		ColorMode: ColorModeTruecolor,
		Threshold: 128,
	}
}

// Renderer converts pixel buffers into ANSI strings. It holds mutable
// configuration that is always handed out by value, so callers can
// never reach into a renderer's internal state through a returned
// options struct. Independent renderers share nothing.
type Renderer struct {
	opts RenderOptions
}

// RendererOption is a functional option for configuring a Renderer or
// overriding its configuration for a single Render call.
type RendererOption func(*RenderOptions)

// NewRenderer creates a Renderer with the default options, then
// applies any overrides.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{opts: DefaultOptions()}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r
}

// WithSymbolSet selects the symbol set by name. Unknown names fall
// back to the half-block set at lookup time.
func WithSymbolSet(name string) RendererOption {
	return func(o *RenderOptions) { o.SymbolSet = name }
}

// WithColorMode selects the color serialization mode.
func WithColorMode(mode ColorMode) RendererOption {
	return func(o *RenderOptions) { o.ColorMode = mode }
}

// WithThreshold sets the brightness threshold for pattern
// quantization.
func WithThreshold(threshold uint8) RendererOption {
	return func(o *RenderOptions) { o.Threshold = threshold }
}

// Options returns a copy of the renderer's current configuration.
func (r *Renderer) Options() RenderOptions {
	return r.opts
}

// SetOptions replaces the renderer's stored configuration.
func (r *Renderer) SetOptions(opts RenderOptions) {
	r.opts = opts
}

// SetSymbolSet updates the stored symbol set selection.
func (r *Renderer) SetSymbolSet(name string) {
	r.opts.SymbolSet = name
}

// SetColorMode updates the stored color mode.
func (r *Renderer) SetColorMode(mode ColorMode) {
	r.opts.ColorMode = mode
}

// SetThreshold updates the stored brightness threshold.
func (r *Renderer) SetThreshold(threshold uint8) {
	r.opts.Threshold = threshold
}

// Render converts a pixel buffer into a newline-joined ANSI string,
// one line per glyph row. Per-call overrides apply to a copy of the
// stored options and are never persisted.
func (r *Renderer) Render(buf *PixelBuffer, overrides ...RendererOption) string {
	opts := r.opts
	for _, opt := range overrides {
		opt(&opts)
	}
	grid := MapPixelsToCells(buf, opts.SymbolSet, opts.Threshold)
	return serializeGrid(grid, opts.ColorMode)
}

// RenderLine is a convenience that creates a buffer of the given
// dimensions, draws a single styled line into it, and renders it.
func (r *Renderer) RenderLine(
	width, height int,
	x1, y1, x2, y2 float64,
	c RGBA,
	style *LineStyle,
	overrides ...RendererOption,
) (string, error) {
	buf, err := NewBuffer(width, height)
	if err != nil {
		return "", err
	}
	buf.DrawLine(x1, y1, x2, y2, c, style)
	return r.Render(buf, overrides...), nil
}

// serializeGrid turns a glyph grid into its ANSI string form. In
// truecolor mode it tracks the last emitted foreground and background
// color across each row and only emits a new escape sequence when the
// next cell's color actually differs, keeping the escape-code byte
// count minimal. Color state never carries across lines: every line
// re-emits the colors of its first cell and ends with a reset.
func serializeGrid(grid Grid, mode ColorMode) string {
	lines := make([]string, len(grid))
	var sb strings.Builder
	for i, row := range grid {
		sb.Reset()
		if mode == ColorModeTruecolor {
			var lastFG, lastBG RGBA
			for j, cell := range row {
				if j == 0 || !Equal(cell.FG, lastFG) {
					sb.WriteString(fmt.Sprintf("%s[38;2;%d;%d;%dm",
						ESC, cell.FG.R, cell.FG.G, cell.FG.B))
					lastFG = cell.FG
				}
				if j == 0 || !Equal(cell.BG, lastBG) {
					sb.WriteString(fmt.Sprintf("%s[48;2;%d;%d;%dm",
						ESC, cell.BG.R, cell.BG.G, cell.BG.B))
					lastBG = cell.BG
				}
				sb.WriteRune(cell.Char)
			}
			if len(row) > 0 {
				sb.WriteString(ansiReset)
			}
		} else {
			for _, cell := range row {
				sb.WriteRune(cell.Char)
			}
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}
