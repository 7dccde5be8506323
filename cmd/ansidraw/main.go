package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wbrown/ansicanvas"
)

func main() {
	width := flag.Int("width", 120,
		"Pixel buffer width")
	height := flag.Int("height", 80,
		"Pixel buffer height")
	symbols := flag.String("symbols", "braille",
		"Symbol set: ascii, half, quadrant, sextant, or braille")
	colorMode := flag.String("colormode", "truecolor",
		"Color mode: truecolor or none")
	threshold := flag.Int("threshold", 128,
		"Brightness threshold for lit pixels (0-255)")
	outputFile := flag.String("output", "",
		"Path to save the output (if not specified, prints to stdout)")
	flag.Parse()

	if *threshold < 0 || *threshold > 255 {
		fmt.Fprintf(os.Stderr, "threshold must be in 0-255, got %d\n", *threshold)
		os.Exit(1)
	}

	buf, err := ansicanvas.NewBuffer(*width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create buffer: %v\n", err)
		os.Exit(1)
	}

	drawDemoScene(buf)

	r := ansicanvas.NewRenderer(
		ansicanvas.WithSymbolSet(*symbols),
		ansicanvas.WithColorMode(ansicanvas.ColorMode(*colorMode)),
		ansicanvas.WithThreshold(uint8(*threshold)),
	)
	out := r.Render(buf)

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(out+"\n"), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write output: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Println(out)
}

// drawDemoScene exercises the drawing primitives: a border, a filled
// circle with an outline ring, crossing gradient diagonals, and a
// dashed horizontal through the middle.
func drawDemoScene(buf *ansicanvas.PixelBuffer) {
	w, h := float64(buf.Width()), float64(buf.Height())

	buf.DrawRect(0, 0, buf.Width(), buf.Height(), ansicanvas.Hex("#888888"), false)

	cx, cy := buf.Width()/2, buf.Height()/2
	radius := buf.Height() / 4
	buf.DrawCircle(cx, cy, radius, ansicanvas.Hex("#3399FF"), true)
	buf.DrawCircle(cx, cy, radius, ansicanvas.Hex("#88CCFF"), false)

	grad := &ansicanvas.LineStyle{
		Gradient: &ansicanvas.Gradient{
			Start: ansicanvas.Rainbow(0),
			End:   ansicanvas.Rainbow(0.5),
		},
	}
	buf.DrawLine(0, 0, w-1, h-1, ansicanvas.RGB(255, 255, 255), grad)
	buf.DrawLine(0, h-1, w-1, 0, ansicanvas.RGB(255, 255, 255), grad)

	dashed := &ansicanvas.LineStyle{Dash: []int{1, 1, 0}, Thickness: 2}
	buf.DrawLine(2, float64(cy), w-3, float64(cy), ansicanvas.Hex("#FFCC00"), dashed)
}
