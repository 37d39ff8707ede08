package export

import (
	"image"
	"image/color"
	"strings"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Fixed-width off-screen layout, mirrored from the hidden print view.
const (
	renderWidth   = 600 // px
	renderMargin  = 20  // px
	lineHeight    = 16  // px
	upscaleFactor = 2
)

// Rasterizer captures a laid-out transcript as a pixel image.
type Rasterizer func(lines []string) (image.Image, error)

// rasterize draws the transcript lines onto a white canvas of fixed width,
// then upscales the result by the fixed factor.
func rasterize(lines []string) (image.Image, error) {
	if len(lines) == 0 {
		return nil, errors.New("nothing to rasterize")
	}

	height := renderMargin*2 + lineHeight*len(lines)
	canvas := image.NewRGBA(image.Rect(0, 0, renderWidth, height))
	xdraw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		drawer.Dot = fixed.P(renderMargin, renderMargin+lineHeight*i+basicfont.Face7x13.Ascent)
		drawer.DrawString(line)
	}

	upscaled := image.NewRGBA(image.Rect(0, 0, renderWidth*upscaleFactor, height*upscaleFactor))
	xdraw.NearestNeighbor.Scale(upscaled, upscaled.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
	return upscaled, nil
}

// maxLineChars is the character budget of one rendered line.
const maxLineChars = (renderWidth - 2*renderMargin) / 7

// wrapText splits text into render lines, preserving explicit line breaks
// and greedily wrapping anything wider than the layout.
func wrapText(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if len(raw) <= maxLineChars {
			lines = append(lines, raw)
			continue
		}
		var current string
		for _, word := range strings.Fields(raw) {
			switch {
			case current == "":
				current = word
			case len(current)+1+len(word) <= maxLineChars:
				current += " " + word
			default:
				lines = append(lines, current)
				current = word
			}
		}
		lines = append(lines, current)
	}
	return lines
}
