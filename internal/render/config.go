package render

import (
	"image"
	"image/color"
)

// Global render configuration for colors and the logical canvas.
var (
	// Background fill and wordmark glyph colors.
	Background = color.RGBA{R: 0x20, G: 0x60, B: 0xE0, A: 0xFF} // #2060e0
	Foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF} // #ffffff

	// Logical canvas size; the largest resolution embedded in the icon.
	CanvasWidth  = 256
	CanvasHeight = 256
)

// Wordmark is the fixed set of glyph rectangles painted over the
// background, in paint order. Rectangles follow the image package
// convention: Min edge inclusive, Max edge exclusive.
var Wordmark = []image.Rectangle{
	image.Rect(48, 112, 96, 152),
	image.Rect(108, 112, 124, 152),
	image.Rect(124, 112, 172, 128),
	image.Rect(124, 136, 172, 152),
	image.Rect(184, 112, 216, 152),
}
