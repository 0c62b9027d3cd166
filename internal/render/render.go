package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/rook-computer/icongen/internal/render/layout"
)

// Canvas is an offscreen RGBA raster the icon is painted into. It is
// owned by the renderer for its whole lifetime: allocated, painted,
// handed to the exporter, then discarded.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a zeroed canvas of the logical size.
func NewCanvas() *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))}
}

// Size returns the logical canvas size in pixels.
func (c *Canvas) Size() (width int, height int) {
	return c.img.Bounds().Dx(), c.img.Bounds().Dy()
}

// FillBackground paints every pixel with the background color.
func (c *Canvas) FillBackground() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
}

// FillRect paints a filled rectangle. Later fills replace earlier pixels
// wherever they overlap. Min edges are inclusive, Max edges exclusive.
func (c *Canvas) FillRect(rect image.Rectangle, fill color.Color) {
	rect = layout.Normalize(rect)
	draw.Draw(c.img, rect, &image.Uniform{C: fill}, image.Point{}, draw.Src)
}

// DrawWordmark paints the glyph rectangles over the background in their
// fixed order.
func (c *Canvas) DrawWordmark() {
	for _, glyph := range Wordmark {
		c.FillRect(glyph, Foreground)
	}
}

// Image exposes the painted raster for export.
func (c *Canvas) Image() *image.RGBA { return c.img }
