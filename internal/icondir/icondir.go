package icondir

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	ico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"
)

// Sizes are the square resolutions embedded in the icon container,
// largest first.
var Sizes = []int{256, 128, 64, 32, 16}

// Writer exports a painted raster as a multi-resolution ICO container.
type Writer struct {
	Sizes []int
}

func NewWriter() *Writer { return &Writer{Sizes: Sizes} }

// BuildSet returns src resampled to each configured size. An entry that
// already matches the source dimensions is reused as-is.
func (w *Writer) BuildSet(src image.Image) []image.Image {
	set := make([]image.Image, 0, len(w.Sizes))
	for _, size := range w.Sizes {
		set = append(set, scaleTo(src, size))
	}
	return set
}

// scaleTo resamples src to a size x size square using the Catmull-Rom
// kernel. The kernel choice is fixed so repeated runs stay byte-identical.
func scaleTo(src image.Image, size int) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() == size && bounds.Dy() == size {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)
	return dst
}

// Encode writes the full resolution set for src as one ICO stream.
func (w *Writer) Encode(out io.Writer, src image.Image) error {
	return ico.EncodeAll(out, w.BuildSet(src))
}

// WriteFile encodes src and writes the container to path, replacing any
// existing file.
func (w *Writer) WriteFile(path string, src image.Image) error {
	var buf bytes.Buffer
	if err := w.Encode(&buf, src); err != nil {
		return fmt.Errorf("encode icon: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write icon: %w", err)
	}
	return nil
}
