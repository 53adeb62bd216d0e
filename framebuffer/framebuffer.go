// Package framebuffer implements an in-memory [raster.Screen].
//
// A Framebuffer holds a row-major pixel array and a parallel depth buffer.
// Logical coordinates are resolved to storage with a configurable policy:
// each axis either wraps around or discards points outside the image, and
// the y axis is optionally inverted so the origin sits at the bottom left.
package framebuffer

import (
	"io"
	"math"

	"github.com/BeatGlow/raster"
	"github.com/BeatGlow/raster/magick"
	"github.com/BeatGlow/raster/pixel"
	"github.com/BeatGlow/raster/ppm"
)

// Framebuffer is a pixel buffer with a depth buffer.
//
// A Framebuffer is not safe for concurrent use.
type Framebuffer struct {
	width   int
	height  int
	depth   uint16
	wrapX   bool
	wrapY   bool
	invertY bool
	pix     []pixel.RGB
	zbuf    []float64
}

// Width of the image in pixels.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height of the image in pixels.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Depth is the color depth, the largest value of a channel.
func (fb *Framebuffer) Depth() uint16 {
	return fb.depth
}

// WrapX reports whether x coordinates wrap around.
func (fb *Framebuffer) WrapX() bool { return fb.wrapX }

// WrapY reports whether y coordinates wrap around.
func (fb *Framebuffer) WrapY() bool { return fb.wrapY }

// InvertY reports whether the origin is at the bottom left.
func (fb *Framebuffer) InvertY() bool { return fb.invertY }

// Wrap maps v into [0, limit) using floored modulo, so negative values
// wrap from the end. limit must be positive.
func Wrap(v, limit int) int {
	return ((v % limit) + limit) % limit
}

// Index returns the storage index for the logical coordinate (x, y). It
// returns false if the point is outside the image on an axis that does not
// wrap.
func (fb *Framebuffer) Index(x, y int) (int, bool) {
	if (!fb.wrapX && (x < 0 || x >= fb.width)) || (!fb.wrapY && (y < 0 || y >= fb.height)) {
		return 0, false
	}

	x = Wrap(x, fb.width)
	y = Wrap(y, fb.height)
	if fb.invertY {
		y = fb.height - y - 1
	}
	return y*fb.width + x, true
}

// Plot sets the pixel at (x, y) to c if z is greater than the depth stored
// there. Equal depths do not overwrite. Points that do not resolve to a
// pixel are ignored.
func (fb *Framebuffer) Plot(x, y int, z float64, c pixel.RGB) {
	if i, ok := fb.Index(x, y); ok && z > fb.zbuf[i] {
		fb.pix[i] = c
		fb.zbuf[i] = z
	}
}

// At returns the color at the logical coordinate (x, y), or black if the
// point does not resolve to a pixel.
func (fb *Framebuffer) At(x, y int) pixel.RGB {
	if i, ok := fb.Index(x, y); ok {
		return fb.pix[i]
	}
	return pixel.Black
}

// DepthAt returns the depth at the logical coordinate (x, y), or negative
// infinity if the point does not resolve to a pixel.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if i, ok := fb.Index(x, y); ok {
		return fb.zbuf[i]
	}
	return math.Inf(-1)
}

// Clear fills the image with c and resets the depth buffer.
func (fb *Framebuffer) Clear(c pixel.RGB) {
	for i := range fb.pix {
		fb.pix[i] = c
	}
	resetDepth(fb.zbuf)
}

func resetDepth(zbuf []float64) {
	inf := math.Inf(-1)
	for i := range zbuf {
		zbuf[i] = inf
	}
}

// Pixels returns a copy of the pixels in storage order: row-major, starting
// at the top left of the picture.
func (fb *Framebuffer) Pixels() []pixel.RGB {
	return append([]pixel.RGB(nil), fb.pix...)
}

// ppm returns a PPM view of the pixels. The view must not outlive the call
// that created it.
func (fb *Framebuffer) ppm() *ppm.Image {
	return &ppm.Image{
		Width:  fb.width,
		Height: fb.height,
		Depth:  fb.depth,
		Pix:    fb.pix,
	}
}

// WriteBinary writes the image to w in binary PPM (P6) format.
func (fb *Framebuffer) WriteBinary(w io.Writer) error {
	return fb.ppm().WriteBinary(w)
}

// WriteASCII writes the image to w in plain PPM (P3) format.
func (fb *Framebuffer) WriteASCII(w io.Writer) error {
	return fb.ppm().WriteASCII(w)
}

// WriteTo writes the image to w in binary PPM (P6) format.
func (fb *Framebuffer) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	err := fb.WriteBinary(cw)
	return cw.n, err
}

// Save converts the image with ImageMagick and writes it to path. The output
// format is guessed from the file extension.
func (fb *Framebuffer) Save(path string) error {
	return magick.Save(fb, path)
}

// Display shows the image with ImageMagick and blocks until the viewer is
// closed.
func (fb *Framebuffer) Display() error {
	return magick.Display(fb)
}

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (n int, err error) {
	n, err = cw.w.Write(p)
	cw.n += int64(n)
	return
}

// Interface checks.
var (
	_ raster.Screen = (*Framebuffer)(nil)
)
