// Package raster is a minimal software rasterizer.
//
// Drawing happens on a [Screen], a pixel surface with a depth buffer. The
// in-memory implementation lives in the framebuffer package, line drawing in
// the draw package and a turtle drawer in the turtle package. Screens are
// serialized as PPM images by the ppm package and can be converted or shown
// with ImageMagick through the magick package.
package raster

import (
	"io"
	"os"

	"github.com/BeatGlow/raster/pixel"
)

// Debug enables diagnostic logging in packages that talk to the outside
// world. It is switched on by setting RASTER_DEBUG in the environment.
var Debug bool

func init() {
	Debug = os.Getenv("RASTER_DEBUG") != ""
}

// Screen is a pixel surface with a depth buffer.
type Screen interface {
	// Plot sets the pixel at (x, y) to c if z is greater than the depth
	// already recorded there. Points outside the screen are ignored.
	Plot(x, y int, z float64, c pixel.RGB)

	// Clear fills the screen with c and resets the depth buffer.
	Clear(c pixel.RGB)

	// Width of the screen in pixels.
	Width() int

	// Height of the screen in pixels.
	Height() int

	// WriteTo writes the screen as a binary PPM image.
	io.WriterTo
}

// Point is a point in screen space. Z is used for depth testing, larger
// values are drawn over smaller ones.
type Point struct {
	X, Y, Z float64
}

// Pt is shorthand for Point{x, y, z}.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}
