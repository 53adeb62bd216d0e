package pixel

import (
	"image"
	"image/color"
)

// Image is an in-memory image of RGB pixels at a fixed color depth. It
// implements [image/draw.Image].
type Image struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []RGB

	// Stride is the Pix stride (in pixels) between vertically adjacent pixels.
	Stride int

	// Depth is the color depth of all pixels.
	Depth uint16
}

// NewImage returns a black image of w×h pixels.
func NewImage(w, h int, depth uint16) *Image {
	return &Image{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]RGB, w*h),
		Stride: w,
		Depth:  depth,
	}
}

func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Image) ColorModel() color.Model {
	return Model(p.Depth)
}

func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

func (p *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}).In(p.Rect) {
		return color.Transparent
	}
	return p.Pix[p.PixOffset(x, y)].In(p.Depth)
}

// RGBAt returns the pixel at (x, y), black if it is out of bounds.
func (p *Image) RGBAt(x, y int) RGB {
	if !(image.Point{x, y}).In(p.Rect) {
		return Black
	}
	return p.Pix[p.PixOffset(x, y)]
}

func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = Convert(c, p.Depth)
}

// SetRGB sets the pixel at (x, y). Channels above the image depth are
// clamped.
func (p *Image) SetRGB(x, y int, c RGB) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = RGB{
		R: min(c.R, p.Depth),
		G: min(c.G, p.Depth),
		B: min(c.B, p.Depth),
	}
}

// Fill the image with a single color.
func (p *Image) Fill(c color.Color) {
	v := Convert(c, p.Depth)
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		i := p.PixOffset(p.Rect.Min.X, y)
		row := p.Pix[i : i+p.Rect.Dx()]
		for x := range row {
			row[x] = v
		}
	}
}

// Clear the image to black.
func (p *Image) Clear() {
	p.Fill(color.Black)
}
