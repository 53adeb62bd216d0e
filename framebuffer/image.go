package framebuffer

import (
	"image"
	"image/color"

	"github.com/BeatGlow/raster/pixel"
)

// ColorModel returns the model that maps colors onto this buffer's depth.
func (fb *Framebuffer) ColorModel() color.Model {
	return pixel.Model(fb.depth)
}

// Image returns a snapshot of the picture as a 16-bit RGBA image. Pixel
// (0, 0) of the snapshot is the top left of the picture, as in the PPM
// encoding, regardless of InvertY.
func (fb *Framebuffer) Image() *image.RGBA64 {
	img := image.NewRGBA64(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		row := fb.pix[y*fb.width : (y+1)*fb.width]
		for x, c := range row {
			img.Set(x, y, c.In(fb.depth))
		}
	}
	return img
}

// Load copies img into the buffer, converting colors to the buffer's color
// depth. The top left of img lands on the top left of the picture. Parts of
// img outside the buffer are dropped. The depth buffer is left untouched.
func (fb *Framebuffer) Load(img image.Image) {
	b := img.Bounds()
	for y := 0; y < b.Dy() && y < fb.height; y++ {
		for x := 0; x < b.Dx() && x < fb.width; x++ {
			fb.pix[y*fb.width+x] = pixel.Convert(img.At(b.Min.X+x, b.Min.Y+y), fb.depth)
		}
	}
}

// View returns an image sharing the pixels of the buffer, in storage order.
// Writes through the view bypass the depth buffer, and the view is only
// valid until the buffer is garbage collected.
func (fb *Framebuffer) View() *pixel.Image {
	return &pixel.Image{
		Rect:   image.Rect(0, 0, fb.width, fb.height),
		Pix:    fb.pix,
		Stride: fb.width,
		Depth:  fb.depth,
	}
}
