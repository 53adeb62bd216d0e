package pixel

import "image/color"

// MaxDepth is the largest color depth a PPM image can declare.
const MaxDepth = 0xffff

// DefaultDepth is the color depth most images use.
const DefaultDepth = 0xff

// Named colors. These are only white at a depth of 255.
var (
	Black = RGB{}
	White = RGB{R: 0xff, G: 0xff, B: 0xff}
)

// RGB represents a color as three channels in [0, depth].
type RGB struct {
	R, G, B uint16
}

// New returns the color with the given channels.
func New(r, g, b uint16) RGB {
	return RGB{R: r, G: g, B: b}
}

// Gray returns the gray color with all channels set to v. Gray(0) is black
// and Gray(depth) is white.
func Gray(v uint16) RGB {
	return RGB{R: v, G: v, B: v}
}

// Valid reports whether all channels fit in the given color depth.
func (c RGB) Valid(depth uint16) bool {
	return c.R <= depth && c.G <= depth && c.B <= depth
}

// In returns c as a [color.Color] at the given depth.
func (c RGB) In(depth uint16) Color {
	return Color{RGB: c, Depth: depth}
}

// Color is an RGB bound to its color depth. It implements [color.Color].
type Color struct {
	RGB
	Depth uint16
}

func (c Color) RGBA() (r, g, b, a uint32) {
	return scaleUp(c.R, c.Depth), scaleUp(c.G, c.Depth), scaleUp(c.B, c.Depth), 0xffff
}

// scaleUp maps v in [0, depth] onto [0, 0xffff], rounding to nearest.
func scaleUp(v, depth uint16) uint32 {
	if depth == 0 {
		return 0
	}
	if v >= depth {
		return 0xffff
	}
	return (uint32(v)*0xffff + uint32(depth)/2) / uint32(depth)
}

// scaleDown maps v in [0, 0xffff] onto [0, depth], rounding to nearest.
func scaleDown(v uint32, depth uint16) uint16 {
	return uint16((v*uint32(depth) + 0x7fff) / 0xffff)
}

// Model returns the color model converting any color to a [Color] of the
// given depth. Alpha is ignored, the model has no transparency.
func Model(depth uint16) color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		if c, ok := c.(Color); ok && c.Depth == depth {
			return c
		}
		return Convert(c, depth).In(depth)
	})
}

// Convert returns the RGB nearest to c at the given depth.
func Convert(c color.Color, depth uint16) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: scaleDown(r, depth),
		G: scaleDown(g, depth),
		B: scaleDown(b, depth),
	}
}
