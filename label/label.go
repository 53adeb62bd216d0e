// Package label draws text onto screens.
//
// Glyphs are rendered without anti-aliasing: a pixel is plotted when the
// glyph covers at least half of it.
package label

import (
	"image"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/raster"
	"github.com/BeatGlow/raster/pixel"
)

// threshold is the smallest glyph coverage that gets plotted.
const threshold = 0x80

// DefaultFace is used by drawers without a face.
var DefaultFace font.Face = basicfont.Face7x13

// Drawer draws text with a font face.
type Drawer struct {
	// Face to draw with, DefaultFace if nil.
	Face font.Face

	// YDown places text on screens where y grows downwards. By default y
	// grows upwards, as on a framebuffer with InvertY set.
	YDown bool
}

// Draw writes text with the default drawer. See [Drawer.Draw].
func Draw(dst raster.Screen, origin raster.Point, text string, c pixel.RGB) raster.Point {
	return Drawer{}.Draw(dst, origin, text, c)
}

func (d Drawer) face() font.Face {
	if d.Face == nil {
		return DefaultFace
	}
	return d.Face
}

// Draw writes text on the z plane of origin. The origin is the left end of
// the baseline of the first line, each newline starts a new line below it.
// It returns the point where the next character would go.
func (d Drawer) Draw(dst raster.Screen, origin raster.Point, text string, c pixel.RGB) raster.Point {
	var (
		face   = d.face()
		height = face.Metrics().Height.Ceil()
		dot    = origin
	)
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			dot.X = origin.X
			if d.YDown {
				dot.Y += float64(height)
			} else {
				dot.Y -= float64(height)
			}
		}
		dot.X += d.drawLine(dst, face, dot, line, c)
	}
	return dot
}

// drawLine renders a single line of text and returns its advance in pixels.
func (d Drawer) drawLine(dst raster.Screen, face font.Face, origin raster.Point, line string, c pixel.RGB) float64 {
	bounds, advance := font.BoundString(face, line)
	r := image.Rect(
		bounds.Min.X.Floor(), bounds.Min.Y.Floor(),
		bounds.Max.X.Ceil(), bounds.Max.Y.Ceil(),
	)
	if r.Empty() {
		return fixedFloat(advance)
	}

	mask := image.NewAlpha(r)
	(&font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
	}).DrawString(line)

	var (
		ox = int(math.Round(origin.X))
		oy = int(math.Round(origin.Y))
	)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if mask.AlphaAt(x, y).A < threshold {
				continue
			}
			if d.YDown {
				dst.Plot(ox+x, oy+y, origin.Z, c)
			} else {
				dst.Plot(ox+x, oy-y, origin.Z, c)
			}
		}
	}
	return fixedFloat(advance)
}

// Measure returns the size in pixels of the box text occupies when drawn
// with face, including line spacing.
func Measure(face font.Face, text string) (width, height int) {
	if face == nil {
		face = DefaultFace
	}
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	return width, len(lines) * face.Metrics().Height.Ceil()
}

func fixedFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
