// Package draw implements line and shape rasterization on a [raster.Screen].
//
// All routines only borrow the screen for the duration of the call and plot
// through [raster.Screen.Plot], so depth testing and coordinate wrapping are
// left to the screen.
package draw

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/BeatGlow/raster"
)

// Polar returns the offset of length mag in the direction angleDegrees,
// measured counter-clockwise from the positive x axis.
func Polar(mag, angleDegrees float64) vec.Vec2 {
	sin, cos := math.Sincos(angleDegrees * math.Pi / 180)
	return vec.Vec2{X: cos * mag, Y: sin * mag}
}

func round(v float64) int {
	return int(math.Round(v))
}

func offset(p raster.Point, d vec.Vec2) raster.Point {
	return raster.Point{X: p.X + d.X, Y: p.Y + d.Y, Z: p.Z}
}
