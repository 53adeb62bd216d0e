package draw

import (
	"github.com/BeatGlow/raster"
	"github.com/BeatGlow/raster/pixel"
)

// Rectangle draws the outline of the axis aligned rectangle with opposite
// corners p0 and p1, on the z plane of p0.
func Rectangle(dst raster.Screen, p0, p1 raster.Point, c pixel.RGB) {
	var (
		a = raster.Point{X: p0.X, Y: p1.Y, Z: p0.Z}
		b = raster.Point{X: p1.X, Y: p0.Y, Z: p0.Z}
	)
	p1.Z = p0.Z
	Polyline(dst, c, p0, a, p1, b, p0)
}

// Circle draws a circle of the given radius around center with the midpoint
// circle algorithm, on the z plane of center.
func Circle(dst raster.Screen, center raster.Point, radius float64, c pixel.RGB) {
	var (
		x0 = round(center.X)
		y0 = round(center.Y)
		z  = center.Z
		r  = round(radius)
	)
	if r <= 0 {
		dst.Plot(x0, y0, z, c)
		return
	}

	var (
		f    = 1 - r
		ddFx = 1
		ddFy = -2 * r
		x    = 0
		y    = r
	)
	dst.Plot(x0, y0+r, z, c)
	dst.Plot(x0, y0-r, z, c)
	dst.Plot(x0+r, y0, z, c)
	dst.Plot(x0-r, y0, z, c)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		dst.Plot(x0+x, y0+y, z, c)
		dst.Plot(x0-x, y0+y, z, c)
		dst.Plot(x0+x, y0-y, z, c)
		dst.Plot(x0-x, y0-y, z, c)
		if x != y {
			dst.Plot(x0+y, y0+x, z, c)
			dst.Plot(x0-y, y0+x, z, c)
			dst.Plot(x0+y, y0-x, z, c)
			dst.Plot(x0-y, y0-x, z, c)
		}
	}
}
