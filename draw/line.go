package draw

import (
	"github.com/BeatGlow/raster"
	"github.com/BeatGlow/raster/pixel"
)

// Line draws a line from p0 to p1, both ends included.
//
// Endpoints are rounded to the nearest pixel and the line is stepped with
// Bresenham's integer algorithm: one pixel per unit along the dominant axis.
// Z is interpolated linearly along the dominant axis. Drawing p1 to p0 plots
// the same pixels as p0 to p1.
func Line(dst raster.Screen, p0, p1 raster.Point, c pixel.RGB) {
	var (
		x0, y0, z0 = round(p0.X), round(p0.Y), p0.Z
		x1, y1, z1 = round(p1.X), round(p1.Y), p1.Z
	)

	// Steep lines are stepped along y: swap the axes and swap back on plot.
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}

	// Always step from the lower end, so ties break the same way both ways.
	if x0 > x1 {
		x0, y0, z0, x1, y1, z1 = x1, y1, z1, x0, y0, z0
	}

	var (
		dx    = x1 - x0
		dy    = y1 - y0
		ystep = 1
	)
	if dy < 0 {
		dy, ystep = -dy, -1
	}

	var (
		d  = 2*dy - dx
		y  = y0
		dz = 0.0
	)
	if dx > 0 {
		dz = (z1 - z0) / float64(dx)
	} else {
		// A single point takes the nearer depth.
		z1 = max(z0, z1)
	}
	for x := x0; x <= x1; x++ {
		z := z0
		if x == x1 {
			z = z1
		} else if dz != 0 {
			z = z0 + dz*float64(x-x0)
		}

		if steep {
			dst.Plot(y, x, z, c)
		} else {
			dst.Plot(x, y, z, c)
		}

		if d > 0 {
			y += ystep
			d += 2*dy - 2*dx
		} else {
			d += 2 * dy
		}
	}
}

// LineDegrees draws a line of length mag from p0 in the direction
// angleDegrees, counter-clockwise from the x axis, on the z plane of p0. It
// returns the other end of the line.
func LineDegrees(dst raster.Screen, p0 raster.Point, angleDegrees, mag float64, c pixel.RGB) raster.Point {
	p1 := offset(p0, Polar(mag, angleDegrees))
	Line(dst, p0, p1, c)
	return p1
}

// Polyline draws lines between consecutive points.
func Polyline(dst raster.Screen, c pixel.RGB, points ...raster.Point) {
	if len(points) == 1 {
		Line(dst, points[0], points[0], c)
	}
	for i := 1; i < len(points); i++ {
		Line(dst, points[i-1], points[i], c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
