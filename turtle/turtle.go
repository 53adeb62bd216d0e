// Package turtle implements a simple turtle drawer on the plane z = 0.
//
// A [Turtle] takes ownership of the screen it draws on. Call
// [Turtle.Release] to get the screen back; the turtle can not be used after
// that.
package turtle

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/BeatGlow/raster"
	"github.com/BeatGlow/raster/draw"
	"github.com/BeatGlow/raster/pixel"
)

// Turtle moves over a screen and draws lines behind it while its pen is
// down.
type Turtle[S raster.Screen] struct {
	pos      vec.Vec2
	screen   S
	released bool

	// Direction is the heading in degrees, counter-clockwise from the x
	// axis. Turning keeps it within (-360, 360).
	Direction float64

	// PenDown makes movement draw on the screen.
	PenDown bool

	// Color to draw with.
	Color pixel.RGB
}

// New returns a turtle at (x, y) facing along the x axis, with its pen up.
// The turtle owns screen until it is released.
func New[S raster.Screen](screen S, x, y float64, c pixel.RGB) *Turtle[S] {
	return &Turtle[S]{
		pos:    vec.Vec2{X: x, Y: y},
		screen: screen,
		Color:  c,
	}
}

func (t *Turtle[S]) check() {
	if t.released {
		panic("turtle: used after Release")
	}
}

// Position of the turtle. It may be outside the screen.
func (t *Turtle[S]) Position() vec.Vec2 {
	t.check()
	return t.pos
}

// Forward moves the turtle steps along its heading, drawing a line if the
// pen is down.
func (t *Turtle[S]) Forward(steps float64) {
	t.check()
	t.moveTo(t.pos.Add(draw.Polar(steps, t.Direction)))
}

// MoveTo moves the turtle to (x, y), drawing a line if the pen is down. The
// heading is not changed.
func (t *Turtle[S]) MoveTo(x, y float64) {
	t.check()
	t.moveTo(vec.Vec2{X: x, Y: y})
}

func (t *Turtle[S]) moveTo(to vec.Vec2) {
	if t.PenDown {
		draw.Line(t.screen, raster.Pt(t.pos.X, t.pos.Y, 0), raster.Pt(to.X, to.Y, 0), t.Color)
	}
	t.pos = to
}

// TurnRight adds angle degrees to the heading. The result is reduced with a
// floating point remainder, so it keeps the sign of the sum.
func (t *Turtle[S]) TurnRight(angle float64) {
	t.check()
	t.Direction = math.Mod(t.Direction+angle, 360)
}

// TurnLeft subtracts angle degrees from the heading.
func (t *Turtle[S]) TurnLeft(angle float64) {
	t.TurnRight(-angle)
}

// Release returns the screen to the caller. The turtle drops its reference
// and panics on any further command.
func (t *Turtle[S]) Release() S {
	t.check()
	screen := t.screen
	var zero S
	t.screen = zero
	t.released = true
	return screen
}
