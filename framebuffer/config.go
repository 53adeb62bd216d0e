package framebuffer

import (
	"errors"
	"fmt"
	"math"

	"github.com/BeatGlow/raster/pixel"
)

// Errors
var (
	ErrConfig = errors.New("framebuffer: invalid configuration")
)

// Config is the framebuffer configuration.
type Config struct {
	// Width of the image in pixels.
	Width int

	// Height of the image in pixels.
	Height int

	// Depth is the color depth, the largest channel value (1-65535).
	Depth uint16

	// WrapX wraps x coordinates outside the image around, instead of
	// ignoring the point.
	WrapX bool

	// WrapY wraps y coordinates outside the image around, instead of
	// ignoring the point.
	WrapY bool

	// InvertY puts the origin at the bottom left instead of the top left.
	InvertY bool

	// Background fills the image on creation. Not used if Data is set.
	Background pixel.RGB

	// Data is the initial image, Width*Height pixels in storage order. It is
	// copied.
	Data []pixel.RGB
}

// DefaultConfig is a 500x500 image with 8-bit channels, on black and with
// the origin at the bottom left.
var DefaultConfig = Config{
	Width:      500,
	Height:     500,
	Depth:      pixel.DefaultDepth,
	InvertY:    true,
	Background: pixel.Black,
}

// New builds a framebuffer. The configuration is validated: the dimensions
// must be positive, Data must hold exactly Width*Height pixels and all
// initial colors must fit in the color depth.
func New(config Config) (*Framebuffer, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrConfig, config.Width, config.Height)
	}
	if config.Width > math.MaxInt/config.Height {
		return nil, fmt.Errorf("%w: size %dx%d is too large", ErrConfig, config.Width, config.Height)
	}
	if config.Depth == 0 {
		return nil, fmt.Errorf("%w: color depth must be positive", ErrConfig)
	}

	size := config.Width * config.Height
	fb := &Framebuffer{
		width:   config.Width,
		height:  config.Height,
		depth:   config.Depth,
		wrapX:   config.WrapX,
		wrapY:   config.WrapY,
		invertY: config.InvertY,
		zbuf:    make([]float64, size),
	}

	if len(config.Data) > 0 {
		if len(config.Data) != size {
			return nil, fmt.Errorf("%w: %dx%d needs %d pixels, data has %d", ErrConfig, config.Width, config.Height, size, len(config.Data))
		}
		for i, c := range config.Data {
			if !c.Valid(config.Depth) {
				return nil, fmt.Errorf("%w: pixel %d %+v exceeds color depth %d", ErrConfig, i, c, config.Depth)
			}
		}
		fb.pix = append([]pixel.RGB(nil), config.Data...)
	} else {
		if !config.Background.Valid(config.Depth) {
			return nil, fmt.Errorf("%w: background %+v exceeds color depth %d", ErrConfig, config.Background, config.Depth)
		}
		fb.pix = make([]pixel.RGB, size)
		for i := range fb.pix {
			fb.pix[i] = config.Background
		}
	}
	resetDepth(fb.zbuf)

	return fb, nil
}

// NewDefault returns a framebuffer built from [DefaultConfig].
func NewDefault() *Framebuffer {
	fb, err := New(DefaultConfig)
	if err != nil {
		panic(err)
	}
	return fb
}
