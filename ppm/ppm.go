// Package ppm encodes and decodes images in the netpbm PPM format.
//
// Both the binary (P6) and the plain text (P3) variants are supported. See
// http://netpbm.sourceforge.net/doc/ppm.html for the format.
package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/BeatGlow/raster/pixel"
)

// Magic numbers.
const (
	Binary = "P6"
	ASCII  = "P3"
)

// Errors
var (
	ErrFormat = errors.New("ppm: invalid format")
	ErrSize   = errors.New("ppm: pixel count does not match dimensions")
)

// Image is a PPM image. Pix holds Width*Height pixels in row-major order,
// starting at the top left.
type Image struct {
	Width  int
	Height int
	Depth  uint16
	Pix    []pixel.RGB
}

func (m *Image) check() error {
	if m.Width < 0 || m.Height < 0 || (m.Height > 0 && m.Width > math.MaxInt/m.Height) {
		return fmt.Errorf("%w: bad dimensions %dx%d", ErrSize, m.Width, m.Height)
	}
	if len(m.Pix) != m.Width*m.Height {
		return fmt.Errorf("%w: %dx%d needs %d pixels, have %d", ErrSize, m.Width, m.Height, m.Width*m.Height, len(m.Pix))
	}
	return nil
}

// WriteBinary writes the image in P6 format. Samples are one byte wide if the
// depth is below 256, two bytes big-endian otherwise.
func (m *Image) WriteBinary(w io.Writer) error {
	if err := m.check(); err != nil {
		return err
	}

	buf := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(buf, "%s\n%d %d %d\n", Binary, m.Width, m.Height, m.Depth); err != nil {
		return err
	}
	if m.Depth < 256 {
		for _, c := range m.Pix {
			if _, err := buf.Write([]byte{byte(c.R), byte(c.G), byte(c.B)}); err != nil {
				return err
			}
		}
	} else {
		for _, c := range m.Pix {
			if _, err := buf.Write([]byte{
				byte(c.R >> 8), byte(c.R),
				byte(c.G >> 8), byte(c.G),
				byte(c.B >> 8), byte(c.B),
			}); err != nil {
				return err
			}
		}
	}
	return buf.Flush()
}

// WriteASCII writes the image in P3 format, one pixel per line.
func (m *Image) WriteASCII(w io.Writer) error {
	if err := m.check(); err != nil {
		return err
	}

	buf := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(buf, "%s\n%d %d %d\n", ASCII, m.Width, m.Height, m.Depth); err != nil {
		return err
	}
	var line []byte
	for _, c := range m.Pix {
		line = strconv.AppendUint(line[:0], uint64(c.R), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(c.G), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(c.B), 10)
		line = append(line, '\n')
		if _, err := buf.Write(line); err != nil {
			return err
		}
	}
	return buf.Flush()
}
