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

// Decode reads a P3 or P6 image.
func Decode(r io.Reader) (*Image, error) {
	d := &decoder{r: bufio.NewReader(r)}

	magic, err := d.token()
	if err != nil {
		return nil, err
	}
	if magic != Binary && magic != ASCII {
		return nil, fmt.Errorf("%w: unknown magic %q", ErrFormat, magic)
	}

	var header [3]int
	for i, name := range []string{"width", "height", "maxval"} {
		if header[i], err = d.int(name); err != nil {
			return nil, err
		}
	}
	m := &Image{Width: header[0], Height: header[1]}
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("%w: bad dimensions %dx%d", ErrFormat, m.Width, m.Height)
	}
	if header[2] <= 0 || header[2] > pixel.MaxDepth {
		return nil, fmt.Errorf("%w: maxval %d out of range", ErrFormat, header[2])
	}
	if m.Width > math.MaxInt/m.Height {
		return nil, fmt.Errorf("%w: dimensions %dx%d too large", ErrFormat, m.Width, m.Height)
	}
	m.Depth = uint16(header[2])

	// The header is not trusted with the allocation, the buffer grows as
	// samples are read.
	n := m.Width * m.Height
	m.Pix = make([]pixel.RGB, 0, min(n, maxPrealloc))

	if magic == Binary {
		// Exactly one whitespace byte separates the header from the raster.
		// A comment after maxval already consumed it with its newline.
		if !d.separated {
			if _, err = d.r.ReadByte(); err != nil {
				return nil, d.eof(err)
			}
		}
		err = d.binary(m, n)
	} else {
		err = d.ascii(m, n)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// maxPrealloc is the largest pixel count allocated up front.
const maxPrealloc = 1 << 20

type decoder struct {
	r *bufio.Reader

	// separated is set when the last token was ended by a comment, whose
	// newline was consumed.
	separated bool
}

func (d *decoder) eof(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrFormat, io.ErrUnexpectedEOF)
	}
	return err
}

// token returns the next whitespace separated header token, skipping
// comments. The whitespace following the token is left unread.
func (d *decoder) token() (string, error) {
	var tok []byte
	d.separated = false
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(tok) > 0 {
				return string(tok), nil
			}
			return "", d.eof(err)
		}
		switch {
		case b == '#':
			if _, err = d.r.ReadString('\n'); err != nil {
				return "", d.eof(err)
			}
			if len(tok) > 0 {
				d.separated = true
				return string(tok), nil
			}
		case isSpace(b):
			if len(tok) > 0 {
				return string(tok), d.r.UnreadByte()
			}
		default:
			tok = append(tok, b)
		}
	}
}

func (d *decoder) int(name string) (int, error) {
	tok, err := d.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: bad %s %q", ErrFormat, name, tok)
	}
	return v, nil
}

func (d *decoder) binary(m *Image, n int) error {
	size := 3
	if m.Depth >= 256 {
		size = 6
	}
	sample := func(b []byte) uint16 {
		if size == 3 {
			return uint16(b[0])
		}
		return uint16(b[0])<<8 | uint16(b[1])
	}

	buf := make([]byte, size)
	step := size / 3
	for i := 0; i < n; i++ {
		if _, err := io.ReadFull(d.r, buf); err != nil {
			return d.eof(err)
		}
		c := pixel.RGB{
			R: sample(buf[0:]),
			G: sample(buf[step:]),
			B: sample(buf[2*step:]),
		}
		if !c.Valid(m.Depth) {
			return fmt.Errorf("%w: pixel %d exceeds maxval %d", ErrFormat, i, m.Depth)
		}
		m.Pix = append(m.Pix, c)
	}
	return nil
}

func (d *decoder) ascii(m *Image, n int) error {
	for i := 0; i < n; i++ {
		var v [3]int
		for j := range v {
			var err error
			if v[j], err = d.int("sample"); err != nil {
				return err
			}
			if v[j] < 0 || v[j] > int(m.Depth) {
				return fmt.Errorf("%w: pixel %d exceeds maxval %d", ErrFormat, i, m.Depth)
			}
		}
		m.Pix = append(m.Pix, pixel.New(uint16(v[0]), uint16(v[1]), uint16(v[2])))
	}
	return nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
