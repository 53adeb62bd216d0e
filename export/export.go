// Package export writes pictures in common image file formats without the
// help of external tools.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/BeatGlow/raster/pixel"
	"github.com/BeatGlow/raster/ppm"
)

// Errors
var (
	ErrFormat = errors.New("export: unknown image format")
	ErrScale  = errors.New("export: scale factor must be positive")
)

// Format is an image file format.
type Format uint8

// Supported formats.
const (
	PNG Format = iota
	BMP
	TIFF
	PPM // Binary PPM (P6)
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	case PPM:
		return "ppm"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// FormatFromPath picks the format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".ppm", ".pnm":
		return PPM, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case PPM:
		return toPPM(img).WriteBinary(w)
	default:
		return fmt.Errorf("%w: %s", ErrFormat, f)
	}
}

// WriteFile encodes img into the file at path, in the format given by the
// extension of path.
func WriteFile(path string, img image.Image) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var out *os.File
	if out, err = os.Create(path); err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(out, img, f)
}

// Scale enlarges img by an integer factor, repeating each pixel in a
// factor × factor block.
func Scale(img image.Image, factor int) (*image.RGBA64, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrScale, factor)
	}
	var (
		b   = img.Bounds()
		dst = image.NewRGBA64(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}

// toPPM converts img to a PPM picture. A [pixel.Image] keeps its depth and
// other images with 16-bit samples are stored at full depth, anything else
// is stored with 8-bit samples.
func toPPM(img image.Image) *ppm.Image {
	depth := uint16(pixel.DefaultDepth)
	if m, ok := img.(*pixel.Image); ok {
		depth = m.Depth
	} else {
		switch img.ColorModel() {
		case color.RGBA64Model, color.NRGBA64Model, color.Gray16Model:
			depth = pixel.MaxDepth
		}
	}

	var (
		b = img.Bounds()
		p = &ppm.Image{
			Width:  b.Dx(),
			Height: b.Dy(),
			Depth:  depth,
			Pix:    make([]pixel.RGB, 0, b.Dx()*b.Dy()),
		}
	)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p.Pix = append(p.Pix, pixel.Convert(img.At(x, y), depth))
		}
	}
	return p
}
