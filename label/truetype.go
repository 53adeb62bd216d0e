package label

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// TrueType returns the Go Regular font at size points, one point per pixel.
func TrueType(size float64) (font.Face, error) {
	return ParseTrueType(goregular.TTF, size)
}

// ParseTrueType parses a TrueType font and returns a face of it at size
// points, one point per pixel.
func ParseTrueType(data []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("label: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
