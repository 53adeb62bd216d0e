package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/font"

	"github.com/BeatGlow/raster"
	"github.com/BeatGlow/raster/draw"
	"github.com/BeatGlow/raster/export"
	"github.com/BeatGlow/raster/framebuffer"
	"github.com/BeatGlow/raster/label"
	"github.com/BeatGlow/raster/pixel"
	"github.com/BeatGlow/raster/ppm"
	"github.com/BeatGlow/raster/turtle"
)

func main() {
	widthFlag := flag.Int("width", framebuffer.DefaultConfig.Width, "Image width")
	heightFlag := flag.Int("height", framebuffer.DefaultConfig.Height, "Image height")
	depthFlag := flag.Uint("depth", pixel.DefaultDepth, "Color depth")
	bgFlag := flag.String("bg", "white", "Background color (black, white or r,g,b)")
	fromFlag := flag.String("from", "", "Start from this PPM file instead of a blank image")
	outFlag := flag.String("out", ".", "Output directory")
	saveFlag := flag.String("save", "img.png", "Output image name, empty to skip")
	nativeFlag := flag.Bool("native", false, "Encode the output image without ImageMagick")
	scaleFlag := flag.Int("scale", 1, "Scale factor of the output image (native only)")
	labelFlag := flag.String("label", "", "Text to write in the top left corner")
	fontSizeFlag := flag.Float64("font-size", 0, "TrueType font size for the label (default: use a bitmap font)")
	displayFlag := flag.Bool("display", false, "Show the result with ImageMagick")
	flag.Parse()

	if *depthFlag < 1 || *depthFlag > pixel.MaxDepth {
		fatal(fmt.Errorf("invalid color depth %d", *depthFlag))
	}

	bg, err := parseColor(*bgFlag, uint16(*depthFlag))
	if err != nil {
		fatal(err)
	}

	config := framebuffer.DefaultConfig
	config.Width = *widthFlag
	config.Height = *heightFlag
	config.Depth = uint16(*depthFlag)
	config.Background = bg
	if *fromFlag != "" {
		var img *ppm.Image
		if img, err = readPPM(*fromFlag); err != nil {
			fatal(err)
		}
		config.Width, config.Height, config.Depth, config.Data = img.Width, img.Height, img.Depth, img.Pix
		fmt.Printf("starting from %s: %dx%d, depth %d\n", *fromFlag, img.Width, img.Height, img.Depth)
	}

	fb, err := framebuffer.New(config)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using framebuffer: %dx%d, depth %d\n", fb.Width(), fb.Height(), fb.Depth())

	drawOctants(fb)
	fb = drawCircle(fb)

	if *labelFlag != "" {
		if err = drawLabel(fb, *labelFlag, *fontSizeFlag); err != nil {
			fatal(err)
		}
	}

	if *displayFlag {
		if err = fb.Display(); err != nil {
			fatal(err)
		}
	}

	if err = writeFile(filepath.Join(*outFlag, "binary.ppm"), fb.WriteBinary); err != nil {
		fatal(err)
	}
	if err = writeFile(filepath.Join(*outFlag, "ascii.ppm"), fb.WriteASCII); err != nil {
		fatal(err)
	}

	if *saveFlag != "" {
		path := filepath.Join(*outFlag, *saveFlag)
		if *nativeFlag {
			var img image.Image
			if img, err = export.Scale(fb.Image(), *scaleFlag); err != nil {
				fatal(err)
			}
			err = export.WriteFile(path, img)
		} else {
			err = fb.Save(path)
		}
		if err != nil {
			fatal(err)
		}
		fmt.Printf("saved %s\n", path)
	}
}

// drawOctants draws lines through all eight octants, plus a horizontal and
// a vertical line through the center.
func drawOctants(fb *framebuffer.Framebuffer) {
	var (
		xmax  = float64(fb.Width())
		ymax  = float64(fb.Height())
		depth = fb.Depth()
		pt    = func(x, y float64) raster.Point { return raster.Pt(x, y, 0) }
	)

	// Octants 1 and 5
	c := scale(pixel.New(0, 255, 0), depth)
	draw.Line(fb, pt(0, 0), pt(xmax-1, ymax-1), c)
	draw.Line(fb, pt(0, 0), pt(xmax-1, ymax/2), c)
	draw.Line(fb, pt(xmax-1, ymax-1), pt(0, ymax/2), c)

	// Octants 8 and 4
	c = scale(pixel.New(0, 255, 255), depth)
	draw.Line(fb, pt(0, ymax-1), pt(xmax-1, 0), c)
	draw.Line(fb, pt(0, ymax-1), pt(xmax-1, ymax/2), c)
	draw.Line(fb, pt(xmax-1, 0), pt(0, ymax/2), c)

	// Octants 2 and 6
	c = scale(pixel.New(255, 0, 0), depth)
	draw.Line(fb, pt(0, 0), pt(xmax/2, ymax-1), c)
	draw.Line(fb, pt(xmax-1, ymax-1), pt(xmax/2, 0), c)

	// Octants 7 and 3
	c = scale(pixel.New(255, 0, 255), depth)
	draw.Line(fb, pt(0, ymax-1), pt(xmax/2, 0), c)
	draw.Line(fb, pt(xmax-1, 0), pt(xmax/2, ymax-1), c)

	c = scale(pixel.New(255, 255, 0), depth)
	draw.Line(fb, pt(0, ymax/2), pt(xmax-1, ymax/2), c)
	draw.Line(fb, pt(xmax/2, 0), pt(xmax/2, ymax-1), c)
}

// drawLabel writes text in the top left corner, with the Go Regular font at
// size points or with a bitmap font if size is not positive.
func drawLabel(fb *framebuffer.Framebuffer, text string, size float64) error {
	var face font.Face
	if size > 0 {
		var err error
		if face, err = label.TrueType(size); err != nil {
			return err
		}
		defer face.Close()
	}

	d := label.Drawer{Face: face, YDown: !fb.InvertY()}
	_, h := label.Measure(d.Face, text)
	var y float64
	if fb.InvertY() {
		y = float64(fb.Height() - h)
	} else {
		y = float64(h)
	}
	d.Draw(fb, raster.Pt(4, y, 1), text, scale(pixel.Black, fb.Depth()))
	return nil
}

// drawCircle lets a turtle walk a circle around the center.
func drawCircle(fb *framebuffer.Framebuffer) *framebuffer.Framebuffer {
	var (
		t      = turtle.New(fb, float64(fb.Width())/2, float64(fb.Height())/2, pixel.Black)
		radius = float64(fb.Width()) / 4
		steps  = 360
	)
	t.Forward(radius)
	t.TurnLeft(90)

	t.PenDown = true
	for i := 0; i < steps; i++ {
		t.Forward(radius * 2 * math.Pi / float64(steps))
		t.TurnLeft(360 / float64(steps))
	}
	return t.Release()
}

// scale maps an 8-bit color onto depth.
func scale(c pixel.RGB, depth uint16) pixel.RGB {
	return pixel.Convert(c.In(pixel.DefaultDepth), depth)
}

func parseColor(s string, depth uint16) (pixel.RGB, error) {
	switch strings.ToLower(s) {
	case "black":
		return pixel.Black, nil
	case "white":
		return pixel.Gray(depth), nil
	}

	part := strings.Split(s, ",")
	if len(part) != 3 {
		return pixel.RGB{}, fmt.Errorf("invalid color %q", s)
	}
	var v [3]uint16
	for i, p := range part {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 16)
		if err != nil || n > uint64(depth) {
			return pixel.RGB{}, fmt.Errorf("invalid color %q for depth %d", s, depth)
		}
		v[i] = uint16(n)
	}
	return pixel.New(v[0], v[1], v[2]), nil
}

func readPPM(name string) (*ppm.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ppm.Decode(f)
}

func writeFile(name string, write func(w io.Writer) error) (err error) {
	var f *os.File
	if f, err = os.Create(name); err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = write(f); err == nil {
		fmt.Printf("wrote %s\n", name)
	}
	return
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
