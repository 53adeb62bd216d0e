package framebuffer

import (
	"bytes"
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/BeatGlow/raster/pixel"
	"github.com/BeatGlow/raster/ppm"
)

var (
	red   = pixel.New(255, 0, 0)
	green = pixel.New(0, 255, 0)
	blue  = pixel.New(0, 0, 255)
)

func testFramebuffer(t *testing.T, config Config) *Framebuffer {
	t.Helper()
	fb, err := New(config)
	if err != nil {
		t.Fatal(err)
	}
	return fb
}

func testConfig(w, h int) Config {
	config := DefaultConfig
	config.Width = w
	config.Height = h
	return config
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, limit, want int
	}{
		{-5, 5, 0},
		{-2, 5, 3},
		{5, 5, 0},
		{4, 5, 4},
		{1, 2, 1},
		{-5, 10, 5},
		{-7, 3, 2},
		{-2142432423, 2142432422, 2142432421},
	}
	for _, test := range tests {
		if v := Wrap(test.v, test.limit); v != test.want {
			t.Errorf("Wrap(%d, %d): expected %d, got %d", test.v, test.limit, test.want, v)
		}
	}
}

func TestWrapProperties(t *testing.T) {
	for _, limit := range []int{1, 2, 3, 7, 500} {
		for v := -3 * limit; v <= 3*limit; v++ {
			w := Wrap(v, limit)
			if w < 0 || w >= limit {
				t.Fatalf("Wrap(%d, %d) = %d is outside [0, %d)", v, limit, w, limit)
			}
			for k := -2; k <= 2; k++ {
				if u := Wrap(v+k*limit, limit); u != w {
					t.Fatalf("Wrap(%d, %d) = %d, expected %d", v+k*limit, limit, u, w)
				}
			}
		}
	}
}

func TestNew(t *testing.T) {
	fb := testFramebuffer(t, Config{Width: 4, Height: 3, Depth: 15, Background: pixel.Gray(7)})
	if fb.Width() != 4 || fb.Height() != 3 || fb.Depth() != 15 {
		t.Errorf("expected 4x3@15, got %dx%d@%d", fb.Width(), fb.Height(), fb.Depth())
	}
	if n := len(fb.pix); n != 12 || len(fb.zbuf) != n {
		t.Fatalf("expected 12 pixels and depths, got %d and %d", n, len(fb.zbuf))
	}
	for i := range fb.pix {
		if fb.pix[i] != pixel.Gray(7) {
			t.Errorf("pixel %d is %+v, expected background", i, fb.pix[i])
		}
		if !math.IsInf(fb.zbuf[i], -1) {
			t.Errorf("depth %d is %g, expected -Inf", i, fb.zbuf[i])
		}
	}
}

func TestNewDefault(t *testing.T) {
	fb := NewDefault()
	if fb.Width() != 500 || fb.Height() != 500 || fb.Depth() != 255 {
		t.Errorf("expected 500x500@255, got %dx%d@%d", fb.Width(), fb.Height(), fb.Depth())
	}
	if fb.WrapX() || fb.WrapY() || !fb.InvertY() {
		t.Errorf("expected no wrapping and inverted y")
	}
}

func TestNewData(t *testing.T) {
	data := []pixel.RGB{red, green, blue, pixel.White}
	config := testConfig(2, 2)
	config.Data = data
	config.Background = pixel.Gray(9)
	fb := testFramebuffer(t, config)

	data[0] = pixel.Black
	if v := fb.pix[0]; v != red {
		t.Errorf("expected data to be copied, pixel 0 is %+v", v)
	}
	if v := fb.pix[3]; v != pixel.White {
		t.Errorf("expected data to replace background, pixel 3 is %+v", v)
	}
}

func TestNewErrors(t *testing.T) {
	tests := map[string]Config{
		"zero width":  {Width: 0, Height: 1, Depth: 255},
		"negative":    {Width: 1, Height: -1, Depth: 255},
		"zero depth":  {Width: 1, Height: 1},
		"background":  {Width: 1, Height: 1, Depth: 15, Background: pixel.Gray(16)},
		"data length": {Width: 2, Height: 1, Depth: 255, Data: []pixel.RGB{red}},
		"data range":  {Width: 1, Height: 1, Depth: 1, Data: []pixel.RGB{pixel.Gray(2)}},
		"overflow":    {Width: math.MaxInt / 2, Height: 3, Depth: 255},
	}
	for name, config := range tests {
		t.Run(name, func(it *testing.T) {
			if _, err := New(config); !errors.Is(err, ErrConfig) {
				it.Errorf("expected ErrConfig, got %v", err)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		x, y   int
		want   int
		wantOK bool
	}{
		{"origin inverted", Config{Width: 4, Height: 3, InvertY: true}, 0, 0, 8, true},
		{"origin", Config{Width: 4, Height: 3}, 0, 0, 0, true},
		{"top right inverted", Config{Width: 4, Height: 3, InvertY: true}, 3, 2, 3, true},
		{"last", Config{Width: 4, Height: 3}, 3, 2, 11, true},
		{"x below", Config{Width: 4, Height: 3}, -1, 0, 0, false},
		{"x above", Config{Width: 4, Height: 3}, 4, 0, 0, false},
		{"y below", Config{Width: 4, Height: 3}, 0, -1, 0, false},
		{"y above", Config{Width: 4, Height: 3}, 0, 3, 0, false},
		{"wrap x", Config{Width: 4, Height: 3, WrapX: true}, -1, 1, 7, true},
		{"wrap x keeps y", Config{Width: 4, Height: 3, WrapX: true}, 9, 3, 0, false},
		{"wrap y", Config{Width: 4, Height: 3, WrapY: true}, 1, 4, 5, true},
		{"wrap y inverted", Config{Width: 4, Height: 3, WrapY: true, InvertY: true}, 1, -1, 1, true},
		{"wrap both", Config{Width: 4, Height: 3, WrapX: true, WrapY: true}, 8, -3, 0, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			test.config.Depth = 255
			fb := testFramebuffer(it, test.config)
			v, ok := fb.Index(test.x, test.y)
			if ok != test.wantOK || (ok && v != test.want) {
				it.Errorf("Index(%d, %d): expected %d %t, got %d %t", test.x, test.y, test.want, test.wantOK, v, ok)
			}
		})
	}
}

func TestInvertUsesHeight(t *testing.T) {
	fb := testFramebuffer(t, testConfig(8, 2))
	fb.Plot(5, 0, 0, red)
	if v := fb.pix[1*8+5]; v != red {
		t.Errorf("expected (5, 0) on the bottom row, got %+v", v)
	}
}

func TestPlotDepth(t *testing.T) {
	tests := []struct {
		name   string
		z0, z1 float64
		want   pixel.RGB
	}{
		{"nearer first", 1.0, 0.5, red},
		{"nearer second", 1.0, 2.0, green},
		{"equal", 1.0, 1.0, red},
		{"negative", -100, -99, green},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			fb := testFramebuffer(it, testConfig(3, 3))
			fb.Plot(1, 1, test.z0, red)
			fb.Plot(1, 1, test.z1, green)
			if v := fb.At(1, 1); v != test.want {
				it.Errorf("expected %+v, got %+v", test.want, v)
			}
			if v, want := fb.DepthAt(1, 1), math.Max(test.z0, test.z1); v != want {
				it.Errorf("expected depth %g, got %g", want, v)
			}
		})
	}
}

func TestPlotFirstWrite(t *testing.T) {
	fb := testFramebuffer(t, testConfig(1, 1))
	fb.Plot(0, 0, -math.MaxFloat64, red)
	if v := fb.At(0, 0); v != red {
		t.Errorf("expected first finite write to succeed, got %+v", v)
	}
}

func TestPlotOutOfBounds(t *testing.T) {
	for _, p := range [][2]int{{-1, 0}, {5, 0}, {0, -1}, {0, 5}, {-100, 100}} {
		fb := testFramebuffer(t, testConfig(5, 5))
		want := fb.Pixels()
		fb.Plot(p[0], p[1], 0, red)
		for i, c := range fb.pix {
			if c != want[i] {
				t.Fatalf("plot at %v changed pixel %d to %+v", p, i, c)
			}
			if !math.IsInf(fb.zbuf[i], -1) {
				t.Fatalf("plot at %v changed depth %d to %g", p, i, fb.zbuf[i])
			}
		}
	}
}

func TestPlotWrapped(t *testing.T) {
	config := testConfig(5, 5)
	config.WrapX = true
	config.WrapY = true
	fb := testFramebuffer(t, config)
	fb.Plot(-1, 7, 0, red)
	if v := fb.At(4, 2); v != red {
		t.Errorf("expected (-1, 7) to wrap to (4, 2), got %+v", v)
	}
	if v := fb.At(-1, -3); v != red {
		t.Errorf("expected (-1, -3) to wrap to (4, 2), got %+v", v)
	}
}

func TestClear(t *testing.T) {
	fb := testFramebuffer(t, testConfig(3, 2))
	fb.Plot(0, 0, 10, red)
	fb.Plot(2, 1, 10, red)
	fb.Clear(blue)
	for i := range fb.pix {
		if fb.pix[i] != blue {
			t.Errorf("pixel %d is %+v, expected %+v", i, fb.pix[i], blue)
		}
		if !math.IsInf(fb.zbuf[i], -1) {
			t.Errorf("depth %d is %g, expected -Inf", i, fb.zbuf[i])
		}
	}
	if len(fb.pix) != 6 || len(fb.zbuf) != 6 {
		t.Errorf("expected buffer size to be kept")
	}

	fb.Plot(0, 0, -5, green)
	if v := fb.At(0, 0); v != green {
		t.Errorf("expected plot after clear to succeed, got %+v", v)
	}
}

func TestPixelsIsCopy(t *testing.T) {
	fb := testFramebuffer(t, testConfig(2, 2))
	pix := fb.Pixels()
	pix[0] = red
	if fb.pix[0] == red {
		t.Error("expected Pixels to return a copy")
	}
}

func TestWriteBinary(t *testing.T) {
	fb := testFramebuffer(t, testConfig(2, 2))
	fb.Plot(0, 1, 0, red)   // top left
	fb.Plot(1, 0, 0, green) // bottom right

	var buf bytes.Buffer
	n, err := fb.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("expected WriteTo to report %d bytes, got %d", buf.Len(), n)
	}
	want := append([]byte("P6\n2 2 255\n"),
		255, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 255, 0,
	)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("expected %q, got %q", want, buf.Bytes())
	}
}

func TestRoundTrip(t *testing.T) {
	config := testConfig(7, 5)
	config.Depth = 1000
	fb := testFramebuffer(t, config)
	for x := 0; x < 7; x++ {
		fb.Plot(x, x%5, 0, pixel.New(uint16(x*100), 999, 3))
	}

	for name, write := range map[string]func(*bytes.Buffer) error{
		"binary": func(b *bytes.Buffer) error { return fb.WriteBinary(b) },
		"ascii":  func(b *bytes.Buffer) error { return fb.WriteASCII(b) },
	} {
		t.Run(name, func(it *testing.T) {
			var buf bytes.Buffer
			if err := write(&buf); err != nil {
				it.Fatal(err)
			}
			m, err := ppm.Decode(&buf)
			if err != nil {
				it.Fatal(err)
			}
			if m.Width != 7 || m.Height != 5 || m.Depth != 1000 {
				it.Fatalf("expected 7x5@1000, got %dx%d@%d", m.Width, m.Height, m.Depth)
			}
			config.Data = m.Pix
			other := testFramebuffer(it, config)
			for y := 0; y < 5; y++ {
				for x := 0; x < 7; x++ {
					if v, want := other.At(x, y), fb.At(x, y); v != want {
						it.Fatalf("pixel (%d,%d) is %+v, expected %+v", x, y, v, want)
					}
				}
			}
		})
	}
}

func TestImage(t *testing.T) {
	fb := testFramebuffer(t, testConfig(3, 2))
	fb.Plot(0, 1, 0, red)
	img := fb.Image()
	if v := img.Bounds().Size(); v.X != 3 || v.Y != 2 {
		t.Fatalf("expected image size 3x2, got %s", v)
	}
	if v, want := img.At(0, 0), (color.RGBA64{R: 0xffff, A: 0xffff}); v != want {
		t.Errorf("expected top left to be %v, got %v", want, v)
	}
	if v, want := img.At(0, 1), (color.RGBA64{A: 0xffff}); v != want {
		t.Errorf("expected bottom left to be %v, got %v", want, v)
	}
	if v := fb.ColorModel().Convert(img.At(0, 0)).(pixel.Color); v.RGB != red {
		t.Errorf("expected %+v, got %+v", red, v.RGB)
	}
}

func TestLoad(t *testing.T) {
	src := testFramebuffer(t, testConfig(2, 2))
	src.Plot(1, 1, 0, green)

	config := testConfig(3, 3)
	config.Depth = 15
	fb := testFramebuffer(t, config)
	fb.Load(src.Image())
	if v, want := fb.pix[1], pixel.New(0, 15, 0); v != want {
		t.Errorf("expected %+v, got %+v", want, v)
	}
	if v := fb.pix[8]; v != pixel.Black {
		t.Errorf("expected pixels outside the source to be kept, got %+v", v)
	}
}

func TestView(t *testing.T) {
	fb := testFramebuffer(t, testConfig(3, 2))
	fb.Plot(2, 1, 5, blue)

	view := fb.View()
	if v := view.RGBAt(2, 0); v != blue {
		t.Errorf("expected the view to show the top right pixel %+v, got %+v", blue, v)
	}

	view.Set(0, 0, color.White)
	if v := fb.At(0, 1); v != pixel.White {
		t.Errorf("expected writes through the view to reach the buffer, got %+v", v)
	}
	if v := fb.DepthAt(0, 1); !math.IsInf(v, -1) {
		t.Errorf("expected the view to leave the depth buffer alone, got %g", v)
	}
}
