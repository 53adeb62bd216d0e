// Package magick runs ImageMagick as a subprocess to convert and show images.
//
// On unix-like systems the commands are `convert` and `display`, on Windows
// `magick` and `imdisplay`. Either can be replaced through the RASTER_CONVERT
// and RASTER_DISPLAY environment variables, or by using a custom [Config].
package magick

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/BeatGlow/raster"
)

// Errors
var (
	ErrExternalTool = errors.New("magick: external tool exited with non-zero status")
	ErrNoCommand    = errors.New("magick: no command configured")
)

// Config selects the external commands. Each is a command line, the
// arguments are appended to it.
type Config struct {
	// Convert reads a PPM image on standard input and writes it to the path
	// given as its last argument. The format is guessed from the extension.
	Convert []string

	// Display shows the image file given as its last argument and returns
	// when the window is closed.
	Display []string
}

// DefaultConfig is used by [Save] and [Display].
var DefaultConfig = defaultConfig()

func defaultConfig() Config {
	config := Config{
		Convert: []string{"convert"},
		Display: []string{"display"},
	}
	if runtime.GOOS == "windows" {
		config.Convert = []string{"magick"}
		config.Display = []string{"imdisplay"}
	}
	if v := strings.Fields(os.Getenv("RASTER_CONVERT")); len(v) > 0 {
		config.Convert = v
	}
	if v := strings.Fields(os.Getenv("RASTER_DISPLAY")); len(v) > 0 {
		config.Display = v
	}
	return config
}

// Save converts the PPM image written by src and stores it at path.
func Save(src io.WriterTo, path string) error {
	return DefaultConfig.Save(src, path)
}

// Display shows the PPM image written by src and blocks until the viewer exits.
func Display(src io.WriterTo) error {
	return DefaultConfig.Display(src)
}

// Save pipes the image to the convert command, which writes it to path.
func (c Config) Save(src io.WriterTo, path string) error {
	cmd, err := c.command(c.Convert, "ppm:-", path)
	if err != nil {
		return err
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("magick: %w", err)
	}
	if err = cmd.Start(); err != nil {
		return fmt.Errorf("magick: %w", err)
	}

	_, err = src.WriteTo(stdin)
	if cerr := stdin.Close(); err == nil {
		err = cerr
	}

	var exit *exec.ExitError
	if werr := cmd.Wait(); errors.As(werr, &exit) {
		if raster.Debug {
			log.Printf("magick: %s: %s", cmd, exit)
		}
		return ErrExternalTool
	} else if werr != nil {
		return fmt.Errorf("magick: %w", werr)
	}
	if err != nil {
		return fmt.Errorf("magick: write to %s: %w", cmd.Path, err)
	}
	return nil
}

// Display writes the image to a temporary file and opens it with the
// display command. The file is removed once the viewer exits, whatever its
// exit status.
func (c Config) Display(src io.WriterTo) error {
	f, err := os.CreateTemp("", "raster-*.ppm")
	if err != nil {
		return fmt.Errorf("magick: %w", err)
	}
	name := f.Name()

	_, err = src.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Join(fmt.Errorf("magick: %w", err), remove(name))
	}

	cmd, err := c.command(c.Display, name)
	if err == nil {
		err = cmd.Run()
	}

	var exit *exec.ExitError
	if errors.As(err, &exit) {
		if raster.Debug {
			log.Printf("magick: %s: %s", cmd, exit)
		}
		err = nil
	} else if err != nil && !errors.Is(err, ErrNoCommand) {
		err = fmt.Errorf("magick: %w", err)
	}
	return errors.Join(err, remove(name))
}

func (c Config) command(argv []string, args ...string) (*exec.Cmd, error) {
	if len(argv) == 0 {
		return nil, ErrNoCommand
	}

	cmd := exec.Command(argv[0], append(argv[1:len(argv):len(argv)], args...)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if raster.Debug {
		log.Printf("magick: running %s", cmd)
	}
	return cmd, nil
}

func remove(name string) error {
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("magick: %w", err)
	}
	return nil
}
