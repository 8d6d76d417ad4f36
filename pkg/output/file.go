package output

import (
	"fmt"
	"os"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Format selects the on-disk image encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatPPM, FormatPNG:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want %q or %q)", name, FormatPPM, FormatPNG)
	}
}

// WriteFile creates (or truncates) path and fills it with a size × size
// image produced by render in the given format.
func WriteFile(path string, format Format, size int, render func(renderer.PixelSink) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	switch format {
	case FormatPNG:
		sink := NewImageSink(size, size)
		if err := render(sink); err != nil {
			return err
		}
		return sink.EncodePNG(file)

	case FormatPPM:
		ppm, err := NewPPMWriter(file, size, size)
		if err != nil {
			return err
		}
		if err := render(ppm); err != nil {
			return err
		}
		if err := ppm.Close(); err != nil {
			return fmt.Errorf("failed to write PPM: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
