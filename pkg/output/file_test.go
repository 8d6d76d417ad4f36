package output

import (
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

func fillGray(size int) func(renderer.PixelSink) error {
	return func(sink renderer.PixelSink) error {
		for i := 0; i < size*size; i++ {
			if err := sink.WritePixel(color.RGBA{R: 50, G: 50, B: 50, A: 255}); err != nil {
				return err
			}
		}
		return nil
	}
}

func TestWriteFile_PPM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.ppm")

	// Existing content is replaced
	if err := os.WriteFile(path, []byte("stale content that is longer than the image"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, FormatPPM, 2, fillGray(2)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := "P3\n2 2\n255\n" + strings.Repeat("50 50 50\n", 4)
	if string(data) != expected {
		t.Errorf("Expected %q, got %q", expected, string(data))
	}
}

func TestWriteFile_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	if err := WriteFile(path, FormatPNG, 3, fillGray(3)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 3 {
		t.Errorf("Expected 3x3 image, got %v", img.Bounds())
	}
}

func TestWriteFile_Errors(t *testing.T) {
	dir := t.TempDir()
	errRender := errors.New("render failed")

	tests := []struct {
		name   string
		path   string
		format Format
		render func(renderer.PixelSink) error
		target error
	}{
		{"missing directory", filepath.Join(dir, "missing", "img.ppm"), FormatPPM, fillGray(1), os.ErrNotExist},
		{"render error", filepath.Join(dir, "a.ppm"), FormatPPM, func(renderer.PixelSink) error { return errRender }, errRender},
		{"render error png", filepath.Join(dir, "a.png"), FormatPNG, func(renderer.PixelSink) error { return errRender }, errRender},
		{"short render", filepath.Join(dir, "b.ppm"), FormatPPM, fillGray(1), ErrIncompleteImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WriteFile(tt.path, tt.format, 2, tt.render)
			if !errors.Is(err, tt.target) {
				t.Errorf("Expected error wrapping %v, got %v", tt.target, err)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		expected Format
		wantErr  bool
	}{
		{"ppm", FormatPPM, false},
		{"png", FormatPNG, false},
		{"jpeg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: expected error=%t, got %v", tt.name, tt.wantErr, err)
		}
		if got != tt.expected {
			t.Errorf("%q: expected %q, got %q", tt.name, tt.expected, got)
		}
	}
}
