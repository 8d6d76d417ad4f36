package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// ImageSink collects row-major pixels into an in-memory RGBA image
type ImageSink struct {
	img     *image.RGBA
	written int
}

// NewImageSink creates a sink backed by a width × height image
func NewImageSink(width, height int) *ImageSink {
	return &ImageSink{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// WritePixel stores c at the next row-major position
func (s *ImageSink) WritePixel(c color.RGBA) error {
	bounds := s.img.Bounds()
	if s.written >= bounds.Dx()*bounds.Dy() {
		return ErrTooManyPixels
	}
	s.img.SetRGBA(s.written%bounds.Dx(), s.written/bounds.Dx(), c)
	s.written++
	return nil
}

// Image returns the collected image
func (s *ImageSink) Image() *image.RGBA {
	return s.img
}

// EncodePNG writes the collected image to w as PNG
func (s *ImageSink) EncodePNG(w io.Writer) error {
	bounds := s.img.Bounds()
	if s.written != bounds.Dx()*bounds.Dy() {
		return fmt.Errorf("%w: wrote %d of %d", ErrIncompleteImage, s.written, bounds.Dx()*bounds.Dy())
	}
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
