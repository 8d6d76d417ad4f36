package output

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
)

var (
	// ErrTooManyPixels is returned when more pixels are written than the header declares
	ErrTooManyPixels = errors.New("more pixels than image dimensions")
	// ErrIncompleteImage is returned by Close when fewer pixels were written than declared
	ErrIncompleteImage = errors.New("image has fewer pixels than its dimensions")
)

// PPMWriter streams pixels as a plain-text (P3) PPM image, one "R G B" line
// per pixel.
type PPMWriter struct {
	w       *bufio.Writer
	width   int
	height  int
	written int
	line    []byte
}

// NewPPMWriter writes the P3 header for a width × height image to w and
// returns a writer for its pixels.
func NewPPMWriter(w io.Writer, width, height int) (*PPMWriter, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	pw := &PPMWriter{
		w:      bufio.NewWriter(w),
		width:  width,
		height: height,
		line:   make([]byte, 0, len("255 255 255\n")),
	}
	if _, err := fmt.Fprintf(pw.w, "P3\n%d %d\n255\n", width, height); err != nil {
		return nil, fmt.Errorf("failed to write PPM header: %w", err)
	}
	return pw, nil
}

// WritePixel appends one pixel. Alpha is ignored.
func (pw *PPMWriter) WritePixel(c color.RGBA) error {
	if pw.written >= pw.width*pw.height {
		return ErrTooManyPixels
	}

	line := strconv.AppendUint(pw.line[:0], uint64(c.R), 10)
	line = append(line, ' ')
	line = strconv.AppendUint(line, uint64(c.G), 10)
	line = append(line, ' ')
	line = strconv.AppendUint(line, uint64(c.B), 10)
	line = append(line, '\n')
	pw.line = line

	if _, err := pw.w.Write(line); err != nil {
		return err
	}
	pw.written++
	return nil
}

// Close flushes buffered output. It does not close the underlying writer.
func (pw *PPMWriter) Close() error {
	if err := pw.w.Flush(); err != nil {
		return err
	}
	if pw.written != pw.width*pw.height {
		return fmt.Errorf("%w: wrote %d of %d", ErrIncompleteImage, pw.written, pw.width*pw.height)
	}
	return nil
}
