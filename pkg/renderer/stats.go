package renderer

import (
	"image/color"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	HitPixels        int           // Pixels whose ray hit the shape
	AverageLuminance float64       // Mean Rec. 709 luminance in [0, 1]
	Duration         time.Duration // Wall time of the render
	luminanceAccum   float64
}

// AddPixel records one emitted pixel
func (rs *RenderStats) AddPixel(c color.RGBA, hit bool) {
	rs.TotalPixels++
	if hit {
		rs.HitPixels++
	}
	rs.luminanceAccum += luminance(c)
	rs.AverageLuminance = rs.luminanceAccum / float64(rs.TotalPixels)
}

// Coverage returns the fraction of pixels that hit the shape
func (rs RenderStats) Coverage() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.HitPixels) / float64(rs.TotalPixels)
}

func luminance(c color.RGBA) float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255.0
}
