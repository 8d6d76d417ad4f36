package renderer

import (
	"fmt"
	"image/color"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetShape() geometry.Shape
	GetMaterial() material.Material
	GetLight() lights.Light
}

// PixelSink receives rendered pixels in row-major order, top-left first
type PixelSink interface {
	WritePixel(c color.RGBA) error
}

// PixelSinkFunc adapts a function to the PixelSink interface
type PixelSinkFunc func(c color.RGBA) error

// WritePixel implements PixelSink
func (f PixelSinkFunc) WritePixel(c color.RGBA) error {
	return f(c)
}

// Raytracer drives a single sequential pass over every pixel of the scene
type Raytracer struct {
	scene  Scene
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:  scene,
		logger: logger,
	}
}

// backgroundGradient returns the diagonal gradient used for pixels that miss
func backgroundGradient(w, h int) color.RGBA {
	return color.RGBA{
		R: uint8(min(h/2, 255)),
		G: uint8(min(w/2, 255)),
		B: 128,
		A: 255,
	}
}

// PixelColor returns the color of pixel (w, h) and whether its ray hit the shape
func (rt *Raytracer) PixelColor(w, h int) (color.RGBA, bool) {
	ray := rt.scene.GetCamera().GetRay(w, h)

	hit, isHit := rt.scene.GetShape().Hit(ray)
	if !isHit {
		return backgroundGradient(w, h), false
	}

	return rt.scene.GetMaterial().Shade(hit.Point, hit.Normal, rt.scene.GetLight()), true
}

// Render emits every pixel to sink, rows top to bottom and columns left to
// right. The first sink error stops the render.
func (rt *Raytracer) Render(sink PixelSink) (RenderStats, error) {
	size := rt.scene.GetCamera().Size()
	stats := RenderStats{}
	startTime := time.Now()

	rt.logger.Printf("Rendering %dx%d frame with a %s light...\n", size, size, rt.scene.GetLight().Type())

	for h := 0; h < size; h++ {
		for w := 0; w < size; w++ {
			pixelColor, hit := rt.PixelColor(w, h)
			if err := sink.WritePixel(pixelColor); err != nil {
				return stats, fmt.Errorf("failed to write pixel (%d, %d): %w", w, h, err)
			}
			stats.AddPixel(pixelColor, hit)
		}
	}

	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%d pixels, %.1f%% hit, average luminance %.3f)\n",
		stats.Duration, stats.TotalPixels, 100*stats.Coverage(), stats.AverageLuminance)

	return stats, nil
}
