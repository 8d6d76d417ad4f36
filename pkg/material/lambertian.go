package material

import (
	"image/color"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
)

// Lambertian represents a perfectly diffuse grayscale surface
type Lambertian struct{}

// NewLambertian creates a new lambertian material
func NewLambertian() *Lambertian {
	return &Lambertian{}
}

// Shade implements the Material interface. Brightness follows the cosine
// between the unit normal and the direction to the light, clamped at zero.
func (l *Lambertian) Shade(point, normal core.Vec3, light lights.Light) color.RGBA {
	lightDir := light.DirectionFrom(point)

	// NaN from a degenerate normal lands here as black too
	cosTheta := normal.Dot(lightDir)
	if !(cosTheta > 0) {
		cosTheta = 0
	}
	if cosTheta > 1 {
		cosTheta = 1
	}

	c := uint8(math.Round(cosTheta * 255))
	return color.RGBA{R: c, G: c, B: c, A: 255}
}

// Shade computes the lambertian color at point for a point light at lightPos
func Shade(point, normal, lightPos core.Vec3) color.RGBA {
	return NewLambertian().Shade(point, normal, lights.NewPointLight(lightPos))
}
