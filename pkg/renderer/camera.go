package renderer

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Camera generates rays from a fixed eye point through a square image plane
// spanning [-1, 1] in X and Y.
type Camera struct {
	origin      core.Vec3
	imagePlaneZ float64
	size        int
}

// NewCamera creates the fixed camera for a size × size image: eye at
// (0, 0, -10) looking down +Z through the plane z = -5.
func NewCamera(size int) *Camera {
	return &Camera{
		origin:      core.NewVec3(0, 0, -10),
		imagePlaneZ: -5,
		size:        size,
	}
}

// Origin returns the eye position shared by every generated ray
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// Size returns the image width and height in pixels
func (c *Camera) Size() int {
	return c.size
}

// GetRay generates the ray for pixel column w and row h. Row 0 is the top of
// the image and maps to +Y in world space.
func (c *Camera) GetRay(w, h int) core.Ray {
	size := float64(c.size)
	pixelPos := core.NewVec3(
		float64(w)/size*2.0-1.0,
		-(float64(h)/size*2.0 - 1.0),
		c.imagePlaneZ,
	)

	return core.NewRay(c.origin, pixelPos.Subtract(c.origin).Normalize())
}

// GenRay generates the ray for pixel (w, h) of a size × size image
func GenRay(w, h, size int) core.Ray {
	return NewCamera(size).GetRay(w, h)
}
