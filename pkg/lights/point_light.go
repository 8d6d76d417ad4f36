package lights

import "github.com/df07/go-sphere-raytracer/pkg/core"

// PointLight is an infinitesimal light at a fixed position. It carries no
// color or intensity; shading only depends on its direction.
type PointLight struct {
	Position core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3) *PointLight {
	return &PointLight{Position: position}
}

// Type implements the Light interface
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// DirectionFrom implements the Light interface
func (pl *PointLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return pl.Position.Subtract(point).Normalize()
}
