package lights

import "github.com/df07/go-sphere-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
)

// Light interface for objects that illuminate a shading point
type Light interface {
	Type() LightType

	// DirectionFrom returns the unit direction FROM point TO the light
	DirectionFrom(point core.Vec3) core.Vec3
}
