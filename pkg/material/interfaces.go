package material

import (
	"image/color"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
)

// Material turns a surface point lit by a light into a pixel color
type Material interface {
	Shade(point, normal core.Vec3, light lights.Light) color.RGBA
}
