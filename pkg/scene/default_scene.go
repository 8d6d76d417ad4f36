package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// DefaultSize is the width and height of the default frame
const DefaultSize = 512

// NewDefaultScene creates the default scene: a unit diffuse sphere at the
// origin lit by a point light above, right and in front of it
func NewDefaultScene() *Scene {
	return &Scene{
		Camera:   renderer.NewCamera(DefaultSize),
		Shape:    geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0),
		Material: material.NewLambertian(),
		Light:    lights.NewPointLight(core.NewVec3(5, 5, -5)),
	}
}
