package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. It is built once
// and only read afterwards.
type Scene struct {
	Camera   *renderer.Camera
	Shape    geometry.Shape    // The single object in the scene
	Material material.Material // Surface of Shape
	Light    lights.Light
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera { return s.Camera }

// GetShape implements renderer.Scene
func (s *Scene) GetShape() geometry.Shape { return s.Shape }

// GetMaterial implements renderer.Scene
func (s *Scene) GetMaterial() material.Material { return s.Material }

// GetLight implements renderer.Scene
func (s *Scene) GetLight() lights.Light { return s.Light }

// Size returns the image width and height in pixels
func (s *Scene) Size() int {
	return s.Camera.Size()
}
