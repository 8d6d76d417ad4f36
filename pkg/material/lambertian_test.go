package material

import (
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
)

func gray(c uint8) color.RGBA {
	return color.RGBA{R: c, G: c, B: c, A: 255}
}

func TestLambertian_Shade(t *testing.T) {
	lightPos := core.NewVec3(5, 5, -5)
	point := core.NewVec3(0, 0, -1)
	toLight := lightPos.Subtract(point).Normalize()

	// A normal perpendicular to toLight
	perpendicular := core.NewVec3(toLight.Y, -toLight.X, 0).Normalize()

	tests := []struct {
		name     string
		normal   core.Vec3
		expected color.RGBA
	}{
		{"facing the light", toLight, gray(255)},
		{"facing away", toLight.Negate(), gray(0)},
		{"perpendicular", perpendicular, gray(0)},
		{"degenerate normal", core.Vec3{X: math.NaN()}, gray(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shade(point, tt.normal, lightPos)
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLambertian_ShadeIsCosineWeighted(t *testing.T) {
	light := lights.NewPointLight(core.NewVec3(0, 10, 0))
	point := core.NewVec3(0, 0, 0)
	mat := NewLambertian()

	// The light is straight up, so the cosine is the normal's Y component
	tests := []struct {
		name     string
		normal   core.Vec3
		expected uint8
	}{
		{"aligned", core.NewVec3(0, 1, 0), 255},
		{"half tie rounds up", core.NewVec3(math.Sqrt(3)/2, 0.5, 0), 128}, // round(127.5)
		{"just below half", core.NewVec3(0, 0.4999, 0), 127},              // round(127.47)
		{"45 degrees", core.NewVec3(math.Sqrt2/2, math.Sqrt2/2, 0), 180},  // round(180.31)
		{"grazing", core.NewVec3(1, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mat.Shade(point, tt.normal, light)
			if got.R != tt.expected || got.G != got.R || got.B != got.R {
				t.Errorf("Expected gray %d, got %v", tt.expected, got)
			}
			if got.A != 255 {
				t.Errorf("Expected opaque color, got alpha %d", got.A)
			}
		})
	}
}
