package geometry

import "github.com/df07/go-sphere-raytracer/pkg/core"

// HitRecord describes where a ray met a surface. Point and Normal are only
// meaningful when the accompanying hit flag is true.
type HitRecord struct {
	T      float64   // Ray parameter of the intersection
	Point  core.Vec3 // Intersection point in world space
	Normal core.Vec3 // Unit outward surface normal
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray) (HitRecord, bool)
}
