package raytrace

import "github.com/taigrr/raytrace/pkg/math3d"

// geomHit is the raw geometric result of intersecting a ray against a
// primitive, before material properties are resolved.
type geomHit struct {
	T      float64
	Point  math3d.Vec3
	Normal math3d.Vec3
	UV     math3d.Vec2
}

// shape is implemented by each primitive kind (Sphere, Plane, Mesh). Mesh
// triangles are pre-transformed into world space at build time, so its
// implementation ignores the WorldPosition argument.
type shape interface {
	intersect(ray Ray, wp WorldPosition) (geomHit, bool)
}
