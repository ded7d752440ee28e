// Package raytrace implements the intersection and shading core of the
// offline ray tracer: primitives, the mesh acceleration tree, the scene
// graph, the pinhole camera, the recursive shader, and the tiled parallel
// renderer.
package raytrace

import "github.com/taigrr/raytrace/pkg/math3d"

// Tag identifies the purpose a ray was cast for, used for bookkeeping only;
// it has no effect on intersection arithmetic.
type Tag int

const (
	Prime Tag = iota
	Reflection
	Shadow
)

// Ray is a half-line in world space: an origin, a normalized direction, and
// a precomputed componentwise inverse direction. InvDirection components
// may be +/-Inf when the corresponding direction component is zero; the
// AABB slab test (see bvh.go) is written to tolerate that.
type Ray struct {
	Origin       math3d.Vec3
	Direction    math3d.Vec3
	InvDirection math3d.Vec3
	Tag          Tag
}

// NewRay builds a Ray, normalizing direction and precomputing InvDirection.
func NewRay(origin, direction math3d.Vec3, tag Tag) Ray {
	d := direction.Normalize()
	return Ray{
		Origin:    origin,
		Direction: d,
		InvDirection: math3d.V3(
			1/d.X,
			1/d.Y,
			1/d.Z,
		),
		Tag: tag,
	}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) math3d.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
