package raytrace

import "github.com/taigrr/raytrace/pkg/math3d"

// IntersectionResult is the resolved outcome of an Object/Ray intersection:
// hit distance and point, shading normal, texture coordinates, and the
// material's resolved surface properties at that point.
type IntersectionResult struct {
	Distance float64
	Point    math3d.Vec3
	Normal   math3d.Vec3
	TexCoord math3d.Vec2
	Surface  SurfaceProperties
}

// Object binds a primitive shape, a material, and a world placement.
type Object struct {
	primitive shape
	material  Material
	position  WorldPosition
}

// NewObject returns an Object. p must be a Sphere, Plane, or Mesh value.
func NewObject(p shape, m Material, wp WorldPosition) Object {
	return Object{primitive: p, material: m, position: wp}
}

// Intersect tests ray against the object's primitive and, on a hit,
// resolves the material's surface properties at the hit's texture
// coordinates.
func (o Object) Intersect(ray Ray) (IntersectionResult, bool) {
	hit, ok := o.primitive.intersect(ray, o.position)
	if !ok {
		return IntersectionResult{}, false
	}
	surf := o.material.At(hit.UV.X, hit.UV.Y)
	return IntersectionResult{
		Distance: hit.T,
		Point:    hit.Point,
		Normal:   hit.Normal,
		TexCoord: hit.UV,
		Surface:  surf,
	}, true
}
