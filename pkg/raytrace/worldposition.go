package raytrace

import "github.com/taigrr/raytrace/pkg/math3d"

// WorldPosition places a primitive in world space: a translation, a unit
// quaternion rotation, and a uniform scale factor.
type WorldPosition struct {
	Translation math3d.Vec3
	Rotation    math3d.Quaternion
	Scale       float64
}

// Identity returns a WorldPosition with no rotation, no translation, and
// unit scale.
func Identity() WorldPosition {
	return WorldPosition{
		Translation: math3d.Zero3(),
		Rotation:    math3d.QuaternionIdentity(),
		Scale:       1,
	}
}

// At returns a WorldPosition translated to p with identity rotation and
// unit scale, the common case for simple scene objects.
func At(p math3d.Vec3) WorldPosition {
	wp := Identity()
	wp.Translation = p
	return wp
}

// Translate maps a local-space point into world space: rotate, then scale,
// then translate.
func (wp WorldPosition) Translate(p math3d.Vec3) math3d.Vec3 {
	return wp.Rotation.RotateVector(p).Scale(wp.Scale).Add(wp.Translation)
}

// RotateDirection maps a local-space direction into world space: rotation
// only, no scale or translation. Valid for normals under uniform scale.
func (wp WorldPosition) RotateDirection(d math3d.Vec3) math3d.Vec3 {
	return wp.Rotation.RotateVector(d)
}
