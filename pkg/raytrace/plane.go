package raytrace

import "github.com/taigrr/raytrace/pkg/math3d"

// planeDenomEpsilon is the minimum facing-ratio between a ray and a plane
// normal for an intersection to be considered. Planes are single-sided:
// only rays whose direction has a positive dot product with the stored
// normal can hit; the shading normal reported back is the negation, -n.
const planeDenomEpsilon = 1e-10

// Plane is an infinite plane through its object's WorldPosition
// translation. Normal is given in local space and rotated into world
// space by the WorldPosition. Normal is the plane's back side: the
// reported hit normal is its negation, the side facing the viewer.
type Plane struct {
	Normal math3d.Vec3
}

// NewPlane returns a Plane primitive with the given local unit normal.
func NewPlane(normal math3d.Vec3) Plane {
	return Plane{Normal: normal.Normalize()}
}

func (p Plane) intersect(ray Ray, wp WorldPosition) (geomHit, bool) {
	n := wp.RotateDirection(p.Normal).Normalize()
	point := wp.Translation

	denom := n.Dot(ray.Direction)
	if denom <= planeDenomEpsilon {
		return geomHit{}, false
	}
	t := point.Sub(ray.Origin).Dot(n) / denom
	if t < 0 {
		return geomHit{}, false
	}

	hit := ray.At(t)
	facing := n.Negate()

	axisU := n.Cross(math3d.V3(0, 0, 1))
	if axisU.LenSq() < 1e-12 {
		axisU = n.Cross(math3d.Up())
	}
	axisU = axisU.Normalize()
	axisV := n.Cross(axisU).Normalize()

	local := hit.Sub(point)
	uv := math3d.V2(local.Dot(axisU), local.Dot(axisV))

	return geomHit{T: t, Point: hit, Normal: facing, UV: uv}, true
}
