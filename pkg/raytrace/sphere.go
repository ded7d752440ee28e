package raytrace

import (
	"math"

	"github.com/taigrr/raytrace/pkg/math3d"
)

// Sphere is centered at its object's WorldPosition translation, with
// radius scaled by the WorldPosition's uniform scale.
type Sphere struct {
	Radius float64
}

// NewSphere returns a Sphere primitive of the given local radius.
func NewSphere(radius float64) Sphere {
	return Sphere{Radius: radius}
}

func (s Sphere) intersect(ray Ray, wp WorldPosition) (geomHit, bool) {
	center := wp.Translation
	radius := s.Radius * wp.Scale

	l := center.Sub(ray.Origin)
	adj := l.Dot(ray.Direction)
	d2 := l.Dot(l) - adj*adj
	r2 := radius * radius
	if d2 > r2 {
		return geomHit{}, false
	}
	thc := math.Sqrt(r2 - d2)
	t0 := adj - thc
	t1 := adj + thc
	if t0 < 0 && t1 < 0 {
		return geomHit{}, false
	}
	t := t0
	if t < 0 {
		t = t1
	}

	point := ray.At(t)
	local := point.Sub(center)
	normal := local.Normalize()

	u := 0.5 * (1 + math.Atan2(local.Z, local.X)/math.Pi)
	v := math.Acos(clamp(local.Y/radius, -1, 1)) / math.Pi

	return geomHit{T: t, Point: point, Normal: normal, UV: math3d.V2(u, v)}, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
