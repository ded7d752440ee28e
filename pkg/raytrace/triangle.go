package raytrace

import (
	"math"

	"github.com/taigrr/raytrace/pkg/math3d"
	"github.com/taigrr/raytrace/pkg/render"
)

// triangleEpsilon guards the Moller-Trumbore determinant against rays
// parallel to the triangle plane.
const triangleEpsilon = 1e-13

// meshTriangle holds one triangle's data fully baked into world space at
// mesh build time: vertex positions (rotated, scaled, translated) and,
// when present, vertex normals (rotated only, scale-invariant for a
// uniform scale factor).
type meshTriangle struct {
	V0, V1, V2 math3d.Vec3
	N0, N1, N2 math3d.Vec3
	HasNormals bool
	Centroid   math3d.Vec3
	Bounds     render.AABB
}

func newMeshTriangle(v0, v1, v2 math3d.Vec3, n0, n1, n2 math3d.Vec3, hasNormals bool) meshTriangle {
	min := v0.Min(v1).Min(v2)
	max := v0.Max(v1).Max(v2)
	centroid := v0.Add(v1).Add(v2).Scale(1.0 / 3.0)
	return meshTriangle{
		V0: v0, V1: v1, V2: v2,
		N0: n0, N1: n1, N2: n2,
		HasNormals: hasNormals,
		Centroid:   centroid,
		Bounds:     render.NewAABB(min, max),
	}
}

// degenerate reports whether the triangle has zero area, within floating
// point tolerance.
func (tr meshTriangle) degenerate() bool {
	e1 := tr.V1.Sub(tr.V0)
	e2 := tr.V2.Sub(tr.V0)
	return e1.Cross(e2).LenSq() < triangleEpsilon
}

// intersect runs the Moller-Trumbore ray/triangle test, returning the hit
// distance and barycentric weights (u, v) for vertices V1 and V2
// respectively (the weight for V0 is 1-u-v).
func (tr meshTriangle) intersect(ray Ray) (t, u, v float64, ok bool) {
	e1 := tr.V1.Sub(tr.V0)
	e2 := tr.V2.Sub(tr.V0)

	p := ray.Direction.Cross(e2)
	det := e1.Dot(p)
	if math.Abs(det) < triangleEpsilon {
		return 0, 0, 0, false
	}
	invDet := 1 / det

	tvec := ray.Origin.Sub(tr.V0)
	u = tvec.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	q := tvec.Cross(e1)
	v = ray.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = e2.Dot(q) * invDet
	if t < 0 {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// shadingNormal returns the interpolated vertex normal at barycentric
// weights (u, v), or the flat face normal when the triangle carries no
// vertex normals.
func (tr meshTriangle) shadingNormal(u, v float64) math3d.Vec3 {
	if tr.HasNormals {
		w := 1 - u - v
		n := tr.N0.Scale(w).Add(tr.N1.Scale(u)).Add(tr.N2.Scale(v))
		return n.Normalize()
	}
	e1 := tr.V1.Sub(tr.V0)
	e2 := tr.V2.Sub(tr.V0)
	return e1.Cross(e2).Normalize()
}
