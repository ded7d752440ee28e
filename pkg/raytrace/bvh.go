package raytrace

import (
	"math"

	"github.com/taigrr/raytrace/pkg/math3d"
	"github.com/taigrr/raytrace/pkg/render"
)

// DefaultLeafThreshold is the triangle count at or below which a BVH node
// becomes a leaf instead of splitting further.
const DefaultLeafThreshold = 250

// maxBVHDepth bounds recursion when a split fails to reduce the triangle
// set (e.g. many coincident centroids), falling through to a leaf instead
// of looping forever.
const maxBVHDepth = 64

// bvhNode is a binary space-partition node over meshTriangles. Interior
// nodes have Left and Right set and Triangles nil; leaves have Triangles
// set and Left, Right nil.
type bvhNode struct {
	Bounds    render.AABB
	Left      *bvhNode
	Right     *bvhNode
	Triangles []*meshTriangle
}

// buildBVH recursively partitions triangles by the longest axis of their
// combined bounds, splitting at the midpoint of that axis.
func buildBVH(triangles []*meshTriangle, leafThreshold, depth int) *bvhNode {
	bounds := trianglesBounds(triangles)
	if len(triangles) <= leafThreshold || depth >= maxBVHDepth {
		return &bvhNode{Bounds: bounds, Triangles: triangles}
	}

	axis := longestAxis(bounds)
	mid := axisMidpoint(bounds, axis)

	var left, right []*meshTriangle
	for _, tr := range triangles {
		if axisComponent(tr.Centroid, axis) < mid {
			left = append(left, tr)
		} else {
			right = append(right, tr)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &bvhNode{Bounds: bounds, Triangles: triangles}
	}

	return &bvhNode{
		Bounds: bounds,
		Left:   buildBVH(left, leafThreshold, depth+1),
		Right:  buildBVH(right, leafThreshold, depth+1),
	}
}

func trianglesBounds(triangles []*meshTriangle) render.AABB {
	if len(triangles) == 0 {
		return render.NewAABB(math3d.Zero3(), math3d.Zero3())
	}
	b := triangles[0].Bounds
	for _, tr := range triangles[1:] {
		b = b.Union(tr.Bounds)
	}
	return b
}

func longestAxis(b render.AABB) int {
	size := b.Size()
	if size.X >= size.Y && size.X >= size.Z {
		return 0
	}
	if size.Y >= size.Z {
		return 1
	}
	return 2
}

func axisMidpoint(b render.AABB, axis int) float64 {
	c := b.Center()
	return axisComponent(c, axis)
}

func axisComponent(v math3d.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// slabHit runs the AABB slab test against ray, tolerating +/-Inf
// InvDirection components for axis-aligned rays.
func slabHit(box render.AABB, ray Ray) bool {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		var lo, hi, origin, inv float64
		switch axis {
		case 0:
			lo, hi, origin, inv = box.Min.X, box.Max.X, ray.Origin.X, ray.InvDirection.X
		case 1:
			lo, hi, origin, inv = box.Min.Y, box.Max.Y, ray.Origin.Y, ray.InvDirection.Y
		default:
			lo, hi, origin, inv = box.Min.Z, box.Max.Z, ray.Origin.Z, ray.InvDirection.Z
		}
		t1 := (lo - origin) * inv
		t2 := (hi - origin) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}
	return tmax >= tmin && tmax >= 0
}

// query walks the BVH for the nearest triangle hit, returning the hit
// triangle and its barycentric parameters.
func (n *bvhNode) query(ray Ray) (*meshTriangle, float64, float64, float64, bool) {
	if n == nil || !slabHit(n.Bounds, ray) {
		return nil, 0, 0, 0, false
	}
	if n.Triangles != nil {
		var best *meshTriangle
		bestT := math.Inf(1)
		var bestU, bestV float64
		for _, tr := range n.Triangles {
			if t, u, v, ok := tr.intersect(ray); ok && t < bestT {
				best, bestT, bestU, bestV = tr, t, u, v
			}
		}
		if best == nil {
			return nil, 0, 0, 0, false
		}
		return best, bestT, bestU, bestV, true
	}

	lTri, lT, lU, lV, lOK := n.Left.query(ray)
	rTri, rT, rU, rV, rOK := n.Right.query(ray)
	switch {
	case lOK && rOK:
		if lT <= rT {
			return lTri, lT, lU, lV, true
		}
		return rTri, rT, rU, rV, true
	case lOK:
		return lTri, lT, lU, lV, true
	case rOK:
		return rTri, rT, rU, rV, true
	default:
		return nil, 0, 0, 0, false
	}
}
