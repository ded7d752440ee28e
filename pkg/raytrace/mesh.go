package raytrace

import (
	"fmt"

	"github.com/taigrr/raytrace/pkg/math3d"
)

// MeshFaceIndices names the three vertices of a triangle by index into a
// MeshSource's vertex table, plus an index into its normal table for each
// vertex. A negative normal index means that vertex carries no normal.
type MeshFaceIndices struct {
	V [3]int
	N [3]int
}

// MeshSource is the pre-parsed triangle mesh a Mesh primitive is built
// from: a vertex table, an optional normal table, and triangle index
// triples into those tables. Parsing OBJ or glTF files into a MeshSource
// is the job of pkg/meshio, not this package.
type MeshSource interface {
	VertexCount() int
	Vertex(i int) math3d.Vec3
	NormalCount() int
	Normal(i int) math3d.Vec3
	TriangleCount() int
	Triangle(i int) MeshFaceIndices
}

// Mesh is a BVH-accelerated triangle collection. Unlike Sphere and Plane,
// a Mesh's triangles are transformed into world space once, at
// construction, by BuildMesh; its intersect method ignores the
// WorldPosition passed at query time.
type Mesh struct {
	root *bvhNode
}

// BuildMesh transforms every triangle in src into world space using wp,
// skips degenerate (zero-area) triangles, and constructs a BVH over the
// result using leafThreshold (DefaultLeafThreshold if <= 0). A mesh that
// reduces to zero valid triangles is a configuration error.
func BuildMesh(src MeshSource, wp WorldPosition, leafThreshold int) (Mesh, error) {
	if leafThreshold <= 0 {
		leafThreshold = DefaultLeafThreshold
	}

	triCount := src.TriangleCount()
	triangles := make([]*meshTriangle, 0, triCount)
	for i := 0; i < triCount; i++ {
		face := src.Triangle(i)

		v0 := wp.Translate(src.Vertex(face.V[0]))
		v1 := wp.Translate(src.Vertex(face.V[1]))
		v2 := wp.Translate(src.Vertex(face.V[2]))

		hasNormals := face.N[0] >= 0 && face.N[1] >= 0 && face.N[2] >= 0
		var n0, n1, n2 math3d.Vec3
		if hasNormals {
			n0 = wp.RotateDirection(src.Normal(face.N[0])).Normalize()
			n1 = wp.RotateDirection(src.Normal(face.N[1])).Normalize()
			n2 = wp.RotateDirection(src.Normal(face.N[2])).Normalize()
		}

		tri := newMeshTriangle(v0, v1, v2, n0, n1, n2, hasNormals)
		if tri.degenerate() {
			continue
		}
		triangles = append(triangles, &tri)
	}

	if len(triangles) == 0 {
		return Mesh{}, fmt.Errorf("raytrace: mesh has zero valid triangles after skipping degenerate faces")
	}

	return Mesh{root: buildBVH(triangles, leafThreshold, 0)}, nil
}

func (m Mesh) intersect(ray Ray, _ WorldPosition) (geomHit, bool) {
	tri, t, u, v, ok := m.root.query(ray)
	if !ok {
		return geomHit{}, false
	}
	point := ray.At(t)
	normal := tri.shadingNormal(u, v)
	return geomHit{T: t, Point: point, Normal: normal, UV: math3d.V2(0, 0)}, true
}
