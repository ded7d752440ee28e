package meshio

import (
	"fmt"

	"github.com/taigrr/raytrace/pkg/math3d"
	"github.com/taigrr/raytrace/pkg/models"
	"github.com/taigrr/raytrace/pkg/raytrace"
)

// GLTFMesh is a raytrace.MeshSource backed by a models.Mesh loaded from a
// glTF/GLB file. models.GLTFLoader always fills in vertex normals (either
// from the file or computed), so every triangle reports a normal index
// equal to its vertex index.
type GLTFMesh struct {
	mesh *models.Mesh
}

// LoadGLTF reads path (.gltf or .glb) via models.GLTFLoader.
func LoadGLTF(path string) (*GLTFMesh, error) {
	loader := models.NewGLTFLoader()
	mesh, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: load gltf: %w", err)
	}
	return &GLTFMesh{mesh: mesh}, nil
}

func (g *GLTFMesh) VertexCount() int {
	return g.mesh.VertexCount()
}

func (g *GLTFMesh) Vertex(i int) math3d.Vec3 {
	pos, _, _ := g.mesh.GetVertex(i)
	return pos
}

func (g *GLTFMesh) NormalCount() int {
	return g.mesh.VertexCount()
}

func (g *GLTFMesh) Normal(i int) math3d.Vec3 {
	_, n, _ := g.mesh.GetVertex(i)
	return n
}

func (g *GLTFMesh) TriangleCount() int {
	return g.mesh.TriangleCount()
}

func (g *GLTFMesh) Triangle(i int) raytrace.MeshFaceIndices {
	f := g.mesh.GetFace(i)
	return raytrace.MeshFaceIndices{V: f, N: f}
}
