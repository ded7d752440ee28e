// Package meshio adapts external mesh file formats (Wavefront OBJ, glTF)
// into the raytrace.MeshSource interface the core's BuildMesh consumes.
// Parsing lives here so pkg/raytrace stays free of file-format concerns.
package meshio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/taigrr/raytrace/pkg/math3d"
	"github.com/taigrr/raytrace/pkg/raytrace"
)

// OBJMesh is a raytrace.MeshSource backed by a parsed Wavefront OBJ file.
// Only vertex positions, vertex normals, and polygonal faces are read;
// materials, groups, and texture coordinates are ignored.
type OBJMesh struct {
	vertices []math3d.Vec3
	normals  []math3d.Vec3
	faces    []raytrace.MeshFaceIndices
}

// LoadOBJ reads path as a Wavefront OBJ file.
func LoadOBJ(path string) (*OBJMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: open obj: %w", err)
	}
	defer f.Close()

	m := &OBJMesh{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("meshio: obj line %d: %w", lineNo, err)
			}
			m.vertices = append(m.vertices, v)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("meshio: obj line %d: %w", lineNo, err)
			}
			m.normals = append(m.normals, n)
		case "f":
			if err := m.parseFace(fields[1:]); err != nil {
				return nil, fmt.Errorf("meshio: obj line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("meshio: read obj: %w", err)
	}
	if len(m.vertices) == 0 {
		return nil, fmt.Errorf("meshio: obj file has no vertices")
	}
	return m, nil
}

func parseVec3(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var c [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("parse component %d: %w", i, err)
		}
		c[i] = v
	}
	return math3d.V3(c[0], c[1], c[2]), nil
}

// parseFace handles face vertices given as v, v/vt, v/vt/vn, or v//vn, and
// fan-triangulates polygons with more than three vertices.
func (m *OBJMesh) parseFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("face has fewer than 3 vertices")
	}
	vIdx := make([]int, len(fields))
	nIdx := make([]int, len(fields))
	for i, tok := range fields {
		parts := strings.Split(tok, "/")
		v, err := m.resolveIndex(parts[0], len(m.vertices))
		if err != nil {
			return fmt.Errorf("vertex index: %w", err)
		}
		vIdx[i] = v
		nIdx[i] = -1
		if len(parts) == 3 && parts[2] != "" {
			n, err := m.resolveIndex(parts[2], len(m.normals))
			if err != nil {
				return fmt.Errorf("normal index: %w", err)
			}
			nIdx[i] = n
		}
	}
	for i := 1; i+1 < len(vIdx); i++ {
		m.faces = append(m.faces, raytrace.MeshFaceIndices{
			V: [3]int{vIdx[0], vIdx[i], vIdx[i+1]},
			N: [3]int{nIdx[0], nIdx[i], nIdx[i+1]},
		})
	}
	return nil
}

func (m *OBJMesh) resolveIndex(tok string, count int) (int, error) {
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0:
		return i - 1, nil
	case i < 0:
		return count + i, nil
	default:
		return 0, fmt.Errorf("obj indices are 1-based, got 0")
	}
}

func (m *OBJMesh) VertexCount() int                        { return len(m.vertices) }
func (m *OBJMesh) Vertex(i int) math3d.Vec3                { return m.vertices[i] }
func (m *OBJMesh) NormalCount() int                        { return len(m.normals) }
func (m *OBJMesh) Normal(i int) math3d.Vec3                { return m.normals[i] }
func (m *OBJMesh) TriangleCount() int                      { return len(m.faces) }
func (m *OBJMesh) Triangle(i int) raytrace.MeshFaceIndices { return m.faces[i] }
