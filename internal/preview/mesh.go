package preview

import (
	"encoding/json"
	"io"

	"github.com/grindlemire/go-spatial/internal/layout"
)

// Mesh is a triangle mesh for one leaf box. Arrays are flat: three floats
// per vertex and normal, three indices per triangle.
type Mesh struct {
	Node     layout.NodeID `json:"node"`
	Name     string        `json:"name,omitempty"`
	Vertices []float32     `json:"vertices"`
	Normals  []float32     `json:"normals"`
	Indices  []uint32      `json:"indices"`
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Bounds returns the axis-aligned bounds of the vertices.
func (m *Mesh) Bounds() (lo, hi [3]float32) {
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		for a := 0; a < 3; a++ {
			v := m.Vertices[i+a]
			if i == 0 || v < lo[a] {
				lo[a] = v
			}
			if i == 0 || v > hi[a] {
				hi[a] = v
			}
		}
	}
	return lo, hi
}

// WriteJSON writes meshes as an indented JSON array.
func WriteJSON(w io.Writer, meshes []*Mesh) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if meshes == nil {
		meshes = []*Mesh{}
	}
	return enc.Encode(meshes)
}
