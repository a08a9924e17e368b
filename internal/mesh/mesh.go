// Package mesh turns STL solids into the vertex and edge lists drawn as a
// wireframe.
package mesh

import (
	"math"

	"github.com/hschendel/stl"
	"github.com/ungerik/go3d/float64/vec3"

	"paperhog/internal/scene"
)

// Edge joins two vertex indices. A is always the smaller index.
type Edge struct {
	A, B int
}

// Mesh is a welded wireframe: each distinct position appears once and each
// triangle side is listed once no matter how many faces share it.
type Mesh struct {
	Name      string
	Vertices  []scene.Vec3
	Edges     []Edge
	Triangles int
}

// FromSolid welds the solid's triangle corners and extracts unique edges.
// Degenerate sides joining a vertex to itself are dropped.
func FromSolid(solid *stl.Solid) *Mesh {
	m := &Mesh{}
	if solid == nil {
		return m
	}
	m.Name = solid.Name
	m.Triangles = len(solid.Triangles)

	index := make(map[stl.Vec3]int, len(solid.Triangles))
	seen := make(map[Edge]struct{}, len(solid.Triangles)*3/2)
	vertex := func(v stl.Vec3) int {
		if i, ok := index[v]; ok {
			return i
		}
		i := len(m.Vertices)
		index[v] = i
		m.Vertices = append(m.Vertices, scene.Vec3{float64(v[0]), float64(v[1]), float64(v[2])})
		return i
	}

	for _, tri := range solid.Triangles {
		var ids [3]int
		for k, v := range tri.Vertices {
			ids[k] = vertex(v)
		}
		for k := 0; k < 3; k++ {
			a, b := ids[k], ids[(k+1)%3]
			if a == b {
				continue
			}
			if a > b {
				a, b = b, a
			}
			e := Edge{A: a, B: b}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			m.Edges = append(m.Edges, e)
		}
	}
	return m
}

// Bounds returns the axis-aligned box enclosing every vertex.
func (m *Mesh) Bounds() (lo, hi scene.Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo = scene.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = scene.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range m.Vertices {
		for k := range v {
			lo[k], hi[k] = math.Min(lo[k], v[k]), math.Max(hi[k], v[k])
		}
	}
	return lo, hi
}

// Center moves the mesh so its bounding box is centred on the origin.
func (m *Mesh) Center() {
	lo, hi := m.Bounds()
	mid := vec3.Add(&lo, &hi)
	mid.Scale(0.5)
	for i := range m.Vertices {
		m.Vertices[i].Sub(&mid)
	}
}
