package render

import (
	"paperhog/internal/mesh"
	"paperhog/internal/scene"
)

// Segment is a projected edge in screen pixels.
type Segment struct {
	X0, Y0 float32
	X1, Y1 float32
}

// projectEdges transforms every mesh edge into screen space, appending to buf.
// Edges with an endpoint behind the near plane are skipped.
func projectEdges(buf []Segment, m *mesh.Mesh, tr scene.Transform, cam scene.Camera, w, h int) []Segment {
	buf = buf[:0]
	if m == nil || w <= 0 || h <= 0 {
		return buf
	}
	type point struct {
		x, y float32
		ok   bool
	}
	world := tr.Mapper()
	pts := make([]point, len(m.Vertices))
	for i, v := range m.Vertices {
		x, y, ok := cam.Project(world(v), w, h)
		pts[i] = point{float32(x), float32(y), ok}
	}
	for _, e := range m.Edges {
		a, b := pts[e.A], pts[e.B]
		if !a.ok || !b.ok {
			continue
		}
		buf = append(buf, Segment{X0: a.x, Y0: a.y, X1: b.x, Y1: b.y})
	}
	return buf
}
