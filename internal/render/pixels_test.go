package render

import (
	"math"
	"testing"

	"paperhog/internal/mesh"
	"paperhog/internal/scene"
)

func TestProjectEdgesCentresOrigin(t *testing.T) {
	m := &mesh.Mesh{
		Vertices: []scene.Vec3{{-1, 0, 0}, {1, 0, 0}, {0, 0, 10}},
		Edges:    []mesh.Edge{{A: 0, B: 1}, {A: 1, B: 2}},
	}
	cam := scene.DefaultCamera(1)
	segs := projectEdges(nil, m, scene.Transform{Scale: 1}, cam, 200, 200)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1 (edge behind camera skipped)", len(segs))
	}
	s := segs[0]
	if math.Abs(float64(s.X0+s.X1)/2-100) > 1e-3 || math.Abs(float64(s.Y0)-100) > 1e-3 {
		t.Fatalf("segment %+v should be centred on the screen", s)
	}
	if s.X0 >= s.X1 {
		t.Fatalf("segment %+v should run left to right", s)
	}
}

func TestProjectEdgesFollowsTransform(t *testing.T) {
	m := &mesh.Mesh{
		Vertices: []scene.Vec3{{}, {0, 0.001, 0}},
		Edges:    []mesh.Edge{{A: 0, B: 1}},
	}
	cam := scene.DefaultCamera(1)
	w, _ := cam.FrustumSize()
	tr := scene.Transform{Position: scene.Vec3{w / 4, 0, 0}, Scale: 1}
	segs := projectEdges(nil, m, tr, cam, 400, 400)
	if len(segs) != 1 || math.Abs(float64(segs[0].X0)-300) > 1e-3 {
		t.Fatalf("translated edge landed at %+v, want x=300", segs)
	}
	if got := projectEdges(segs, nil, tr, cam, 400, 400); len(got) != 0 {
		t.Fatal("nil mesh should yield no segments")
	}
}
