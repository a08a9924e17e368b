package mesh

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hschendel/stl"

	"paperhog/internal/scene"
)

const squareSTL = `solid square
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 2 0 0
      vertex 2 2 0
    endloop
  endfacet
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 2 2 0
      vertex 0 2 0
    endloop
  endfacet
endsolid square
`

func writeModel(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.stl")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write model: %v", err)
	}
	return path
}

func TestFromSolidWeldsSharedEdges(t *testing.T) {
	solid := &stl.Solid{
		Name: "quad",
		Triangles: []stl.Triangle{
			{Vertices: [3]stl.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}},
			{Vertices: [3]stl.Vec3{{0, 0, 0}, {1, 1, 0}, {0, 1, 0}}},
		},
	}
	m := FromSolid(solid)
	if len(m.Vertices) != 4 {
		t.Fatalf("got %d vertices, want 4", len(m.Vertices))
	}
	if len(m.Edges) != 5 {
		t.Fatalf("got %d edges, want 5 (shared diagonal counted once)", len(m.Edges))
	}
	for _, e := range m.Edges {
		if e.A >= e.B {
			t.Fatalf("edge %v not normalized", e)
		}
	}
	if m.Triangles != 2 || m.Name != "quad" {
		t.Fatalf("unexpected metadata %q/%d", m.Name, m.Triangles)
	}
}

func TestFromSolidDropsDegenerateSides(t *testing.T) {
	solid := &stl.Solid{Triangles: []stl.Triangle{
		{Vertices: [3]stl.Vec3{{0, 0, 0}, {0, 0, 0}, {1, 0, 0}}},
	}}
	if m := FromSolid(solid); len(m.Edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(m.Edges))
	}
	if m := FromSolid(nil); len(m.Vertices) != 0 {
		t.Fatal("nil solid should yield an empty mesh")
	}
}

func TestCenter(t *testing.T) {
	m := &Mesh{Vertices: []scene.Vec3{{2, 2, 2}, {4, 6, 2}}}
	m.Center()
	lo, hi := m.Bounds()
	if lo != (scene.Vec3{-1, -2, 0}) || hi != (scene.Vec3{1, 2, 0}) {
		t.Fatalf("centred bounds %v..%v", lo, hi)
	}
}

func TestLoadASCII(t *testing.T) {
	path := writeModel(t, squareSTL)
	var last float64
	m, err := Load(context.Background(), path, func(f float64) { last = f })
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Vertices) != 4 || len(m.Edges) != 5 {
		t.Fatalf("got %d vertices / %d edges", len(m.Vertices), len(m.Edges))
	}
	if last != 1 {
		t.Fatalf("final progress %v, want 1", last)
	}
}

// binarySTL encodes triangles in the 80-byte-header binary layout.
func binarySTL(t *testing.T, tris [][3][3]float32) []byte {
	t.Helper()
	var buf bytes.Buffer
	header := make([]byte, 80)
	copy(header, "binary square")
	buf.Write(header)
	le := binary.LittleEndian
	if err := binary.Write(&buf, le, uint32(len(tris))); err != nil {
		t.Fatalf("write count: %v", err)
	}
	for _, tri := range tris {
		rec := struct {
			Normal   [3]float32
			Vertices [3][3]float32
			Attr     uint16
		}{Normal: [3]float32{0, 0, 1}, Vertices: tri}
		if err := binary.Write(&buf, le, rec); err != nil {
			t.Fatalf("write triangle: %v", err)
		}
	}
	return buf.Bytes()
}

func TestLoadBinary(t *testing.T) {
	data := binarySTL(t, [][3][3]float32{
		{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}},
		{{0, 0, 0}, {2, 2, 0}, {0, 2, 0}},
	})
	if len(data) != 84+2*50 {
		t.Fatalf("encoded %d bytes, want %d", len(data), 84+2*50)
	}
	path := filepath.Join(t.TempDir(), "square.stl")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write model: %v", err)
	}
	m, err := Load(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Vertices) != 4 || len(m.Edges) != 5 || m.Triangles != 2 {
		t.Fatalf("got %d vertices / %d edges / %d triangles, want 4/5/2", len(m.Vertices), len(m.Edges), m.Triangles)
	}
	lo, hi := m.Bounds()
	if lo != (scene.Vec3{0, 0, 0}) || hi != (scene.Vec3{2, 2, 0}) {
		t.Fatalf("bounds %v..%v", lo, hi)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.stl"), nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestReadRejectsEmptySolid(t *testing.T) {
	_, err := Read(strings.NewReader("solid empty\nendsolid empty\n"), "empty")
	if err == nil {
		t.Fatal("expected an error for a model without triangles")
	}
}

func TestLoadCancelled(t *testing.T) {
	path := writeModel(t, squareSTL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, path, nil); err == nil {
		t.Fatal("expected cancelled load to fail")
	}
}

func TestLoadAsyncDeliversOnce(t *testing.T) {
	path := writeModel(t, squareSTL)
	ch := LoadAsync(context.Background(), path, nil)
	select {
	case res := <-ch:
		if res.Err != nil || res.Mesh == nil || res.Path != path {
			t.Fatalf("unexpected result %+v", res)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("load did not finish")
	}

	ch = LoadAsync(context.Background(), filepath.Join(t.TempDir(), "missing.stl"), nil)
	res := <-ch
	if res.Err == nil || res.Mesh != nil {
		t.Fatalf("expected load error, got %+v", res)
	}
}
