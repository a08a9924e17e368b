package mesh

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hschendel/stl"
)

// Result is delivered once a load finishes. Exactly one of Mesh and Err is set.
type Result struct {
	Path string
	Mesh *Mesh
	Err  error
}

// ProgressFunc receives the fraction of the file read so far, in [0, 1].
type ProgressFunc func(fraction float64)

// Load reads an ASCII or binary STL file.
func Load(ctx context.Context, path string, progress ProgressFunc) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()

	var total int64
	if info, err := f.Stat(); err == nil {
		total = info.Size()
	}
	r := &progressReader{ctx: ctx, r: f, total: total, progress: progress}
	return Read(r, path)
}

// Read parses STL data from r. name is used in error messages only.
func Read(r io.Reader, name string) (*Mesh, error) {
	solid, err := stl.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parse model %s: %w", name, err)
	}
	m := FromSolid(solid)
	if len(m.Edges) == 0 {
		return nil, fmt.Errorf("parse model %s: no triangles", name)
	}
	return m, nil
}

// LoadAsync starts a Load on its own goroutine. The returned channel is
// buffered and receives exactly one Result.
func LoadAsync(ctx context.Context, path string, progress ProgressFunc) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		m, err := Load(ctx, path, progress)
		out <- Result{Path: path, Mesh: m, Err: err}
	}()
	return out
}

// progressReader counts bytes as they are consumed and aborts once ctx is done.
type progressReader struct {
	ctx      context.Context
	r        io.Reader
	read     int64
	total    int64
	progress ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	if err := p.ctx.Err(); err != nil {
		return 0, err
	}
	n, err := p.r.Read(b)
	p.read += int64(n)
	if p.progress != nil && p.total > 0 && n > 0 {
		p.progress(float64(p.read) / float64(p.total))
	}
	return n, err
}
