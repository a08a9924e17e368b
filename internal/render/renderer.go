//go:build ebiten

package render

import (
	"image/color"

	"paperhog/internal/mesh"
	"paperhog/internal/paper"
	"paperhog/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BackgroundPainter keeps the paper texture uploaded and redraws it whenever
// the viewport size changes.
type BackgroundPainter struct {
	style paper.Style
	w, h  int
	img   *ebiten.Image
}

// NewBackgroundPainter returns a painter that draws paper in the given style.
func NewBackgroundPainter(style paper.Style) *BackgroundPainter {
	return &BackgroundPainter{style: style}
}

// Resize regenerates the texture if the size differs from the cached one.
func (bp *BackgroundPainter) Resize(w, h int) {
	if w <= 0 || h <= 0 || (w == bp.w && h == bp.h && bp.img != nil) {
		return
	}
	if bp.img != nil {
		bp.img.Dispose()
	}
	bp.img = ebiten.NewImageFromImage(paper.Draw(w, h, bp.style))
	bp.w, bp.h = w, h
}

// Draw copies the texture onto dst.
func (bp *BackgroundPainter) Draw(dst *ebiten.Image) {
	if bp.img == nil {
		return
	}
	dst.DrawImage(bp.img, nil)
}

// WireframePainter strokes every mesh edge in a single pen colour.
type WireframePainter struct {
	clr   color.Color
	width float32
	segs  []Segment
}

// NewWireframePainter returns a painter using the given pen colour and width.
func NewWireframePainter(clr color.Color, width float32) *WireframePainter {
	if width <= 0 {
		width = 1
	}
	return &WireframePainter{clr: clr, width: width}
}

// Draw projects the mesh with the transform and camera and strokes its edges.
func (wp *WireframePainter) Draw(dst *ebiten.Image, m *mesh.Mesh, tr scene.Transform, cam scene.Camera) {
	b := dst.Bounds()
	wp.segs = projectEdges(wp.segs, m, tr, cam, b.Dx(), b.Dy())
	for _, s := range wp.segs {
		vector.StrokeLine(dst, s.X0, s.Y0, s.X1, s.Y1, wp.width, wp.clr, true)
	}
}

// Segments returns how many edges were stroked by the last Draw.
func (wp *WireframePainter) Segments() int { return len(wp.segs) }
