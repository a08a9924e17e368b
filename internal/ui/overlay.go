//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float32
}

// OverlayInfo carries the per-frame values shown by the debug overlay.
type OverlayInfo struct {
	Bounds   Rect
	Cursor   [2]float32
	Segments int
	Model    string
}

// Overlay draws optional debugging visuals on top of the scene.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update toggles visibility with the D key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.visible = !o.visible
	}
}

// Visible reports whether the overlay is shown.
func (o *Overlay) Visible() bool { return o.visible }

// Draw renders the wall rectangle, the cursor cross and frame statistics.
func (o *Overlay) Draw(screen *ebiten.Image, info OverlayInfo) {
	if !o.visible {
		return
	}
	wall := color.RGBA{R: 40, G: 160, B: 80, A: 255}
	b := info.Bounds
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 1, wall, false)

	cx, cy := info.Cursor[0], info.Cursor[1]
	vector.StrokeLine(screen, cx-6, cy, cx+6, cy, 1, wall, false)
	vector.StrokeLine(screen, cx, cy-6, cx, cy+6, 1, wall, false)

	msg := fmt.Sprintf("TPS %.1f  FPS %.1f\nedges %d\nmodel %s", ebiten.ActualTPS(), ebiten.ActualFPS(), info.Segments, info.Model)
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}
