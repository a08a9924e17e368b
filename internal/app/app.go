//go:build ebiten

package app

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"math"
	"path/filepath"

	"paperhog/internal/anim"
	"paperhog/internal/mesh"
	"paperhog/internal/paper"
	"paperhog/internal/physics"
	"paperhog/internal/render"
	"paperhog/internal/scene"
	"paperhog/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	modelScale = 2
	hudWidth   = 220
)

// Game adapts the repulsion scene to the ebiten.Game interface.
type Game struct {
	cfg    *Config
	world  *physics.World
	camera scene.Camera
	squash *anim.Squash

	background *render.BackgroundPainter
	wireframe  *render.WireframePainter
	hud        *ui.HUD
	overlay    *ui.Overlay

	model   *mesh.Mesh
	loading <-chan mesh.Result
	cancel  context.CancelFunc
	status  string

	cursor     physics.Vec2
	lastMouseX int
	lastMouseY int

	w, h     int
	appliedW int
	appliedH int
	paused   bool
	showHUD  bool
}

// New constructs a Game and starts loading the configured model.
func New(cfg *Config) *Game {
	cfg.Normalize()
	world := physics.New(cfg.PhysicsParams(), cfg.Seed)
	g := &Game{
		cfg:        cfg,
		world:      world,
		camera:     cfg.Camera(),
		squash:     anim.NewSquash(cfg.TPS, 1.5),
		background: render.NewBackgroundPainter(paper.DefaultStyle()),
		wireframe:  render.NewWireframePainter(color.RGBA{B: 0xff, A: 0xff}, 1),
		hud:        ui.NewHUD(world, hudWidth),
		overlay:    ui.NewOverlay(),
		w:          cfg.Width,
		h:          cfg.Height,
		lastMouseX: -1,
		lastMouseY: -1,
		showHUD:    cfg.HUD,
	}
	g.startLoad(cfg.Model)
	return g
}

func (g *Game) startLoad(path string) {
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	g.status = "loading " + filepath.Base(path)

	lastDecile := -1
	g.loading = mesh.LoadAsync(ctx, path, func(fraction float64) {
		decile := int(fraction * 10)
		if decile == lastDecile {
			return
		}
		lastDecile = decile
		log.Printf("%.0f%% loaded", fraction*100)
	})
}

// Close stops a pending model load.
func (g *Game) Close() {
	if g.cancel != nil {
		g.cancel()
	}
}

// Reset puts the body back at rest in the centre of the view.
func (g *Game) Reset() {
	g.world.Reset(g.cfg.Seed)
	g.squash.Reset()
}

// Update handles per-frame logic and advances the physics.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	g.pollModel()
	g.syncViewport()
	g.overlay.Update()
	if g.showHUD {
		g.hud.SetStatus("model: "+g.status, "space pause  r reset", "d debug  h hide")
		g.hud.Update(g.w)
	}
	g.trackCursor()

	if g.model == nil || g.paused {
		return nil
	}
	hit := g.world.Step(g.camera.Unproject(g.cursor))
	if hit.Hit() {
		g.squash.Kick(hit.X, hit.Y, hit.Speed)
	}
	g.squash.Update()
	return nil
}

func (g *Game) pollModel() {
	if g.loading == nil {
		return
	}
	select {
	case res := <-g.loading:
		g.loading = nil
		if res.Err != nil {
			log.Printf("An error happened while loading the model: %v", res.Err)
			g.status = "failed"
			return
		}
		if g.cfg.Center {
			res.Mesh.Center()
		}
		g.model = res.Mesh
		g.status = fmt.Sprintf("%s (%d tris)", filepath.Base(res.Path), res.Mesh.Triangles)
		log.Printf("Model loaded successfully: %d vertices, %d edges", len(res.Mesh.Vertices), len(res.Mesh.Edges))
	default:
	}
}

// syncViewport applies a window size change recorded by Layout.
func (g *Game) syncViewport() {
	if g.w == g.appliedW && g.h == g.appliedH {
		return
	}
	g.camera.SetViewport(g.w, g.h)
	g.world.SetViewport(g.camera.Viewport())
	g.background.Resize(g.w, g.h)
	g.appliedW, g.appliedH = g.w, g.h
}

// trackCursor updates the NDC cursor only when the mouse actually moves, so
// the starting cursor sits in the centre of the view.
func (g *Game) trackCursor() {
	mx, my := ebiten.CursorPosition()
	if mx == g.lastMouseX && my == g.lastMouseY {
		return
	}
	first := g.lastMouseX < 0
	g.lastMouseX, g.lastMouseY = mx, my
	if first && mx == 0 && my == 0 {
		return
	}
	if g.showHUD && g.hud.Contains(mx, my) {
		return
	}
	g.cursor = scene.CursorNDC(mx, my, g.w, g.h)
}

func (g *Game) transform() scene.Transform {
	b := g.world.Body()
	sx, sy := g.squash.Scale()
	return scene.Transform{
		Position: scene.Vec3{b.X, b.Y, 0},
		Rotation: scene.Vec3{-math.Pi/2 + b.RotX, b.RotY, 0},
		Scale:    modelScale,
		Stretch:  scene.Vec3{sx, sy, 1},
	}
}

// Draw renders the paper, the wireframe and the UI layers.
func (g *Game) Draw(screen *ebiten.Image) {
	g.background.Draw(screen)
	if g.model != nil {
		g.wireframe.Draw(screen, g.model, g.transform(), g.camera)
	}
	if g.overlay.Visible() {
		g.overlay.Draw(screen, g.overlayInfo())
	}
	if g.showHUD {
		g.hud.Draw(screen)
	}
}

func (g *Game) overlayInfo() ui.OverlayInfo {
	bounds := g.world.Bounds()
	x0, y0, _ := g.camera.Project(scene.Vec3{bounds.MinX, bounds.MaxY, 0}, g.w, g.h)
	x1, y1, _ := g.camera.Project(scene.Vec3{bounds.MaxX, bounds.MinY, 0}, g.w, g.h)
	cursor := g.camera.Unproject(g.cursor)
	cx, cy, _ := g.camera.Project(scene.Vec3{cursor[0], cursor[1], 0}, g.w, g.h)
	return ui.OverlayInfo{
		Bounds:   ui.Rect{X: float32(x0), Y: float32(y0), W: float32(x1 - x0), H: float32(y1 - y0)},
		Cursor:   [2]float32{float32(cx), float32(cy)},
		Segments: g.wireframe.Segments(),
		Model:    g.status,
	}
}

// Layout tracks the window size so the scene always fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.w, g.h = outsideWidth, outsideHeight
	}
	return g.w, g.h
}
