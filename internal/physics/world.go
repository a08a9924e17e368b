// Package physics moves a single body away from the cursor and bounces it
// off the viewport walls.
package physics

import (
	"math"

	"github.com/ungerik/go3d/float64/vec2"

	"paperhog/internal/core"
)

// Vec2 is a point or direction in the z=0 plane.
type Vec2 = vec2.T

// Body is the animated object: a planar position and velocity plus the
// rotation it tumbles through while being pushed around.
type Body struct {
	X, Y   float64
	VX, VY float64

	RotX, RotY   float64
	RotVX, RotVY float64
}

// Speed returns the magnitude of the planar velocity.
func (b Body) Speed() float64 {
	v := vec2.T{b.VX, b.VY}
	return v.Length()
}

func (b Body) finite() bool {
	for _, v := range [...]float64{b.X, b.Y, b.VX, b.VY, b.RotX, b.RotY, b.RotVX, b.RotVY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Bounds limits where the body centre may travel.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Inset shrinks the bounds by the given half extents. Axes that would invert
// collapse onto their midpoint.
func (b Bounds) Inset(halfW, halfH float64) Bounds {
	out := Bounds{
		MinX: b.MinX + halfW,
		MaxX: b.MaxX - halfW,
		MinY: b.MinY + halfH,
		MaxY: b.MaxY - halfH,
	}
	if out.MinX > out.MaxX {
		mid := (b.MinX + b.MaxX) / 2
		out.MinX, out.MaxX = mid, mid
	}
	if out.MinY > out.MaxY {
		mid := (b.MinY + b.MaxY) / 2
		out.MinY, out.MaxY = mid, mid
	}
	return out
}

// Contains reports whether the point lies inside the bounds, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// CenteredBounds returns the bounds of a w×h rectangle centred on the origin.
func CenteredBounds(w, h float64) Bounds {
	return Bounds{MinX: -w / 2, MaxX: w / 2, MinY: -h / 2, MaxY: h / 2}
}

// Impact records which walls were struck during a step and how hard.
type Impact struct {
	X, Y  bool
	Speed float64
}

// Hit reports whether any wall was struck.
func (i Impact) Hit() bool { return i.X || i.Y }

// World owns the body and advances it once per frame.
type World struct {
	params Params
	body   Body
	bounds Bounds
	rng    *core.RNG
	seed   int64
}

// New constructs a World at rest in the origin.
func New(params Params, seed int64) *World {
	w := &World{params: params.Normalize()}
	w.Reset(seed)
	return w
}

// Reset puts the body back at rest in the origin and reseeds the jitter.
func (w *World) Reset(seed int64) {
	w.seed = seed
	w.body = Body{}
	w.rng = core.NewRNG(seed)
}

// Seed returns the seed used by the last Reset.
func (w *World) Seed() int64 { return w.seed }

// Body returns a copy of the current body state.
func (w *World) Body() Body { return w.body }

// SetBody replaces the body state.
func (w *World) SetBody(b Body) { w.body = b }

// Params returns the active parameters.
func (w *World) Params() Params { return w.params }

// SetParams replaces the parameters after normalizing them.
func (w *World) SetParams(p Params) { w.params = p.Normalize() }

// Bounds returns the region the body centre is confined to.
func (w *World) Bounds() Bounds { return w.bounds }

// SetViewport updates the wall positions from the visible area of the z=0
// plane, shrinking it by the body half extents.
func (w *World) SetViewport(view Bounds) {
	w.bounds = view.Inset(w.params.HalfWidth, w.params.HalfHeight)
}

// Step advances the body by one frame given the cursor position on the z=0
// plane.
func (w *World) Step(cursor Vec2) Impact {
	p := w.params
	b := &w.body

	pos := vec2.T{b.X, b.Y}
	d := vec2.Sub(&pos, &cursor)
	dist := d.Length()
	if dist < p.Radius {
		force := p.RepulsionForce(dist)
		angle := math.Atan2(d[1], d[0])
		b.VX += math.Cos(angle) * force
		b.VY += math.Sin(angle) * force
		b.RotVX += (w.rng.Float64() - 0.5) * p.Spin
		b.RotVY += (w.rng.Float64() - 0.5) * p.Spin
	}

	b.VX *= p.Friction
	b.VY *= p.Friction
	b.RotVX *= p.Friction
	b.RotVY *= p.Friction

	b.X += b.VX
	b.Y += b.VY
	b.RotX += b.RotVX
	b.RotY += b.RotVY

	var hit Impact
	if !b.finite() {
		*b = Body{}
		return hit
	}

	speed := b.Speed()
	b.X, b.VX, hit.X = reflect(b.X, b.VX, w.bounds.MinX, w.bounds.MaxX, p.Restitution)
	b.Y, b.VY, hit.Y = reflect(b.Y, b.VY, w.bounds.MinY, w.bounds.MaxY, p.Restitution)
	if hit.Hit() {
		hit.Speed = speed
	}
	return hit
}

// reflect clamps pos into [lo, hi] and reverses the velocity with the given
// restitution when a wall was crossed.
func reflect(pos, vel, lo, hi, restitution float64) (float64, float64, bool) {
	switch {
	case pos < lo:
		return lo, vel * -restitution, true
	case pos > hi:
		return hi, vel * -restitution, true
	}
	return pos, vel, false
}
