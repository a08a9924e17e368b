// Package scene holds the camera and transform math that maps between the
// z=0 plane the body moves in, normalized device coordinates and screen
// pixels.
package scene

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"

	"paperhog/internal/physics"
)

// Camera is a perspective camera on the +Z axis looking toward the origin.
type Camera struct {
	// FOV is the vertical field of view in degrees.
	FOV    float64
	Z      float64
	Aspect float64
	Near   float64
}

// DefaultCamera returns a 75° camera five units from the origin.
func DefaultCamera(aspect float64) Camera {
	return Camera{FOV: 75, Z: 5, Aspect: aspect, Near: 0.1}
}

// SetViewport updates the aspect ratio from a pixel size.
func (c *Camera) SetViewport(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.Aspect = float64(w) / float64(h)
}

func (c Camera) tanHalfFOV() float64 {
	return math.Tan(c.FOV * math.Pi / 180 / 2)
}

// FrustumSize returns the visible width and height of the z=0 plane.
func (c Camera) FrustumSize() (w, h float64) {
	h = 2 * c.Z * c.tanHalfFOV()
	return h * c.Aspect, h
}

// Viewport returns the visible part of the z=0 plane as bounds.
func (c Camera) Viewport() physics.Bounds {
	w, h := c.FrustumSize()
	return physics.CenteredBounds(w, h)
}

// Unproject casts a ray from the camera through the NDC point and returns
// where it meets the z=0 plane.
func (c Camera) Unproject(ndc physics.Vec2) physics.Vec2 {
	t := c.tanHalfFOV()
	eye := vec3.T{0, 0, c.Z}
	dir := vec3.T{ndc[0] * t * c.Aspect, ndc[1] * t, -1}
	dir.Normalize()
	step := dir.Scaled(-eye[2] / dir[2])
	hit := vec3.Add(&eye, &step)
	return physics.Vec2{hit[0], hit[1]}
}

// Project maps a world point to screen pixels for a w×h target. The boolean
// is false when the point is behind the near plane.
func (c Camera) Project(p Vec3, w, h int) (float64, float64, bool) {
	depth := c.Z - p[2]
	if depth <= c.Near {
		return 0, 0, false
	}
	t := c.tanHalfFOV()
	nx := p[0] / depth / (t * c.Aspect)
	ny := p[1] / depth / t
	sx := (nx + 1) / 2 * float64(w)
	sy := (1 - ny) / 2 * float64(h)
	return sx, sy, true
}

// CursorNDC converts a cursor pixel position into normalized device
// coordinates with +Y up.
func CursorNDC(x, y, w, h int) physics.Vec2 {
	if w <= 0 || h <= 0 {
		return physics.Vec2{}
	}
	return physics.Vec2{
		float64(x)/float64(w)*2 - 1,
		-float64(y)/float64(h)*2 + 1,
	}
}
