package physics

import "math"

// Params holds the tunables of the cursor-repulsion model.
type Params struct {
	// Repulsion scales the push applied per unit of penetration into Radius.
	Repulsion float64
	// Friction multiplies velocities every frame; 1 means no damping.
	Friction float64
	// Radius is the cursor distance below which repulsion kicks in.
	Radius float64
	// Restitution is the fraction of speed kept after a wall bounce.
	Restitution float64
	// Spin bounds the random rotation jitter added while repelled.
	Spin float64

	HalfWidth  float64
	HalfHeight float64
}

// DefaultParams returns the tuning used for the hedgehog scene.
func DefaultParams() Params {
	return Params{
		Repulsion:   0.008,
		Friction:    0.97,
		Radius:      2,
		Restitution: 0.8,
		Spin:        0.01,
		HalfWidth:   1,
		HalfHeight:  1,
	}
}

// Normalize clamps the parameters into ranges that keep the integration stable.
func (p Params) Normalize() Params {
	p.Friction = clamp01(p.Friction)
	p.Restitution = clamp01(p.Restitution)
	if p.Repulsion < 0 || math.IsNaN(p.Repulsion) {
		p.Repulsion = 0
	}
	if p.Radius < 0 || math.IsNaN(p.Radius) {
		p.Radius = 0
	}
	if p.Spin < 0 || math.IsNaN(p.Spin) {
		p.Spin = 0
	}
	if p.HalfWidth < 0 || math.IsNaN(p.HalfWidth) {
		p.HalfWidth = 0
	}
	if p.HalfHeight < 0 || math.IsNaN(p.HalfHeight) {
		p.HalfHeight = 0
	}
	return p
}

// RepulsionForce is the magnitude of the push at the given cursor distance.
// It is zero at or beyond Radius and grows linearly as dist shrinks to zero.
func (p Params) RepulsionForce(dist float64) float64 {
	if dist >= p.Radius {
		return 0
	}
	if dist < 0 {
		dist = 0
	}
	return (p.Radius - dist) * p.Repulsion
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
