// Package anim holds purely visual effects layered over the physics state.
package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Squash springs a scale factor back to 1 after wall impacts. X and Y are
// tracked separately so a side hit flattens horizontally and a floor hit
// flattens vertically.
type Squash struct {
	spring harmonica.Spring
	gain   float64
	limit  float64

	x, vx float64
	y, vy float64
}

// NewSquash builds a squash effect updated fps times per second. gain maps
// impact speed to the initial spring kick.
func NewSquash(fps int, gain float64) *Squash {
	if fps <= 0 {
		fps = 60
	}
	return &Squash{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 12.0, 0.35),
		gain:   gain,
		limit:  0.4,
		x:      1,
		y:      1,
	}
}

// Kick squashes along the struck axes in proportion to the impact speed.
func (s *Squash) Kick(hitX, hitY bool, speed float64) {
	amount := math.Min(speed*s.gain, s.limit)
	if amount <= 0 {
		return
	}
	if hitX {
		s.x = 1 - amount
		s.y = 1 + amount/2
	}
	if hitY {
		s.y = 1 - amount
		s.x = 1 + amount/2
	}
}

// Update advances the spring by one frame.
func (s *Squash) Update() {
	s.x, s.vx = s.spring.Update(s.x, s.vx, 1)
	s.y, s.vy = s.spring.Update(s.y, s.vy, 1)
}

// Scale returns the current per-axis scale factors.
func (s *Squash) Scale() (float64, float64) { return s.x, s.y }

// Reset snaps back to the rest shape.
func (s *Squash) Reset() {
	s.x, s.vx = 1, 0
	s.y, s.vy = 1, 0
}
