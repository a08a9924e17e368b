package anim

import (
	"math"
	"testing"
)

func TestSquashSettles(t *testing.T) {
	s := NewSquash(60, 2)
	s.Kick(true, false, 0.1)
	x, y := s.Scale()
	if x >= 1 || y <= 1 {
		t.Fatalf("side hit should flatten x and stretch y, got (%v,%v)", x, y)
	}
	for i := 0; i < 600; i++ {
		s.Update()
	}
	x, y = s.Scale()
	if math.Abs(x-1) > 1e-3 || math.Abs(y-1) > 1e-3 {
		t.Fatalf("squash should settle back to 1, got (%v,%v)", x, y)
	}
}

func TestSquashLimit(t *testing.T) {
	s := NewSquash(60, 100)
	s.Kick(false, true, 10)
	if _, y := s.Scale(); math.Abs(y-0.6) > 1e-12 {
		t.Fatalf("kick should be capped, y=%v", y)
	}
	s.Reset()
	if x, y := s.Scale(); x != 1 || y != 1 {
		t.Fatalf("reset scale (%v,%v)", x, y)
	}
}

func TestSquashIgnoresZeroSpeed(t *testing.T) {
	s := NewSquash(0, 1)
	s.Kick(true, true, 0)
	if x, y := s.Scale(); x != 1 || y != 1 {
		t.Fatalf("zero-speed kick changed scale to (%v,%v)", x, y)
	}
}
