package scene

import (
	"github.com/ungerik/go3d/float64/mat3"
	"github.com/ungerik/go3d/float64/vec3"
)

// Vec3 is a point or direction in world space.
type Vec3 = vec3.T

// Transform places model-space vertices in the world: scale first, then an
// XYZ Euler rotation, then an optional world-axis stretch, then translation.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    float64
	// Stretch multiplies the rotated point per world axis. The zero value
	// leaves the point unchanged.
	Stretch Vec3
}

// Mapper returns a function applying the transform, with the rotation
// matrices built once.
func (t Transform) Mapper() func(Vec3) Vec3 {
	var rx, ry, rz mat3.T
	rx.AssignXRotation(t.Rotation[0])
	ry.AssignYRotation(t.Rotation[1])
	rz.AssignZRotation(t.Rotation[2])
	stretch := t.Stretch != (Vec3{})
	return func(p Vec3) Vec3 {
		p.Scale(t.Scale)
		p = rz.MulVec3(&p)
		p = ry.MulVec3(&p)
		p = rx.MulVec3(&p)
		if stretch {
			p = Vec3{p[0] * t.Stretch[0], p[1] * t.Stretch[1], p[2] * t.Stretch[2]}
		}
		return vec3.Add(&p, &t.Position)
	}
}

// Apply maps a single model-space point into world space.
func (t Transform) Apply(p Vec3) Vec3 { return t.Mapper()(p) }
