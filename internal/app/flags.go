package app

import (
	"flag"

	"paperhog/internal/physics"
	"paperhog/internal/scene"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Model  string
	Center bool

	Width  int
	Height int
	TPS    int
	Seed   int64

	FOV     float64
	CameraZ float64

	Repulsion   float64
	Friction    float64
	Restitution float64

	HUD bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	p := physics.DefaultParams()
	cam := scene.DefaultCamera(1)
	return &Config{
		Model:       "hedgehog.stl",
		Width:       1280,
		Height:      720,
		TPS:         60,
		Seed:        42,
		FOV:         cam.FOV,
		CameraZ:     cam.Z,
		Repulsion:   p.Repulsion,
		Friction:    p.Friction,
		Restitution: p.Restitution,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Model, "model", c.Model, "STL model to load")
	fs.BoolVar(&c.Center, "center", c.Center, "recentre the model on its bounding box")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the rotation jitter")
	fs.Float64Var(&c.FOV, "fov", c.FOV, "vertical field of view in degrees")
	fs.Float64Var(&c.CameraZ, "camera-z", c.CameraZ, "camera distance from the scene plane")
	fs.Float64Var(&c.Repulsion, "repulsion", c.Repulsion, "cursor repulsion strength")
	fs.Float64Var(&c.Friction, "friction", c.Friction, "per-frame velocity multiplier")
	fs.Float64Var(&c.Restitution, "restitution", c.Restitution, "speed kept after a wall bounce")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel on start")
}

// Normalize replaces out-of-range values with defaults.
func (c *Config) Normalize() {
	def := NewConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.TPS <= 0 {
		c.TPS = def.TPS
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		c.FOV = def.FOV
	}
	if c.CameraZ <= 0 {
		c.CameraZ = def.CameraZ
	}
}

// PhysicsParams returns the physics tuning selected by the flags.
func (c *Config) PhysicsParams() physics.Params {
	p := physics.DefaultParams()
	p.Repulsion = c.Repulsion
	p.Friction = c.Friction
	p.Restitution = c.Restitution
	return p.Normalize()
}

// Camera returns the camera selected by the flags for the configured window.
func (c *Config) Camera() scene.Camera {
	cam := scene.DefaultCamera(1)
	cam.FOV = c.FOV
	cam.Z = c.CameraZ
	cam.SetViewport(c.Width, c.Height)
	return cam
}
