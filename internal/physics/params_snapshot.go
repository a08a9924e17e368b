package physics

import (
	"strconv"

	"paperhog/internal/core"
)

// Name identifies the model on the HUD.
func (w *World) Name() string { return "repulsion" }

// Parameters reports the tunables and the live body state.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.params
	b := w.body
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Forces",
			Params: []core.Parameter{
				floatParam("repulsion", "Repulsion", p.Repulsion),
				floatParam("radius", "Radius", p.Radius),
				floatParam("friction", "Friction", p.Friction),
				floatParam("restitution", "Restitution", p.Restitution),
				floatParam("spin", "Spin", p.Spin),
			},
		},
		{
			Name: "Body",
			Params: []core.Parameter{
				floatParam("x", "X", b.X),
				floatParam("y", "Y", b.Y),
				floatParam("speed", "Speed", b.Speed()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "seed", Label: "Seed", Type: core.ParamTypeText, Value: strconv.FormatInt(w.Seed(), 10)},
			},
		},
	}}
}

// ParameterControls lists the values adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "repulsion", Label: "Repulsion", Step: 0.001, Min: 0, HasMin: true, Max: 0.1, HasMax: true},
		{Key: "radius", Label: "Radius", Step: 0.25, Min: 0, HasMin: true, Max: 10, HasMax: true},
		{Key: "friction", Label: "Friction", Step: 0.01, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "restitution", Label: "Restitution", Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "spin", Label: "Spin", Step: 0.005, Min: 0, HasMin: true, Max: 0.1, HasMax: true},
	}
}

// SetFloatParameter updates a tunable by key. Unknown keys are rejected.
func (w *World) SetFloatParameter(key string, value float64) bool {
	p := w.params
	switch key {
	case "repulsion":
		p.Repulsion = value
	case "radius":
		p.Radius = value
	case "friction":
		p.Friction = value
	case "restitution":
		p.Restitution = value
	case "spin":
		p.Spin = value
	default:
		return false
	}
	w.SetParams(p)
	return true
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
