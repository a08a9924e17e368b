package core

// Tunable is implemented by anything that exposes its parameters on the HUD.
type Tunable interface {
	Name() string
	Parameters() ParameterSnapshot
}
