package ui

import (
	"testing"

	"paperhog/internal/core"
)

func TestFormatFloatPrecision(t *testing.T) {
	tests := []struct {
		step  float64
		value float64
		want  string
	}{
		{0.0005, 0.008, "0.0080"},
		{0.001, 0.008, "0.008"},
		{0.01, 0.97, "0.97"},
		{0.25, 2, "2.0"},
		{0, 0.8, "0.80"},
	}
	for _, tc := range tests {
		got := formatFloat(core.ParameterControl{Step: tc.step}, tc.value)
		if got != tc.want {
			t.Fatalf("formatFloat(step=%v, %v) = %q, want %q", tc.step, tc.value, got, tc.want)
		}
	}
}

func TestClampControl(t *testing.T) {
	ctrl := core.ParameterControl{Min: 0, HasMin: true, Max: 1, HasMax: true}
	if v := clampControl(ctrl, 1.2); v != 1 {
		t.Fatalf("clamp above max = %v", v)
	}
	if v := clampControl(ctrl, -0.1); v != 0 {
		t.Fatalf("clamp below min = %v", v)
	}
	if v := clampControl(core.ParameterControl{}, 5); v != 5 {
		t.Fatalf("unbounded control changed value to %v", v)
	}
}

func TestTextLinesSkipsFloats(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Forces", Params: []core.Parameter{{Key: "radius", Label: "Radius", Type: core.ParamTypeFloat, Value: "2"}}},
		{Name: "Run", Params: []core.Parameter{{Key: "seed", Label: "Seed", Type: core.ParamTypeText, Value: "7"}}},
	}}
	got := textLines(snap, nil)
	if len(got) != 1 || got[0] != "Seed: 7" {
		t.Fatalf("textLines = %q, want [\"Seed: 7\"]", got)
	}
}
