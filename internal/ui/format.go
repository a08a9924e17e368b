package ui

import (
	"strconv"

	"paperhog/internal/core"
)

const defaultStep = 0.05

func controlStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return defaultStep
	}
	return ctrl.Step
}

// clampControl limits value to the control's optional bounds.
func clampControl(ctrl core.ParameterControl, value float64) float64 {
	if ctrl.HasMin && value < ctrl.Min {
		value = ctrl.Min
	}
	if ctrl.HasMax && value > ctrl.Max {
		value = ctrl.Max
	}
	return value
}

// formatFloat prints value with enough precision to show one step change.
func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := controlStep(ctrl)
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// textLines appends a "Label: value" line for every read-only text parameter.
func textLines(snap core.ParameterSnapshot, dst []string) []string {
	for _, group := range snap.Groups {
		for _, param := range group.Params {
			if param.Type != core.ParamTypeText {
				continue
			}
			dst = append(dst, param.Label+": "+param.Value)
		}
	}
	return dst
}
