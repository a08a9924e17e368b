// Package paper draws the notebook-paper texture used as the scene backdrop.
package paper

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Style controls the geometry and palette of the generated paper.
type Style struct {
	PxPerCM float64

	Paper  color.RGBA
	Rule   color.RGBA
	Margin color.RGBA

	RuleWidth   float64
	MarginWidth float64

	// RuleShortCM and RuleLongCM are the alternating gaps between horizontal rules.
	RuleShortCM float64
	RuleLongCM  float64

	// DiagonalAngle is measured from the horizontal, in radians.
	DiagonalAngle     float64
	DiagonalSpacingCM float64

	// MarginInsetCM is the distance of the margin line from the right edge.
	MarginInsetCM float64
}

// DefaultStyle returns light-blue ruled paper with a red right-hand margin.
func DefaultStyle() Style {
	return Style{
		PxPerCM:           40,
		Paper:             color.RGBA{R: 0xfd, G: 0xfd, B: 0xfd, A: 0xff},
		Rule:              color.RGBA{R: 0xad, G: 0xd8, B: 0xe6, A: 0xff},
		Margin:            color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
		RuleWidth:         1,
		MarginWidth:       1.5,
		RuleShortCM:       0.5,
		RuleLongCM:        1,
		DiagonalAngle:     math.Pi / 3,
		DiagonalSpacingCM: 2.5,
		MarginInsetCM:     2,
	}
}

// Draw renders a w×h sheet of paper. Non-positive dimensions are clamped to 1.
func Draw(w, h int, style Style) *image.RGBA {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(style.Paper), image.Point{}, draw.Src)

	fw, fh := float64(w), float64(h)
	p := newPen(img)
	rule := image.NewUniform(style.Rule)
	for _, y := range RuleOffsets(fh, style) {
		p.stroke(0, y, fw, y, style.RuleWidth, rule)
	}

	run := DiagonalRun(fh, style)
	for _, x := range DiagonalStarts(fw, fh, style) {
		p.stroke(x, 0, x-run, fh, style.RuleWidth, rule)
	}

	mx := MarginX(fw, style)
	p.stroke(mx, 0, mx, fh, style.MarginWidth, image.NewUniform(style.Margin))
	return img
}

// RuleOffsets lists the y coordinate of every horizontal rule, starting at
// the top edge and alternating short and long gaps.
func RuleOffsets(h float64, style Style) []float64 {
	short := style.RuleShortCM * style.PxPerCM
	long := style.RuleLongCM * style.PxPerCM
	if short <= 0 || long <= 0 {
		return nil
	}
	var ys []float64
	toggle := true
	for y := 0.0; y < h; {
		ys = append(ys, y)
		if toggle {
			y += short
		} else {
			y += long
		}
		toggle = !toggle
	}
	return ys
}

// DiagonalRun is the horizontal distance a diagonal travels from top to bottom.
func DiagonalRun(h float64, style Style) float64 {
	return h / math.Tan(style.DiagonalAngle)
}

// DiagonalStarts lists the top-edge x coordinate of every diagonal rule,
// walking leftwards from the start that still reaches the bottom-right corner.
func DiagonalStarts(w, h float64, style Style) []float64 {
	step := style.DiagonalSpacingCM * style.PxPerCM / math.Sin(style.DiagonalAngle)
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil
	}
	var xs []float64
	for x := w + DiagonalRun(h, style); x > 0; x -= step {
		xs = append(xs, x)
	}
	return xs
}

// MarginX returns the x coordinate of the red margin line.
func MarginX(w float64, style Style) float64 {
	return w - style.MarginInsetCM*style.PxPerCM
}
