//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"paperhog/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a translucent parameter panel along the right edge of the view.
type HUD struct {
	target      core.Tunable
	width       int
	panel       *ebiten.Image
	lastHeight  int
	snapshot    core.ParameterSnapshot
	status      []string
	info        []string
	controls    []hudControlState
	floatSetter core.FloatParameterSetter
	offsetX     int
	title       string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided target and panel width.
func NewHUD(target core.Tunable, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{target: target, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(target)
	if provider, ok := target.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := target.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// SetStatus replaces the free-form lines shown under the controls.
func (h *HUD) SetStatus(lines ...string) {
	if h == nil {
		return
	}
	h.status = append(h.status[:0], lines...)
}

// Update refreshes the cached snapshot and handles clicks on the +/- buttons.
func (h *HUD) Update(screenWidth int) {
	if h == nil || h.target == nil {
		return
	}
	h.offsetX = screenWidth - h.width
	h.snapshot = h.target.Parameters()
	h.refreshControlValues()
	h.info = textLines(h.snapshot, h.info[:0])
	h.handleInput()
}

// Contains reports whether the screen point lies on the panel.
func (h *HUD) Contains(x, y int) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	return x >= h.offsetX && y >= 0 && y < h.lastHeight
}

// Draw paints the panel anchored to the right edge of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(target core.Tunable) string {
	if target == nil || target.Name() == "" {
		return "Controls"
	}
	name := target.Name()
	return fmt.Sprintf("%s%s Controls", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok || param.Type != core.ParamTypeFloat {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.value = formatFloat(state.control, parsed)
		state.floatValue = parsed
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return
	}
	px := mx - h.offsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if h.floatSetter == nil || !h.canAdjust(state, direction) {
		return
	}
	target := clampControl(state.control, state.floatValue+float64(direction)*controlStep(state.control))
	if math.Abs(target-state.floatValue) < 1e-9 {
		return
	}
	if h.floatSetter.SetFloatParameter(state.control.Key, target) {
		state.floatValue = target
		state.value = formatFloat(state.control, target)
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if h.floatSetter == nil || direction == 0 {
		return false
	}
	target := state.floatValue + float64(direction)*controlStep(state.control)
	if state.control.HasMin && direction < 0 && target < state.control.Min-1e-9 {
		return false
	}
	if state.control.HasMax && direction > 0 && target > state.control.Max+1e-9 {
		return false
	}
	return true
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		valueWidth := text.BoundString(face, state.value).Dx()
		valueX := state.minusRect.Min.X - buttonGap - valueWidth
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", state.hasValue && h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", state.hasValue && h.canAdjust(state, 1))
	}

	y := controlsTop + len(h.controls)*lineHeight + infoSpacing/2
	for _, line := range h.info {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += statusLineHeight
	}
	for _, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += statusLineHeight
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding     = 12
	lineHeight       = 36
	buttonSize       = 24
	buttonGap        = 6
	headerBaseline   = 18
	labelBaseline    = 24
	infoSpacing      = 36
	statusLineHeight = 16
	controlsTop      = panelPadding + headerBaseline + 14
)
