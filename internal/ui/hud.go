//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"galaxy/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel along the right edge of the view. Holding
// a +/- button edits the value in place; releasing the mouse commits.
type HUD struct {
	target     any
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	provider     core.ParameterProvider
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	colorSetter  core.ColorParameterSetter
	committer    core.ParameterCommitter
	panelOffsetX int
	title        string
	visible      bool

	held      *hudControlState
	heldDir   int
	heldTicks int
	dirty     bool

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for target. target is probed for the core
// parameter interfaces; missing ones disable the matching controls.
func NewHUD(target any, title string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{target: target, width: width, visible: true, title: title}
	if h.title == "" {
		h.title = "Controls"
	}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := target.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	h.provider, _ = target.(core.ParameterProvider)
	h.intSetter, _ = target.(core.IntParameterSetter)
	h.floatSetter, _ = target.(core.FloatParameterSetter)
	h.colorSetter, _ = target.(core.ColorParameterSetter)
	h.committer, _ = target.(core.ParameterCommitter)
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil || !h.visible {
		return 0
	}
	return h.width
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h != nil {
		h.visible = !h.visible
	}
}

// Contains reports whether the screen position is over the visible panel.
func (h *HUD) Contains(x, y int) bool {
	if h == nil || !h.visible || h.width <= 0 {
		return false
	}
	return x >= h.panelOffsetX && x < h.panelOffsetX+h.width && y >= 0 && (h.lastHeight == 0 || y < h.lastHeight)
}

// Update refreshes the cached parameter snapshot and handles HUD interactions.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	if h.provider == nil {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = h.provider.Parameters()
	h.refreshControlValues()
	if h.visible {
		h.handleInput()
	}
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 || !h.visible {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		case core.ParamTypeColor:
			c, err := colorful.Hex(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.colorValue = c.Hex()
			state.value = state.colorValue
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		h.held = nil
		h.heldDir = 0
		if h.dirty && h.committer != nil {
			h.committer.CommitParameters()
		}
		h.dirty = false
		return
	}
	if h.held != nil && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		h.heldTicks++
		if h.heldTicks > repeatDelay && (h.heldTicks-repeatDelay)%repeatInterval == 0 {
			h.applyAdjustment(h.held, h.heldDir)
		}
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		dir := 0
		switch {
		case pointInRect(px, my, state.minusRect):
			dir = -1
		case pointInRect(px, my, state.plusRect):
			dir = 1
		}
		if dir == 0 {
			continue
		}
		h.held = state
		h.heldDir = dir
		h.heldTicks = 0
		h.applyAdjustment(state, dir)
		return
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if state == nil || direction == 0 {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		target := state.control.StepInt(state.intValue, direction)
		if target == state.intValue {
			return
		}
		if h.intSetter.SetIntParameter(state.control.Key, target) {
			state.intValue = target
			state.floatValue = float64(target)
			state.value = strconv.Itoa(target)
			h.dirty = true
		}
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		target := state.control.StepFloat(state.floatValue, direction)
		if math.Abs(target-state.floatValue) < 1e-9 {
			return
		}
		if h.floatSetter.SetFloatParameter(state.control.Key, target) {
			state.floatValue = target
			state.value = formatFloat(state.control, target)
			h.dirty = true
		}
	case core.ParamTypeColor:
		if h.colorSetter == nil {
			return
		}
		target, err := RotateHue(state.colorValue, float64(direction)*state.control.Step)
		if err != nil || target == state.colorValue {
			return
		}
		if h.colorSetter.SetColorParameter(state.control.Key, target) {
			state.colorValue = target
			state.value = target
			h.dirty = true
		}
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if state == nil || direction == 0 {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		return h.intSetter != nil && state.control.StepInt(state.intValue, direction) != state.intValue
	case core.ParamTypeFloat:
		return h.floatSetter != nil && math.Abs(state.control.StepFloat(state.floatValue, direction)-state.floatValue) >= 1e-9
	case core.ParamTypeColor:
		return h.colorSetter != nil
	default:
		return false
	}
}

func (h *HUD) drawControls() {
	if h.panel == nil {
		return
	}
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		infoY := headerY + infoSpacing
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, infoY, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		top := state.top
		labelY := top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		value := state.value
		bounds := text.BoundString(face, value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, value, face, valueX, labelY, valueColor)

		if state.control.Type == core.ParamTypeColor && state.hasValue {
			if c, err := colorful.Hex(state.colorValue); err == nil {
				r, g, b := c.RGB255()
				swatch := image.Rect(valueX-buttonGap-swatchSize, state.minusRect.Min.Y+4, valueX-buttonGap, state.minusRect.Max.Y-4)
				h.fillRect(swatch, color.RGBA{R: r, G: g, B: b, A: 255})
			}
		}

		minusEnabled := state.hasValue && h.canAdjust(state, -1)
		plusEnabled := state.hasValue && h.canAdjust(state, 1)
		h.drawButton(state.minusRect, "-", minusEnabled)
		h.drawButton(state.plusRect, "+", plusEnabled)
	}
}

func (h *HUD) fillRect(rect image.Rectangle, c color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if len(h.controls) == 0 || h.width <= 0 {
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

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	colorValue string
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	swatchSize     = 16
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14

	// Ticks before a held button starts repeating, then ticks between repeats.
	repeatDelay    = 20
	repeatInterval = 3
)
