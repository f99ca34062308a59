//go:build ebiten

package app

import (
	"galaxy/internal/camera"

	"github.com/hajimehoshi/ebiten/v2"
)

// orbitInput feeds mouse drags and the wheel into orbit controls. Drags that
// start over the HUD are ignored.
type orbitInput struct {
	controls *camera.OrbitControls
	blocked  func(x, y int) bool

	dragging bool
	button   ebiten.MouseButton
	lastX    int
	lastY    int
}

func newOrbitInput(controls *camera.OrbitControls, blocked func(x, y int) bool) *orbitInput {
	return &orbitInput{controls: controls, blocked: blocked}
}

func (o *orbitInput) Update(viewportHeight int) {
	x, y := ebiten.CursorPosition()

	if o.dragging {
		if !ebiten.IsMouseButtonPressed(o.button) {
			o.dragging = false
		} else {
			dx, dy := float64(x-o.lastX), float64(y-o.lastY)
			switch o.button {
			case ebiten.MouseButtonLeft:
				o.controls.RotateBy(dx, dy, viewportHeight)
			case ebiten.MouseButtonRight:
				o.controls.PanBy(dx, dy, viewportHeight)
			}
		}
	}
	if !o.dragging && (o.blocked == nil || !o.blocked(x, y)) {
		for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight} {
			if ebiten.IsMouseButtonPressed(b) {
				o.dragging = true
				o.button = b
				break
			}
		}
	}
	o.lastX, o.lastY = x, y

	if o.blocked != nil && o.blocked(x, y) {
		return
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		o.controls.Zoom(wy)
	}
}
