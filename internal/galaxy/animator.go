package galaxy

import (
	"galaxy/internal/core"
	"galaxy/internal/scene"
)

// CameraUpdater advances camera interaction once per frame and reports
// whether the camera moved.
type CameraUpdater interface {
	Update() bool
}

// SceneRenderer draws a scene to whatever surface it is bound to.
type SceneRenderer interface {
	Render(sc *scene.Scene)
}

// Animator drives the time uniform of the live galaxy and delegates camera
// updates and drawing. The host loop calls Tick and Render once per frame.
type Animator struct {
	clock   *core.Clock
	scene   *scene.Scene
	current func() *scene.Points
	camera  CameraUpdater

	elapsed float64
}

// NewAnimator returns an animator reading the live galaxy from current on
// every tick, so regenerations are picked up without rewiring.
func NewAnimator(clock *core.Clock, sc *scene.Scene, current func() *scene.Points, camera CameraUpdater) *Animator {
	if clock == nil {
		clock = core.NewClock()
	}
	return &Animator{clock: clock, scene: sc, current: current, camera: camera}
}

// Start resets the clock.
func (a *Animator) Start() {
	a.clock.Start()
	a.elapsed = 0
}

// Tick writes the elapsed time into the live galaxy and updates the camera.
func (a *Animator) Tick() {
	a.elapsed = a.clock.Elapsed()
	if a.current != nil {
		if points := a.current(); points != nil {
			points.Material.SetUniform(scene.UniformTime, float32(a.elapsed))
		}
	}
	if a.camera != nil {
		a.camera.Update()
	}
}

// Render hands the scene to r.
func (a *Animator) Render(r SceneRenderer) {
	if r == nil {
		return
	}
	r.Render(a.scene)
}

// Elapsed returns the time written by the most recent Tick.
func (a *Animator) Elapsed() float64 { return a.elapsed }
