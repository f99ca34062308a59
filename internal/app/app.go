//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"galaxy/internal/camera"
	"galaxy/internal/core"
	"galaxy/internal/galaxy"
	"galaxy/internal/render"
	"galaxy/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var background = color.RGBA{A: 255}

// Game adapts the galaxy animator to the ebiten.Game interface. ebiten calls
// Update and Draw once per frame, which is the only scheduling in the viewer.
type Game struct {
	galaxy   *galaxy.Galaxy
	animator *galaxy.Animator
	camera   *camera.Perspective
	controls *camera.OrbitControls
	orbit    *orbitInput
	renderer *render.PointsRenderer
	hud      *ui.HUD
	overlay  *ui.Overlay

	pixelRatio float64
	width      int
	height     int
}

// New constructs a Game, generating the initial galaxy from cfg.
func New(cfg *Config) (*Game, error) {
	ratio := pixelRatio()
	gx := galaxy.New(cfg.Galaxy(ratio))

	cam := camera.NewPerspective(float32(cfg.Width) / float32(cfg.Height))
	controls := camera.NewOrbitControls(cam)

	stage := render.DefaultVertexStage()
	stage.ApplyRandomness = cfg.Jitter
	renderer, err := render.NewPointsRenderer(cam, stage)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	g := &Game{
		galaxy:     gx,
		camera:     cam,
		controls:   controls,
		renderer:   renderer,
		hud:        ui.NewHUD(gx.Store, "Galaxy", int(float64(cfg.HUDWidth)*ratio)),
		overlay:    ui.NewOverlay(),
		pixelRatio: ratio,
	}
	g.orbit = newOrbitInput(controls, g.hud.Contains)
	g.animator = galaxy.NewAnimator(core.NewClock(), gx.Scene, gx.Current, controls)
	g.animator.Start()
	return g, nil
}

// Update handles per-frame logic and advances the animation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.galaxy.Generator.Regenerate(g.galaxy.Store.Params())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.galaxy.Reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		g.renderer.SetApplyRandomness(!g.renderer.ApplyRandomness())
	}

	g.overlay.Update()
	g.hud.Update(g.width - g.hud.Width())
	g.orbit.Update(g.height)
	g.animator.Tick()
	return nil
}

// Draw renders the current galaxy.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.animator.Render(g.renderer.Target(screen))
	g.hud.Draw(screen, g.width-g.hud.Width())
	g.overlay.Draw(screen, ui.Stats{
		Particles: g.galaxy.Current().Count(),
		Drawn:     g.renderer.Drawn(),
		Elapsed:   g.animator.Elapsed(),
		Seed:      g.galaxy.Generator.Seed(),
		Jitter:    g.renderer.ApplyRandomness(),
	})
}

// Layout renders at device resolution, capped at twice the logical size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	ratio := pixelRatio()
	if ratio != g.pixelRatio {
		g.pixelRatio = ratio
		g.galaxy.Generator.SetPixelRatio(ratio)
	}
	w := int(float64(outsideWidth) * ratio)
	h := int(float64(outsideHeight) * ratio)
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.camera.SetAspect(w, h)
	}
	return w, h
}

func pixelRatio() float64 {
	return math.Min(ebiten.DeviceScaleFactor(), 2)
}
