//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Stats is the per-frame information shown by the overlay.
type Stats struct {
	Particles int
	Drawn     int
	Elapsed   float64
	Seed      int64
	Jitter    bool
}

// Overlay prints frame statistics and key bindings in the top-left corner.
type Overlay struct {
	showStats bool
	showHelp  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{showStats: true}
}

// Update toggles the overlay sections.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.showHelp = !o.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		o.showStats = !o.showStats
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, stats Stats) {
	msg := ""
	if o.showStats {
		msg = fmt.Sprintf("TPS %0.1f  FPS %0.1f\nparticles %d (drawn %d)\nt %.2fs  seed %d  jitter %v\n",
			ebiten.ActualTPS(), ebiten.ActualFPS(), stats.Particles, stats.Drawn, stats.Elapsed, stats.Seed, stats.Jitter)
	}
	if o.showHelp {
		msg += "\ndrag: orbit  right-drag: pan  wheel: zoom\nR: regenerate  S: new seed  J: jitter\nH: controls  F1: help  F2: stats  Q: quit\n"
	}
	if msg != "" {
		ebitenutil.DebugPrint(screen, msg)
	}
}
