//go:build ebiten

package render

import (
	_ "embed"
	"fmt"
	"image/color"

	"galaxy/internal/camera"
	"galaxy/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed galaxy.kage
var galaxyShaderSrc []byte

const (
	spriteSize = 32
	// uint16 indices address at most 65535 vertices per draw call.
	maxQuadsPerBatch = 65535 / 4
)

// PointsRenderer draws scene.Points objects as additive soft discs.
type PointsRenderer struct {
	stage  VertexStage
	cam    *camera.Perspective
	shader *ebiten.Shader
	sprite *ebiten.Image

	points   []Point
	vertices []ebiten.Vertex
	indices  []uint16

	drawn int
}

// NewPointsRenderer compiles the point shader. A compile failure is fatal
// for the session; callers should abort.
func NewPointsRenderer(cam *camera.Perspective, stage VertexStage) (*PointsRenderer, error) {
	shader, err := ebiten.NewShader(galaxyShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("compile galaxy shader: %w", err)
	}
	sprite := ebiten.NewImage(spriteSize, spriteSize)
	sprite.Fill(color.White)
	return &PointsRenderer{stage: stage, cam: cam, shader: shader, sprite: sprite}, nil
}

// SetApplyRandomness toggles adding the randomness attribute to positions.
func (r *PointsRenderer) SetApplyRandomness(on bool) { r.stage.ApplyRandomness = on }

// ApplyRandomness reports whether the randomness attribute is applied.
func (r *PointsRenderer) ApplyRandomness() bool { return r.stage.ApplyRandomness }

// Drawn returns the number of points drawn by the last frame.
func (r *PointsRenderer) Drawn() int { return r.drawn }

// Target binds the renderer to screen for one frame.
func (r *PointsRenderer) Target(screen *ebiten.Image) Frame {
	return Frame{renderer: r, screen: screen}
}

// Frame is a renderer bound to a destination image.
type Frame struct {
	renderer *PointsRenderer
	screen   *ebiten.Image
}

// Render draws every points object in sc.
func (f Frame) Render(sc *scene.Scene) {
	r := f.renderer
	r.drawn = 0
	if sc == nil || f.screen == nil {
		return
	}
	bounds := f.screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	view := r.cam.View()
	proj := r.cam.Projection()
	for _, obj := range sc.Objects() {
		pts, ok := obj.(*scene.Points)
		if !ok || pts.Disposed() {
			continue
		}
		r.points = r.stage.Project(r.points[:0], pts, view, proj, w, h)
		r.drawPoints(f.screen, pts.Material)
		r.drawn += len(r.points)
	}
}

func (r *PointsRenderer) drawPoints(screen *ebiten.Image, mat *scene.ShaderMaterial) {
	op := &ebiten.DrawTrianglesShaderOptions{}
	op.Images[0] = r.sprite
	if mat.Blending == scene.BlendAdditive {
		op.Blend = ebiten.BlendLighter
	}

	for start := 0; start < len(r.points); start += maxQuadsPerBatch {
		end := start + maxQuadsPerBatch
		if end > len(r.points) {
			end = len(r.points)
		}
		r.vertices = r.vertices[:0]
		r.indices = r.indices[:0]
		for _, p := range r.points[start:end] {
			r.appendQuad(p)
		}
		screen.DrawTrianglesShader(r.vertices, r.indices, r.shader, op)
	}
}

func (r *PointsRenderer) appendQuad(p Point) {
	half := p.Size / 2
	base := uint16(len(r.vertices))
	x0, y0 := p.X-half, p.Y-half
	x1, y1 := p.X+half, p.Y+half
	r.vertices = append(r.vertices,
		ebiten.Vertex{DstX: x0, DstY: y0, SrcX: 0, SrcY: 0, ColorR: p.R, ColorG: p.G, ColorB: p.B, ColorA: 1},
		ebiten.Vertex{DstX: x1, DstY: y0, SrcX: spriteSize, SrcY: 0, ColorR: p.R, ColorG: p.G, ColorB: p.B, ColorA: 1},
		ebiten.Vertex{DstX: x0, DstY: y1, SrcX: 0, SrcY: spriteSize, ColorR: p.R, ColorG: p.G, ColorB: p.B, ColorA: 1},
		ebiten.Vertex{DstX: x1, DstY: y1, SrcX: spriteSize, SrcY: spriteSize, ColorR: p.R, ColorG: p.G, ColorB: p.B, ColorA: 1},
	)
	r.indices = append(r.indices,
		base, base+1, base+2,
		base+1, base+3, base+2,
	)
}
