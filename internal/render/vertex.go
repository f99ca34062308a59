package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"galaxy/internal/scene"
)

// Point is a projected point in screen pixels.
type Point struct {
	X, Y    float32
	Size    float32
	R, G, B float32
}

// VertexStage turns points geometry into screen-space points. Each point
// swirls around the y axis at an angular speed inversely proportional to its
// distance from the center, driven by the time uniform.
type VertexStage struct {
	// SpinSpeed scales the time uniform before it is divided by distance.
	SpinSpeed float64
	// ApplyRandomness adds the per-point randomness attribute after the swirl.
	ApplyRandomness bool
}

// DefaultVertexStage returns the stage used by the viewer.
func DefaultVertexStage() VertexStage {
	return VertexStage{SpinSpeed: 0.2, ApplyRandomness: true}
}

// Project appends the visible points of pts to dst. width and height are the
// target size in pixels.
func (v VertexStage) Project(dst []Point, pts *scene.Points, view, proj mgl32.Mat4, width, height int) []Point {
	if pts == nil || pts.Geometry == nil || width <= 0 || height <= 0 {
		return dst
	}
	geo := pts.Geometry
	position := geo.Attribute(scene.AttributePosition)
	if position == nil {
		return dst
	}
	colors := geo.Attribute(scene.AttributeColor)
	scales := geo.Attribute(scene.AttributeScale)
	randomness := geo.Attribute(scene.AttributeRandomness)

	var sizeUniform, elapsed float64
	if u := pts.Material.Uniform(scene.UniformSize); u != nil {
		sizeUniform = float64(u.Value)
	}
	if u := pts.Material.Uniform(scene.UniformTime); u != nil {
		elapsed = float64(u.Value)
	}
	vertexColors := pts.Material != nil && pts.Material.VertexColors && colors != nil

	w, h := float32(width), float32(height)
	count := position.Count()
	for i := 0; i < count; i++ {
		i3 := i * 3
		x := float64(position.Array[i3])
		y := float64(position.Array[i3+1])
		z := float64(position.Array[i3+2])

		if d := math.Hypot(x, z); d > 0 {
			angle := math.Atan2(z, x) + elapsed*v.SpinSpeed/d
			x = math.Cos(angle) * d
			z = math.Sin(angle) * d
		}
		if v.ApplyRandomness && randomness != nil && len(randomness.Array) >= i3+3 {
			x += float64(randomness.Array[i3])
			y += float64(randomness.Array[i3+1])
			z += float64(randomness.Array[i3+2])
		}

		viewPos := view.Mul4x1(mgl32.Vec4{float32(x), float32(y), float32(z), 1})
		depth := -viewPos.Z()
		if depth <= 0 {
			continue
		}
		clip := proj.Mul4x1(viewPos)
		if clip.W() <= 0 {
			continue
		}
		ndcX, ndcY, ndcZ := clip.X()/clip.W(), clip.Y()/clip.W(), clip.Z()/clip.W()
		if ndcZ < -1 || ndcZ > 1 {
			continue
		}

		scale := float32(1)
		if scales != nil && i < len(scales.Array) {
			scale = scales.Array[i]
		}
		size := float32(sizeUniform) * scale / depth
		if size <= 0 {
			continue
		}

		sx := (ndcX*0.5 + 0.5) * w
		sy := (0.5 - ndcY*0.5) * h
		half := size / 2
		if sx+half < 0 || sx-half > w || sy+half < 0 || sy-half > h {
			continue
		}

		p := Point{X: sx, Y: sy, Size: size, R: 1, G: 1, B: 1}
		if vertexColors && len(colors.Array) >= i3+3 {
			p.R, p.G, p.B = colors.Array[i3], colors.Array[i3+1], colors.Array[i3+2]
		}
		dst = append(dst, p)
	}
	return dst
}
