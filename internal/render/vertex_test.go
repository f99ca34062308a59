package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"galaxy/internal/scene"
)

func makePoints(positions, colors, scales, randomness []float32, size, elapsed float32) *scene.Points {
	geo := scene.NewGeometry()
	geo.SetAttribute(scene.AttributePosition, scene.NewBufferAttribute(positions, 3))
	geo.SetAttribute(scene.AttributeColor, scene.NewBufferAttribute(colors, 3))
	geo.SetAttribute(scene.AttributeScale, scene.NewBufferAttribute(scales, 1))
	geo.SetAttribute(scene.AttributeRandomness, scene.NewBufferAttribute(randomness, 3))
	mat := scene.NewShaderMaterial(map[string]float32{scene.UniformSize: size, scene.UniformTime: elapsed})
	mat.VertexColors = true
	return scene.NewPoints(geo, mat)
}

func frontView() (mgl32.Mat4, mgl32.Mat4) {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(75), 1, 0.1, 100)
	return view, proj
}

func TestProjectCenterAndSize(t *testing.T) {
	pts := makePoints(
		[]float32{0, 0, 0},
		[]float32{0.2, 0.4, 0.6},
		[]float32{0.5},
		[]float32{0, 0, 0},
		60, 0,
	)
	view, proj := frontView()

	out := VertexStage{}.Project(nil, pts, view, proj, 200, 100)
	if len(out) != 1 {
		t.Fatalf("projected %d points, want 1", len(out))
	}
	p := out[0]
	if math.Abs(float64(p.X-100)) > 1e-3 || math.Abs(float64(p.Y-50)) > 1e-3 {
		t.Fatalf("origin projected to (%v, %v), want (100, 50)", p.X, p.Y)
	}
	// size * scale / depth = 60 * 0.5 / 10
	if math.Abs(float64(p.Size-3)) > 1e-4 {
		t.Fatalf("size = %v, want 3", p.Size)
	}
	if p.R != 0.2 || p.G != 0.4 || p.B != 0.6 {
		t.Fatalf("color = (%v, %v, %v)", p.R, p.G, p.B)
	}
}

func TestProjectCullsBehindCamera(t *testing.T) {
	pts := makePoints(
		[]float32{0, 0, 20, 0, 0, 0},
		[]float32{1, 1, 1, 1, 1, 1},
		[]float32{1, 1},
		[]float32{0, 0, 0, 0, 0, 0},
		30, 0,
	)
	view, proj := frontView()
	out := VertexStage{}.Project(nil, pts, view, proj, 100, 100)
	if len(out) != 1 {
		t.Fatalf("projected %d points, want only the one in front", len(out))
	}
}

func TestSwirlRotatesInnerPointsFaster(t *testing.T) {
	pts := makePoints(
		[]float32{1, 0, 0, 4, 0, 0},
		[]float32{1, 1, 1, 1, 1, 1},
		[]float32{1, 1},
		[]float32{0, 0, 0, 0, 0, 0},
		30, 2,
	)
	view := mgl32.LookAtV(mgl32.Vec3{0, 20, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 0, -1})
	proj := mgl32.Ortho(-10, 10, -10, 10, 0.1, 100)
	stage := VertexStage{SpinSpeed: 0.2}

	out := stage.Project(nil, pts, view, proj, 200, 200)
	if len(out) != 2 {
		t.Fatalf("projected %d points, want 2", len(out))
	}
	angle := func(p Point) float64 {
		return math.Abs(math.Atan2(float64(p.Y-100), float64(p.X-100)))
	}
	inner, outer := angle(out[0]), angle(out[1])
	// elapsed * speed / distance: 0.4 rad at d=1, 0.1 rad at d=4
	if math.Abs(inner-0.4) > 1e-3 || math.Abs(outer-0.1) > 1e-3 {
		t.Fatalf("swirl angles = %v, %v; want 0.4, 0.1", inner, outer)
	}
}

func TestRandomnessOnlyAppliedWhenEnabled(t *testing.T) {
	pts := makePoints(
		[]float32{0, 0, 0},
		[]float32{1, 1, 1},
		[]float32{1},
		[]float32{2, 0, 0},
		30, 0,
	)
	view, proj := frontView()

	off := VertexStage{}.Project(nil, pts, view, proj, 100, 100)
	on := VertexStage{ApplyRandomness: true}.Project(nil, pts, view, proj, 100, 100)
	if len(off) != 1 || len(on) != 1 {
		t.Fatalf("unexpected point counts %d, %d", len(off), len(on))
	}
	if on[0].X <= off[0].X {
		t.Fatalf("randomness offset +x should move the point right: %v <= %v", on[0].X, off[0].X)
	}
}

func TestProjectHandlesEmptyAndReleased(t *testing.T) {
	view, proj := frontView()
	empty := makePoints(nil, nil, nil, nil, 30, 0)
	if out := DefaultVertexStage().Project(nil, empty, view, proj, 100, 100); len(out) != 0 {
		t.Fatalf("empty geometry produced %d points", len(out))
	}

	pts := makePoints([]float32{0, 0, 0}, []float32{1, 1, 1}, []float32{1}, []float32{0, 0, 0}, 30, 0)
	pts.Dispose()
	if out := DefaultVertexStage().Project(nil, pts, view, proj, 100, 100); len(out) != 0 {
		t.Fatalf("released geometry produced %d points", len(out))
	}
}
