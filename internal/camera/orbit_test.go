package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateWithoutInputKeepsCamera(t *testing.T) {
	cam := NewPerspective(16.0 / 9.0)
	o := NewOrbitControls(cam)
	start := cam.Position

	moved := o.Update()

	assert.False(t, moved)
	assert.InDelta(t, start.X(), cam.Position.X(), 1e-5)
	assert.InDelta(t, start.Y(), cam.Position.Y(), 1e-5)
	assert.InDelta(t, start.Z(), cam.Position.Z(), 1e-5)
	assert.InDelta(t, math.Sqrt(27), o.Distance(), 1e-5)
}

func TestDampedRotationEasesOut(t *testing.T) {
	cam := NewPerspective(1)
	o := NewOrbitControls(cam)
	o.RotateLeft(1)

	var steps []float64
	prev := cam.Position
	for i := 0; i < 60; i++ {
		o.Update()
		steps = append(steps, float64(cam.Position.Sub(prev).Len()))
		prev = cam.Position
	}
	for i := 1; i < len(steps); i++ {
		require.LessOrEqual(t, steps[i], steps[i-1]+1e-6, "frame %d moved further than frame %d", i, i-1)
	}
	assert.Greater(t, steps[0], 0.0)
	assert.InDelta(t, math.Sqrt(27), float64(cam.Position.Len()), 1e-4, "orbiting must keep the distance")
}

func TestUndampedRotationAppliesAtOnce(t *testing.T) {
	cam := NewPerspective(1)
	cam.Position = mgl32.Vec3{0, 0, 5}
	o := NewOrbitControls(cam)
	o.EnableDamping = false

	o.RotateLeft(-math.Pi / 2)
	require.True(t, o.Update())

	assert.InDelta(t, 5, cam.Position.X(), 1e-4)
	assert.InDelta(t, 0, cam.Position.Z(), 1e-4)
	assert.False(t, o.Update(), "no pending input after an undamped update")
}

func TestPolarAngleIsClamped(t *testing.T) {
	cam := NewPerspective(1)
	o := NewOrbitControls(cam)
	o.EnableDamping = false

	o.RotateUp(10)
	o.Update()

	assert.Greater(t, cam.Position.Y(), float32(0))
	assert.InDelta(t, o.Distance(), float64(cam.Position.Y()), 1e-3, "camera should sit near the pole")
}

func TestZoomRespectsDistanceLimits(t *testing.T) {
	cam := NewPerspective(1)
	o := NewOrbitControls(cam)
	o.EnableDamping = false
	o.MinDistance = 2
	o.MaxDistance = 8

	for i := 0; i < 100; i++ {
		o.Zoom(1)
		o.Update()
	}
	assert.InDelta(t, 2, o.Distance(), 1e-4)

	for i := 0; i < 100; i++ {
		o.Zoom(-1)
		o.Update()
	}
	assert.InDelta(t, 8, o.Distance(), 1e-4)
}

func TestPanMovesTargetAndCameraTogether(t *testing.T) {
	cam := NewPerspective(1)
	o := NewOrbitControls(cam)
	o.EnableDamping = false
	offsetBefore := cam.Position.Sub(cam.Target)

	o.PanBy(100, 0, 600)
	o.Update()

	assert.Greater(t, cam.Target.Len(), float32(0))
	offsetAfter := cam.Position.Sub(cam.Target)
	assert.InDelta(t, 0, float64(offsetAfter.Sub(offsetBefore).Len()), 1e-4)
}

func TestProjectionCentersTarget(t *testing.T) {
	cam := NewPerspective(1.5)
	clip := cam.ViewProjection().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	require.Greater(t, clip.W(), float32(0))
	assert.InDelta(t, 0, clip.X()/clip.W(), 1e-5)
	assert.InDelta(t, 0, clip.Y()/clip.W(), 1e-5)

	cam.SetAspect(800, 400)
	assert.Equal(t, float32(2), cam.Aspect)
	cam.SetAspect(0, 400)
	assert.Equal(t, float32(2), cam.Aspect)
}
