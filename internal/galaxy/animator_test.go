package galaxy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galaxy/internal/core"
	"galaxy/internal/scene"
)

type countingCamera struct{ updates int }

func (c *countingCamera) Update() bool {
	c.updates++
	return false
}

type recordingRenderer struct{ scenes []*scene.Scene }

func (r *recordingRenderer) Render(sc *scene.Scene) { r.scenes = append(r.scenes, sc) }

func steppedClock(step time.Duration) *core.Clock {
	now := time.Unix(0, 0)
	return core.NewClockWithSource(func() time.Time {
		now = now.Add(step)
		return now
	})
}

func TestAnimatorWritesMonotonicTime(t *testing.T) {
	sc := scene.New()
	gen := quietGenerator(sc, DefaultConfig())
	params := testParams()
	params.Count = 10
	gen.Regenerate(params)

	cam := &countingCamera{}
	anim := NewAnimator(steppedClock(16*time.Millisecond), sc, gen.Current, cam)
	anim.Start()

	prev := float32(-1)
	for i := 0; i < 20; i++ {
		anim.Tick()
		got := gen.Current().Material.Uniform(scene.UniformTime).Value
		require.GreaterOrEqual(t, got, prev, "time uniform went backwards at frame %d", i)
		prev = got
	}
	assert.Equal(t, 20, cam.updates)
	assert.InDelta(t, 0.32, anim.Elapsed(), 1e-9)
}

func TestAnimatorFollowsRegeneratedGalaxy(t *testing.T) {
	sc := scene.New()
	gen := quietGenerator(sc, DefaultConfig())
	params := testParams()
	params.Count = 10
	old := gen.Regenerate(params)

	anim := NewAnimator(steppedClock(time.Second), sc, gen.Current, nil)
	anim.Start()
	anim.Tick()

	fresh := gen.Regenerate(params)
	assert.Equal(t, float32(0), fresh.Material.Uniform(scene.UniformTime).Value)

	anim.Tick()
	assert.Equal(t, float32(2), fresh.Material.Uniform(scene.UniformTime).Value)
	assert.Equal(t, float32(1), old.Material.Uniform(scene.UniformTime).Value, "released galaxy must not be touched")
}

func TestAnimatorWithoutGalaxyOrRenderer(t *testing.T) {
	sc := scene.New()
	anim := NewAnimator(steppedClock(time.Second), sc, func() *scene.Points { return nil }, nil)
	anim.Start()
	assert.NotPanics(t, anim.Tick)
	assert.NotPanics(t, func() { anim.Render(nil) })

	r := &recordingRenderer{}
	anim.Render(r)
	require.Len(t, r.scenes, 1)
	assert.Same(t, sc, r.scenes[0])
}
