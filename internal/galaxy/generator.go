package galaxy

import (
	"log"
	"math"
	"time"

	"galaxy/internal/core"
	"galaxy/internal/scene"
)

// Attributes are the per-particle arrays uploaded to the points geometry.
// Vector attributes hold three components per particle.
type Attributes struct {
	Positions  []float32
	Colors     []float32
	Scales     []float32
	Randomness []float32
}

// Len returns the particle count.
func (a Attributes) Len() int { return len(a.Scales) }

// BranchAngle returns the angle of the spoke particle i belongs to.
func BranchAngle(i, branches int) float64 {
	if branches < 1 {
		branches = 1
	}
	return float64(i%branches) / float64(branches) * 2 * math.Pi
}

// BuildAttributes lays out params.Count particles along params.Branches flat
// spokes. Draws are consumed per particle in a fixed order (radius, then
// magnitude and sign for x, y and z, then scale) so equal seeds give equal
// clouds regardless of the other parameters.
//
// The jitter in Randomness is not folded into Positions; the vertex stage
// decides whether to apply it.
func BuildAttributes(params Params, rng *core.RNG) Attributes {
	count := params.Count
	if count < 0 {
		count = 0
	}
	attrs := Attributes{
		Positions:  make([]float32, count*3),
		Colors:     make([]float32, count*3),
		Scales:     make([]float32, count),
		Randomness: make([]float32, count*3),
	}

	for i := 0; i < count; i++ {
		i3 := i * 3

		radius := rng.Float64() * params.Radius
		angle := BranchAngle(i, params.Branches)

		for axis := 0; axis < 3; axis++ {
			attrs.Randomness[i3+axis] = float32(jitter(rng, params, radius))
		}

		attrs.Positions[i3] = float32(math.Cos(angle) * radius)
		attrs.Positions[i3+1] = 0
		attrs.Positions[i3+2] = float32(math.Sin(angle) * radius)

		t := 0.0
		if params.Radius > 0 {
			t = radius / params.Radius
		}
		mixed := params.InsideColor.BlendRgb(params.OutsideColor, t)
		attrs.Colors[i3] = float32(mixed.R)
		attrs.Colors[i3+1] = float32(mixed.G)
		attrs.Colors[i3+2] = float32(mixed.B)

		attrs.Scales[i] = float32(rng.Float64())
	}
	return attrs
}

// jitter returns a sign-symmetric offset whose magnitude is pulled toward
// zero as RandomnessPower grows and scales with the particle's radius.
func jitter(rng *core.RNG, params Params, radius float64) float64 {
	magnitude := math.Pow(rng.Float64(), params.RandomnessPower)
	return magnitude * rng.Sign() * params.Randomness * radius
}

// NewGeometry packages attrs into points geometry.
func NewGeometry(attrs Attributes) *scene.Geometry {
	geo := scene.NewGeometry()
	geo.SetAttribute(scene.AttributePosition, scene.NewBufferAttribute(attrs.Positions, 3))
	geo.SetAttribute(scene.AttributeColor, scene.NewBufferAttribute(attrs.Colors, 3))
	geo.SetAttribute(scene.AttributeScale, scene.NewBufferAttribute(attrs.Scales, 1))
	geo.SetAttribute(scene.AttributeRandomness, scene.NewBufferAttribute(attrs.Randomness, 3))
	return geo
}

// NewMaterial returns the additive, vertex-colored points material.
func NewMaterial(pixelRatio float64) *scene.ShaderMaterial {
	mat := scene.NewShaderMaterial(map[string]float32{
		scene.UniformSize: float32(pixelRatio * BaseSize),
		scene.UniformTime: 0,
	})
	mat.DepthWrite = false
	mat.Blending = scene.BlendAdditive
	mat.VertexColors = true
	return mat
}

// Generator owns the single galaxy attached to a scene and replaces it on
// every regeneration.
type Generator struct {
	scene      *scene.Scene
	seed       int64
	pixelRatio float64
	current    *scene.Points
	logger     *log.Logger
}

// NewGenerator returns a generator attaching its output to sc.
func NewGenerator(sc *scene.Scene, cfg Config) *Generator {
	ratio := cfg.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	return &Generator{scene: sc, seed: cfg.Seed, pixelRatio: ratio, logger: log.Default()}
}

// SetLogger replaces the logger used for regeneration lines. A nil logger
// silences them.
func (g *Generator) SetLogger(l *log.Logger) { g.logger = l }

// Seed returns the seed used for the next generation.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed changes the seed used by subsequent generations.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

// SetPixelRatio changes the size uniform for the live galaxy and later ones.
func (g *Generator) SetPixelRatio(ratio float64) {
	if ratio <= 0 {
		return
	}
	g.pixelRatio = ratio
	if g.current != nil {
		g.current.Material.SetUniform(scene.UniformSize, float32(ratio*BaseSize))
	}
}

// Current returns the galaxy attached to the scene, or nil before the first
// generation.
func (g *Generator) Current() *scene.Points { return g.current }

// Generate builds a galaxy from params, releases previous and detaches it,
// then attaches the replacement. previous may be nil.
func (g *Generator) Generate(params Params, previous *scene.Points) *scene.Points {
	start := time.Now()
	attrs := BuildAttributes(params, core.NewRNG(g.seed))
	points := scene.NewPoints(NewGeometry(attrs), NewMaterial(g.pixelRatio))

	if previous != nil {
		previous.Dispose()
		g.scene.Remove(previous)
	}
	if g.current != nil && g.current != previous {
		g.current.Dispose()
		g.scene.Remove(g.current)
	}

	g.scene.Add(points)
	g.current = points

	if g.logger != nil {
		g.logger.Printf("galaxy: generated %d particles across %d branches in %s", attrs.Len(), params.Branches, time.Since(start).Round(time.Microsecond))
	}
	return points
}

// Regenerate replaces the current galaxy with one built from params.
func (g *Generator) Regenerate(params Params) *scene.Points {
	return g.Generate(params, g.current)
}
