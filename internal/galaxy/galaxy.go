// Package galaxy generates the spiral point cloud, keeps the tunable
// parameter record and animates the live cloud.
package galaxy

import "galaxy/internal/scene"

// Galaxy wires a parameter store to a generator so every commit rebuilds the
// cloud attached to Scene.
type Galaxy struct {
	Scene     *scene.Scene
	Store     *Store
	Generator *Generator
}

// New builds the scene, generates the initial cloud from cfg and subscribes
// regeneration to store commits.
func New(cfg Config) *Galaxy {
	sc := scene.New()
	g := &Galaxy{
		Scene:     sc,
		Store:     NewStore(cfg.Params),
		Generator: NewGenerator(sc, cfg),
	}
	g.Store.OnCommit(func(p Params) {
		g.Generator.Regenerate(p)
	})
	g.Generator.Regenerate(g.Store.Params())
	return g
}

// Current returns the live cloud.
func (g *Galaxy) Current() *scene.Points { return g.Generator.Current() }

// Reseed switches to seed and rebuilds with the current parameters.
func (g *Galaxy) Reseed(seed int64) {
	g.Generator.SetSeed(seed)
	g.Generator.Regenerate(g.Store.Params())
}
