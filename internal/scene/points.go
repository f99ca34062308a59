package scene

// Points renders every vertex of Geometry as a screen-aligned point shaded by
// Material.
type Points struct {
	Geometry *Geometry
	Material *ShaderMaterial
}

// NewPoints pairs geometry with material.
func NewPoints(geometry *Geometry, material *ShaderMaterial) *Points {
	return &Points{Geometry: geometry, Material: material}
}

// Name returns the object identifier.
func (p *Points) Name() string { return "points" }

// Count returns the number of points.
func (p *Points) Count() int {
	if p == nil || p.Geometry == nil {
		return 0
	}
	return p.Geometry.Count()
}

// Dispose releases geometry and material.
func (p *Points) Dispose() {
	if p == nil {
		return
	}
	p.Geometry.Dispose()
	p.Material.Dispose()
}

// Disposed reports whether both geometry and material were released.
func (p *Points) Disposed() bool {
	return p.Geometry.Disposed() && p.Material.Disposed()
}
