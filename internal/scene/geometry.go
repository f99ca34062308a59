package scene

// BufferAttribute is a flat float32 array read ItemSize components at a time.
type BufferAttribute struct {
	Array    []float32
	ItemSize int
}

// NewBufferAttribute wraps array. ItemSize values below 1 are treated as 1.
func NewBufferAttribute(array []float32, itemSize int) *BufferAttribute {
	if itemSize < 1 {
		itemSize = 1
	}
	return &BufferAttribute{Array: array, ItemSize: itemSize}
}

// Count returns the number of items stored.
func (a *BufferAttribute) Count() int {
	if a == nil || a.ItemSize == 0 {
		return 0
	}
	return len(a.Array) / a.ItemSize
}

// Geometry is a named set of per-vertex attributes.
type Geometry struct {
	attributes map[string]*BufferAttribute
	disposed   bool
}

// NewGeometry returns an empty geometry.
func NewGeometry() *Geometry {
	return &Geometry{attributes: map[string]*BufferAttribute{}}
}

// SetAttribute stores attr under name.
func (g *Geometry) SetAttribute(name string, attr *BufferAttribute) {
	g.attributes[name] = attr
}

// Attribute returns the attribute stored under name or nil.
func (g *Geometry) Attribute(name string) *BufferAttribute {
	return g.attributes[name]
}

// Count returns the vertex count, taken from the position attribute.
func (g *Geometry) Count() int {
	return g.Attribute(AttributePosition).Count()
}

// Dispose releases the attribute buffers. It is safe to call more than once.
func (g *Geometry) Dispose() {
	if g == nil || g.disposed {
		return
	}
	for name := range g.attributes {
		delete(g.attributes, name)
	}
	g.disposed = true
}

// Disposed reports whether Dispose has run.
func (g *Geometry) Disposed() bool { return g == nil || g.disposed }

// Attribute names used by points geometry.
const (
	AttributePosition   = "position"
	AttributeColor      = "color"
	AttributeScale      = "scale"
	AttributeRandomness = "randomness"
)
