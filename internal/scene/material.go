package scene

// Blending selects how fragments combine with the target.
type Blending int

const (
	// BlendNormal composites with source-over alpha.
	BlendNormal Blending = iota
	// BlendAdditive sums source and destination colors.
	BlendAdditive
)

// Uniform is a named scalar shared by every point in a draw call.
type Uniform struct {
	Value float32
}

// ShaderMaterial carries render state and uniforms for a shader program.
type ShaderMaterial struct {
	DepthWrite   bool
	Blending     Blending
	VertexColors bool

	uniforms map[string]*Uniform
	disposed bool
}

// NewShaderMaterial returns a material with the given uniform initial values.
func NewShaderMaterial(uniforms map[string]float32) *ShaderMaterial {
	m := &ShaderMaterial{DepthWrite: true, uniforms: make(map[string]*Uniform, len(uniforms))}
	for name, v := range uniforms {
		m.uniforms[name] = &Uniform{Value: v}
	}
	return m
}

// Uniform returns the uniform stored under name or nil.
func (m *ShaderMaterial) Uniform(name string) *Uniform {
	if m == nil {
		return nil
	}
	return m.uniforms[name]
}

// SetUniform writes v into an existing uniform. Unknown names are ignored.
func (m *ShaderMaterial) SetUniform(name string, v float32) {
	if u := m.Uniform(name); u != nil {
		u.Value = v
	}
}

// Dispose releases the material. It is safe to call more than once.
func (m *ShaderMaterial) Dispose() {
	if m == nil {
		return
	}
	m.disposed = true
}

// Disposed reports whether Dispose has run.
func (m *ShaderMaterial) Disposed() bool { return m == nil || m.disposed }

// Uniform names used by the points material.
const (
	UniformSize = "size"
	UniformTime = "time"
)
