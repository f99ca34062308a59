package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const polarEpsilon = 1e-6

// OrbitControls orbits, dollies and pans a camera around its target. Input
// accumulates into pending deltas; Update applies a DampingFactor share of
// them each frame so motion eases out after the input stops.
type OrbitControls struct {
	Camera *Perspective

	EnableDamping bool
	DampingFactor float64
	RotateSpeed   float64
	ZoomSpeed     float64
	PanSpeed      float64

	MinDistance float64
	MaxDistance float64

	radius float64
	theta  float64 // azimuth around +y, measured from +z
	phi    float64 // polar angle from +y

	deltaTheta float64
	deltaPhi   float64
	scale      float64
	panOffset  mgl32.Vec3
}

// NewOrbitControls derives the orbit state from the camera's current
// position relative to its target.
func NewOrbitControls(cam *Perspective) *OrbitControls {
	o := &OrbitControls{
		Camera:        cam,
		EnableDamping: true,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
		MinDistance:   0,
		MaxDistance:   math.Inf(1),
		scale:         1,
	}
	o.syncFromCamera()
	return o
}

func (o *OrbitControls) syncFromCamera() {
	offset := o.Camera.Position.Sub(o.Camera.Target)
	o.radius = float64(offset.Len())
	if o.radius == 0 {
		o.theta, o.phi = 0, math.Pi/2
		return
	}
	o.theta = math.Atan2(float64(offset.X()), float64(offset.Z()))
	o.phi = math.Acos(clamp(float64(offset.Y())/o.radius, -1, 1))
}

// RotateLeft orbits the camera around the target's vertical axis.
func (o *OrbitControls) RotateLeft(angle float64) { o.deltaTheta -= angle }

// RotateUp tilts the camera toward the target's pole.
func (o *OrbitControls) RotateUp(angle float64) { o.deltaPhi -= angle }

// RotateBy converts a pointer drag in pixels into an orbit, scaled so that
// dragging the full viewport height turns a full circle.
func (o *OrbitControls) RotateBy(dx, dy float64, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	h := float64(viewportHeight)
	o.RotateLeft(2 * math.Pi * dx / h * o.RotateSpeed)
	o.RotateUp(2 * math.Pi * dy / h * o.RotateSpeed)
}

// DollyIn moves the camera toward the target by factor > 1.
func (o *OrbitControls) DollyIn(factor float64) {
	if factor > 0 {
		o.scale /= factor
	}
}

// DollyOut moves the camera away from the target by factor > 1.
func (o *OrbitControls) DollyOut(factor float64) {
	if factor > 0 {
		o.scale *= factor
	}
}

// Zoom dollies by a wheel delta; positive deltas move closer.
func (o *OrbitControls) Zoom(wheel float64) {
	factor := math.Pow(0.95, o.ZoomSpeed)
	switch {
	case wheel > 0:
		o.DollyIn(1 / factor)
	case wheel < 0:
		o.DollyOut(1 / factor)
	}
}

// PanBy shifts camera and target in the view plane by a pointer drag in
// pixels.
func (o *OrbitControls) PanBy(dx, dy float64, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	cam := o.Camera
	offset := cam.Position.Sub(cam.Target)
	distance := float64(offset.Len()) * math.Tan(float64(mgl32.DegToRad(cam.FOV))/2)
	view := cam.View()
	// Rows of the view rotation are the camera's right and up axes.
	right := mgl32.Vec3{view.At(0, 0), view.At(0, 1), view.At(0, 2)}
	up := mgl32.Vec3{view.At(1, 0), view.At(1, 1), view.At(1, 2)}
	h := float64(viewportHeight)
	left := float32(-2 * dx * distance / h * o.PanSpeed)
	upward := float32(2 * dy * distance / h * o.PanSpeed)
	o.panOffset = o.panOffset.Add(right.Mul(left)).Add(up.Mul(upward))
}

// Update applies pending input to the camera. It reports whether the camera
// moved noticeably.
func (o *OrbitControls) Update() bool {
	cam := o.Camera
	offset := cam.Position.Sub(cam.Target)
	if r := float64(offset.Len()); r > 0 {
		o.radius = r
	}

	if o.EnableDamping {
		o.theta += o.deltaTheta * o.DampingFactor
		o.phi += o.deltaPhi * o.DampingFactor
	} else {
		o.theta += o.deltaTheta
		o.phi += o.deltaPhi
	}
	o.phi = clamp(o.phi, polarEpsilon, math.Pi-polarEpsilon)

	o.radius = clamp(o.radius*o.scale, o.MinDistance, o.MaxDistance)

	if o.EnableDamping {
		cam.Target = cam.Target.Add(o.panOffset.Mul(float32(o.DampingFactor)))
	} else {
		cam.Target = cam.Target.Add(o.panOffset)
	}

	sinPhi := math.Sin(o.phi)
	next := mgl32.Vec3{
		float32(o.radius * sinPhi * math.Sin(o.theta)),
		float32(o.radius * math.Cos(o.phi)),
		float32(o.radius * sinPhi * math.Cos(o.theta)),
	}
	moved := next.Sub(offset).Len() > 1e-6 || o.panOffset.Len() > 1e-6
	cam.Position = cam.Target.Add(next)

	if o.EnableDamping {
		keep := 1 - o.DampingFactor
		o.deltaTheta *= keep
		o.deltaPhi *= keep
		o.panOffset = o.panOffset.Mul(float32(keep))
	} else {
		o.deltaTheta, o.deltaPhi = 0, 0
		o.panOffset = mgl32.Vec3{}
	}
	o.scale = 1
	return moved
}

// Distance returns the current camera-to-target distance.
func (o *OrbitControls) Distance() float64 { return o.radius }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
