// Package camera provides the perspective camera and damped orbit controls
// used to view the galaxy.
package camera

import "github.com/go-gl/mathgl/mgl32"

// Perspective is a y-up perspective camera looking at Target.
type Perspective struct {
	FOV    float32 // vertical, degrees
	Aspect float32
	Near   float32
	Far    float32

	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
}

// NewPerspective returns a camera at (3, 3, 3) looking at the origin.
func NewPerspective(aspect float32) *Perspective {
	if aspect <= 0 {
		aspect = 1
	}
	return &Perspective{
		FOV:      75,
		Aspect:   aspect,
		Near:     0.1,
		Far:      100,
		Position: mgl32.Vec3{3, 3, 3},
		Up:       mgl32.Vec3{0, 1, 0},
	}
}

// SetAspect updates the aspect ratio after a resize.
func (c *Perspective) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// View returns the world-to-camera matrix.
func (c *Perspective) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the camera-to-clip matrix.
func (c *Perspective) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *Perspective) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}
