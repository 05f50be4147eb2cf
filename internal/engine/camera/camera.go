// Package camera provides the viewport camera and the pan/zoom rig that
// drives it from pointer and touch input.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/viewrig/pkg/math"
)

// Camera is a perspective camera tilted down over the XZ ground plane.
type Camera struct {
	Position math.Vec3

	// Vertical field of view in degrees
	FieldOfView float32

	// Downward tilt in radians, 0 looks at the horizon
	Pitch float32

	Near, Far float32

	ViewportWidth  int
	ViewportHeight int
}

// New creates a camera with default settings for the given viewport.
func New(width, height int) *Camera {
	return &Camera{
		Position:       math.Vec3{X: 0, Y: 800, Z: 0},
		FieldOfView:    60,
		Pitch:          0.9, // ~52 degrees
		Near:           1,
		Far:            100000,
		ViewportWidth:  width,
		ViewportHeight: height,
	}
}

// SetViewport updates the viewport size in pixels.
func (c *Camera) SetViewport(width, height int) {
	c.ViewportWidth = width
	c.ViewportHeight = height
}

// ScreenToViewport converts a screen-space vector in pixels to viewport
// space, where the full viewport spans 0..1 on each axis.
func (c *Camera) ScreenToViewport(p math.Vec2) math.Vec2 {
	var v math.Vec2
	if c.ViewportWidth > 0 {
		v.X = p.X / float32(c.ViewportWidth)
	}
	if c.ViewportHeight > 0 {
		v.Y = p.Y / float32(c.ViewportHeight)
	}
	return v
}

// Translate moves the camera in world space.
func (c *Camera) Translate(v math.Vec3) {
	c.Position = c.Position.Add(v)
}

// Forward returns the viewing direction.
func (c *Camera) Forward() math.Vec3 {
	return math.Vec3{
		X: 0,
		Y: -math32.Sin(c.Pitch),
		Z: math32.Cos(c.Pitch),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position, c.Position.Add(c.Forward()), up)
}

// Aspect returns width/height, or 1 for an empty viewport.
func (c *Camera) Aspect() float32 {
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return 1
	}
	return float32(c.ViewportWidth) / float32(c.ViewportHeight)
}

// ProjectionMatrix returns the perspective projection for the current
// field of view.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(math.Radians(c.FieldOfView), c.Aspect(), c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}
