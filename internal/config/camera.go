package config

import (
	"github.com/Faultbox/viewrig/internal/engine/camera"
)

// RigSettings converts the camera section into rig tuning.
func (c CameraConfig) RigSettings() camera.Settings {
	return camera.Settings{
		PanSpeed:       c.PanSpeed,
		TouchZoomSpeed: c.TouchZoomSpeed,
		MouseZoomSpeed: c.MouseZoomSpeed,
		Zoom:           c.Zoom,
		ZoomDamping:    c.ZoomDamping,
		BoundsX:        c.BoundsX,
		BoundsZ:        c.BoundsZ,
	}
}

// NewCamera creates a camera at the configured pose for a viewport.
func (c CameraConfig) NewCamera(width, height int) *camera.Camera {
	cam := camera.New(width, height)
	cam.Position = c.Position
	cam.FieldOfView = c.FieldOfView
	cam.Pitch = c.Pitch
	return cam
}
