package config

import (
	"testing"

	"github.com/Faultbox/viewrig/internal/engine/camera"
)

func TestDefaultRigSettingsMatchCamera(t *testing.T) {
	got := Default().Camera.RigSettings()
	want := camera.DefaultSettings()
	if got != want {
		t.Errorf("RigSettings() = %+v, want %+v", got, want)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("default rig settings invalid: %v", err)
	}
}

func TestNewCamera(t *testing.T) {
	cfg := Default().Camera
	cfg.FieldOfView = 35
	cfg.Position.X = 250

	cam := cfg.NewCamera(640, 480)
	if cam.FieldOfView != 35 {
		t.Errorf("expected fov 35, got %f", cam.FieldOfView)
	}
	if cam.Position != cfg.Position {
		t.Errorf("expected position %v, got %v", cfg.Position, cam.Position)
	}
	if cam.ViewportWidth != 640 || cam.ViewportHeight != 480 {
		t.Errorf("expected viewport 640x480, got %dx%d", cam.ViewportWidth, cam.ViewportHeight)
	}
}
