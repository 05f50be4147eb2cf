package camera

import (
	"errors"
	"testing"

	"github.com/Faultbox/viewrig/pkg/math"
)

func approx(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-4
}

func TestScreenToViewport(t *testing.T) {
	cam := New(800, 600)

	got := cam.ScreenToViewport(math.Vec2{X: 400, Y: 150})
	want := math.Vec2{X: 0.5, Y: 0.25}
	if got != want {
		t.Errorf("ScreenToViewport() = %v, want %v", got, want)
	}

	// Negative deltas stay negative
	got = cam.ScreenToViewport(math.Vec2{X: -80, Y: 0})
	if got.X != -0.1 || got.Y != 0 {
		t.Errorf("ScreenToViewport(-80, 0) = %v, want (-0.1, 0)", got)
	}
}

func TestScreenToViewportEmptyViewport(t *testing.T) {
	cam := New(0, 0)
	if got := cam.ScreenToViewport(math.Vec2{X: 10, Y: 10}); got != (math.Vec2{}) {
		t.Errorf("empty viewport should map to zero, got %v", got)
	}
	if cam.Aspect() != 1 {
		t.Errorf("empty viewport aspect = %v, want 1", cam.Aspect())
	}
}

func TestTranslate(t *testing.T) {
	cam := New(800, 600)
	start := cam.Position
	cam.Translate(math.Vec3{X: 5, Z: -3})

	if cam.Position.X != start.X+5 || cam.Position.Z != start.Z-3 || cam.Position.Y != start.Y {
		t.Errorf("Translate moved to %v from %v", cam.Position, start)
	}
}

func TestForwardLooksDown(t *testing.T) {
	cam := New(800, 600)
	f := cam.Forward()
	if f.Y >= 0 {
		t.Errorf("forward %v should point below the horizon", f)
	}
	if !approx(f.Length(), 1) {
		t.Errorf("forward length = %v, want 1", f.Length())
	}
}

func TestViewMatrixCentersCamera(t *testing.T) {
	cam := New(800, 600)
	cam.Position = math.Vec3{X: 10, Y: 50, Z: -20}

	p := cam.ViewMatrix().TransformVec3(cam.Position)
	if !approx(p.X, 0) || !approx(p.Y, 0) || !approx(p.Z, 0) {
		t.Errorf("camera position in view space = %v, want origin", p)
	}
}

func TestProjectionFollowsFieldOfView(t *testing.T) {
	cam := New(800, 600)
	cam.FieldOfView = 60
	wide := cam.ProjectionMatrix()
	cam.FieldOfView = 20
	narrow := cam.ProjectionMatrix()

	if narrow[5] <= wide[5] {
		t.Errorf("narrower fov should magnify: %v <= %v", narrow[5], wide[5])
	}
}

func TestDefaultSettingsValid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}

	if s.PanSpeed != 80 {
		t.Errorf("expected pan speed 80, got %v", s.PanSpeed)
	}
	if s.Zoom.Min != 20 || s.Zoom.Max != 60 {
		t.Errorf("expected zoom range 20..60, got %v..%v", s.Zoom.Min, s.Zoom.Max)
	}
	if s.ZoomDamping != 10 {
		t.Errorf("expected zoom damping 10, got %v", s.ZoomDamping)
	}
	if s.BoundsX.Min != -19000 || s.BoundsX.Max != 60000 {
		t.Errorf("unexpected x bounds %v", s.BoundsX)
	}
	if s.BoundsZ.Min != -15000 || s.BoundsZ.Max != 15000 {
		t.Errorf("unexpected z bounds %v", s.BoundsZ)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"zero pan speed", func(s *Settings) { s.PanSpeed = 0 }},
		{"negative touch zoom", func(s *Settings) { s.TouchZoomSpeed = -1 }},
		{"zero mouse zoom", func(s *Settings) { s.MouseZoomSpeed = 0 }},
		{"zero damping", func(s *Settings) { s.ZoomDamping = 0 }},
		{"inverted zoom", func(s *Settings) { s.Zoom = math.Range{Min: 60, Max: 20} }},
		{"zoom past 180", func(s *Settings) { s.Zoom.Max = 200 }},
		{"inverted x bounds", func(s *Settings) { s.BoundsX = math.Range{Min: 1, Max: -1} }},
		{"inverted z bounds", func(s *Settings) { s.BoundsZ = math.Range{Min: 1, Max: -1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			err := s.Validate()
			if !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("expected ErrInvalidSettings, got %v", err)
			}
		})
	}
}
