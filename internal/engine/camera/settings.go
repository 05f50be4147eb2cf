package camera

import (
	"errors"
	"fmt"

	"github.com/Faultbox/viewrig/pkg/math"
)

// ErrInvalidSettings is returned by Settings.Validate.
var ErrInvalidSettings = errors.New("invalid camera settings")

// Settings tunes the rig's pan and zoom response.
type Settings struct {
	// World units moved per full-viewport drag
	PanSpeed float32

	TouchZoomSpeed float32
	MouseZoomSpeed float32

	// Field of view limits in degrees
	Zoom math.Range

	// Exponential smoothing rate for field of view changes
	ZoomDamping float32

	// Ground-plane limits for the camera position
	BoundsX math.Range
	BoundsZ math.Range
}

// DefaultSettings returns the stock rig tuning.
func DefaultSettings() Settings {
	return Settings{
		PanSpeed:       80,
		TouchZoomSpeed: 0.8,
		MouseZoomSpeed: 10,
		Zoom:           math.Range{Min: 20, Max: 60},
		ZoomDamping:    10,
		BoundsX:        math.Range{Min: -19000, Max: 60000},
		BoundsZ:        math.Range{Min: -15000, Max: 15000},
	}
}

// Validate checks ranges and speeds.
func (s Settings) Validate() error {
	if s.PanSpeed <= 0 {
		return fmt.Errorf("%w: pan speed %v must be positive", ErrInvalidSettings, s.PanSpeed)
	}
	if s.TouchZoomSpeed <= 0 || s.MouseZoomSpeed <= 0 {
		return fmt.Errorf("%w: zoom speeds must be positive (touch %v, mouse %v)",
			ErrInvalidSettings, s.TouchZoomSpeed, s.MouseZoomSpeed)
	}
	if s.ZoomDamping <= 0 {
		return fmt.Errorf("%w: zoom damping %v must be positive", ErrInvalidSettings, s.ZoomDamping)
	}
	if !s.Zoom.Valid() || s.Zoom.Min <= 0 || s.Zoom.Max >= 180 {
		return fmt.Errorf("%w: zoom range %v..%v", ErrInvalidSettings, s.Zoom.Min, s.Zoom.Max)
	}
	if !s.BoundsX.Valid() {
		return fmt.Errorf("%w: x bounds %v..%v inverted", ErrInvalidSettings, s.BoundsX.Min, s.BoundsX.Max)
	}
	if !s.BoundsZ.Valid() {
		return fmt.Errorf("%w: z bounds %v..%v inverted", ErrInvalidSettings, s.BoundsZ.Min, s.BoundsZ.Max)
	}
	return nil
}
