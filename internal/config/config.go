// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/viewrig/internal/engine/ui2d"
	"github.com/Faultbox/viewrig/pkg/math"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Input    InputConfig    `yaml:"input"`
	UI       UIConfig       `yaml:"ui"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Fullscreen    bool    `yaml:"fullscreen"`
	VSync         bool    `yaml:"vsync"`
	GridSpacing   float32 `yaml:"grid_spacing"`
	ScreenshotDir string  `yaml:"screenshot_dir"`
}

// CameraConfig holds the initial camera pose and rig tuning.
type CameraConfig struct {
	Position    math.Vec3 `yaml:"position"`
	FieldOfView float32   `yaml:"field_of_view"`
	Pitch       float32   `yaml:"pitch"`

	PanSpeed       float32    `yaml:"pan_speed"`
	TouchZoomSpeed float32    `yaml:"touch_zoom_speed"`
	MouseZoomSpeed float32    `yaml:"mouse_zoom_speed"`
	Zoom           math.Range `yaml:"zoom"`
	ZoomDamping    float32    `yaml:"zoom_damping"`
	BoundsX        math.Range `yaml:"bounds_x"`
	BoundsZ        math.Range `yaml:"bounds_z"`
}

// InputConfig holds input device settings.
type InputConfig struct {
	ScrollScale float32 `yaml:"scroll_scale"` // scroll axis per wheel notch
	ForceTouch  bool    `yaml:"force_touch"`  // use touch handling without a detected device
}

// UIConfig lists the screen regions that swallow pointer input.
type UIConfig struct {
	Panels []ui2d.Panel `yaml:"panels"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			GridSpacing:   500,
			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			Position:       math.Vec3{X: 0, Y: 800, Z: 0},
			FieldOfView:    60,
			Pitch:          0.9,
			PanSpeed:       80,
			TouchZoomSpeed: 0.8,
			MouseZoomSpeed: 10,
			Zoom:           math.Range{Min: 20, Max: 60},
			ZoomDamping:    10,
			BoundsX:        math.Range{Min: -19000, Max: 60000},
			BoundsZ:        math.Range{Min: -15000, Max: 15000},
		},
		Input: InputConfig{
			ScrollScale: 0.1,
		},
		UI: UIConfig{
			Panels: []ui2d.Panel{
				{Name: "toolbar", X: 0, Y: 0, H: 48, Stretch: true, Color: ui2d.Color{R: 0.2, G: 0.2, B: 0.25, A: 1}},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values the viewer cannot run with.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.GridSpacing <= 0 {
		return fmt.Errorf("grid spacing %v must be positive", c.Graphics.GridSpacing)
	}
	if c.Input.ScrollScale <= 0 || c.Input.ScrollScale > 1 {
		return fmt.Errorf("scroll scale %v must be in (0, 1]", c.Input.ScrollScale)
	}
	return nil
}
