// Package viewer runs the interactive viewport: window, input, camera rig
// and rendering, one rig update per frame.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/viewrig/internal/config"
	"github.com/Faultbox/viewrig/internal/engine/camera"
	"github.com/Faultbox/viewrig/internal/engine/debug"
	"github.com/Faultbox/viewrig/internal/engine/input"
	"github.com/Faultbox/viewrig/internal/engine/input/sdlinput"
	"github.com/Faultbox/viewrig/internal/engine/renderer"
	"github.com/Faultbox/viewrig/internal/engine/ui2d"
	"github.com/Faultbox/viewrig/internal/engine/window"
	"github.com/Faultbox/viewrig/internal/logger"
)

// Viewer is the main viewport instance.
type Viewer struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *sdlinput.Collector
	ui       *ui2d.Layer
	rig      *camera.Rig
	watcher  *config.Watcher
	shots    *debug.ScreenshotCapture
}

// New creates the window, renderer and rig.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg: cfg,
		log: logger.Named("viewer"),
	}

	settings := cfg.Camera.RigSettings()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("camera config: %w", err)
	}

	v.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	v.window, err = window.New(window.Config{
		Title:      "viewrig",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, logger.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Fullscreen windows may not match the requested size
	width, height := v.window.Size()

	// Renderer needs the OpenGL context from the window
	v.renderer, err = renderer.New(renderer.Config{
		Width:       width,
		Height:      height,
		BoundsX:     settings.BoundsX,
		BoundsZ:     settings.BoundsZ,
		GridSpacing: cfg.Graphics.GridSpacing,
	}, logger.Named("renderer"))
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	touch := sdlinput.TouchSupported() || cfg.Input.ForceTouch
	platform := input.DetectedPlatform(touch)
	v.input = sdlinput.New(width, height, cfg.Input.ScrollScale, platform)
	v.ui = ui2d.NewLayer(float32(width), cfg.UI.Panels...)
	v.shots = debug.NewScreenshotCapture(cfg.Graphics.ScreenshotDir, "viewrig")
	v.rig = camera.NewRig(cfg.Camera.NewCamera(width, height), settings, camera.WithLogger(logger.Named("rig")))

	v.log.Info("viewer initialized",
		zap.Bool("touch", platform.UsesTouch()),
		zap.Int("ui_panels", len(v.ui.Panels())),
	)
	return v, nil
}

// WatchConfig applies camera, grid and UI changes from w between frames.
func (v *Viewer) WatchConfig(w *config.Watcher) {
	v.watcher = w
}

// Run starts the frame loop and returns when the window closes.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	idleFrames := 0
	fpsTimer := time.Now()

	v.log.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		v.input.Poll()
		if v.input.Quit() || v.input.Escape() {
			v.running = false
			break
		}
		if v.input.Resized() {
			v.resize(v.input.Size())
		}

		// 2. Pick up config changes
		v.applyReloads()

		// 3. Update camera
		frame := v.input.Frame(float32(dt))
		frame.OverUI = v.ui.Blocks(&frame)
		v.rig.Update(&frame)
		if frame.Idle() {
			idleFrames++
		}

		// 4. Render and present
		v.render()
		if v.input.Screenshot() {
			v.screenshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			cam := v.rig.Camera()
			ground := cam.Position.XZ()
			v.log.Debug("frame stats",
				zap.Int("fps", frameCount),
				zap.Int("idle", idleFrames),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Float32("x", ground.X),
				zap.Float32("z", ground.Y),
				zap.Float32("fov", cam.FieldOfView),
				zap.Float32("target_fov", v.rig.TargetZoom()),
				zap.Stringer("gesture", v.rig.Gesture()),
			)
			frameCount = 0
			idleFrames = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) resize(width, height int) {
	v.rig.Camera().SetViewport(width, height)
	v.ui.Resize(float32(width))
	v.renderer.Resize(width, height)
}

// applyReloads drains pending config reloads without blocking the frame.
func (v *Viewer) applyReloads() {
	if v.watcher == nil {
		return
	}

	select {
	case cfg, ok := <-v.watcher.Updates:
		if !ok {
			v.watcher = nil
			return
		}
		settings := cfg.Camera.RigSettings()
		if err := settings.Validate(); err != nil {
			v.log.Warn("ignoring reloaded camera config", zap.Error(err))
			return
		}
		v.rig.SetSettings(settings)
		v.renderer.SetBounds(settings.BoundsX, settings.BoundsZ, cfg.Graphics.GridSpacing)
		width, _ := v.input.Size()
		v.ui = ui2d.NewLayer(float32(width), cfg.UI.Panels...)
		v.cfg = cfg
		v.log.Info("config reloaded")

	case err, ok := <-v.watcher.Errors:
		if !ok {
			v.watcher = nil
			return
		}
		v.log.Warn("config reload failed", zap.Error(err))

	default:
	}
}

func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	cam := v.rig.Camera()
	ground := cam.Position.XZ()
	tag := fmt.Sprintf("x%.0f_z%.0f_fov%.0f", ground.X, ground.Y, cam.FieldOfView)

	path, err := v.shots.CaptureFromPixels(pixels, w, h, tag)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

func (v *Viewer) render() {
	v.renderer.Begin()
	v.renderer.DrawGrid(v.rig.Camera().ViewProjection())
	v.renderer.DrawPanels(v.ui.Panels())
	v.renderer.End()
}
