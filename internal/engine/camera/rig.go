package camera

import (
	"go.uber.org/zap"

	"github.com/Faultbox/viewrig/internal/engine/input"
	"github.com/Faultbox/viewrig/pkg/math"
)

// Below this gap the field of view snaps to the zoom target.
const zoomSnapEpsilon = 1e-3

// Gesture is the touch gesture currently driving the rig.
type Gesture int

const (
	GestureIdle     Gesture = iota // no touches, or more than two
	GesturePanning                 // one touch dragging
	GesturePinching                // two touches zooming
)

// String returns the gesture name.
func (g Gesture) String() string {
	switch g {
	case GestureIdle:
		return "idle"
	case GesturePanning:
		return "panning"
	case GesturePinching:
		return "pinching"
	default:
		return "unknown"
	}
}

// touchState holds the data that is only meaningful for the current
// gesture: activeID while panning, prev while pinching.
type touchState struct {
	gesture  Gesture
	activeID int64
	prev     [2]math.Vec2
}

// Rig pans and zooms a camera from per-frame input.
type Rig struct {
	cam      *Camera
	settings Settings
	log      *zap.Logger

	panAnchor  math.Vec2
	targetZoom float32
	touch      touchState
}

// Option configures a Rig.
type Option func(*Rig)

// WithLogger sets the logger used for gesture transitions.
func WithLogger(log *zap.Logger) Option {
	return func(r *Rig) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRig creates a rig driving cam. The zoom target starts at the camera's
// field of view clamped to the zoom range.
func NewRig(cam *Camera, settings Settings, opts ...Option) *Rig {
	r := &Rig{
		cam:      cam,
		settings: settings,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.targetZoom = settings.Zoom.Clamp(cam.FieldOfView)
	return r
}

// Camera returns the driven camera.
func (r *Rig) Camera() *Camera {
	return r.cam
}

// Settings returns the current tuning.
func (r *Rig) Settings() Settings {
	return r.settings
}

// SetSettings replaces the tuning and re-applies its limits to the zoom
// target and camera position.
func (r *Rig) SetSettings(s Settings) {
	r.settings = s
	r.targetZoom = s.Zoom.Clamp(r.targetZoom)
	r.clampPosition()
	r.log.Debug("rig settings applied",
		zap.Float32("pan_speed", s.PanSpeed),
		zap.Float32("zoom_min", s.Zoom.Min),
		zap.Float32("zoom_max", s.Zoom.Max),
	)
}

// TargetZoom returns the field of view the camera is easing toward.
func (r *Rig) TargetZoom() float32 {
	return r.targetZoom
}

// PanAnchor returns the screen position the next pan is measured from.
func (r *Rig) PanAnchor() math.Vec2 {
	return r.panAnchor
}

// Gesture returns the current touch gesture.
func (r *Rig) Gesture() Gesture {
	return r.touch.gesture
}

// Update advances the rig by one frame. Nothing happens while the pointer
// is over UI.
func (r *Rig) Update(frame *input.Frame) {
	if frame.OverUI {
		return
	}

	if frame.Platform.UsesTouch() {
		r.handleTouch(frame)
	} else {
		r.handleMouse(frame)
	}

	r.smoothZoom(frame.DeltaTime)
}

func (r *Rig) handleTouch(frame *input.Frame) {
	touches := frame.Touches
	switch frame.TouchCount() {
	case 1:
		if r.touch.gesture == GesturePinching {
			r.setGesture(GestureIdle)
		}

		t := touches[0]
		if t.Phase == input.PhaseBegan {
			r.panAnchor = t.Position
			r.touch.activeID = t.ID
			r.setGesture(GesturePanning)
		} else if r.touch.gesture == GesturePanning && t.ID == r.touch.activeID && t.Phase == input.PhaseMoved {
			r.Pan(t.Position)
		}

	case 2:
		current := [2]math.Vec2{touches[0].Position, touches[1].Position}
		if r.touch.gesture != GesturePinching {
			r.touch.prev = current
			r.setGesture(GesturePinching)
			return
		}

		newDistance := current[0].Distance(current[1])
		oldDistance := r.touch.prev[0].Distance(r.touch.prev[1])
		r.Zoom(newDistance-oldDistance, r.settings.TouchZoomSpeed)
		r.touch.prev = current

	default:
		r.setGesture(GestureIdle)
	}
}

func (r *Rig) handleMouse(frame *input.Frame) {
	p := frame.Pointer
	if p.Pressed {
		r.panAnchor = p.Position
	} else if p.Held {
		r.Pan(p.Position)
	}

	r.Zoom(frame.Scroll, r.settings.MouseZoomSpeed)
}

func (r *Rig) setGesture(g Gesture) {
	if r.touch.gesture == g {
		return
	}
	r.log.Debug("gesture changed",
		zap.Stringer("from", r.touch.gesture),
		zap.Stringer("to", g),
		zap.Int64("touch_id", r.touch.activeID),
	)
	r.touch.gesture = g
}

// Pan moves the camera across the ground plane by the drag from the pan
// anchor to pos, then makes pos the new anchor. Viewport x maps to world X
// and viewport y to world Z; world Y is untouched.
func (r *Rig) Pan(pos math.Vec2) {
	offset := r.cam.ScreenToViewport(pos.Sub(r.panAnchor))
	r.cam.Translate(math.Vec3{
		X: offset.X * r.settings.PanSpeed,
		Z: offset.Y * r.settings.PanSpeed,
	})
	r.clampPosition()
	r.panAnchor = pos
}

func (r *Rig) clampPosition() {
	r.cam.Position.X = r.settings.BoundsX.Clamp(r.cam.Position.X)
	r.cam.Position.Z = r.settings.BoundsZ.Clamp(r.cam.Position.Z)
}

// Zoom sets a new zoom target. A positive offset narrows the field of
// view. An offset of exactly zero does nothing.
func (r *Rig) Zoom(offset, speed float32) {
	if offset == 0 {
		return
	}
	r.targetZoom = r.settings.Zoom.Clamp(r.cam.FieldOfView - offset*speed)
}

// smoothZoom eases the field of view toward the target. The step factor
// is capped at 1 so a long frame never overshoots.
func (r *Rig) smoothZoom(dt float32) {
	fov := r.cam.FieldOfView
	if fov == r.targetZoom {
		return
	}

	t := math.Clamp(r.settings.ZoomDamping*dt, 0, 1)
	fov = math.Lerp(fov, r.targetZoom, t)

	gap := r.targetZoom - fov
	if gap < zoomSnapEpsilon && gap > -zoomSnapEpsilon {
		fov = r.targetZoom
	}
	r.cam.FieldOfView = fov
}
