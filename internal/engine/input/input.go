// Package input describes the per-frame input snapshot consumed by the
// camera rig. It has no device dependency; see sdlinput for the SDL2
// collector that fills it.
package input

import (
	"github.com/Faultbox/viewrig/pkg/math"
)

// TouchPhase is the lifecycle stage of a touch in the current frame.
type TouchPhase int

const (
	PhaseBegan TouchPhase = iota
	PhaseMoved
	PhaseStationary
	PhaseEnded
	PhaseCanceled
)

// String returns the phase name.
func (p TouchPhase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseMoved:
		return "moved"
	case PhaseStationary:
		return "stationary"
	case PhaseEnded:
		return "ended"
	case PhaseCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Touch is one active contact point.
type Touch struct {
	ID       int64
	Position math.Vec2
	Phase    TouchPhase
}

// Pointer is the mouse state for the frame.
type Pointer struct {
	Position math.Vec2
	Pressed  bool // primary button went down this frame
	Held     bool // primary button is down
}

// Platform carries capability flags reported by the host.
type Platform struct {
	TouchSupported bool
	Browser        bool
}

// UsesTouch reports whether touch handling should drive the camera.
// Browser builds always use the mouse path.
func (p Platform) UsesTouch() bool {
	return p.TouchSupported && !p.Browser
}

// Frame is a read-only snapshot of input for one rendered frame.
// Screen positions are pixels with the origin at the bottom-left corner.
type Frame struct {
	OverUI    bool
	Pointer   Pointer
	Touches   []Touch
	Scroll    float32 // -1..1, 0 means no scroll
	Platform  Platform
	DeltaTime float32 // seconds
}

// TouchCount returns the number of touches in the frame.
func (f *Frame) TouchCount() int {
	return len(f.Touches)
}

// Idle reports whether the frame carries no pointer, touch or scroll input.
func (f *Frame) Idle() bool {
	return !f.Pointer.Pressed && !f.Pointer.Held && len(f.Touches) == 0 && f.Scroll == 0
}
