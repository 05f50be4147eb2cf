// Package sdlinput collects SDL2 events into per-frame input snapshots.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/viewrig/internal/engine/input"
	"github.com/Faultbox/viewrig/pkg/math"
)

// SDL reports mouse events synthesized from touches with this device id.
const touchMouseID = ^uint32(0)

// Collector turns SDL events into input.Frame values.
type Collector struct {
	width, height float32
	scrollScale   float32
	platform      input.Platform

	pointer input.Pointer
	scroll  float32
	touches []input.Touch

	quit       bool
	escape     bool
	resized    bool
	screenshot bool
}

// New creates a collector for a window of the given size.
// scrollScale converts wheel notches into the -1..1 scroll axis.
func New(width, height int, scrollScale float32, platform input.Platform) *Collector {
	return &Collector{
		width:       float32(width),
		height:      float32(height),
		scrollScale: scrollScale,
		platform:    platform,
		touches:     make([]input.Touch, 0, 4),
	}
}

// TouchSupported reports whether SDL sees any touch device.
func TouchSupported() bool {
	return sdl.GetNumTouchDevices() > 0
}

// Poll starts a new frame and drains pending SDL events.
func (c *Collector) Poll() {
	c.BeginFrame()
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		c.Handle(event)
	}
}

// BeginFrame clears per-frame state. Touches that ended last frame are
// dropped and the rest become stationary until a motion event arrives.
func (c *Collector) BeginFrame() {
	c.pointer.Pressed = false
	c.scroll = 0
	c.escape = false
	c.resized = false
	c.screenshot = false

	kept := c.touches[:0]
	for _, t := range c.touches {
		if t.Phase == input.PhaseEnded || t.Phase == input.PhaseCanceled {
			continue
		}
		t.Phase = input.PhaseStationary
		kept = append(kept, t)
	}
	c.touches = kept
}

// Handle applies a single SDL event.
func (c *Collector) Handle(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		c.quit = true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			c.Resize(int(e.Data1), int(e.Data2))
		}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return
		}
		switch e.Keysym.Scancode {
		case sdl.SCANCODE_ESCAPE:
			c.escape = true
		case sdl.SCANCODE_F12:
			c.screenshot = true
		}

	case *sdl.MouseMotionEvent:
		if e.Which == touchMouseID {
			return
		}
		c.pointer.Position = c.mousePosition(e.X, e.Y)

	case *sdl.MouseButtonEvent:
		if e.Which == touchMouseID || e.Button != sdl.BUTTON_LEFT {
			return
		}
		c.pointer.Position = c.mousePosition(e.X, e.Y)
		if e.Type == sdl.MOUSEBUTTONDOWN {
			c.pointer.Pressed = true
			c.pointer.Held = true
		} else if e.Type == sdl.MOUSEBUTTONUP {
			c.pointer.Held = false
		}

	case *sdl.MouseWheelEvent:
		if e.Which == touchMouseID {
			return
		}
		notches := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			notches = -notches
		}
		c.scroll += notches * c.scrollScale

	case *sdl.TouchFingerEvent:
		c.handleFinger(e)
	}
}

func (c *Collector) handleFinger(e *sdl.TouchFingerEvent) {
	id := int64(e.FingerID)
	pos := c.fingerPosition(e.X, e.Y)

	switch e.Type {
	case sdl.FINGERDOWN:
		began := input.Touch{ID: id, Position: pos, Phase: input.PhaseBegan}
		// SDL may reuse a finger id for a new press within one frame.
		if t := c.find(id); t != nil {
			*t = began
			return
		}
		c.touches = append(c.touches, began)

	case sdl.FINGERMOTION:
		if t := c.find(id); t != nil {
			t.Position = pos
			if t.Phase != input.PhaseBegan {
				t.Phase = input.PhaseMoved
			}
		}

	case sdl.FINGERUP:
		if t := c.find(id); t != nil {
			t.Position = pos
			t.Phase = input.PhaseEnded
		}
	}
}

func (c *Collector) find(id int64) *input.Touch {
	for i := range c.touches {
		if c.touches[i].ID == id {
			return &c.touches[i]
		}
	}
	return nil
}

// mousePosition converts SDL window coordinates (top-left origin) to
// bottom-left origin pixels.
func (c *Collector) mousePosition(x, y int32) math.Vec2 {
	return math.Vec2{X: float32(x), Y: c.height - float32(y)}
}

// fingerPosition converts normalized SDL touch coordinates to pixels.
func (c *Collector) fingerPosition(x, y float32) math.Vec2 {
	return math.Vec2{X: x * c.width, Y: (1 - y) * c.height}
}

// Resize updates the window size used for coordinate conversion.
func (c *Collector) Resize(width, height int) {
	c.width = float32(width)
	c.height = float32(height)
	c.resized = true
}

// Frame returns the snapshot for the current frame.
func (c *Collector) Frame(dt float32) input.Frame {
	touches := make([]input.Touch, len(c.touches))
	copy(touches, c.touches)

	return input.Frame{
		Pointer:   c.pointer,
		Touches:   touches,
		Scroll:    math.Clamp(c.scroll, -1, 1),
		Platform:  c.platform,
		DeltaTime: dt,
	}
}

// Quit reports whether the window was asked to close.
func (c *Collector) Quit() bool {
	return c.quit
}

// Escape reports whether Escape was pressed this frame.
func (c *Collector) Escape() bool {
	return c.escape
}

// Screenshot reports whether F12 was pressed this frame.
func (c *Collector) Screenshot() bool {
	return c.screenshot
}

// Resized reports whether the window size changed this frame.
func (c *Collector) Resized() bool {
	return c.resized
}

// Size returns the current window size in pixels.
func (c *Collector) Size() (int, int) {
	return int(c.width), int(c.height)
}
