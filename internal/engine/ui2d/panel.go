// Package ui2d tracks the screen-space rectangles occupied by interactive
// UI so the viewport can ignore input aimed at them.
package ui2d

import (
	"github.com/Faultbox/viewrig/internal/engine/input"
	"github.com/Faultbox/viewrig/pkg/math"
)

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Panel is a UI rectangle in bottom-left origin pixels. A stretched panel
// ignores W and runs from X to the right edge of the window.
type Panel struct {
	Name    string  `yaml:"name"`
	X       float32 `yaml:"x"`
	Y       float32 `yaml:"y"`
	W       float32 `yaml:"w"`
	H       float32 `yaml:"h"`
	Stretch bool    `yaml:"stretch"`
	Color   Color   `yaml:"color"`
}

// Contains checks if p is within the panel.
func (p Panel) Contains(pt math.Vec2) bool {
	return pt.X >= p.X && pt.X < p.X+p.W &&
		pt.Y >= p.Y && pt.Y < p.Y+p.H
}

// Layer is an ordered set of panels. Later panels are on top.
type Layer struct {
	panels []Panel
	width  float32
}

// NewLayer creates a layer for a window of the given width. Panels with a
// non-positive height, or a non-positive width unless stretched, are
// skipped.
func NewLayer(width float32, panels ...Panel) *Layer {
	l := &Layer{width: width}
	for _, p := range panels {
		l.Add(p)
	}
	return l
}

// Add appends a panel on top of the existing ones.
func (l *Layer) Add(p Panel) {
	if p.H <= 0 || (!p.Stretch && p.W <= 0) {
		return
	}
	if p.Stretch {
		p.W = l.width - p.X
	}
	l.panels = append(l.panels, p)
}

// Resize refits stretched panels to a new window width.
func (l *Layer) Resize(width float32) {
	l.width = width
	for i := range l.panels {
		if l.panels[i].Stretch {
			l.panels[i].W = width - l.panels[i].X
		}
	}
}

// Panels returns the panels in draw order.
func (l *Layer) Panels() []Panel {
	return l.panels
}

// HitTest returns the topmost panel under pt.
func (l *Layer) HitTest(pt math.Vec2) (Panel, bool) {
	for i := len(l.panels) - 1; i >= 0; i-- {
		if l.panels[i].Contains(pt) {
			return l.panels[i], true
		}
	}
	return Panel{}, false
}

// Contains reports whether pt is over any panel.
func (l *Layer) Contains(pt math.Vec2) bool {
	_, ok := l.HitTest(pt)
	return ok
}

// Blocks reports whether the frame's pointer is over UI. On touch
// platforms any touch resting on a panel counts.
func (l *Layer) Blocks(frame *input.Frame) bool {
	if frame.Platform.UsesTouch() {
		for _, t := range frame.Touches {
			if l.Contains(t.Position) {
				return true
			}
		}
		return false
	}
	return l.Contains(frame.Pointer.Position)
}
