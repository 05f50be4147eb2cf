package ui2d

import (
	"testing"

	"github.com/Faultbox/viewrig/internal/engine/input"
	"github.com/Faultbox/viewrig/pkg/math"
)

func TestPanelContains(t *testing.T) {
	p := Panel{X: 10, Y: 20, W: 100, H: 50}

	tests := []struct {
		pt   math.Vec2
		want bool
	}{
		{math.Vec2{X: 10, Y: 20}, true},
		{math.Vec2{X: 109, Y: 69}, true},
		{math.Vec2{X: 110, Y: 30}, false},
		{math.Vec2{X: 50, Y: 70}, false},
		{math.Vec2{X: 9, Y: 30}, false},
	}
	for _, tt := range tests {
		if got := p.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}
}

func TestLayerHitTestTopmost(t *testing.T) {
	l := NewLayer(800,
		Panel{Name: "toolbar", X: 0, Y: 0, W: 200, H: 40},
		Panel{Name: "button", X: 10, Y: 5, W: 30, H: 30},
	)

	p, ok := l.HitTest(math.Vec2{X: 20, Y: 10})
	if !ok {
		t.Fatal("expected a hit")
	}
	if p.Name != "button" {
		t.Errorf("hit %q, want button", p.Name)
	}

	p, ok = l.HitTest(math.Vec2{X: 150, Y: 10})
	if !ok || p.Name != "toolbar" {
		t.Errorf("hit %q (%v), want toolbar", p.Name, ok)
	}

	if l.Contains(math.Vec2{X: 500, Y: 500}) {
		t.Error("point outside all panels should not hit")
	}
}

func TestLayerSkipsEmptyPanels(t *testing.T) {
	l := NewLayer(800, Panel{Name: "empty", W: 0, H: 10})
	if len(l.Panels()) != 0 {
		t.Errorf("expected empty panel to be skipped, got %d panels", len(l.Panels()))
	}
	if l.Contains(math.Vec2{}) {
		t.Error("empty layer should not hit")
	}
}

func TestLayerStretchFollowsWidth(t *testing.T) {
	l := NewLayer(1280, Panel{Name: "toolbar", X: 0, Y: 0, H: 48, Stretch: true})
	if len(l.Panels()) != 1 {
		t.Fatalf("stretched panel without width should be kept, got %d panels", len(l.Panels()))
	}
	if w := l.Panels()[0].W; w != 1280 {
		t.Errorf("W = %v, want 1280", w)
	}

	edge := math.Vec2{X: 1900, Y: 10}
	if l.Contains(edge) {
		t.Error("point past the window edge should not hit")
	}

	l.Resize(1920)
	if !l.Contains(edge) {
		t.Error("stretched panel should cover the widened window")
	}

	l.Resize(1000)
	if l.Contains(math.Vec2{X: 1100, Y: 10}) {
		t.Error("stretched panel should shrink with the window")
	}
}

func TestLayerStretchKeepsInset(t *testing.T) {
	l := NewLayer(1000, Panel{Name: "sidebar", X: 800, Y: 0, W: 50, H: 600, Stretch: true})
	if w := l.Panels()[0].W; w != 200 {
		t.Errorf("W = %v, want 200", w)
	}
}

func TestLayerBlocks(t *testing.T) {
	l := NewLayer(800, Panel{Name: "toolbar", X: 0, Y: 0, W: 200, H: 40})
	onPanel := math.Vec2{X: 50, Y: 20}
	offPanel := math.Vec2{X: 500, Y: 300}

	tests := []struct {
		name  string
		frame input.Frame
		want  bool
	}{
		{"mouse over panel", input.Frame{Pointer: input.Pointer{Position: onPanel}}, true},
		{"mouse off panel", input.Frame{Pointer: input.Pointer{Position: offPanel}}, false},
		{
			"touch over panel",
			input.Frame{
				Platform: input.Platform{TouchSupported: true},
				Pointer:  input.Pointer{Position: offPanel},
				Touches:  []input.Touch{{ID: 1, Position: offPanel}, {ID: 2, Position: onPanel}},
			},
			true,
		},
		{
			"touch off panel ignores stale pointer",
			input.Frame{
				Platform: input.Platform{TouchSupported: true},
				Pointer:  input.Pointer{Position: onPanel},
				Touches:  []input.Touch{{ID: 1, Position: offPanel}},
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Blocks(&tt.frame); got != tt.want {
				t.Errorf("Blocks() = %v, want %v", got, tt.want)
			}
		})
	}
}
