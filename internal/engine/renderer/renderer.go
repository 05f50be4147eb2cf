// Package renderer draws the ground grid and UI panels with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/viewrig/internal/engine/shader"
	"github.com/Faultbox/viewrig/internal/engine/ui2d"
	"github.com/Faultbox/viewrig/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width       int
	Height      int
	BoundsX     math.Range
	BoundsZ     math.Range
	GridSpacing float32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program     uint32
	viewProjLoc int32

	gridVAO         uint32
	gridVBO         uint32
	gridVertexCount int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, log *zap.Logger) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    log,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.CompileProgram(shader.LineVertex, shader.LineFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create line shader: %w", err)
	}
	r.viewProjLoc, err = shader.Uniform(r.program, "uViewProj")
	if err != nil {
		gl.DeleteProgram(r.program)
		return nil, err
	}

	gl.GenVertexArrays(1, &r.gridVAO)
	gl.GenBuffers(1, &r.gridVBO)
	r.SetBounds(cfg.BoundsX, cfg.BoundsZ, cfg.GridSpacing)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.gridVAO != 0 {
		gl.DeleteVertexArrays(1, &r.gridVAO)
	}
	if r.gridVBO != 0 {
		gl.DeleteBuffers(1, &r.gridVBO)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetBounds rebuilds the ground grid for new world bounds.
func (r *Renderer) SetBounds(boundsX, boundsZ math.Range, spacing float32) {
	r.config.BoundsX = boundsX
	r.config.BoundsZ = boundsZ
	r.config.GridSpacing = spacing

	vertices := gridVertices(boundsX, boundsZ, spacing)
	r.gridVertexCount = int32(len(vertices) / gridStride)

	gl.BindVertexArray(r.gridVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.gridVBO)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, gridStride*4, nil)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, gridStride*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("grid rebuilt",
		zap.Int32("vertices", r.gridVertexCount),
		zap.Float32("spacing", spacing),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawGrid draws the ground grid with the given view-projection matrix.
func (r *Renderer) DrawGrid(viewProj math.Mat4) {
	if r.gridVertexCount == 0 {
		return
	}
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.viewProjLoc, 1, false, viewProj.Ptr())
	gl.BindVertexArray(r.gridVAO)
	gl.DrawArrays(gl.LINES, 0, r.gridVertexCount)
	gl.BindVertexArray(0)
}

// DrawPanels fills each UI panel. Panel coordinates share GL's
// bottom-left origin, so they map straight onto scissor rectangles.
func (r *Renderer) DrawPanels(panels []ui2d.Panel) {
	if len(panels) == 0 {
		return
	}
	gl.Enable(gl.SCISSOR_TEST)
	for _, p := range panels {
		if p.W <= 0 || p.H <= 0 {
			continue
		}
		gl.Scissor(int32(p.X), int32(p.Y), int32(p.W), int32(p.H))
		gl.ClearColor(p.Color.R, p.Color.G, p.Color.B, p.Color.A)
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
}

// ReadPixels reads the framebuffer as RGBA with a bottom-left origin.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.UseProgram(0)
}
