package renderer

import (
	"github.com/Faultbox/viewrig/pkg/math"
)

// Floats per grid vertex: position (x, y, z) + color (r, g, b).
const gridStride = 6

var (
	gridLineColor   = [3]float32{0.3, 0.32, 0.36}
	gridAxisColor   = [3]float32{0.75, 0.45, 0.2}
	gridBorderColor = [3]float32{0.8, 0.8, 0.85}
)

// gridVertices builds line-list vertices for a ground grid covering the
// given X and Z ranges at height 0. Lines through the origin and along
// the border get their own colors.
func gridVertices(boundsX, boundsZ math.Range, spacing float32) []float32 {
	if spacing <= 0 || !boundsX.Valid() || !boundsZ.Valid() {
		return nil
	}

	var vertices []float32
	line := func(a, b math.Vec3, color [3]float32) {
		vertices = append(vertices,
			a.X, a.Y, a.Z, color[0], color[1], color[2],
			b.X, b.Y, b.Z, color[0], color[1], color[2],
		)
	}
	colorFor := func(v float32, r math.Range) [3]float32 {
		switch {
		case v == 0:
			return gridAxisColor
		case v == r.Min || v == r.Max:
			return gridBorderColor
		default:
			return gridLineColor
		}
	}

	// Lines parallel to Z, stepping along X
	for _, x := range gridSteps(boundsX, spacing) {
		line(math.Vec3{X: x, Z: boundsZ.Min}, math.Vec3{X: x, Z: boundsZ.Max}, colorFor(x, boundsX))
	}
	// Lines parallel to X, stepping along Z
	for _, z := range gridSteps(boundsZ, spacing) {
		line(math.Vec3{X: boundsX.Min, Z: z}, math.Vec3{X: boundsX.Max, Z: z}, colorFor(z, boundsZ))
	}

	return vertices
}

// gridSteps returns both range ends plus every multiple of spacing
// strictly between them, in ascending order.
func gridSteps(r math.Range, spacing float32) []float32 {
	steps := []float32{r.Min}
	first := float32(int(r.Min/spacing)) * spacing
	if first <= r.Min {
		first += spacing
	}
	for v := first; v < r.Max; v += spacing {
		steps = append(steps, v)
	}
	if r.Max != r.Min {
		steps = append(steps, r.Max)
	}
	return steps
}
