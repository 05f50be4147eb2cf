package math

import "github.com/chewxy/math32"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates from a to b by t. t is not clamped.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

// Clamp limits v to the range.
func (r Range) Clamp(v float32) float32 {
	return Clamp(v, r.Min, r.Max)
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float32) bool {
	return v >= r.Min && v <= r.Max
}

// Valid reports whether Min <= Max.
func (r Range) Valid() bool {
	return r.Min <= r.Max
}
