// Package math provides 2D math types and scalar helpers for mesh-gradient
// geometry. All mesh coordinates live in the normalized [0,1]x[0,1] space.
package math

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// Clamp01 returns the vector with both components clamped to [0,1].
func (v Vec2) Clamp01() Vec2 {
	return Vec2{Clamp01(v.X), Clamp01(v.Y)}
}

// Lerp returns the linear interpolation between v and other at t.
func (v Vec2) Lerp(other Vec2, t float32) Vec2 {
	return Vec2{
		v.X + (other.X-v.X)*t,
		v.Y + (other.Y-v.Y)*t,
	}
}

// Sin is float32 math.Sin.
func Sin(x float32) float32 { return float32(math.Sin(float64(x))) }

// Cos is float32 math.Cos.
func Cos(x float32) float32 { return float32(math.Cos(float64(x))) }

// Sqrt is float32 math.Sqrt.
func Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// Abs returns |x|.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp01 clamps x to [0,1].
func Clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Lerp returns a + (b-a)*t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
