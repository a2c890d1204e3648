package mesh

import "math/rand"

// Color is an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Transparent is the fallback color used when a color cannot be exported.
var Transparent = Color{0, 0, 0, 0}

// DefaultPalette is the 9-color palette assigned cyclically (row-major index
// mod 9) whenever the grid is resized.
var DefaultPalette = [9]Color{
	{0.94, 0.27, 0.27, 1}, // red
	{0.96, 0.62, 0.14, 1}, // orange
	{0.98, 0.85, 0.23, 1}, // yellow
	{0.30, 0.79, 0.42, 1}, // green
	{0.18, 0.70, 0.83, 1}, // cyan
	{0.23, 0.45, 0.92, 1}, // blue
	{0.48, 0.30, 0.88, 1}, // violet
	{0.87, 0.32, 0.75, 1}, // magenta
	{0.95, 0.46, 0.56, 1}, // pink
}

// PresetPalette is the 10-color swatch set offered by the color picker.
var PresetPalette = [10]Color{
	{1.00, 1.00, 1.00, 1},
	{0.10, 0.10, 0.12, 1},
	{0.94, 0.27, 0.27, 1},
	{0.96, 0.62, 0.14, 1},
	{0.98, 0.85, 0.23, 1},
	{0.30, 0.79, 0.42, 1},
	{0.18, 0.70, 0.83, 1},
	{0.23, 0.45, 0.92, 1},
	{0.48, 0.30, 0.88, 1},
	{0.87, 0.32, 0.75, 1},
}

// randomColor returns an opaque color with each channel uniform in [0,1].
func randomColor(r *rand.Rand) Color {
	return Color{
		R: r.Float32(),
		G: r.Float32(),
		B: r.Float32(),
		A: 1,
	}
}

// Lerp returns the channel-wise linear interpolation between c and other at t.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}
