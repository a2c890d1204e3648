package render

import (
	"image"
	"image/color"

	"github.com/Faultbox/meshgrad/pkg/math"
	"github.com/Faultbox/meshgrad/pkg/mesh"
)

// Rasterize draws a refined grid into an RGBA image of the given pixel size.
// This is the CPU implementation of the render contract, used by the headless
// exporter; the interactive apps use the OpenGL renderer instead.
func Rasterize(g Grid, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// Each fine cell becomes two triangles with per-vertex colors.
	for j := 0; j < g.Rows-1; j++ {
		for i := 0; i < g.Cols-1; i++ {
			i00 := j*g.Cols + i
			i10 := i00 + 1
			i01 := i00 + g.Cols
			i11 := i01 + 1

			fillTriangle(img,
				toPixel(g.Positions[i00], width, height), g.Colors[i00],
				toPixel(g.Positions[i10], width, height), g.Colors[i10],
				toPixel(g.Positions[i11], width, height), g.Colors[i11])
			fillTriangle(img,
				toPixel(g.Positions[i00], width, height), g.Colors[i00],
				toPixel(g.Positions[i11], width, height), g.Colors[i11],
				toPixel(g.Positions[i01], width, height), g.Colors[i01])
		}
	}
	return img
}

// toPixel maps a normalized position to pixel coordinates, y growing down.
// The unit square maps onto [0,width]x[0,height] so border pixel centers
// stay inside the mesh.
func toPixel(p math.Vec2, width, height int) math.Vec2 {
	return math.Vec2{
		X: p.X * float32(width),
		Y: p.Y * float32(height),
	}
}

// edge is the signed double area of triangle (a, b, p).
func edge(a, b, p math.Vec2) float32 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// fillTriangle rasterizes one triangle with barycentric color interpolation.
func fillTriangle(img *image.RGBA, p0 math.Vec2, c0 mesh.Color, p1 math.Vec2, c1 mesh.Color, p2 math.Vec2, c2 mesh.Color) {
	area := edge(p0, p1, p2)
	if math.Abs(area) < 1e-6 {
		return
	}

	bounds := img.Bounds()
	minX := clampInt(int(min3(p0.X, p1.X, p2.X)), bounds.Min.X, bounds.Max.X-1)
	maxX := clampInt(int(max3(p0.X, p1.X, p2.X))+1, bounds.Min.X, bounds.Max.X-1)
	minY := clampInt(int(min3(p0.Y, p1.Y, p2.Y)), bounds.Min.Y, bounds.Max.Y-1)
	maxY := clampInt(int(max3(p0.Y, p1.Y, p2.Y))+1, bounds.Min.Y, bounds.Max.Y-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := math.Vec2{X: float32(x) + 0.5, Y: float32(y) + 0.5}
			w0 := edge(p1, p2, p) / area
			w1 := edge(p2, p0, p) / area
			w2 := edge(p0, p1, p) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			img.SetRGBA(x, y, color.RGBA{
				R: channel(w0*c0.R + w1*c1.R + w2*c2.R),
				G: channel(w0*c0.G + w1*c1.G + w2*c2.G),
				B: channel(w0*c0.B + w1*c1.B + w2*c2.B),
				A: channel(w0*c0.A + w1*c1.A + w2*c2.A),
			})
		}
	}
}

func channel(v float32) uint8 {
	return uint8(math.Clamp01(v)*255 + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
