// Package render turns mesh snapshots into pixels. The control grid is first
// refined into a fine vertex grid (bilinear, or bicubic when smoothing is on)
// and then drawn either by the OpenGL renderer or by the CPU rasterizer.
package render

import (
	"github.com/Faultbox/meshgrad/pkg/math"
	"github.com/Faultbox/meshgrad/pkg/mesh"
)

// DefaultResolution is the subdivision count per control cell used by the
// interactive renderers. 16 keeps a 5x5 grid under 5k vertices.
const DefaultResolution = 16

// Grid is a refined vertex grid in row-major order.
type Grid struct {
	Cols      int
	Rows      int
	Positions []math.Vec2
	Colors    []mesh.Color
}

// Refine expands the coarse control frame into a fine vertex grid with res
// subdivisions per cell. When the frame's smoothing flag is off, positions
// and colors are interpolated bilinearly; when on, with clamped Catmull-Rom
// bicubic patches, which is what gives mesh gradients their soft falloff.
func Refine(f mesh.Frame, res int) Grid {
	if res < 1 {
		res = 1
	}
	cols := (f.Width-1)*res + 1
	rows := (f.Height-1)*res + 1

	g := Grid{
		Cols:      cols,
		Rows:      rows,
		Positions: make([]math.Vec2, cols*rows),
		Colors:    make([]mesh.Color, cols*rows),
	}

	for j := 0; j < rows; j++ {
		gy := float32(j) / float32(res)
		cy, fy := splitCell(gy, f.Height-1)
		for i := 0; i < cols; i++ {
			gx := float32(i) / float32(res)
			cx, fx := splitCell(gx, f.Width-1)

			idx := j*cols + i
			if f.Smooth {
				g.Positions[idx] = bicubicPosition(f, cx, cy, fx, fy)
				g.Colors[idx] = bicubicColor(f, cx, cy, fx, fy)
			} else {
				g.Positions[idx] = bilinearPosition(f, cx, cy, fx, fy)
				g.Colors[idx] = bilinearColor(f, cx, cy, fx, fy)
			}
		}
	}
	return g
}

// splitCell maps a grid-space coordinate to a cell index and the fraction
// inside it, keeping the last row/column inside the final cell.
func splitCell(g float32, cells int) (int, float32) {
	c := int(g)
	if c >= cells {
		c = cells - 1
	}
	return c, g - float32(c)
}

func bilinearPosition(f mesh.Frame, cx, cy int, fx, fy float32) math.Vec2 {
	p00 := f.Positions[cy*f.Width+cx]
	p10 := f.Positions[cy*f.Width+cx+1]
	p01 := f.Positions[(cy+1)*f.Width+cx]
	p11 := f.Positions[(cy+1)*f.Width+cx+1]
	return p00.Lerp(p10, fx).Lerp(p01.Lerp(p11, fx), fy)
}

func bilinearColor(f mesh.Frame, cx, cy int, fx, fy float32) mesh.Color {
	c00 := f.Colors[cy*f.Width+cx]
	c10 := f.Colors[cy*f.Width+cx+1]
	c01 := f.Colors[(cy+1)*f.Width+cx]
	c11 := f.Colors[(cy+1)*f.Width+cx+1]
	return c00.Lerp(c10, fx).Lerp(c01.Lerp(c11, fx), fy)
}

// catmull evaluates the Catmull-Rom spline through p1..p2 at t.
func catmull(p0, p1, p2, p3, t float32) float32 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

// clampIndex clamps a control index to [0,n-1], duplicating border samples so
// the spline stays defined at the grid boundary.
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func bicubicPosition(f mesh.Frame, cx, cy int, fx, fy float32) math.Vec2 {
	var colX, colY [4]float32
	for row := 0; row < 4; row++ {
		y := clampIndex(cy-1+row, f.Height)
		var rowX, rowY [4]float32
		for col := 0; col < 4; col++ {
			x := clampIndex(cx-1+col, f.Width)
			p := f.Positions[y*f.Width+x]
			rowX[col] = p.X
			rowY[col] = p.Y
		}
		colX[row] = catmull(rowX[0], rowX[1], rowX[2], rowX[3], fx)
		colY[row] = catmull(rowY[0], rowY[1], rowY[2], rowY[3], fx)
	}
	// Spline overshoot may leave the unit square; clamp to the render domain.
	return math.Vec2{
		X: math.Clamp01(catmull(colX[0], colX[1], colX[2], colX[3], fy)),
		Y: math.Clamp01(catmull(colY[0], colY[1], colY[2], colY[3], fy)),
	}
}

func bicubicColor(f mesh.Frame, cx, cy int, fx, fy float32) mesh.Color {
	var r, g, b, a [4]float32
	for row := 0; row < 4; row++ {
		y := clampIndex(cy-1+row, f.Height)
		var rr, rg, rb, ra [4]float32
		for col := 0; col < 4; col++ {
			x := clampIndex(cx-1+col, f.Width)
			c := f.Colors[y*f.Width+x]
			rr[col], rg[col], rb[col], ra[col] = c.R, c.G, c.B, c.A
		}
		r[row] = catmull(rr[0], rr[1], rr[2], rr[3], fx)
		g[row] = catmull(rg[0], rg[1], rg[2], rg[3], fx)
		b[row] = catmull(rb[0], rb[1], rb[2], rb[3], fx)
		a[row] = catmull(ra[0], ra[1], ra[2], ra[3], fx)
	}
	return mesh.Color{
		R: math.Clamp01(catmull(r[0], r[1], r[2], r[3], fy)),
		G: math.Clamp01(catmull(g[0], g[1], g[2], g[3], fy)),
		B: math.Clamp01(catmull(b[0], b[1], b[2], b[3], fy)),
		A: math.Clamp01(catmull(a[0], a[1], a[2], a[3], fy)),
	}
}
