package render

import (
	"testing"

	"github.com/Faultbox/meshgrad/pkg/math"
	"github.com/Faultbox/meshgrad/pkg/mesh"
)

func TestRefineDimensions(t *testing.T) {
	m := mesh.New(3, 4)
	g := Refine(m.Snapshot(false), 8)

	wantCols := (3-1)*8 + 1
	wantRows := (4-1)*8 + 1
	if g.Cols != wantCols || g.Rows != wantRows {
		t.Fatalf("Refine grid %dx%d, want %dx%d", g.Cols, g.Rows, wantCols, wantRows)
	}
	if len(g.Positions) != g.Cols*g.Rows || len(g.Colors) != g.Cols*g.Rows {
		t.Fatalf("array lengths %d/%d, want %d", len(g.Positions), len(g.Colors), g.Cols*g.Rows)
	}
}

func TestRefineHitsControlPoints(t *testing.T) {
	// Control points must survive refinement exactly in both modes: the fine
	// grid samples land on them at multiples of the resolution.
	for _, smooth := range []bool{false, true} {
		m := mesh.New(3, 3)
		f := m.Snapshot(smooth)
		res := 4
		g := Refine(f, res)

		const tol = 1e-5
		for cy := 0; cy < f.Height; cy++ {
			for cx := 0; cx < f.Width; cx++ {
				want := f.Positions[cy*f.Width+cx]
				got := g.Positions[(cy*res)*g.Cols+cx*res]
				if math.Abs(got.X-want.X) > tol || math.Abs(got.Y-want.Y) > tol {
					t.Errorf("smooth=%t: control point (%d,%d) refined to %v, want %v", smooth, cx, cy, got, want)
				}

				wantC := f.Colors[cy*f.Width+cx]
				gotC := g.Colors[(cy*res)*g.Cols+cx*res]
				if math.Abs(gotC.R-wantC.R) > tol || math.Abs(gotC.G-wantC.G) > tol || math.Abs(gotC.B-wantC.B) > tol {
					t.Errorf("smooth=%t: control color (%d,%d) refined to %v, want %v", smooth, cx, cy, gotC, wantC)
				}
			}
		}
	}
}

func TestRefineStaysInDomain(t *testing.T) {
	m := mesh.New(4, 4)
	m.RandomizePoints()

	for _, smooth := range []bool{false, true} {
		g := Refine(m.Snapshot(smooth), 6)
		for i, p := range g.Positions {
			if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
				t.Fatalf("smooth=%t: refined position %d = %v outside [0,1]^2", smooth, i, p)
			}
			c := g.Colors[i]
			for _, v := range []float32{c.R, c.G, c.B, c.A} {
				if v < 0 || v > 1 {
					t.Fatalf("smooth=%t: refined color %d = %v outside [0,1]", smooth, i, c)
				}
			}
		}
	}
}

func TestRefineBilinearMidpoint(t *testing.T) {
	m := mesh.New(2, 2)
	m.SetColor(0, mesh.Color{R: 1, A: 1})
	m.SetColor(1, mesh.Color{R: 1, A: 1})
	m.SetColor(2, mesh.Color{B: 1, A: 1})
	m.SetColor(3, mesh.Color{B: 1, A: 1})

	g := Refine(m.Snapshot(false), 2)
	mid := g.Colors[1*g.Cols+1] // center of the single cell

	const tol = 1e-5
	if math.Abs(mid.R-0.5) > tol || math.Abs(mid.B-0.5) > tol {
		t.Errorf("bilinear midpoint = %+v, want R=0.5 B=0.5", mid)
	}
}

func TestCatmullInterpolatesEndpoints(t *testing.T) {
	if got := catmull(0, 1, 2, 3, 0); got != 1 {
		t.Errorf("catmull(t=0) = %v, want 1", got)
	}
	if got := catmull(0, 1, 2, 3, 1); got != 2 {
		t.Errorf("catmull(t=1) = %v, want 2", got)
	}
}
