package render

import (
	"image/color"
	"testing"

	"github.com/Faultbox/meshgrad/pkg/mesh"
)

func TestRasterizeCoversDomain(t *testing.T) {
	m := mesh.New(3, 3)
	uniform := mesh.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	for i := 0; i < m.Len(); i++ {
		m.SetColor(i, uniform)
	}

	img := Rasterize(Refine(m.Snapshot(false), 8), 64, 64)

	// With boundary points pinned to the border, every pixel is covered.
	empty := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if img.RGBAAt(x, y).A == 0 {
				empty++
			}
		}
	}
	if empty > 0 {
		t.Errorf("%d uncovered pixels in a full-domain mesh", empty)
	}
}

func TestRasterizeUniformColor(t *testing.T) {
	m := mesh.New(2, 2)
	red := mesh.Color{R: 1, A: 1}
	for i := 0; i < m.Len(); i++ {
		m.SetColor(i, red)
	}

	img := Rasterize(Refine(m.Snapshot(false), 4), 32, 32)

	want := color.RGBA{R: 255, A: 255}
	for _, p := range [][2]int{{0, 0}, {16, 16}, {31, 31}, {5, 27}} {
		if got := img.RGBAAt(p[0], p[1]); got != want {
			t.Errorf("pixel %v = %v, want %v", p, got, want)
		}
	}
}

func TestRasterizeInterpolatesBetweenRows(t *testing.T) {
	// Top row white, bottom row black: mid-height pixels should sit near 50%.
	m := mesh.New(2, 2)
	m.SetColor(0, mesh.Color{R: 1, G: 1, B: 1, A: 1})
	m.SetColor(1, mesh.Color{R: 1, G: 1, B: 1, A: 1})
	m.SetColor(2, mesh.Color{A: 1})
	m.SetColor(3, mesh.Color{A: 1})

	img := Rasterize(Refine(m.Snapshot(false), 8), 33, 33)

	top := img.RGBAAt(16, 1)
	mid := img.RGBAAt(16, 16)
	bottom := img.RGBAAt(16, 31)

	if top.R < 200 {
		t.Errorf("top pixel %v, want near white", top)
	}
	if bottom.R > 55 {
		t.Errorf("bottom pixel %v, want near black", bottom)
	}
	if mid.R < 100 || mid.R > 155 {
		t.Errorf("middle pixel %v, want near 50%% gray", mid)
	}
}
