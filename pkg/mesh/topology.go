// Package mesh implements the mesh-gradient engine: grid topology, the
// per-frame animation field, drag constraints, the mutable control-point
// state, and the textual exporter.
//
// Grid dimensions are expected in [2,5] on both axes. That range is enforced
// at every input boundary (config loading and the editor UI), so the engine
// treats it as a precondition rather than re-checking it.
package mesh

import "github.com/Faultbox/meshgrad/pkg/math"

// PointClass describes how a control point may move.
type PointClass int

const (
	// Interior points move freely inside [0,1]x[0,1].
	Interior PointClass = iota
	// EdgeVertical points sit on x=0 or x=1 and slide along y only.
	EdgeVertical
	// EdgeHorizontal points sit on y=0 or y=1 and slide along x only.
	EdgeHorizontal
	// Corner points are pinned and never move.
	Corner
)

func (c PointClass) String() string {
	switch c {
	case Corner:
		return "corner"
	case EdgeVertical:
		return "edge-vertical"
	case EdgeHorizontal:
		return "edge-horizontal"
	default:
		return "interior"
	}
}

// BasePositions returns the canonical evenly-spaced layout for a width x
// height grid: for each row y, each column x, the point
// (x/(width-1), y/(height-1)), row-major. Precondition: width, height >= 2.
func BasePositions(width, height int) []math.Vec2 {
	positions := make([]math.Vec2, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			positions = append(positions, math.Vec2{
				X: float32(x) / float32(width-1),
				Y: float32(y) / float32(height-1),
			})
		}
	}
	return positions
}

// Classify reports the movement class of a base position. Classification uses
// exact comparison against 0 and 1: base positions put boundary points exactly
// on the extremes, and constrained mutations keep them there.
func Classify(p math.Vec2) PointClass {
	onX := p.X == 0 || p.X == 1
	onY := p.Y == 0 || p.Y == 1
	switch {
	case onX && onY:
		return Corner
	case onX:
		return EdgeVertical
	case onY:
		return EdgeHorizontal
	default:
		return Interior
	}
}
