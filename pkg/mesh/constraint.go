package mesh

import "github.com/Faultbox/meshgrad/pkg/math"

// Constrain resolves a proposed position against the topology rules for the
// given class and returns the position that may actually be committed:
//
//   - Corner: the proposal is ignored entirely.
//   - EdgeVertical: x stays pinned to the original, y is clamped to [0,1].
//   - EdgeHorizontal: y stays pinned to the original, x is clamped to [0,1].
//   - Interior: both axes taken from the proposal, clamped to [0,1].
//
// Every interactive drag update and every randomization pass goes through
// this function, so the corner/edge invariants hold regardless of input.
func Constrain(original, proposed math.Vec2, class PointClass) math.Vec2 {
	switch class {
	case Corner:
		return original
	case EdgeVertical:
		return math.Vec2{X: original.X, Y: math.Clamp01(proposed.Y)}
	case EdgeHorizontal:
		return math.Vec2{X: math.Clamp01(proposed.X), Y: original.Y}
	default:
		return proposed.Clamp01()
	}
}
