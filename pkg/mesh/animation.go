package mesh

import "github.com/Faultbox/meshgrad/pkg/math"

// Kind selects the animation field applied to non-corner points.
type Kind int

const (
	Wave Kind = iota
	Rotate
	Pulse
	Bounce
	Spiral
)

// Kinds lists every animation kind in display order.
var Kinds = [5]Kind{Wave, Rotate, Pulse, Bounce, Spiral}

func (k Kind) String() string {
	switch k {
	case Wave:
		return "wave"
	case Rotate:
		return "rotate"
	case Pulse:
		return "pulse"
	case Bounce:
		return "bounce"
	case Spiral:
		return "spiral"
	default:
		return "unknown"
	}
}

// ParseKind converts a config string to a Kind. Unknown values fall back to
// Wave.
func ParseKind(s string) Kind {
	switch s {
	case "rotate":
		return Rotate
	case "pulse":
		return Pulse
	case "bounce":
		return Bounce
	case "spiral":
		return Spiral
	default:
		return Wave
	}
}

// Params holds the animation settings owned by an editor session.
// Speed is expected in [0.1,3.0] and Intensity in [0.1,2.0]; both ranges are
// clamped at the config and UI boundaries.
type Params struct {
	Kind      Kind
	Speed     float32
	Intensity float32
	Enabled   bool
}

// Evaluate computes the animated position of every base point at time now
// (seconds on a monotonic clock). It is a pure function: same length and
// order as base, no internal state, safe to call once per render tick.
//
// Corner points always pass through unchanged, independent of the constraint
// solver. When animation is disabled the base positions are returned as-is.
// Final positions are always clamped to [0,1] on each axis so the renderer
// never sees a coordinate outside its domain.
func Evaluate(base []math.Vec2, p Params, now float64) []math.Vec2 {
	out := make([]math.Vec2, len(base))
	if !p.Enabled {
		copy(out, base)
		return out
	}

	t := float32(now) * p.Speed
	k := p.Intensity * 0.1

	for i, b := range base {
		if Classify(b) == Corner {
			out[i] = b
			continue
		}
		offset := offsetAt(b, p.Kind, t, k)
		out[i] = b.Add(offset).Clamp01()
	}
	return out
}

// offsetAt computes the displacement for one non-corner point.
func offsetAt(b math.Vec2, kind Kind, t, k float32) math.Vec2 {
	switch kind {
	case Wave:
		return math.Vec2{
			X: math.Sin(t+b.Y*0.5) * k,
			Y: math.Cos(t+b.X*0.5) * k,
		}

	case Pulse:
		scale := 1 + math.Sin(t)*k
		return math.Vec2{
			X: (b.X - 0.5) * (scale - 1) * 2,
			Y: (b.Y - 0.5) * (scale - 1) * 2,
		}

	case Bounce:
		return math.Vec2{
			X: 0,
			Y: math.Abs(math.Sin(t+b.X*0.3)) * k * 2,
		}

	case Rotate:
		// An absolute rotated displacement, not a rotation in place: the x2
		// factor makes points orbit around the center. Intentional.
		dx := b.X - 0.5
		dy := b.Y - 0.5
		return math.Vec2{
			X: (math.Cos(t)*dx - math.Sin(t)*dy) * 2,
			Y: (math.Sin(t)*dx + math.Cos(t)*dy) * 2,
		}

	case Spiral:
		dx := b.X - 0.5
		dy := b.Y - 0.5
		dist := math.Sqrt(dx*dx + dy*dy)
		angle := t + dist*10
		scale := 1 + math.Sin(t)*k
		return math.Vec2{
			X: (math.Cos(angle)*dx - math.Sin(angle)*dy) * scale,
			Y: (math.Sin(angle)*dx + math.Cos(angle)*dy) * scale,
		}
	}
	return math.Vec2{}
}
