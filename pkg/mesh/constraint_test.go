package mesh

import (
	"math/rand"
	"testing"

	"github.com/Faultbox/meshgrad/pkg/math"
)

func TestConstrainCorner(t *testing.T) {
	original := math.Vec2{X: 1, Y: 0}
	proposed := math.Vec2{X: 0.3, Y: 0.8}
	if got := Constrain(original, proposed, Corner); got != original {
		t.Errorf("Constrain(corner) = %v, want %v", got, original)
	}
}

func TestConstrainVerticalEdge(t *testing.T) {
	original := math.Vec2{X: 0, Y: 0.5}
	got := Constrain(original, math.Vec2{X: 0.7, Y: 1.4}, EdgeVertical)
	want := math.Vec2{X: 0, Y: 1}
	if got != want {
		t.Errorf("Constrain(vertical edge) = %v, want %v", got, want)
	}
}

func TestConstrainHorizontalEdge(t *testing.T) {
	original := math.Vec2{X: 0.5, Y: 1}
	got := Constrain(original, math.Vec2{X: -0.2, Y: 0.1}, EdgeHorizontal)
	want := math.Vec2{X: 0, Y: 1}
	if got != want {
		t.Errorf("Constrain(horizontal edge) = %v, want %v", got, want)
	}
}

func TestConstrainInterior(t *testing.T) {
	original := math.Vec2{X: 0.5, Y: 0.5}
	got := Constrain(original, math.Vec2{X: 1.9, Y: -3}, Interior)
	want := math.Vec2{X: 1, Y: 0}
	if got != want {
		t.Errorf("Constrain(interior) = %v, want %v", got, want)
	}
}

// The constraint law: output always lies in [0,1]^2 and matches the original
// on every pinned axis, for arbitrary proposals.
func TestConstrainLawRandomProposals(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	originals := map[PointClass]math.Vec2{
		Corner:         {X: 1, Y: 1},
		EdgeVertical:   {X: 0, Y: 0.25},
		EdgeHorizontal: {X: 0.75, Y: 0},
		Interior:       {X: 0.4, Y: 0.6},
	}

	for class, original := range originals {
		for i := 0; i < 1000; i++ {
			proposed := math.Vec2{
				X: rng.Float32()*6 - 3,
				Y: rng.Float32()*6 - 3,
			}
			got := Constrain(original, proposed, class)

			if got.X < 0 || got.X > 1 || got.Y < 0 || got.Y > 1 {
				t.Fatalf("%v: result %v outside [0,1]^2", class, got)
			}
			switch class {
			case Corner:
				if got != original {
					t.Fatalf("corner moved: %v -> %v", original, got)
				}
			case EdgeVertical:
				if got.X != original.X {
					t.Fatalf("vertical edge X unpinned: %v -> %v", original, got)
				}
			case EdgeHorizontal:
				if got.Y != original.Y {
					t.Fatalf("horizontal edge Y unpinned: %v -> %v", original, got)
				}
			}
		}
	}
}
