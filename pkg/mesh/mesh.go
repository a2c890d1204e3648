package mesh

import (
	"math/rand"
	"time"

	"github.com/Faultbox/meshgrad/pkg/math"
)

// Point is one control point of the gradient: a stable identity plus a
// position and color that mutate independently.
type Point struct {
	ID    int
	Pos   math.Vec2
	Color Color
}

// Mesh owns the authoritative control-point list in row-major order
// (y outer, x inner). It is the single source of truth read by the animation
// field, the renderers and the exporter. All mutations are synchronous and
// atomic with respect to the single-threaded frame loop.
type Mesh struct {
	width  int
	height int
	points []Point
	nextID int
	rng    *rand.Rand
}

// New creates a mesh with the default evenly-spaced layout and the cyclic
// default palette. Precondition: width, height in [2,5].
func New(width, height int) *Mesh {
	m := &Mesh{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	m.Resize(width, height)
	return m
}

// Seed replaces the randomizer source so RandomizeColors and
// RandomizePoints become deterministic for a given seed.
func (m *Mesh) Seed(seed int64) {
	m.rng = rand.New(rand.NewSource(seed))
}

// Width returns the number of columns.
func (m *Mesh) Width() int { return m.width }

// Height returns the number of rows.
func (m *Mesh) Height() int { return m.height }

// Len returns the point count (width * height).
func (m *Mesh) Len() int { return len(m.points) }

// Point returns the point at row-major index i.
func (m *Mesh) Point(i int) Point { return m.points[i] }

// Resize regenerates the whole mesh for the new dimensions: evenly-spaced
// base positions, colors assigned by index mod 9 from the default palette,
// fresh point identities. Prior manual edits are intentionally discarded.
func (m *Mesh) Resize(width, height int) {
	positions := BasePositions(width, height)
	points := make([]Point, len(positions))
	for i, pos := range positions {
		points[i] = Point{
			ID:    m.nextID,
			Pos:   pos,
			Color: DefaultPalette[i%len(DefaultPalette)],
		}
		m.nextID++
	}
	m.width = width
	m.height = height
	m.points = points
}

// MovePoint applies a drag update: the proposed position is resolved through
// the constraint rules for the point's class before being committed. Corner
// points never move.
func (m *Mesh) MovePoint(i int, proposed math.Vec2) {
	p := &m.points[i]
	p.Pos = Constrain(p.Pos, proposed, Classify(p.Pos))
}

// SetColor assigns a color to the point at index i.
func (m *Mesh) SetColor(i int, c Color) {
	m.points[i].Color = c
}

// RandomizeColors assigns a uniformly random color to every non-corner
// point. Corner colors are untouched.
func (m *Mesh) RandomizeColors() {
	for i := range m.points {
		if Classify(m.points[i].Pos) == Corner {
			continue
		}
		m.points[i].Color = randomColor(m.rng)
	}
}

// RandomizePoints assigns a random color and a random constrained position to
// every non-corner point: vertical-edge points randomize y only,
// horizontal-edge points x only, interior points both axes. Corners are never
// touched.
func (m *Mesh) RandomizePoints() {
	for i := range m.points {
		p := &m.points[i]
		class := Classify(p.Pos)
		if class == Corner {
			continue
		}
		p.Color = randomColor(m.rng)
		switch class {
		case EdgeVertical:
			p.Pos.Y = m.rng.Float32()
		case EdgeHorizontal:
			p.Pos.X = m.rng.Float32()
		default:
			p.Pos = math.Vec2{X: m.rng.Float32(), Y: m.rng.Float32()}
		}
	}
}

// Frame is an immutable per-frame snapshot of the mesh, in the shape the
// render contract expects: row-major positions and colors plus dimensions and
// the smoothing flag.
type Frame struct {
	Width     int
	Height    int
	Positions []math.Vec2
	Colors    []Color
	Smooth    bool
}

// Snapshot copies the current state into a Frame. Readers (renderers, the
// exporter) work from snapshots so no mutation is ever observed half-applied.
func (m *Mesh) Snapshot(smooth bool) Frame {
	f := Frame{
		Width:     m.width,
		Height:    m.height,
		Positions: make([]math.Vec2, len(m.points)),
		Colors:    make([]Color, len(m.points)),
		Smooth:    smooth,
	}
	for i, p := range m.points {
		f.Positions[i] = p.Pos
		f.Colors[i] = p.Color
	}
	return f
}
