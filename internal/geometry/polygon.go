package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// roundedPolygon is the shared boundary parametrization for regular
// polygons with optionally rounded corners. The full circle of travel is
// divided into one sector per side; each sector covers a straight run along
// an edge followed by a corner arc sweeping the polygon's exterior angle.
// The straight run is re-scaled so every sector covers exactly 2*pi/n of
// input angle, which keeps the mapping continuous across sector boundaries
// and continuous in the corner radius as it shrinks to zero.
type roundedPolygon struct {
	sides  int
	circum float64 // circumradius (center to sharp vertex)
	phase  float64 // angle of vertex 0
	corner float64 // corner arc radius
}

func (p roundedPolygon) sector() float64 { return 2 * math.Pi / float64(p.sides) }

func (p roundedPolygon) apothem() float64 {
	return p.circum * math.Cos(math.Pi/float64(p.sides))
}

func (p roundedPolygon) vertex(k int) geom.Coord {
	a := p.phase + float64(k)*p.sector()
	return geom.Coord{X: p.circum * math.Cos(a), Y: p.circum * math.Sin(a)}
}

// cornerCenter is the center of the corner arc at vertex k, pulled inward
// along the vertex ray so the arc is tangent to both adjacent edges.
func (p roundedPolygon) cornerCenter(k int) geom.Coord {
	m := p.circum - p.corner/math.Cos(math.Pi/float64(p.sides))
	return p.vertex(k).Times(m / p.circum)
}

// footOnEdge projects c perpendicularly onto the line through a and b.
func footOnEdge(c, a, b geom.Coord) geom.Coord {
	ab := b.Minus(a)
	ac := c.Minus(a)
	t := (ac.X*ab.X + ac.Y*ab.Y) / (ab.X*ab.X + ab.Y*ab.Y)
	return a.Plus(ab.Times(t))
}

func (p roundedPolygon) boundaryPoint(theta float64) geom.Coord {
	sw := p.sector()
	t := normalizeAngle(theta - p.phase)
	k := int(t / sw)
	if k >= p.sides {
		k = p.sides - 1
	}
	local := t - float64(k)*sw

	v0 := p.vertex(k)
	v1 := p.vertex(k + 1)
	if p.corner <= 0 {
		return lerp(v0, v1, local/sw)
	}

	// Angular span reserved for the corner arc at the end of the sector.
	span := math.Atan2(p.corner, p.apothem()-p.corner)
	if span >= sw {
		span = sw / 2
	}
	straight := sw - span

	c0 := p.cornerCenter(k)
	c1 := p.cornerCenter(k + 1)
	t0 := footOnEdge(c0, v0, v1) // exit tangent of the corner at v0
	t1 := footOnEdge(c1, v0, v1) // entry tangent of the corner at v1

	if local < straight {
		return lerp(t0, t1, local/straight)
	}

	// Corner arc around c1, sweeping the exterior angle from the entry
	// tangent to the exit tangent on the next edge.
	start := math.Atan2(t1.Y-c1.Y, t1.X-c1.X)
	a := start + (local-straight)/span*sw
	return geom.Coord{X: c1.X + p.corner*math.Cos(a), Y: c1.Y + p.corner*math.Sin(a)}
}

// Square is an axis-aligned square; CornerRadius > 0 rounds its corners.
type Square struct {
	EdgeLength   float64
	CornerRadius float64
}

// NewSquare clamps the edge positive and the corner radius to half the edge.
func NewSquare(edge, cornerRadius float64) Square {
	edge = math.Max(edge, 1)
	cornerRadius = math.Min(math.Max(cornerRadius, 0), edge/2)
	return Square{EdgeLength: edge, CornerRadius: cornerRadius}
}

// EffectiveRadius is half the edge length (the apothem).
func (s Square) EffectiveRadius() float64 { return s.EdgeLength / 2 }

func (s Square) BoundaryPoint(theta float64) geom.Coord {
	p := roundedPolygon{
		sides:  4,
		circum: s.EdgeLength / 2 * math.Sqrt2,
		phase:  math.Pi / 4, // vertices on the diagonals, edges axis-aligned
		corner: s.CornerRadius,
	}
	return p.boundaryPoint(theta)
}

// Hexagon is a regular hexagon with a vertex on the positive x axis;
// CornerRadius > 0 rounds its corners.
type Hexagon struct {
	SideLength   float64
	CornerRadius float64
}

// NewHexagon clamps the side positive and the corner radius to half the side.
func NewHexagon(side, cornerRadius float64) Hexagon {
	side = math.Max(side, 1)
	cornerRadius = math.Min(math.Max(cornerRadius, 0), side/2)
	return Hexagon{SideLength: side, CornerRadius: cornerRadius}
}

// EffectiveRadius is the side length, which equals the circumradius.
func (h Hexagon) EffectiveRadius() float64 { return h.SideLength }

func (h Hexagon) BoundaryPoint(theta float64) geom.Coord {
	p := roundedPolygon{
		sides:  6,
		circum: h.SideLength,
		phase:  0,
		corner: h.CornerRadius,
	}
	return p.boundaryPoint(theta)
}
