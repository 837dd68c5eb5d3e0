package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// MovingCenter returns the center of the moving circle at the given angle
// of travel: the boundary sample pulled inward along the radial direction
// by the moving circle's own radius. For a circle guide this is exactly
// (R-r)*(cos theta, sin theta).
func MovingCenter(g Guide, movingRadius, theta float64) geom.Coord {
	base := BoundaryPoint(g, theta)
	sin, cos := math.Sincos(theta)
	return base.Minus(geom.Coord{X: movingRadius * cos, Y: movingRadius * sin})
}

// PenPoint returns the traced pen coordinate at the given cumulative angle
// of travel: the moving-circle center offset by the pen distance at the
// counter-rotated pen angle ((R-r)/r)*theta. The y term is negated to match
// the screen's inverted vertical axis, giving the classic hypotrochoid for
// a circle guide.
//
// A non-positive moving radius degenerates to the center point; callers
// treat that as a no-draw frame.
func PenPoint(g Guide, movingRadius, penDistance, theta float64) geom.Coord {
	center := MovingCenter(g, movingRadius, theta)
	if movingRadius <= 0 {
		return center
	}
	r := movingRadius
	penAngle := (EffectiveRadius(g) - r) / r * theta
	sin, cos := math.Sincos(penAngle)
	return center.Plus(geom.Coord{X: penDistance * cos, Y: -penDistance * sin})
}
