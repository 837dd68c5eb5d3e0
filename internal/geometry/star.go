package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// Star is a point-symmetric star: spokes every pi/PointCount alternate
// between OuterRadius and InnerRadius, with the radius interpolated
// linearly in angle between adjacent spokes.
type Star struct {
	OuterRadius float64
	InnerRadius float64
	PointCount  int
}

// NewStar clamps the radii positive, keeps the inner radius below the
// outer one, and requires at least 3 points.
func NewStar(outer, inner float64, points int) Star {
	outer = math.Max(outer, 1)
	inner = math.Max(inner, 1)
	if inner >= outer {
		inner = outer * 0.5
	}
	if points < 3 {
		points = 3
	}
	return Star{OuterRadius: outer, InnerRadius: inner, PointCount: points}
}

func (s Star) EffectiveRadius() float64 { return s.OuterRadius }

func (s Star) BoundaryPoint(theta float64) geom.Coord {
	spoke := math.Pi / float64(s.PointCount)
	t := normalizeAngle(theta)
	k := int(t / spoke)
	if k >= 2*s.PointCount {
		k = 2*s.PointCount - 1
	}
	frac := (t - float64(k)*spoke) / spoke

	r0, r1 := s.OuterRadius, s.InnerRadius
	if k%2 == 1 {
		r0, r1 = r1, r0
	}
	r := r0 + (r1-r0)*frac
	return geom.Coord{X: r * math.Cos(t), Y: r * math.Sin(t)}
}
