// Package geometry computes guide-shape boundaries and the roulette pen
// point traced by a circle rolling without slipping inside a guide.
package geometry

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/jmbluhm/spirograph/internal/config"
)

// Guide is the fixed boundary the moving circle rolls inside. Boundary
// points are parametrized by an angle of travel and are 2*pi periodic;
// EffectiveRadius is the rolling radius substituted for R in the roulette
// formula.
type Guide interface {
	EffectiveRadius() float64
	BoundaryPoint(theta float64) geom.Coord
}

// EffectiveRadius returns g's rolling radius, falling back to a default
// circle when no guide is configured.
func EffectiveRadius(g Guide) float64 {
	if g == nil {
		return config.DefaultGuideRadius
	}
	return g.EffectiveRadius()
}

// BoundaryPoint samples g's boundary at the given angle of travel, falling
// back to a default circle when no guide is configured.
func BoundaryPoint(g Guide, theta float64) geom.Coord {
	if g == nil {
		return Circle{Radius: config.DefaultGuideRadius}.BoundaryPoint(theta)
	}
	return g.BoundaryPoint(theta)
}

// normalizeAngle maps theta into [0, 2*pi).
func normalizeAngle(theta float64) float64 {
	t := math.Mod(theta, 2*math.Pi)
	if t < 0 {
		t += 2 * math.Pi
	}
	return t
}

func lerp(a, b geom.Coord, t float64) geom.Coord {
	return a.Plus(b.Minus(a).Times(t))
}

// Circle is the classic spirograph ring.
type Circle struct {
	Radius float64
}

// NewCircle clamps the radius to a positive value.
func NewCircle(radius float64) Circle {
	return Circle{Radius: math.Max(radius, 1)}
}

func (c Circle) EffectiveRadius() float64 { return c.Radius }

func (c Circle) BoundaryPoint(theta float64) geom.Coord {
	return geom.Coord{X: c.Radius * math.Cos(theta), Y: c.Radius * math.Sin(theta)}
}

// Ellipse is an axis-aligned ellipse rotated by RotationDegrees.
type Ellipse struct {
	MajorAxis       float64
	MinorAxis       float64
	RotationDegrees float64
}

// NewEllipse clamps both axes positive and orders them so the major axis
// is the longer one.
func NewEllipse(major, minor, rotationDegrees float64) Ellipse {
	major = math.Max(major, 1)
	minor = math.Max(minor, 1)
	if minor > major {
		major, minor = minor, major
	}
	return Ellipse{MajorAxis: major, MinorAxis: minor, RotationDegrees: rotationDegrees}
}

func (e Ellipse) EffectiveRadius() float64 { return e.MajorAxis / 2 }

func (e Ellipse) BoundaryPoint(theta float64) geom.Coord {
	rot := e.RotationDegrees * math.Pi / 180
	phi := theta - rot
	p := geom.Coord{
		X: e.MajorAxis / 2 * math.Cos(phi),
		Y: e.MinorAxis / 2 * math.Sin(phi),
	}
	sin, cos := math.Sincos(rot)
	return geom.Coord{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}
