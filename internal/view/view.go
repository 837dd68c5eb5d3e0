// Package view maintains the pan offset and zoom scale applied uniformly
// to the guide overlay and the trace layer.
package view

import (
	"github.com/jbeda/geom"

	"github.com/jmbluhm/spirograph/internal/config"
)

// Transform is the current pan/zoom state. Mutated only by the pointer
// drag and wheel handlers; the render step reads it every frame.
type Transform struct {
	PanX, PanY float64
	Scale      float64
}

func New() Transform {
	return Transform{Scale: 1}
}

// Drag adds a pointer-drag delta to the pan offset.
func (t *Transform) Drag(dx, dy float64) {
	t.PanX += dx
	t.PanY += dy
}

// Zoom applies one wheel step: in for dir > 0, out for dir < 0, with the
// scale clamped to [MinZoom, MaxZoom]. Scaling is about the world origin.
func (t *Transform) Zoom(dir float64) {
	switch {
	case dir > 0:
		t.Scale *= config.ZoomInFactor
	case dir < 0:
		t.Scale *= config.ZoomOutFactor
	default:
		return
	}
	if t.Scale < config.MinZoom {
		t.Scale = config.MinZoom
	}
	if t.Scale > config.MaxZoom {
		t.Scale = config.MaxZoom
	}
}

// ToScreen maps a world point to screen coordinates: translate to the
// surface center, apply the pan offset, apply the uniform scale.
func (t Transform) ToScreen(centerX, centerY float64, p geom.Coord) (float64, float64) {
	return centerX + t.PanX + p.X*t.Scale, centerY + t.PanY + p.Y*t.Scale
}
