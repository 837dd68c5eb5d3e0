package view

import (
	"math"
	"testing"

	"github.com/jbeda/geom"

	"github.com/jmbluhm/spirograph/internal/config"
)

func TestZoomFactors(t *testing.T) {
	vt := New()
	vt.Zoom(1)
	if math.Abs(vt.Scale-config.ZoomInFactor) > 1e-12 {
		t.Errorf("zoom in scale = %v, want %v", vt.Scale, config.ZoomInFactor)
	}

	vt = New()
	vt.Zoom(-1)
	if math.Abs(vt.Scale-config.ZoomOutFactor) > 1e-12 {
		t.Errorf("zoom out scale = %v, want %v", vt.Scale, config.ZoomOutFactor)
	}

	vt = New()
	vt.Zoom(0)
	if vt.Scale != 1 {
		t.Errorf("zero wheel delta changed scale to %v", vt.Scale)
	}
}

func TestZoomClamps(t *testing.T) {
	vt := New()
	for i := 0; i < 200; i++ {
		vt.Zoom(-1)
	}
	if vt.Scale != config.MinZoom {
		t.Errorf("scale = %v, want clamp at %v", vt.Scale, config.MinZoom)
	}

	vt = New()
	for i := 0; i < 200; i++ {
		vt.Zoom(1)
	}
	if vt.Scale != config.MaxZoom {
		t.Errorf("scale = %v, want clamp at %v", vt.Scale, config.MaxZoom)
	}
}

func TestDragAccumulates(t *testing.T) {
	vt := New()
	vt.Drag(10, -5)
	vt.Drag(-4, 7)
	if vt.PanX != 6 || vt.PanY != 2 {
		t.Errorf("pan = (%v, %v), want (6, 2)", vt.PanX, vt.PanY)
	}
}

func TestToScreen(t *testing.T) {
	vt := Transform{PanX: 10, PanY: 20, Scale: 2}
	x, y := vt.ToScreen(512, 384, geom.Coord{X: 30, Y: -40})
	if x != 512+10+60 || y != 384+20-80 {
		t.Errorf("ToScreen = (%v, %v), want (582, 324)", x, y)
	}
}
