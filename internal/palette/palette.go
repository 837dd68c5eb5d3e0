// Package palette resolves a scalar progress value in [0,1) to a concrete
// color, supporting solid colors and multi-stop gradients.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// Stop is a gradient stop: a color anchored at a position in [0,1].
type Stop struct {
	Color color.RGBA
	Pos   float64
}

// Spec is either a solid color (one stop) or a position-interpolated
// gradient (two or more stops with increasing positions).
type Spec struct {
	stops []Stop
}

// Solid returns a spec that resolves to c for any progress.
func Solid(c color.RGBA) Spec {
	return Spec{stops: []Stop{{Color: c, Pos: 0}}}
}

// Gradient returns a spec interpolating between the given stops. Stops are
// sorted by position; by convention the first sits at 0 and the last at 1,
// but that is not enforced — out-of-range progress clamps to the nearest
// boundary stop.
func Gradient(stops ...Stop) Spec {
	s := make([]Stop, len(stops))
	copy(s, stops)
	sort.SliceStable(s, func(i, j int) bool { return s[i].Pos < s[j].Pos })
	return Spec{stops: s}
}

// Stops returns a copy of the spec's stops.
func (s Spec) Stops() []Stop {
	out := make([]Stop, len(s.stops))
	copy(out, s.stops)
	return out
}

// At resolves the color at the given progress. Progress before the first
// stop yields the first stop's color, after the last the last's; between
// adjacent stops each channel is interpolated linearly and rounded.
func (s Spec) At(progress float64) color.RGBA {
	switch len(s.stops) {
	case 0:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case 1:
		return s.stops[0].Color
	}
	if progress <= s.stops[0].Pos {
		return s.stops[0].Color
	}
	last := s.stops[len(s.stops)-1]
	if progress >= last.Pos {
		return last.Color
	}
	for i := 0; i < len(s.stops)-1; i++ {
		a, b := s.stops[i], s.stops[i+1]
		if progress < a.Pos || progress > b.Pos {
			continue
		}
		span := b.Pos - a.Pos
		if span <= 0 {
			return a.Color
		}
		t := (progress - a.Pos) / span
		return color.RGBA{
			R: lerpChannel(a.Color.R, b.Color.R, t),
			G: lerpChannel(a.Color.G, b.Color.G, t),
			B: lerpChannel(a.Color.B, b.Color.B, t),
			A: lerpChannel(a.Color.A, b.Color.A, t),
		}
	}
	return last.Color
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// ParseHex parses a #rrggbb or rrggbb color string.
func ParseHex(s string) (color.RGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("palette: malformed hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("palette: malformed hex color %q: %v", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Hex encodes c as a #rrggbb string.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
