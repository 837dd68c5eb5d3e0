package palette

import (
	"image/color"
	"math"
)

// Named pairs a preset spec with a display name for the status line.
type Named struct {
	Name string
	Spec Spec
}

// Presets returns the built-in stroke palettes, cycled by the UI.
func Presets() []Named {
	return []Named{
		{Name: "rainbow", Spec: Rainbow(12)},
		{Name: "ocean", Spec: mustGradient("#0f2027", "#2c5364", "#36d1dc")},
		{Name: "sunset", Spec: mustGradient("#ff512f", "#f09819", "#ffd194")},
		{Name: "violet", Spec: mustGradient("#41295a", "#b06ab3", "#f9d423")},
		{Name: "white", Spec: Solid(color.RGBA{R: 235, G: 235, B: 235, A: 255})},
		{Name: "ember", Spec: Solid(color.RGBA{R: 255, G: 94, B: 58, A: 255})},
	}
}

// Rainbow builds a gradient that walks the full hue circle in n stops,
// ending where it starts so progress wraps without a seam.
func Rainbow(n int) Spec {
	if n < 2 {
		n = 2
	}
	stops := make([]Stop, 0, n+1)
	for i := 0; i <= n; i++ {
		hue := 360 * float64(i) / float64(n)
		r, g, b := hsvToRGB(hue, 0.8, 0.95)
		stops = append(stops, Stop{
			Color: color.RGBA{R: r, G: g, B: b, A: 255},
			Pos:   float64(i) / float64(n),
		})
	}
	return Gradient(stops...)
}

func mustGradient(hexes ...string) Spec {
	stops := make([]Stop, len(hexes))
	for i, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			panic(err)
		}
		stops[i] = Stop{Color: c, Pos: float64(i) / float64(len(hexes)-1)}
	}
	return Gradient(stops...)
}

// hsvToRGB converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}
