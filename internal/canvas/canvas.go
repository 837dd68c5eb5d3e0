// Package canvas manages the persistent trace surface: an offscreen image
// accumulating ink in world coordinates, blitted to the screen through the
// view transform. The screen itself is the ephemeral overlay layer.
package canvas

import (
	"errors"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/jmbluhm/spirograph/internal/trace"
	"github.com/jmbluhm/spirograph/internal/view"
)

// Canvas owns the trace surface. The surface holds transparent pixels plus
// ink; the background color is painted by the caller (screen fill) and by
// Export (composite), so clearing the background never erases the layering.
type Canvas struct {
	surface *ebiten.Image
}

func New(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Ready reports whether the trace surface exists. All per-frame operations
// no-op while it does not.
func (c *Canvas) Ready() bool { return c != nil && c.surface != nil }

func (c *Canvas) Size() (int, int) {
	if !c.Ready() {
		return 0, 0
	}
	b := c.surface.Bounds()
	return b.Dx(), b.Dy()
}

// Resize replaces the surface with one of the new size, copying the old
// pixels centered into it. Best effort: ink outside the new bounds is lost.
func (c *Canvas) Resize(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	ow, oh := c.Size()
	if w == ow && h == oh {
		return
	}
	next := ebiten.NewImage(w, h)
	if c.surface != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(w-ow)/2, float64(h-oh)/2)
		next.DrawImage(c.surface, op)
	}
	c.surface = next
}

// Clear wipes all accumulated ink. Idempotent.
func (c *Canvas) Clear() {
	if !c.Ready() {
		return
	}
	c.surface.Clear()
}

// Stroke draws trace segments onto the surface. Segments are in world
// coordinates with the origin at the surface center.
func (c *Canvas) Stroke(segs []trace.Segment) {
	if !c.Ready() || len(segs) == 0 {
		return
	}
	w, h := c.Size()
	cx, cy := float32(w)/2, float32(h)/2
	for _, s := range segs {
		vector.StrokeLine(c.surface,
			cx+float32(s.From.X), cy+float32(s.From.Y),
			cx+float32(s.To.X), cy+float32(s.To.Y),
			s.Width, s.Color, true)
	}
}

// Draw blits the trace surface to the screen through the view transform:
// center the surface, scale, then translate by screen center plus pan. The
// same mapping the overlay uses, so both layers stay pixel-aligned.
func (c *Canvas) Draw(screen *ebiten.Image, vt view.Transform) {
	if !c.Ready() {
		return
	}
	w, h := c.Size()
	sb := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(vt.Scale, vt.Scale)
	op.GeoM.Translate(float64(sb.Dx())/2+vt.PanX, float64(sb.Dy())/2+vt.PanY)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(c.surface, op)
}

// Export composites the trace surface onto the background color, stamps an
// optional caption in the bottom-left corner, and writes a PNG.
func (c *Canvas) Export(path string, bg color.RGBA, caption string) error {
	if !c.Ready() {
		return errors.New("canvas: surface not initialized")
	}
	w, h := c.Size()
	dc := gg.NewContext(w, h)
	dc.SetColor(bg)
	dc.Clear()
	dc.DrawImage(c.surface, 0, 0)

	if caption != "" {
		f, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return err
		}
		face := truetype.NewFace(f, &truetype.Options{
			Size:    12,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		dc.SetFontFace(face)
		dc.SetColor(captionColor(bg))
		dc.DrawString(caption, 8, float64(h)-8)
	}

	return dc.SavePNG(path)
}

// captionColor picks black or white for legibility against the background.
func captionColor(bg color.RGBA) color.RGBA {
	luma := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luma > 140 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}
