package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/jmbluhm/spirograph/internal/canvas"
	"github.com/jmbluhm/spirograph/internal/config"
	"github.com/jmbluhm/spirograph/internal/geometry"
	"github.com/jmbluhm/spirograph/internal/palette"
	"github.com/jmbluhm/spirograph/internal/trace"
	"github.com/jmbluhm/spirograph/internal/view"
)

// shapeOption pairs a guide shape with a display name for the status line.
type shapeOption struct {
	name  string
	guide geometry.Guide
}

func shapeOptions() []shapeOption {
	return []shapeOption{
		{"circle", geometry.NewCircle(150)},
		{"square", geometry.NewSquare(320, 40)},
		{"hexagon", geometry.NewHexagon(180, 30)},
		{"star", geometry.NewStar(200, 100, 5)},
		{"ellipse", geometry.NewEllipse(360, 260, 30)},
	}
}

type game struct {
	// roulette parameters, replaced wholesale on every edit
	cfg trace.Config

	// trace state
	stepper trace.Stepper
	canvas  *canvas.Canvas
	pending []trace.Segment

	// view state
	vt view.Transform

	// parameter cycling
	shapes       []shapeOption
	shapeIndex   int
	palettes     []palette.Named
	paletteIndex int

	// input edge detection
	prevKey      map[ebiten.Key]bool
	dragging     bool
	dragX, dragY int

	// window
	width, height int

	lastErr error
}

func NewGame() *game {
	shapes := shapeOptions()
	palettes := palette.Presets()
	g := &game{
		cfg: trace.Config{
			Guide:        shapes[0].guide,
			MovingRadius: config.DefaultMovingRadius,
			PenDistance:  config.DefaultPenDistance,
			AngularSpeed: config.DefaultAngularSpeed,
			StrokeWidth:  config.DefaultStrokeWidth,
			Stroke:       palettes[0].Spec,
			Background:   color.RGBA{R: 12, G: 14, B: 22, A: 255},
		},
		shapes:   shapes,
		palettes: palettes,
		vt:       view.New(),
		prevKey:  map[ebiten.Key]bool{},
		width:    config.WindowWidth,
		height:   config.WindowHeight,
	}
	g.canvas = canvas.New(g.width, g.height)
	g.stepper.Play()
	return g
}

func (g *game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeySpace) {
		g.stepper.Toggle()
	}
	if justPressed(ebiten.KeyC) {
		g.clear()
	}
	if justPressed(ebiten.KeyR) {
		g.canvas.Clear()
		g.stepper.Reset()
	}
	if justPressed(ebiten.KeyE) {
		if err := g.exportImageDialog(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyTab) {
		g.paletteIndex = (g.paletteIndex + 1) % len(g.palettes)
		g.cfg.Stroke = g.palettes[g.paletteIndex].Spec
	}
	for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5} {
		if justPressed(k) && i < len(g.shapes) {
			g.selectShape(i)
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.adjustParameters(justPressed)
	g.handlePointer()

	// Advance the trace; segments are stroked onto the surface in Draw.
	segs := g.stepper.Advance(time.Now(), g.cfg)
	g.pending = append(g.pending, segs...)

	return nil
}

// adjustParameters applies the held/tapped parameter keys. Edits rewrite
// the config snapshot; the stepper only ever sees the copy passed to
// Advance.
func (g *game) adjustParameters(justPressed func(ebiten.Key) bool) {
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.cfg.MovingRadius += config.RadiusStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.cfg.MovingRadius = math.Max(g.cfg.MovingRadius-config.RadiusStep, config.MinMovingRadius)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.cfg.PenDistance += config.RadiusStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.cfg.PenDistance = math.Max(g.cfg.PenDistance-config.RadiusStep, 0)
	}
	if justPressed(ebiten.KeyEqual) {
		g.cfg.AngularSpeed = math.Min(g.cfg.AngularSpeed+config.SpeedStep, config.MaxAngularSpeed)
	}
	if justPressed(ebiten.KeyMinus) {
		g.cfg.AngularSpeed = math.Max(g.cfg.AngularSpeed-config.SpeedStep, config.MinAngularSpeed)
	}
	if justPressed(ebiten.KeyBracketRight) {
		g.cfg.StrokeWidth = math.Min(g.cfg.StrokeWidth+config.WidthStep, config.MaxStrokeWidth)
	}
	if justPressed(ebiten.KeyBracketLeft) {
		g.cfg.StrokeWidth = math.Max(g.cfg.StrokeWidth-config.WidthStep, config.MinStrokeWidth)
	}
}

// handlePointer feeds drag and wheel events into the view transform.
func (g *game) handlePointer() {
	mouseX, mouseY := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.dragX, g.dragY = mouseX, mouseY
	}
	if g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.vt.Drag(float64(mouseX-g.dragX), float64(mouseY-g.dragY))
		g.dragX, g.dragY = mouseX, mouseY
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.vt.Zoom(wy)
	}
}

// clear wipes the trace surface and lifts the pen. The cumulative angle is
// kept so the curve resumes at the same phase.
func (g *game) clear() {
	g.canvas.Clear()
	g.stepper.PenUp()
}

// selectShape swaps the guide and resets the trace state so the curve
// never connects across the shape discontinuity.
func (g *game) selectShape(i int) {
	g.shapeIndex = i
	g.cfg.Guide = g.shapes[i].guide
	g.canvas.Clear()
	g.stepper.Reset()
}

func (g *game) exportImageDialog() error {
	path, err := zenity.SelectFileSave(
		zenity.Title("Export Spirograph"),
		zenity.Filename("spirograph.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.canvas.Export(path, g.cfg.Background, g.caption())
}

func (g *game) caption() string {
	return fmt.Sprintf("%s  R=%.0f  r=%.0f  d=%.0f",
		g.shapes[g.shapeIndex].name,
		geometry.EffectiveRadius(g.cfg.Guide),
		g.cfg.MovingRadius,
		g.cfg.PenDistance)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)

	if !g.canvas.Ready() {
		ebitenutil.DebugPrintAt(screen, "Initializing surface...", 12, 12)
		return
	}

	g.canvas.Stroke(g.pending)
	g.pending = g.pending[:0]
	g.canvas.Draw(screen, g.vt)

	g.drawOverlay(screen)

	state := "Paused - Space to resume"
	if g.stepper.Running() {
		state = "Playing - Space to pause"
	}
	status := fmt.Sprintf("%s | %s  r=%.0f  d=%.0f  speed=%.2f  width=%.1f  palette=%s  zoom=%.2f",
		state, g.shapes[g.shapeIndex].name, g.cfg.MovingRadius, g.cfg.PenDistance,
		g.cfg.AngularSpeed, g.cfg.StrokeWidth, g.palettes[g.paletteIndex].Name, g.vt.Scale)
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	ebitenutil.DebugPrintAt(screen,
		"1-5 shape  arrows radius/pen  -/= speed  [/] width  Tab palette  C clear  R reset  E export  drag pan  wheel zoom",
		12, 28)
}

// drawOverlay redraws the ephemeral layer every frame: the faint guide
// boundary, the moving circle, and the pen arm. It accumulates no ink.
func (g *game) drawOverlay(screen *ebiten.Image) {
	b := screen.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	outline := color.RGBA{R: 255, G: 255, B: 255, A: 56}

	prev := geometry.BoundaryPoint(g.cfg.Guide, 0)
	px, py := g.vt.ToScreen(cx, cy, prev)
	for i := 1; i <= config.GuideOutlineSteps; i++ {
		theta := 2 * math.Pi * float64(i) / config.GuideOutlineSteps
		x, y := g.vt.ToScreen(cx, cy, geometry.BoundaryPoint(g.cfg.Guide, theta))
		vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), 1, outline, true)
		px, py = x, y
	}

	if g.cfg.MovingRadius <= 0 {
		return
	}
	theta := g.stepper.Angle()
	center := geometry.MovingCenter(g.cfg.Guide, g.cfg.MovingRadius, theta)
	ccx, ccy := g.vt.ToScreen(cx, cy, center)
	vector.StrokeCircle(screen, float32(ccx), float32(ccy),
		float32(g.cfg.MovingRadius*g.vt.Scale), 1, outline, true)

	pen := geometry.PenPoint(g.cfg.Guide, g.cfg.MovingRadius, g.cfg.PenDistance, theta)
	penX, penY := g.vt.ToScreen(cx, cy, pen)
	vector.StrokeLine(screen, float32(ccx), float32(ccy), float32(penX), float32(penY), 1, outline, true)

	progress := math.Mod(theta, 2*math.Pi) / (2 * math.Pi)
	if progress < 0 {
		progress += 1
	}
	vector.DrawFilledCircle(screen, float32(penX), float32(penY), 3, g.cfg.Stroke.At(progress), true)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.canvas.Resize(g.width, g.height)
	}
	return g.width, g.height
}

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Spirograph - Space: Play/Pause, E: Export, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
