// Package trace owns the animation state of a roulette curve: the
// cumulative angle of travel and the last drawn pen point. Each frame it
// advances the angle by a time- and speed-dependent increment and emits a
// gap-free sequence of colored line segments.
package trace

import (
	"image/color"
	"math"
	"time"

	"github.com/jbeda/geom"

	"github.com/jmbluhm/spirograph/internal/config"
	"github.com/jmbluhm/spirograph/internal/geometry"
	"github.com/jmbluhm/spirograph/internal/palette"
)

// Config is a per-frame snapshot of the roulette parameters. The UI layer
// replaces the whole value on every edit; the stepper never mutates it.
type Config struct {
	Guide        geometry.Guide
	MovingRadius float64
	PenDistance  float64
	AngularSpeed float64
	StrokeWidth  float64
	Stroke       palette.Spec
	Background   color.RGBA
}

// Segment is one colored line segment of the trace, in world coordinates.
type Segment struct {
	From, To geom.Coord
	Color    color.RGBA
	Width    float32
}

// Stepper advances the cumulative angle over time. It is the only owner of
// the trace state; everything else reads segments it emits.
type Stepper struct {
	angle    float64
	last     *geom.Coord
	running  bool
	lastTick time.Time
}

// Angle returns the cumulative angle of travel. It grows without bound;
// color progress and the trigonometric boundary functions are periodic and
// tolerate large inputs.
func (s *Stepper) Angle() float64 { return s.angle }

// Pen returns the last drawn pen point, or nil while the pen is up.
func (s *Stepper) Pen() *geom.Coord { return s.last }

func (s *Stepper) Running() bool { return s.running }

// Play starts (or resumes) stepping. The tick clock is re-armed so the
// first frame after a resume sees zero elapsed time instead of the pause
// duration.
func (s *Stepper) Play() {
	s.running = true
	s.lastTick = time.Time{}
}

// Pause halts stepping without touching the angle or pen point, so resume
// continues the curve seamlessly.
func (s *Stepper) Pause() { s.running = false }

func (s *Stepper) Toggle() {
	if s.running {
		s.Pause()
	} else {
		s.Play()
	}
}

// PenUp lifts the pen without resetting the cumulative angle. Used by
// clear(), which wipes the surface but keeps the curve's phase.
func (s *Stepper) PenUp() { s.last = nil }

// Reset lifts the pen and zeroes the cumulative angle. Used by the explicit
// reset action and on a guide shape change, so the trace never connects
// across a discontinuity.
func (s *Stepper) Reset() {
	s.last = nil
	s.angle = 0
}

// Advance computes the elapsed wall time since the previous tick and steps
// the trace. The first tick after Play produces zero elapsed time, so a
// fresh run never opens with a huge angle jump. Returns nil while stopped.
func (s *Stepper) Advance(now time.Time, cfg Config) []Segment {
	if !s.running {
		return nil
	}
	elapsed := 0.0
	if !s.lastTick.IsZero() {
		elapsed = now.Sub(s.lastTick).Seconds()
	}
	s.lastTick = now
	return s.Step(elapsed, cfg)
}

// Step advances the cumulative angle by
// AngularSpeed * elapsed * BaseSpeedFactor and returns the line segments
// covering the advance. The step is subdivided into
// max(1, ceil(AngularSpeed * SubStepDensity)) uniform sub-steps so high
// angular velocity never produces visible straight-line shortcuts.
//
// A non-positive moving radius is a no-draw frame: the angle keeps ticking
// and the pen lifts, but nothing is emitted and nothing divides by zero.
func (s *Stepper) Step(elapsed float64, cfg Config) []Segment {
	delta := cfg.AngularSpeed * elapsed * config.BaseSpeedFactor

	if cfg.MovingRadius <= 0 {
		s.angle += delta
		s.last = nil
		return nil
	}

	var segs []Segment
	if s.last != nil && delta > 0 {
		steps := int(math.Ceil(cfg.AngularSpeed * config.SubStepDensity))
		if steps < 1 {
			steps = 1
		}
		segs = make([]Segment, 0, steps)
		prev := *s.last
		for i := 1; i <= steps; i++ {
			a := s.angle + delta*float64(i)/float64(steps)
			p := geometry.PenPoint(cfg.Guide, cfg.MovingRadius, cfg.PenDistance, a)
			progress := math.Mod(a, 2*math.Pi) / (2 * math.Pi)
			if progress < 0 {
				progress += 1
			}
			segs = append(segs, Segment{
				From:  prev,
				To:    p,
				Color: cfg.Stroke.At(progress),
				Width: float32(cfg.StrokeWidth),
			})
			prev = p
		}
	}

	s.angle += delta
	end := geometry.PenPoint(cfg.Guide, cfg.MovingRadius, cfg.PenDistance, s.angle)
	s.last = &end
	return segs
}
