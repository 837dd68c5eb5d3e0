package trace

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/jmbluhm/spirograph/internal/config"
	"github.com/jmbluhm/spirograph/internal/geometry"
	"github.com/jmbluhm/spirograph/internal/palette"
)

func testConfig() Config {
	return Config{
		Guide:        geometry.Circle{Radius: 150},
		MovingRadius: 50,
		PenDistance:  75,
		AngularSpeed: 1,
		StrokeWidth:  2,
		Stroke:       palette.Solid(color.RGBA{R: 255, G: 255, B: 255, A: 255}),
	}
}

// elapsedFor returns the elapsed seconds producing the given angle delta
// under the test config's angular speed.
func elapsedFor(delta float64, cfg Config) float64 {
	return delta / (cfg.AngularSpeed * config.BaseSpeedFactor)
}

func TestFirstStepSeedsPenWithoutDrawing(t *testing.T) {
	var s Stepper
	cfg := testConfig()

	segs := s.Step(0, cfg)
	if len(segs) != 0 {
		t.Fatalf("zero-elapsed first step emitted %d segments", len(segs))
	}
	if s.Pen() == nil {
		t.Fatal("pen not seeded")
	}
	want := geometry.PenPoint(cfg.Guide, cfg.MovingRadius, cfg.PenDistance, 0)
	if s.Pen().DistanceFrom(want) > 1e-12 {
		t.Errorf("seed pen = %v, want %v", *s.Pen(), want)
	}
	if s.Angle() != 0 {
		t.Errorf("angle = %v after zero-elapsed step", s.Angle())
	}
}

func TestSmallStepLandsOnClosedForm(t *testing.T) {
	var s Stepper
	cfg := testConfig()
	s.Step(0, cfg) // seed at angle 0

	const delta = 0.01
	segs := s.Step(elapsedFor(delta, cfg), cfg)

	if math.Abs(s.Angle()-delta) > 1e-12 {
		t.Fatalf("angle = %v, want %v", s.Angle(), delta)
	}
	// lastPoint is the pen point at the new angle, not at angle 0.
	want := geometry.PenPoint(cfg.Guide, cfg.MovingRadius, cfg.PenDistance, delta)
	if s.Pen().DistanceFrom(want) > 1e-9 {
		t.Errorf("pen = %v, want %v", *s.Pen(), want)
	}
	if len(segs) == 0 {
		t.Fatal("no segments emitted")
	}
	last := segs[len(segs)-1]
	if last.To.DistanceFrom(want) > 1e-9 {
		t.Errorf("final segment ends at %v, want %v", last.To, want)
	}
	start := geometry.PenPoint(cfg.Guide, cfg.MovingRadius, cfg.PenDistance, 0)
	if segs[0].From.DistanceFrom(start) > 1e-9 {
		t.Errorf("first segment starts at %v, want %v", segs[0].From, start)
	}
}

func TestSubStepCountScalesWithSpeed(t *testing.T) {
	var s Stepper
	cfg := testConfig()
	cfg.AngularSpeed = 2.5
	s.Step(0, cfg)

	segs := s.Step(0.016, cfg)
	want := int(math.Ceil(cfg.AngularSpeed * config.SubStepDensity))
	if len(segs) != want {
		t.Errorf("emitted %d segments, want %d", len(segs), want)
	}
}

func TestSegmentsFormGapFreeChain(t *testing.T) {
	var s Stepper
	cfg := testConfig()
	cfg.AngularSpeed = 3
	s.Step(0, cfg)

	segs := s.Step(0.05, cfg)
	for i := 1; i < len(segs); i++ {
		if segs[i].From.DistanceFrom(segs[i-1].To) > 1e-12 {
			t.Fatalf("gap between segment %d and %d", i-1, i)
		}
	}
}

func TestZeroMovingRadiusKeepsTicking(t *testing.T) {
	var s Stepper
	cfg := testConfig()
	s.Step(0, cfg)

	cfg.MovingRadius = 0
	segs := s.Step(0.5, cfg)
	if segs != nil {
		t.Errorf("degenerate config emitted %d segments", len(segs))
	}
	if s.Pen() != nil {
		t.Error("pen not lifted on degenerate config")
	}
	if s.Angle() <= 0 {
		t.Error("angle did not keep ticking")
	}

	// Recovery: the next valid step re-seeds the pen without drawing
	// across the gap.
	cfg.MovingRadius = 50
	segs = s.Step(0.016, cfg)
	if len(segs) != 0 {
		t.Errorf("step after pen-up emitted %d segments", len(segs))
	}
	if s.Pen() == nil {
		t.Error("pen not re-seeded")
	}
}

func TestPenUpKeepsAngle(t *testing.T) {
	var s Stepper
	cfg := testConfig()
	s.Step(0, cfg)
	s.Step(0.25, cfg)

	angle := s.Angle()
	s.PenUp()
	if s.Pen() != nil {
		t.Error("pen still down after PenUp")
	}
	if s.Angle() != angle {
		t.Errorf("PenUp changed angle from %v to %v", angle, s.Angle())
	}
}

func TestResetZeroesAngle(t *testing.T) {
	var s Stepper
	cfg := testConfig()
	s.Step(0, cfg)
	s.Step(0.25, cfg)

	s.Reset()
	if s.Angle() != 0 || s.Pen() != nil {
		t.Errorf("Reset left angle=%v pen=%v", s.Angle(), s.Pen())
	}
}

func TestAdvanceWhileStopped(t *testing.T) {
	var s Stepper
	if segs := s.Advance(time.Now(), testConfig()); segs != nil {
		t.Errorf("stopped stepper emitted %d segments", len(segs))
	}
}

func TestAdvanceFirstTickHasZeroElapsed(t *testing.T) {
	var s Stepper
	cfg := testConfig()
	s.Play()

	now := time.Now()
	s.Advance(now, cfg)
	if s.Angle() != 0 {
		t.Errorf("first tick advanced the angle by %v", s.Angle())
	}

	s.Advance(now.Add(16*time.Millisecond), cfg)
	if s.Angle() <= 0 {
		t.Error("second tick did not advance the angle")
	}
}

func TestPauseResumeIsSeamless(t *testing.T) {
	var s Stepper
	cfg := testConfig()
	s.Play()

	now := time.Now()
	s.Advance(now, cfg)
	s.Advance(now.Add(16*time.Millisecond), cfg)
	angle := s.Angle()
	pen := *s.Pen()

	s.Pause()
	if segs := s.Advance(now.Add(5*time.Second), cfg); segs != nil {
		t.Error("paused stepper emitted segments")
	}

	// Resume much later: the pause gap must not become elapsed time.
	s.Play()
	s.Advance(now.Add(10*time.Second), cfg)
	if s.Angle() != angle {
		t.Errorf("resume jumped the angle from %v to %v", angle, s.Angle())
	}
	if s.Pen().DistanceFrom(pen) > 1e-12 {
		t.Error("resume moved the pen")
	}
}
