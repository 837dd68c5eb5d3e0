package config

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// BaseSpeedFactor converts angular speed units into radians per second.
	// A tunable base-speed factor, not a geometric constant.
	BaseSpeedFactor = 1.0

	// SubStepDensity controls how many line segments a single frame advance
	// is subdivided into (steps = ceil(angularSpeed * SubStepDensity)), so
	// segment length stays visually continuous at high angular velocity.
	SubStepDensity = 20.0

	// Zoom parameters
	ZoomInFactor  = 1.1
	ZoomOutFactor = 0.9
	MinZoom       = 0.1
	MaxZoom       = 10.0

	// Guide overlay
	GuideOutlineSteps = 256

	// DefaultGuideRadius is used when no guide shape is configured.
	DefaultGuideRadius = 150.0

	// Default roulette parameters
	DefaultMovingRadius = 50.0
	DefaultPenDistance  = 75.0
	DefaultAngularSpeed = 2.0
	DefaultStrokeWidth  = 1.5

	// Parameter adjustment steps and bounds for the keyboard controls
	RadiusStep      = 2.0
	MinMovingRadius = 1.0
	SpeedStep       = 0.25
	MinAngularSpeed = 0.25
	MaxAngularSpeed = 12.0
	WidthStep       = 0.5
	MinStrokeWidth  = 0.5
	MaxStrokeWidth  = 10.0
)
