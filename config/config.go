package config

import (
	"image/color"

	"github.com/automoto/tethered/vmath"
)

// TetherConfig contains the rope simulation and separation values.
type TetherConfig struct {
	SegmentCount         int        `json:"segmentCount"`         // Visual resolution of the rope (>= 2)
	MaxLength            float64    `json:"maxLength"`            // Hard separation cap between the characters
	LengthMultiplier     float64    `json:"lengthMultiplier"`     // Rest length scale of the visual chain (1 = full length)
	Gravity              vmath.Vec2 `json:"gravity"`              // Gravity applied to the rope links
	Damping              float64    `json:"damping"`              // Verlet velocity damping in (0, 1]
	ConstraintIterations int        `json:"constraintIterations"` // Relaxation passes per tick
}

// SegmentRestLength is the target distance between two adjacent links.
func (t TetherConfig) SegmentRestLength() float64 {
	if t.SegmentCount <= 0 {
		return 0
	}
	return t.MaxLength / float64(t.SegmentCount) * t.LengthMultiplier
}

// SwingConfig tunes the swing force model.
type SwingConfig struct {
	BaseDownForce               float64 `json:"baseDownForce"`
	VelocityDownForceMultiplier float64 `json:"velocityDownForceMultiplier"`
	Force                       float64 `json:"force"`
	MomentumBonus               float64 `json:"momentumBonus"`
	MaxSpeed                    float64 `json:"maxSpeed"`
	EndImpulseMultiplier        float64 `json:"endImpulseMultiplier"`
	InputDeadZone               float64 `json:"inputDeadZone"`
}

// CharacterConfig contains all character controller values.
type CharacterConfig struct {
	// Body
	Mass            float64 `json:"mass"`
	CollisionWidth  float64 `json:"collisionWidth"`
	CollisionHeight float64 `json:"collisionHeight"`

	// Sensing
	GroundCheckDistance    float64 `json:"groundCheckDistance"`
	GroundCheckSidePadding float64 `json:"groundCheckSidePadding"`

	// Movement
	RunMaxSpeed                 float64 `json:"runMaxSpeed"`
	Acceleration                float64 `json:"acceleration"`
	Deceleration                float64 `json:"deceleration"`
	InAirAccelerationMultiplier float64 `json:"inAirAccelerationMultiplier"`
	InAirDecelerationMultiplier float64 `json:"inAirDecelerationMultiplier"`
	MaxFallSpeed                float64 `json:"maxFallSpeed"`

	// Jump
	JumpImpulse                      float64 `json:"jumpImpulse"`
	JumpHorizontalVelocityMultiplier float64 `json:"jumpHorizontalVelocityMultiplier"`
	JumpEndEarlyImpulse              float64 `json:"jumpEndEarlyImpulse"`
	CoyoteTime                       float64 `json:"coyoteTime"` // seconds
	JumpBuffer                       float64 `json:"jumpBuffer"` // seconds

	// Gravity scale modifiers
	GroundingGravityScale float64 `json:"groundingGravityScale"`
	SwingingGravityScale  float64 `json:"swingingGravityScale"`
	FallingGravityScale   float64 `json:"fallingGravityScale"`
	FloatUpGravityScale   float64 `json:"floatUpGravityScale"`

	// Orientation
	GroundNormalDotThreshold float64 `json:"groundNormalDotThreshold"`
	AlignRotationRate        float64 `json:"alignRotationRate"` // per second

	// Ledge assist
	EdgeFallSpeedThreshold float64 `json:"edgeFallSpeedThreshold"` // max downward speed that still allows the hop
	EdgeDetectionDistance  float64 `json:"edgeDetectionDistance"`
	EdgeDetectionOffset    float64 `json:"edgeDetectionOffset"`
	EdgeUpImpulse          float64 `json:"edgeUpImpulse"`

	Swing SwingConfig `json:"swing"`
}

// InputConfig controls how raw frame input is normalized.
type InputConfig struct {
	SnapInput          bool    `json:"snapInput"`
	HorizontalDeadZone float64 `json:"horizontalDeadZone"`
}

// SimulationConfig contains the fixed-step clock and world values.
type SimulationConfig struct {
	TickRate int        `json:"tickRate"` // physics ticks per second
	Gravity  vmath.Vec2 `json:"gravity"`
}

// Dt returns the fixed tick interval in seconds.
func (s SimulationConfig) Dt() float64 {
	if s.TickRate <= 0 {
		return 0
	}
	return 1 / float64(s.TickRate)
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogTransitions bool // Log character state changes
	DrawProbes     bool // Draw ground probes in the demo
}

// RenderConfig contains the demo presentation values.
type RenderConfig struct {
	RopeColor           color.RGBA
	CharacterColors     [2]color.RGBA
	AnchoredColor       color.RGBA
	SolidColor          color.RGBA
	AnchorableColor     color.RGBA
	RopeWidth           float32
	RopeSpringFrequency float64 // harmonica angular frequency for link smoothing
	RopeSpringDamping   float64 // harmonica damping ratio
	RespawnFadeSeconds  float32
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Tether TetherConfig
var Character CharacterConfig
var Input InputConfig
var Simulation SimulationConfig
var Debug DebugConfig
var Render RenderConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	LightRed  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Gray      = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// Direction constants for character facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}
	Reset()
}

// Reset restores every tuning global to its default.
func Reset() {
	Simulation = DefaultSimulation()
	Tether = DefaultTether()
	Character = DefaultCharacter()
	Input = DefaultInput()

	Render = RenderConfig{
		RopeColor:           Orange,
		CharacterColors:     [2]color.RGBA{LightBlue, LightRed},
		AnchoredColor:       Yellow,
		SolidColor:          Gray,
		AnchorableColor:     Green,
		RopeWidth:           2,
		RopeSpringFrequency: 18,
		RopeSpringDamping:   0.9,
		RespawnFadeSeconds:  0.6,
	}
}

func DefaultSimulation() SimulationConfig {
	return SimulationConfig{
		TickRate: 60,
		Gravity:  vmath.V(0, 1800),
	}
}

func DefaultTether() TetherConfig {
	return TetherConfig{
		SegmentCount:         16,
		MaxLength:            120,
		LengthMultiplier:     1,
		Gravity:              vmath.V(0, 980),
		Damping:              0.98,
		ConstraintIterations: 50,
	}
}

func DefaultInput() InputConfig {
	return InputConfig{
		SnapInput:          true,
		HorizontalDeadZone: 0.1,
	}
}

func DefaultCharacter() CharacterConfig {
	return CharacterConfig{
		Mass:            1,
		CollisionWidth:  16,
		CollisionHeight: 24,

		GroundCheckDistance:    3,
		GroundCheckSidePadding: 2,

		RunMaxSpeed:                 180,
		Acceleration:                14,
		Deceleration:                20,
		InAirAccelerationMultiplier: 0.6,
		InAirDecelerationMultiplier: 0.4,
		MaxFallSpeed:                600,

		JumpImpulse:                      480,
		JumpHorizontalVelocityMultiplier: 1,
		JumpEndEarlyImpulse:              60,
		CoyoteTime:                       0.15,
		JumpBuffer:                       0.2,

		GroundingGravityScale: 2,
		SwingingGravityScale:  1,
		FallingGravityScale:   1.6,
		FloatUpGravityScale:   1,

		GroundNormalDotThreshold: 0.6,
		AlignRotationRate:        12,

		EdgeFallSpeedThreshold: 60,
		EdgeDetectionDistance:  4,
		EdgeDetectionOffset:    10,
		EdgeUpImpulse:          220,

		Swing: SwingConfig{
			BaseDownForce:               400,
			VelocityDownForceMultiplier: 2,
			Force:                       900,
			MomentumBonus:               0.5,
			MaxSpeed:                    520,
			EndImpulseMultiplier:        0.35,
			InputDeadZone:               0.01,
		},
	}
}
