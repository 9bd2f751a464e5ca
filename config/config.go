package config

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is a YAML-friendly 3D vector used for offsets in tunables.
type Vector3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec converts to the math type used by the systems.
func (v Vector3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// PlayerConfig contains all player locomotion configuration values
type PlayerConfig struct {
	MoveSpeed     float64 `yaml:"moveSpeed"`     // world units per second
	RotationSpeed float64 `yaml:"rotationSpeed"` // slerp rate per second toward the movement direction

	// Collider footprint at scale 1 (X by Z)
	BodyWidth float64 `yaml:"bodyWidth"`
	BodyDepth float64 `yaml:"bodyDepth"`
}

// ActionConfig contains jump and roll configuration values
type ActionConfig struct {
	JumpHeight   float64 `yaml:"jumpHeight"`
	JumpDuration float64 `yaml:"jumpDuration"` // seconds, split evenly between ascend and descend
	JumpEase     string  `yaml:"jumpEase"`     // easing curve name, see gamemath.Ease

	RollSpeed    float64 `yaml:"rollSpeed"`    // degrees per second around world up
	RollDuration float64 `yaml:"rollDuration"` // seconds
}

// GrowthConfig contains mass and growth sequence configuration values
type GrowthConfig struct {
	BaseMass        float64 `yaml:"baseMass"`
	GainFactor      float64 `yaml:"gainFactor"`      // fraction of a consumed mass added to the player
	ScaleMultiplier float64 `yaml:"scaleMultiplier"` // scale = cbrt(mass) * ScaleMultiplier

	PulseScale    float64 `yaml:"pulseScale"`    // peak of the pulse relative to the pre-pulse scale
	PulseUpTime   float64 `yaml:"pulseUpTime"`   // seconds
	PulseDownTime float64 `yaml:"pulseDownTime"` // seconds
	SettleRate    float64 `yaml:"settleRate"`    // settle progress per second (5 = 0.2s)
	SettleEase    string  `yaml:"settleEase"`

	// Fold the unapplied gain of an interrupted sequence into the next one
	// instead of dropping it.
	CarryInterruptedGain bool `yaml:"carryInterruptedGain"`
}

// CameraConfig contains follow camera configuration values
type CameraConfig struct {
	Offset                Vector3 `yaml:"offset"`
	OffsetLocal           bool    `yaml:"offsetLocal"` // rotate Offset by the player rotation
	ScaleOffsetWithPlayer bool    `yaml:"scaleOffsetWithPlayer"`
	LookAtOffset          Vector3 `yaml:"lookAtOffset"`

	FollowSmoothTime float64 `yaml:"followSmoothTime"` // lower = snappier

	LookAtEnabled bool    `yaml:"lookAtEnabled"`
	RotationSpeed float64 `yaml:"rotationSpeed"` // look-at slerp rate per second
	TiltAngle     float64 `yaml:"tiltAngle"`     // degrees, used when look-at is disabled

	CollisionEnabled bool    `yaml:"collisionEnabled"`
	SphereRadius     float64 `yaml:"sphereRadius"`
	MinDistance      float64 `yaml:"minDistance"`
	CollisionPadding float64 `yaml:"collisionPadding"`
	CollisionMask    uint32  `yaml:"collisionMask"`
}

// WorldConfig describes the collision space. The space is centred on the
// world origin; Width runs along X and Depth along Z, both in world units.
// Resolution is the number of space units per world unit: resolv sizes its
// cell queries in whole units, so bodies need a fine grid.
type WorldConfig struct {
	Width      int
	Depth      int
	CellSize   int
	Resolution int
}

// ToSpace converts a world XZ coordinate into resolv space coordinates.
func (w WorldConfig) ToSpace(x, z float64) (float64, float64) {
	r := float64(w.Resolution)
	return (x + float64(w.Width)/2) * r, (z + float64(w.Depth)/2) * r
}

// FromSpace converts resolv space coordinates back to world XZ.
func (w WorldConfig) FromSpace(x, y float64) (float64, float64) {
	r := float64(w.Resolution)
	return x/r - float64(w.Width)/2, y/r - float64(w.Depth)/2
}

// SpaceLength converts a world distance into space units.
func (w WorldConfig) SpaceLength(d float64) float64 {
	return d * float64(w.Resolution)
}

// WorldLength converts a space distance into world units.
func (w WorldConfig) WorldLength(d float64) float64 {
	return d / float64(w.Resolution)
}

// Config holds general game configuration
type Config struct {
	Width         int
	Height        int
	PixelsPerUnit float64 // top-down debug view zoom
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowColliders bool
}

// LogConfig selects the zap logger flavour
type LogConfig struct {
	Level       string
	Format      string // "console" or "json"
	Development bool
}

// Collision layers for camera sweeps
const (
	LayerDefault uint32 = 1 << iota
	LayerProps
)

// Global configuration instances
var C *Config
var Player PlayerConfig
var Actions ActionConfig
var Growth GrowthConfig
var Camera CameraConfig
var World WorldConfig
var Debug DebugConfig
var Log LogConfig

func init() {
	ResetDefaults()
}

// ResetDefaults restores every tunable to its shipped value.
func ResetDefaults() {
	C = &Config{
		Width:         960,
		Height:        540,
		PixelsPerUnit: 24,
	}

	Player = PlayerConfig{
		MoveSpeed:     5.0,
		RotationSpeed: 10.0,
		BodyWidth:     1.0,
		BodyDepth:     1.0,
	}

	Actions = ActionConfig{
		JumpHeight:   2.0,
		JumpDuration: 0.5,
		JumpEase:     "linear",
		RollSpeed:    360.0,
		RollDuration: 1.0,
	}

	Growth = GrowthConfig{
		BaseMass:        1.0,
		GainFactor:      0.25,
		ScaleMultiplier: 1.0,
		PulseScale:      1.1,
		PulseUpTime:     0.07,
		PulseDownTime:   0.07,
		SettleRate:      5.0,
		SettleEase:      "linear",
	}

	// Above and behind the player, world aligned, fixed 60 degree tilt
	Camera = CameraConfig{
		Offset:           Vector3{X: 0, Y: 10, Z: -5},
		LookAtOffset:     Vector3{X: 0, Y: 1, Z: 0},
		FollowSmoothTime: 0.12,
		RotationSpeed:    5.0,
		TiltAngle:        60.0,
		CollisionEnabled: true,
		SphereRadius:     0.3,
		MinDistance:      1.0,
		CollisionPadding: 0.2,
		CollisionMask:    LayerDefault,
	}

	World = WorldConfig{
		Width:      128,
		Depth:      128,
		CellSize:   2,
		Resolution: 16,
	}

	Debug = DebugConfig{
		ShowColliders: false,
	}

	Log = LogConfig{
		Level:  "info",
		Format: "console",
	}

	Input = defaultInput()
	Audio = defaultAudio()
	Sound = defaultSound()
}

// Minimum values for anything used as a divisor
const (
	minDuration   = 0.001
	minSmoothTime = 0.0001
	minMass       = 0.001
	minGainFactor = 0.001
)

// Sanitize clamps every tunable into its valid range.
func Sanitize() {
	Player.MoveSpeed = math.Max(0, Player.MoveSpeed)
	Player.RotationSpeed = math.Max(0, Player.RotationSpeed)
	Player.BodyWidth = math.Max(0.01, Player.BodyWidth)
	Player.BodyDepth = math.Max(0.01, Player.BodyDepth)

	Actions.JumpHeight = math.Max(0, Actions.JumpHeight)
	Actions.JumpDuration = math.Max(minDuration, Actions.JumpDuration)
	Actions.RollDuration = math.Max(minDuration, Actions.RollDuration)

	Growth.BaseMass = math.Max(minMass, Growth.BaseMass)
	Growth.GainFactor = clamp(Growth.GainFactor, minGainFactor, 1)
	Growth.ScaleMultiplier = math.Max(0.001, Growth.ScaleMultiplier)
	Growth.PulseScale = math.Max(1, Growth.PulseScale)
	Growth.PulseUpTime = math.Max(minDuration, Growth.PulseUpTime)
	Growth.PulseDownTime = math.Max(minDuration, Growth.PulseDownTime)
	Growth.SettleRate = math.Max(minDuration, Growth.SettleRate)

	Camera.FollowSmoothTime = math.Max(minSmoothTime, Camera.FollowSmoothTime)
	Camera.RotationSpeed = math.Max(0, Camera.RotationSpeed)
	Camera.TiltAngle = clamp(Camera.TiltAngle, 0, 90)
	Camera.SphereRadius = math.Max(0, Camera.SphereRadius)
	Camera.MinDistance = math.Max(0, Camera.MinDistance)
	Camera.CollisionPadding = math.Max(0, Camera.CollisionPadding)

	if World.Resolution < 1 {
		World.Resolution = 1
	}
	if World.CellSize < 1 {
		World.CellSize = 1
	}
	if World.Width < World.CellSize {
		World.Width = World.CellSize
	}
	if World.Depth < World.CellSize {
		World.Depth = World.CellSize
	}

	Input.AnalogDeadzone = clamp(Input.AnalogDeadzone, 0, 0.99)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
