package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer.
const Default ecs.LayerID = 0

// LocomotionState reports whether the player moved this frame.
type LocomotionState int

const (
	LocomotionIdle LocomotionState = iota
	LocomotionMoving
)

func (s LocomotionState) String() string {
	if s == LocomotionMoving {
		return "moving"
	}
	return "idle"
}

// ActionKind tags the single timed action a player may be running.
type ActionKind int

const (
	ActionKindNone ActionKind = iota
	ActionKindJumping
	ActionKindRolling
)

func (k ActionKind) String() string {
	switch k {
	case ActionKindJumping:
		return "jumping"
	case ActionKindRolling:
		return "rolling"
	default:
		return "none"
	}
}

// GrowthPhase is the current step of the pulse-then-grow sequence.
type GrowthPhase int

const (
	GrowthPhaseNone GrowthPhase = iota
	GrowthPhasePulseUp
	GrowthPhasePulseDown
	GrowthPhaseSettle
)

// Pending reports whether the sequence has not yet applied its mass gain.
func (p GrowthPhase) Pending() bool {
	return p == GrowthPhasePulseUp || p == GrowthPhasePulseDown
}

func (p GrowthPhase) String() string {
	switch p {
	case GrowthPhasePulseUp:
		return "pulse-up"
	case GrowthPhasePulseDown:
		return "pulse-down"
	case GrowthPhaseSettle:
		return "settle"
	default:
		return "none"
	}
}
