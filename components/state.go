package components

import (
	cfg "github.com/automoto/devour/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TimedActionData is the single jump/roll slot of a player. Kind is the
// variant tag; the other fields only mean something while Kind is not none.
type TimedActionData struct {
	Kind     cfg.ActionKind
	Elapsed  float64
	Duration float64
	Start    mgl64.Vec3 // jump origin
}

var TimedAction = donburi.NewComponentType[TimedActionData]()

// GrowthData is the pulse-then-grow sequence of a player.
type GrowthData struct {
	Phase    cfg.GrowthPhase
	Progress float64

	Origin float64 // pre-pulse scale
	Pulse  float64 // pulse peak
	From   float64 // settle start scale
	Target float64 // settle end scale

	PendingGain float64 // mass added at the pulse-down boundary
}

var Growth = donburi.NewComponentType[GrowthData]()
