package components

import (
	cfg "github.com/automoto/devour/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Mass       float64 // only ever grows
	Velocity   mgl64.Vec3
	Locomotion cfg.LocomotionState

	// Consumables touching the body last frame, for enter detection
	Overlaps map[donburi.Entity]struct{}
}

var Player = donburi.NewComponentType[PlayerData]()
