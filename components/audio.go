package components

import (
	cfg "github.com/automoto/devour/config"
	"github.com/yohamta/donburi"
)

// AudioData stores queued sound cues (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
	Played     int // cues handed to the player so far
}

var Audio = donburi.NewComponentType[AudioData]()
