package components

import "github.com/yohamta/donburi"

// OverlapEventData is attached to a consumable on the frame a player body
// starts touching it, and removed once handled.
type OverlapEventData struct {
	Player donburi.Entity
	Seq    uint64 // publish order
}

var OverlapEvent = donburi.NewComponentType[OverlapEventData]()
