package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Consumable = donburi.NewTag().SetName("Consumable")
	Wall       = donburi.NewTag().SetName("Wall")
	Camera     = donburi.NewTag().SetName("Camera")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvConsumable = "consumable"
)
