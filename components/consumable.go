package components

import (
	"github.com/yohamta/donburi"
)

type ConsumableData struct {
	Mass             float64
	Consumed         bool
	DestroyOnConsume bool
}

var Consumable = donburi.NewComponentType[ConsumableData]()
