package components

import "github.com/yohamta/donburi"

// ClockData is the frame clock (singleton component).
type ClockData struct {
	Step    float64 // delta fed in on the next tick, seconds
	Delta   float64 // delta of the current frame, seconds
	Elapsed float64
	Frame   uint64
}

var Clock = donburi.NewComponentType[ClockData]()
