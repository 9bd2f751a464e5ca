package systems

import (
	"math"

	"github.com/automoto/devour/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the frame clock. Must run first.
func UpdateClock(e *ecs.ECS) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)

	dt := clock.Step
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		dt = 0
	}
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Frame++
}

// FrameDelta returns the delta of the current frame in seconds, 0 when
// there is no clock.
func FrameDelta(e *ecs.ECS) float64 {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}

// SetFrameStep sets the delta used by the next UpdateClock.
func SetFrameStep(e *ecs.ECS, step float64) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	components.Clock.Get(entry).Step = step
}
