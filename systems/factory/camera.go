package factory

import (
	"github.com/automoto/devour/archetypes"
	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/automoto/devour/shared/gamemath"
	"github.com/automoto/devour/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the follow camera. It starts at the offset from the
// player when one exists so the first frames do not sweep across the map.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	pos := cfg.Camera.Offset.Vec()
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		pos = pos.Add(components.Transform.Get(playerEntry).Position)
	}

	components.Transform.SetValue(camera, components.TransformData{
		Position: pos,
		Rotation: gamemath.TiltRotation(cfg.Camera.TiltAngle),
		Scale:    1,
	})
	components.Camera.SetValue(camera, components.CameraData{Desired: pos})
	return camera
}

// CreateClock spawns the frame clock with a fixed step in seconds.
func CreateClock(ecs *ecs.ECS, step float64) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Step: step})
	return clock
}

// CameraLookPoint is where the camera aims on the player.
func CameraLookPoint(playerEntry *donburi.Entry) mgl64.Vec3 {
	return components.Transform.Get(playerEntry).Position.Add(cfg.Camera.LookAtOffset.Vec())
}
