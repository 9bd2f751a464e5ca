package factory

import (
	"github.com/automoto/devour/archetypes"
	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/automoto/devour/shared/gamemath"
	"github.com/automoto/devour/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player on the ground at world (x, z) with the
// base mass and the matching scale.
func CreatePlayer(ecs *ecs.ECS, x, z float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	mass := cfg.Growth.BaseMass
	components.Transform.SetValue(player, components.TransformData{
		Position: mgl64.Vec3{x, 0, z},
		Rotation: mgl64.QuatIdent(),
		Scale:    gamemath.ScaleForMass(mass, cfg.Growth.ScaleMultiplier),
	})
	components.Player.SetValue(player, components.PlayerData{
		Mass:       mass,
		Locomotion: cfg.LocomotionIdle,
		Overlaps:   make(map[donburi.Entity]struct{}),
	})
	components.TimedAction.SetValue(player, components.TimedActionData{})
	components.Growth.SetValue(player, components.GrowthData{})

	w, d := Footprint(player)
	obj := resolv.NewObject(0, 0, w, d, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, d))
	obj.Data = player // Link for O(1) lookup
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)
	SyncBody(player)

	return player
}
