package factory

import (
	"github.com/automoto/devour/archetypes"
	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/automoto/devour/shared/gamemath"
	"github.com/automoto/devour/shared/leveldata"
	"github.com/automoto/devour/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateConsumable spawns a consumable resting on the ground. Without an
// explicit size it is scaled like a player of the same mass.
func CreateConsumable(ecs *ecs.ECS, spawn leveldata.ConsumableSpawn) *donburi.Entry {
	item := archetypes.Consumable.Spawn(ecs)

	mass := spawn.Mass
	if mass <= 0 {
		mass = leveldata.DefaultConsumableMass
	}
	size := spawn.Size
	if size <= 0 {
		size = gamemath.ScaleForMass(mass, cfg.Growth.ScaleMultiplier)
	}

	components.Transform.SetValue(item, components.TransformData{
		Position: mgl64.Vec3{spawn.X, 0, spawn.Z},
		Rotation: mgl64.QuatIdent(),
		Scale:    size,
	})
	components.Consumable.SetValue(item, components.ConsumableData{
		Mass:             mass,
		DestroyOnConsume: spawn.DestroyOnConsume,
	})

	obj := resolv.NewObject(0, 0, size, size, tags.ResolvConsumable)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = item
	components.Object.SetValue(item, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)
	SyncBody(item)

	return item
}

// DestroyConsumable is the consumed notification. The body always leaves the
// collision space; the entity itself is removed only when DestroyOnConsume
// is set.
func DestroyConsumable(ecs *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		removeFromSpace(ecs, obj.Object)
	}
	if components.Consumable.Get(entry).DestroyOnConsume {
		ecs.World.Remove(entry.Entity())
	}
}
