package factory

import (
	"github.com/automoto/devour/archetypes"
	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space. Sizes are in world units.
func CreateSpace(ecs *ecs.ECS, width, depth, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	r := cfg.World.Resolution
	spaceData := resolv.NewSpace(width*r, depth*r, cellSize*r, cellSize*r)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace adds obj to the space if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// removeFromSpace removes obj from whatever space holds it.
func removeFromSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if obj == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(obj)
	}
}
