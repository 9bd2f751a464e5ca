package archetypes

import (
	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/automoto/devour/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Object,
		components.TimedAction,
		components.Growth,
	)
	Consumable = newArchetype(
		tags.Consumable,
		components.Consumable,
		components.Transform,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Wall,
		components.Object,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
		components.Transform,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
