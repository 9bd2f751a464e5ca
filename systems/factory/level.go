package factory

import (
	"math"

	"github.com/automoto/devour/archetypes"
	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/automoto/devour/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds a playfield from layout: collision space, walls,
// consumables, the player and the camera, in that order. The collision
// space grows to cover the layout.
func CreateLevel(ecs *ecs.ECS, layout *leveldata.Layout) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name:   layout.Name,
		Layout: layout,
	})

	cell := cfg.World.CellSize
	cfg.World.Width = max(cfg.World.Width, fitToCells(layout.Width, cell))
	cfg.World.Depth = max(cfg.World.Depth, fitToCells(layout.Depth, cell))
	CreateSpace(ecs, cfg.World.Width, cfg.World.Depth, cell)

	for _, wall := range layout.Walls {
		CreateWall(ecs, wall)
	}
	for _, item := range layout.Consumables {
		CreateConsumable(ecs, item)
	}

	spawn := layout.PlayerSpawn
	if !layout.HasSpawn {
		spawn = leveldata.Spawn{}
	}
	CreatePlayer(ecs, spawn.X, spawn.Z)
	CreateCamera(ecs)

	return level
}

// fitToCells rounds size up to whole cells with one cell of margin per side.
func fitToCells(size float64, cell int) int {
	cells := int(math.Ceil(size/float64(cell))) + 2
	return cells * cell
}
