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

// CreateWall spawns a solid block standing on the ground.
func CreateWall(ecs *ecs.ECS, rect leveldata.WallRect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	layer := rect.Layer
	if layer == 0 {
		layer = cfg.LayerDefault
	}
	components.Wall.SetValue(wall, components.WallData{
		Box: gamemath.Box{
			Min: mgl64.Vec3{rect.MinX, 0, rect.MinZ},
			Max: mgl64.Vec3{rect.MaxX, rect.Height, rect.MaxZ},
		},
		Layer: layer,
	})

	// Create collision object
	w := cfg.World.SpaceLength(rect.MaxX - rect.MinX)
	d := cfg.World.SpaceLength(rect.MaxZ - rect.MinZ)
	x, y := cfg.World.ToSpace(rect.MinX, rect.MinZ)
	obj := resolv.NewObject(x, y, w, d, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, d))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)

	return wall
}
