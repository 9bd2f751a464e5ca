package factory

import (
	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Footprint returns the XZ size of an entity's collision body at its
// current scale.
func Footprint(entry *donburi.Entry) (w, d float64) {
	scale := components.Transform.Get(entry).Scale
	if entry.HasComponent(components.Player) {
		return cfg.Player.BodyWidth * scale, cfg.Player.BodyDepth * scale
	}
	return scale, scale
}

// SyncBody moves and resizes the collision body to match the transform.
// The body stays centred on the position. Bodies are sized in space units.
func SyncBody(entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	tr := components.Transform.Get(entry)

	fw, fd := Footprint(entry)
	w, d := cfg.World.SpaceLength(fw), cfg.World.SpaceLength(fd)
	sx, sy := cfg.World.ToSpace(tr.Position.X(), tr.Position.Z())
	obj.X = sx - w/2
	obj.Y = sy - d/2
	if obj.W != w || obj.H != d {
		obj.W = w
		obj.H = d
		obj.SetShape(resolv.NewRectangle(0, 0, w, d))
	}
	obj.Update()
}
