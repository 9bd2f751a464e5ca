package components

import (
	"github.com/automoto/devour/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its footprint in the collision space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// WallData is the full 3D extent of a wall. The resolv object only covers
// its XZ footprint.
type WallData struct {
	Box   gamemath.Box
	Layer uint32
}

var Wall = donburi.NewComponentType[WallData]()
