// Package leveldata provides TMX level parsing for the playfield.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
//
// One tile is one world unit. Map X runs along world +X and map Y runs along
// world -Z, so "up" in the editor is forward in game. The map is centred on
// the world origin.
package leveldata

// Layout holds everything the world scene needs from a TMX file.
type Layout struct {
	Name        string
	Width       float64 // world units along X
	Depth       float64 // world units along Z
	Walls       []WallRect
	Consumables []ConsumableSpawn
	PlayerSpawn Spawn
	HasSpawn    bool
}

// WallRect is a solid block. The XZ rectangle comes from the map, the height
// from the "height" property.
type WallRect struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
	Height     float64
	Layer      uint32
}

// ConsumableSpawn places one consumable.
type ConsumableSpawn struct {
	X, Z             float64
	Mass             float64
	Size             float64 // footprint edge; 0 means derive from mass
	DestroyOnConsume bool
}

// Spawn is a world XZ position.
type Spawn struct {
	X, Z float64
}
