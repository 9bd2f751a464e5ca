package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// TransformData is the world pose of an entity. Scale is uniform.
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    float64
}

var Transform = donburi.NewComponentType[TransformData]()

// Space is the singleton collision space. Its XY plane maps to world XZ.
var Space = donburi.NewComponentType[resolv.Space]()
