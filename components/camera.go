package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Velocity mgl64.Vec3 // smoothing state carried between frames
	Desired  mgl64.Vec3 // last target after collision clamping
	Clamped  bool
}

var Camera = donburi.NewComponentType[CameraData]()
