package systems

import (
	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/automoto/devour/shared/gamemath"
	"github.com/automoto/devour/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion moves every player by its move input and turns it toward
// the velocity it actually achieved.
func UpdateLocomotion(e *ecs.ECS) {
	dt := FrameDelta(e)

	var move mgl64.Vec2
	if entry, ok := components.Input.First(e.World); ok {
		move = components.Input.Get(entry).Move
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		moveEntry(entry, move, dt)
	})
}

func moveEntry(entry *donburi.Entry, move mgl64.Vec2, dt float64) {
	player := components.Player.Get(entry)
	tr := components.Transform.Get(entry)

	dir := gamemath.MoveDirection(move)
	displacement := dir.Mul(cfg.Player.MoveSpeed * dt)

	velocity := mover.Move(entry, displacement, dt)
	player.Velocity = velocity

	horizontal := gamemath.Horizontal(velocity)
	if horizontal.Dot(horizontal) <= gamemath.MovementEpsilonSq {
		player.Locomotion = cfg.LocomotionIdle
		return
	}

	player.Locomotion = cfg.LocomotionMoving
	target := gamemath.LookRotation(horizontal, gamemath.Up)
	tr.Rotation = gamemath.Slerp(tr.Rotation, target, cfg.Player.RotationSpeed*dt)
}
