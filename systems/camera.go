package systems

import (
	"math"

	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/automoto/devour/shared/gamemath"
	"github.com/automoto/devour/systems/factory"
	"github.com/automoto/devour/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// sweepEpsilon is the shortest look-at to camera distance worth sweeping.
const sweepEpsilon = 0.001

// Sweeper casts a sphere and reports the travel distance to the first hit
// within maxDistance.
type Sweeper interface {
	Sweep(origin mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDistance float64, mask uint32) (float64, bool)
}

// SweeperFactory builds the sweeper for a world each frame.
type SweeperFactory func(w donburi.World) Sweeper

var newSweeper SweeperFactory = wallSweeper

func wallSweeper(w donburi.World) Sweeper {
	return WallSweeper{World: w}
}

// SetSweeper replaces the camera collision query. nil restores WallSweeper.
func SetSweeper(f SweeperFactory) {
	if f == nil {
		f = wallSweeper
	}
	newSweeper = f
}

// UpdateCamera follows the player. Without a player or a camera it does
// nothing and the camera holds its last transform.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := tags.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	dt := FrameDelta(e)
	camera := components.Camera.Get(cameraEntry)
	camTr := components.Transform.Get(cameraEntry)
	playerTr := components.Transform.Get(playerEntry)

	desired := DesiredCameraPosition(playerTr)
	lookPoint := factory.CameraLookPoint(playerEntry)

	camera.Clamped = false
	if cfg.Camera.CollisionEnabled {
		desired, camera.Clamped = ClampToSweep(newSweeper(e.World), lookPoint, desired)
	}
	camera.Desired = desired

	camTr.Position = gamemath.SmoothDamp(camTr.Position, desired, &camera.Velocity, cfg.Camera.FollowSmoothTime, dt)

	if cfg.Camera.LookAtEnabled {
		target := gamemath.LookRotation(lookPoint.Sub(camTr.Position), gamemath.Up)
		camTr.Rotation = gamemath.Slerp(camTr.Rotation, target, cfg.Camera.RotationSpeed*dt)
	} else {
		camTr.Rotation = gamemath.TiltRotation(cfg.Camera.TiltAngle)
	}
}

// DesiredCameraPosition is the player position plus the configured offset,
// rotated into the player's frame in local-offset mode.
func DesiredCameraPosition(player *components.TransformData) mgl64.Vec3 {
	offset := cfg.Camera.Offset.Vec()
	if cfg.Camera.ScaleOffsetWithPlayer && player.Scale > 0 {
		offset = offset.Mul(player.Scale)
	}
	if cfg.Camera.OffsetLocal {
		offset = player.Rotation.Rotate(offset)
	}
	return player.Position.Add(offset)
}

// ClampToSweep pulls desired toward origin when a sphere swept from origin
// hits something first. The clamped distance is max(hit-padding,
// MinDistance). It reports whether a clamp happened.
func ClampToSweep(s Sweeper, origin, desired mgl64.Vec3) (mgl64.Vec3, bool) {
	if s == nil {
		return desired, false
	}
	toDesired := desired.Sub(origin)
	dist := toDesired.Len()
	if dist < sweepEpsilon {
		return desired, false
	}
	dir := toDesired.Mul(1 / dist)

	hit, ok := s.Sweep(origin, cfg.Camera.SphereRadius, dir, dist, cfg.Camera.CollisionMask)
	if !ok || hit >= dist {
		return desired, false
	}

	clamped := math.Max(hit-cfg.Camera.CollisionPadding, cfg.Camera.MinDistance)
	return origin.Add(dir.Mul(clamped)), true
}

// WallSweeper sweeps against the 3D boxes of Wall entities.
type WallSweeper struct {
	World donburi.World
}

func (s WallSweeper) Sweep(origin mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDistance float64, mask uint32) (float64, bool) {
	best := math.Inf(1)
	found := false

	tags.Wall.Each(s.World, func(entry *donburi.Entry) {
		wall := components.Wall.Get(entry)
		if wall.Layer&mask == 0 {
			return
		}
		d, ok := gamemath.SphereCast(origin, dir, radius, wall.Box)
		if !ok || d > maxDistance {
			return
		}
		if d < best {
			best = d
			found = true
		}
	})

	if !found {
		return 0, false
	}
	return best, true
}
