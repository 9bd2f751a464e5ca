package systems

import (
	"math"

	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/automoto/devour/systems/factory"
	"github.com/automoto/devour/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Mover applies a displacement to an entity, clipping it against the world,
// and returns the velocity actually achieved.
type Mover interface {
	Move(entry *donburi.Entry, displacement mgl64.Vec3, dt float64) mgl64.Vec3
}

var mover Mover = ResolvMover{}

// SetMover replaces the movement primitive. nil restores ResolvMover.
func SetMover(m Mover) {
	if m == nil {
		m = ResolvMover{}
	}
	mover = m
}

// ResolvMover slides the body's XZ footprint against solid objects one axis
// at a time, X then Z. Vertical displacement is applied unclipped. A body that
// grew into a solid may move out of it or along it, never deeper.
type ResolvMover struct{}

func (ResolvMover) Move(entry *donburi.Entry, displacement mgl64.Vec3, dt float64) mgl64.Vec3 {
	tr := components.Transform.Get(entry)
	if !entry.HasComponent(components.Object) || components.Object.Get(entry).Object == nil {
		tr.Position = tr.Position.Add(displacement)
		return velocityOf(displacement, dt)
	}

	factory.SyncBody(entry)
	obj := components.Object.Get(entry).Object

	dx := clipAxis(obj, cfg.World.SpaceLength(displacement.X()), 0)
	obj.X += dx
	obj.Update()

	dz := clipAxis(obj, 0, cfg.World.SpaceLength(displacement.Z()))
	obj.Y += dz
	obj.Update()

	applied := mgl64.Vec3{cfg.World.WorldLength(dx), displacement.Y(), cfg.World.WorldLength(dz)}
	tr.Position = tr.Position.Add(applied)
	return velocityOf(applied, dt)
}

func velocityOf(applied mgl64.Vec3, dt float64) mgl64.Vec3 {
	if dt <= 0 {
		return mgl64.Vec3{}
	}
	return applied.Mul(1 / dt)
}

// clipAxis returns how far obj can travel by (dx, dy) space units before
// touching a solid. Exactly one of dx, dy is expected to be non-zero.
func clipAxis(obj *resolv.Object, dx, dy float64) float64 {
	d := dx + dy
	if d == 0 {
		return 0
	}

	// resolv's cell range ends one unit short of the far edge.
	probeX, probeY := dx, dy
	switch {
	case dx > 0:
		probeX++
	case dx < 0:
		probeX--
	case dy > 0:
		probeY++
	default:
		probeY--
	}

	check := obj.Check(probeX, probeY, tags.ResolvSolid)
	if check == nil {
		return d
	}

	allowed := d
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if rectsOverlap(obj.X, obj.Y, obj.W, obj.H, solid) {
			if deepens(obj, solid, dx, dy) {
				allowed = 0
			}
			continue
		}
		if !rectsOverlap(obj.X+dx, obj.Y+dy, obj.W, obj.H, solid) {
			continue
		}

		var gap float64
		switch {
		case dx > 0:
			gap = solid.X - (obj.X + obj.W)
		case dx < 0:
			gap = (solid.X + solid.W) - obj.X
		case dy > 0:
			gap = solid.Y - (obj.Y + obj.H)
		default:
			gap = (solid.Y + solid.H) - obj.Y
		}

		if d > 0 {
			allowed = math.Min(allowed, math.Max(0, gap))
		} else {
			allowed = math.Max(allowed, math.Min(0, gap))
		}
	}
	return allowed
}

// deepens reports whether moving obj by (dx, dy) pushes it further into a
// solid it already overlaps. Only motion along the axis of least
// penetration counts, so sliding along the solid stays free.
func deepens(obj, solid *resolv.Object, dx, dy float64) bool {
	ox := math.Min(obj.X+obj.W, solid.X+solid.W) - math.Max(obj.X, solid.X)
	oy := math.Min(obj.Y+obj.H, solid.Y+solid.H) - math.Max(obj.Y, solid.Y)
	cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
	sx, sy := solid.X+solid.W/2, solid.Y+solid.H/2

	switch {
	case dx != 0:
		return ox <= oy && (dx > 0) == (cx < sx)
	case dy != 0:
		return oy <= ox && (dy > 0) == (cy < sy)
	}
	return false
}

// rectsOverlap reports whether the rectangle (x, y, w, h) strictly overlaps
// other. Touching edges do not count.
func rectsOverlap(x, y, w, h float64, other *resolv.Object) bool {
	return x < other.X+other.W && other.X < x+w &&
		y < other.Y+other.H && other.Y < y+h
}
