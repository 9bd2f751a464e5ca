package systems

import (
	"image/color"
	"math"

	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/automoto/devour/shared/gamemath"
	"github.com/automoto/devour/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	groundColor     = color.RGBA{24, 26, 32, 255}
	wallColor       = color.RGBA{90, 94, 110, 255}
	wallTopColor    = color.RGBA{130, 136, 156, 255}
	edibleColor     = color.RGBA{60, 200, 90, 255}
	heavyColor      = color.RGBA{210, 70, 60, 255}
	playerColor     = color.RGBA{240, 200, 60, 255}
	playerFaceColor = color.RGBA{30, 30, 30, 255}
	shadowColor     = color.RGBA{0, 0, 0, 110}
)

// View maps world XZ onto the screen, top down, +Z up the screen.
type View struct {
	Focus         mgl64.Vec3
	Width, Height float64
	PixelsPerUnit float64
}

// ToScreen projects a world point.
func (v View) ToScreen(p mgl64.Vec3) (float32, float32) {
	x := v.Width/2 + (p.X()-v.Focus.X())*v.PixelsPerUnit
	y := v.Height/2 - (p.Z()-v.Focus.Z())*v.PixelsPerUnit
	return float32(x), float32(y)
}

// Length scales a world distance to pixels.
func (v View) Length(d float64) float32 {
	return float32(d * v.PixelsPerUnit)
}

// CameraFocus is where the camera's forward ray meets the ground, or the
// camera's own XZ when it looks level or up.
func CameraFocus(tr *components.TransformData) mgl64.Vec3 {
	forward := tr.Rotation.Rotate(gamemath.Forward)
	if forward.Y() < -1e-6 {
		t := -tr.Position.Y() / forward.Y()
		return tr.Position.Add(forward.Mul(t))
	}
	return mgl64.Vec3{tr.Position.X(), 0, tr.Position.Z()}
}

// CurrentView returns the view of the camera entity, centred on the origin
// when there is none.
func CurrentView(e *ecs.ECS, screen *ebiten.Image) View {
	v := View{
		Width:         float64(screen.Bounds().Dx()),
		Height:        float64(screen.Bounds().Dy()),
		PixelsPerUnit: cfg.C.PixelsPerUnit,
	}
	if cameraEntry, ok := tags.Camera.First(e.World); ok {
		v.Focus = CameraFocus(components.Transform.Get(cameraEntry))
	}
	return v
}

// DrawWorld renders walls, consumables and the player from above.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(groundColor)
	view := CurrentView(e, screen)

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		drawWall(screen, view, components.Wall.Get(entry))
	})

	playerMass := math.Inf(1)
	playerEntry, hasPlayer := tags.Player.First(e.World)
	if hasPlayer {
		playerMass = components.Player.Get(playerEntry).Mass
	}

	tags.Consumable.Each(e.World, func(entry *donburi.Entry) {
		item := components.Consumable.Get(entry)
		if item.Consumed {
			return
		}
		tr := components.Transform.Get(entry)
		x, y := view.ToScreen(tr.Position)
		c := edibleColor
		if item.Mass > playerMass {
			c = heavyColor
		}
		vector.DrawFilledCircle(screen, x, y, view.Length(tr.Scale/2), c, true)
	})

	if hasPlayer {
		drawPlayer(screen, view, components.Transform.Get(playerEntry))
	}
}

func drawWall(screen *ebiten.Image, view View, wall *components.WallData) {
	x, y := view.ToScreen(mgl64.Vec3{wall.Box.Min.X(), 0, wall.Box.Max.Z()})
	w := view.Length(wall.Box.Max.X() - wall.Box.Min.X())
	h := view.Length(wall.Box.Max.Z() - wall.Box.Min.Z())
	c := wallColor
	if wall.Layer&cfg.Camera.CollisionMask == 0 {
		c = wallTopColor
	}
	vector.DrawFilledRect(screen, x, y, w, h, c, false)
}

func drawPlayer(screen *ebiten.Image, view View, tr *components.TransformData) {
	ground := mgl64.Vec3{tr.Position.X(), 0, tr.Position.Z()}
	gx, gy := view.ToScreen(ground)
	radius := view.Length(tr.Scale / 2)

	// Airborne: shadow on the ground, body lifted toward the top of the screen.
	if tr.Position.Y() > 0 {
		vector.DrawFilledCircle(screen, gx, gy, radius, shadowColor, true)
	}
	px, py := gx, gy-view.Length(tr.Position.Y())/2
	vector.DrawFilledCircle(screen, px, py, radius, playerColor, true)

	facing := tr.Rotation.Rotate(gamemath.Forward)
	tip := ground.Add(gamemath.Horizontal(facing).Mul(tr.Scale / 2))
	tx, ty := view.ToScreen(tip)
	vector.StrokeLine(screen, px, py, tx, ty+(py-gy), 2, playerFaceColor, true)
}
