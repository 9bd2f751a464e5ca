package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/automoto/devour/fonts"
	"github.com/automoto/devour/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision body and marks the camera target.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}
	view := CurrentView(e, screen)

	spaceEntry, ok := components.Space.First(e.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// Space Y runs along world Z.
			wx, wz := cfg.World.FromSpace(obj.X, obj.Y+obj.H)
			x, y := view.ToScreen(mgl64.Vec3{wx, 0, wz})

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvConsumable) {
				c = color.RGBA{0, 255, 0, 255} // Green
			}
			w := view.Length(cfg.World.WorldLength(obj.W))
			h := view.Length(cfg.World.WorldLength(obj.H))
			vector.StrokeRect(screen, x, y, w, h, 1, c, false)
		}
	}

	cameraEntry, ok := tags.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camTr := components.Transform.Get(cameraEntry)

	marker := color.RGBA{255, 255, 255, 255}
	if camera.Clamped {
		marker = color.RGBA{255, 60, 60, 255}
	}
	dx, dy := view.ToScreen(camera.Desired)
	cx, cy := view.ToScreen(camTr.Position)
	vector.StrokeCircle(screen, dx, dy, 4, 1, marker, true)
	vector.StrokeLine(screen, cx, cy, dx, dy, 1, marker, true)

	if fonts.Loaded(fonts.Mono) {
		status := fmt.Sprintf("cam %.1f %.1f %.1f  clamped=%v",
			camTr.Position.X(), camTr.Position.Y(), camTr.Position.Z(), camera.Clamped)
		text.Draw(screen, status, fonts.Mono.Get(), hudMargin, screen.Bounds().Dy()-hudMargin, marker)
	}
}
