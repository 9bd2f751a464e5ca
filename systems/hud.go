package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/devour/components"
	"github.com/automoto/devour/fonts"
	"github.com/automoto/devour/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 18
	hudPanelWidth = 190
)

var (
	hudPanelColor = color.RGBA{0, 0, 0, 140}
	hudTextColor  = color.RGBA{235, 235, 235, 255}
	hudDimColor   = color.RGBA{160, 160, 170, 255}
)

// HUDLines returns the player status shown in the top-left corner.
func HUDLines(e *ecs.ECS) []string {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return nil
	}
	player := components.Player.Get(playerEntry)
	tr := components.Transform.Get(playerEntry)
	act := components.TimedAction.Get(playerEntry)
	growth := components.Growth.Get(playerEntry)

	return []string{
		fmt.Sprintf("Mass  %.2f", player.Mass),
		fmt.Sprintf("Scale %.3f", tr.Scale),
		fmt.Sprintf("Action %s", act.Kind),
		fmt.Sprintf("Growth %s", growth.Phase),
	}
}

// DrawHUD renders the player's mass, scale and current action.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	lines := HUDLines(e)
	if len(lines) == 0 || !fonts.Loaded(fonts.HUD) {
		return
	}

	vector.DrawFilledRect(screen,
		float32(hudMargin/2), float32(hudMargin/2),
		float32(hudPanelWidth), float32(len(lines)*hudLineHeight+hudMargin),
		hudPanelColor, false)

	face := fonts.HUD.Get()
	for i, line := range lines {
		c := hudTextColor
		if i > 1 {
			c = hudDimColor
		}
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight-4, c)
	}
}
