package systems

import (
	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/automoto/devour/shared/gamemath"
	"github.com/automoto/devour/systems/factory"
	"github.com/automoto/devour/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// StartGrowth supersedes any running growth sequence with a new one that will
// add gain to the player's mass. The current visual scale becomes the
// pulse origin. A gain the superseded sequence had not applied yet is
// dropped unless cfg.Growth.CarryInterruptedGain is set.
func StartGrowth(entry *donburi.Entry, gain float64) {
	g := components.Growth.Get(entry)
	tr := components.Transform.Get(entry)

	pending := gain
	if g.Phase.Pending() {
		if cfg.Growth.CarryInterruptedGain {
			pending += g.PendingGain
		} else if g.PendingGain > 0 {
			gameLog.Debug("growth superseded, gain dropped", zap.Float64("gain", g.PendingGain))
		}
	}

	origin := tr.Scale
	*g = components.GrowthData{
		Phase:       cfg.GrowthPhasePulseUp,
		Origin:      origin,
		Pulse:       origin * cfg.Growth.PulseScale,
		PendingGain: pending,
	}
}

// UpdateGrowth advances every player's growth sequence by one frame.
func UpdateGrowth(e *ecs.ECS) {
	dt := FrameDelta(e)
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if advanceGrowth(entry, dt) {
			factory.SyncBody(entry)
		}
	})
}

// advanceGrowth steps the sequence and reports whether the scale changed.
// At most one phase ends per frame.
func advanceGrowth(entry *donburi.Entry, dt float64) bool {
	g := components.Growth.Get(entry)
	tr := components.Transform.Get(entry)

	switch g.Phase {
	case cfg.GrowthPhasePulseUp:
		g.Progress += dt / cfg.Growth.PulseUpTime
		tr.Scale = gamemath.Interpolate(gamemath.Linear, g.Origin, g.Pulse, g.Progress)
		if g.Progress >= 1 {
			g.Phase = cfg.GrowthPhasePulseDown
			g.Progress = 0
		}

	case cfg.GrowthPhasePulseDown:
		g.Progress += dt / cfg.Growth.PulseDownTime
		tr.Scale = gamemath.Interpolate(gamemath.Linear, g.Pulse, g.Origin, g.Progress)
		if g.Progress >= 1 {
			applyGain(entry, g, tr.Scale)
		}

	case cfg.GrowthPhaseSettle:
		g.Progress += dt * cfg.Growth.SettleRate
		tr.Scale = gamemath.Interpolate(gamemath.Ease(cfg.Growth.SettleEase), g.From, g.Target, g.Progress)
		if g.Progress >= 1 {
			player := components.Player.Get(entry)
			tr.Scale = gamemath.ScaleForMass(player.Mass, cfg.Growth.ScaleMultiplier)
			*g = components.GrowthData{}
		}

	default:
		return false
	}
	return true
}

// applyGain is the pulse-down to settle boundary, the only place mass
// changes.
func applyGain(entry *donburi.Entry, g *components.GrowthData, scale float64) {
	player := components.Player.Get(entry)
	player.Mass += g.PendingGain

	target := gamemath.ScaleForMass(player.Mass, cfg.Growth.ScaleMultiplier)
	gameLog.Debug("mass gained",
		zap.Float64("gain", g.PendingGain),
		zap.Float64("mass", player.Mass),
		zap.Float64("targetScale", target),
	)

	g.Phase = cfg.GrowthPhaseSettle
	g.Progress = 0
	g.PendingGain = 0
	g.From = scale
	g.Target = target
}
