package systems

import (
	"sort"

	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/automoto/devour/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateConsumption handles the overlap events raised this frame, in the
// order they were raised.
func UpdateConsumption(e *ecs.ECS) {
	var pending []*donburi.Entry
	for entry := range components.OverlapEvent.Iter(e.World) {
		pending = append(pending, entry)
	}
	sort.Slice(pending, func(i, j int) bool {
		return components.OverlapEvent.Get(pending[i]).Seq < components.OverlapEvent.Get(pending[j]).Seq
	})

	for _, item := range pending {
		ev := *components.OverlapEvent.Get(item)
		donburi.Remove[components.OverlapEventData](item, components.OverlapEvent)

		if !e.World.Valid(ev.Player) {
			continue
		}
		HandleOverlapEnter(e, e.World.Entry(ev.Player), item)
	}
}

// HandleOverlapEnter applies the consumption rule to one overlap-enter and
// reports whether the consumable was eaten. Heavier or already consumed
// items are left alone.
func HandleOverlapEnter(e *ecs.ECS, playerEntry, item *donburi.Entry) bool {
	if playerEntry == nil || !playerEntry.Valid() || !playerEntry.HasComponent(components.Player) {
		return false
	}
	if item == nil || !item.Valid() || !item.HasComponent(components.Consumable) {
		return false
	}

	player := components.Player.Get(playerEntry)
	consumable := components.Consumable.Get(item)
	if consumable.Consumed {
		return false
	}
	if consumable.Mass > player.Mass {
		gameLog.Debug("consumable too heavy",
			zap.Float64("mass", consumable.Mass),
			zap.Float64("playerMass", player.Mass),
		)
		return false
	}

	consumable.Consumed = true
	gain := consumable.Mass * cfg.Growth.GainFactor

	gameLog.Debug("consumed",
		zap.Float64("mass", consumable.Mass),
		zap.Float64("gain", gain),
		zap.Float64("playerMass", player.Mass),
	)

	PlaySFX(e, cfg.SoundAbsorb)
	factory.DestroyConsumable(e, item)
	StartGrowth(playerEntry, gain)
	return true
}
