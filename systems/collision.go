package systems

import (
	"sort"

	"github.com/automoto/devour/components"
	"github.com/automoto/devour/systems/factory"
	"github.com/automoto/devour/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// overlapSeq orders overlap events across frames.
var overlapSeq uint64

// UpdateOverlaps finds the consumables each player body touches and attaches
// an OverlapEvent to those it was not touching last frame. Must run after
// every system that moves or resizes the player.
func UpdateOverlaps(e *ecs.ECS) {
	tags.Player.Each(e.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)
		factory.SyncBody(playerEntry)

		touching := touchingConsumables(playerEntry)
		current := make(map[donburi.Entity]struct{}, len(touching))
		for _, item := range touching {
			id := item.Entity()
			current[id] = struct{}{}
			if _, ok := player.Overlaps[id]; ok {
				continue
			}
			if item.HasComponent(components.OverlapEvent) {
				continue
			}
			overlapSeq++
			donburi.Add(item, components.OverlapEvent, &components.OverlapEventData{
				Player: playerEntry.Entity(),
				Seq:    overlapSeq,
			})
		}
		player.Overlaps = current
	})
}

// touchingConsumables returns the unconsumed consumables whose volume
// overlaps the player's, ordered by position.
func touchingConsumables(playerEntry *donburi.Entry) []*donburi.Entry {
	obj := components.Object.Get(playerEntry).Object
	if obj == nil {
		return nil
	}
	check := obj.Check(0, 0, tags.ResolvConsumable)
	if check == nil {
		return nil
	}

	var out []*donburi.Entry
	for _, o := range check.ObjectsByTags(tags.ResolvConsumable) {
		item, ok := o.Data.(*donburi.Entry)
		if !ok || !item.Valid() || !item.HasComponent(components.Consumable) {
			continue
		}
		if components.Consumable.Get(item).Consumed {
			continue
		}
		if !volumesOverlap(playerEntry, item) {
			continue
		}
		out = append(out, item)
	}

	sort.Slice(out, func(i, j int) bool {
		a := components.Transform.Get(out[i]).Position
		b := components.Transform.Get(out[j]).Position
		if a.X() != b.X() {
			return a.X() < b.X()
		}
		return a.Z() < b.Z()
	})
	return out
}

// volumesOverlap tests the bodies as boxes: XZ footprint from the collision
// objects, height from scale.
func volumesOverlap(a, b *donburi.Entry) bool {
	oa := components.Object.Get(a).Object
	ob := components.Object.Get(b).Object
	if !rectsOverlap(oa.X, oa.Y, oa.W, oa.H, ob) {
		return false
	}
	ta := components.Transform.Get(a)
	tb := components.Transform.Get(b)
	return ta.Position.Y() < tb.Position.Y()+tb.Scale &&
		tb.Position.Y() < ta.Position.Y()+ta.Scale
}
