package systems

import (
	"math"
	"testing"

	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/automoto/devour/shared/gamemath"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// growthFrames is enough frames at testStep for a full pulse and settle.
const growthFrames = 20

func TestConsumeGrowsPlayer(t *testing.T) {
	w := newTestWorld(t)
	cues := &recordingCues{}
	SetCuePlayer(cues)
	p := w.player(0, 0)
	item := w.item(0.6, 0, 1, true)
	itemID := item.Entity()

	w.step(1)

	if w.World.Valid(itemID) {
		t.Fatal("consumed item should be removed")
	}
	if massOf(p) != cfg.Growth.BaseMass {
		t.Fatal("mass must not change before the pulse ends")
	}
	if len(cues.played) != 1 || cues.played[0] != cfg.SoundAbsorb {
		t.Fatalf("played %v, want [absorb]", cues.played)
	}

	w.step(growthFrames)

	if got := massOf(p); math.Abs(got-1.25) > eps {
		t.Fatalf("mass = %v, want 1.25", got)
	}
	if got := scaleOf(p); math.Abs(got-1.0772173450159417) > 1e-12 {
		t.Fatalf("scale = %v, want cbrt(1.25)", got)
	}
	if phase := components.Growth.Get(p).Phase; phase != cfg.GrowthPhaseNone {
		t.Fatalf("phase = %v, want none", phase)
	}
}

func TestGrowthPhasesInOrder(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0, 0)
	item := w.item(0, 5, 1, true)

	if !HandleOverlapEnter(w.ECS, p, item) {
		t.Fatal("item should be consumed")
	}

	var phases []cfg.GrowthPhase
	peak := 0.0
	for i := 0; i < growthFrames; i++ {
		w.step(1)
		g := components.Growth.Get(p)
		if len(phases) == 0 || phases[len(phases)-1] != g.Phase {
			phases = append(phases, g.Phase)
		}
		peak = math.Max(peak, scaleOf(p))
	}

	want := []cfg.GrowthPhase{cfg.GrowthPhasePulseUp, cfg.GrowthPhasePulseDown, cfg.GrowthPhaseSettle, cfg.GrowthPhaseNone}
	if len(phases) != len(want) {
		t.Fatalf("phases = %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Fatalf("phases = %v, want %v", phases, want)
		}
	}
	if peak <= 1 || peak > cfg.Growth.PulseScale+eps {
		t.Fatalf("pulse peak = %v, want in (1, %v]", peak, cfg.Growth.PulseScale)
	}
}

func TestSettledScaleIsStable(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0, 0)
	HandleOverlapEnter(w.ECS, p, w.item(0, 5, 0.5, true))
	w.step(growthFrames)

	settled := scaleOf(p)
	if settled != gamemath.ScaleForMass(massOf(p), cfg.Growth.ScaleMultiplier) {
		t.Fatalf("settled scale %v does not match mass %v", settled, massOf(p))
	}
	w.step(10)
	if scaleOf(p) != settled {
		t.Fatalf("scale drifted after settling: %v -> %v", settled, scaleOf(p))
	}
}

func TestHeavierItemIgnored(t *testing.T) {
	w := newTestWorld(t)
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	p := w.player(0, 0)
	item := w.item(0.6, 0, 2, true)

	w.step(5)

	if !item.Valid() || components.Consumable.Get(item).Consumed {
		t.Fatal("heavier item must not be consumed")
	}
	if item.HasComponent(components.OverlapEvent) {
		t.Fatal("overlap event left behind")
	}
	if massOf(p) != cfg.Growth.BaseMass || components.Growth.Get(p).Phase != cfg.GrowthPhaseNone {
		t.Fatal("player changed after touching a heavier item")
	}
	// Reported once on enter, not every frame of contact.
	if n := logs.FilterMessage("consumable too heavy").Len(); n != 1 {
		t.Fatalf("logged %d times, want 1", n)
	}
}

func TestEqualMassIsConsumed(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0, 0)
	item := w.item(0, 5, cfg.Growth.BaseMass, false)

	if !HandleOverlapEnter(w.ECS, p, item) {
		t.Fatal("equal mass should be consumed")
	}
}

func TestConsumedOnlyOnce(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0, 0)
	item := w.item(0, 5, 1, false)

	if !HandleOverlapEnter(w.ECS, p, item) {
		t.Fatal("first delivery should consume")
	}
	if HandleOverlapEnter(w.ECS, p, item) {
		t.Fatal("second delivery should be a no-op")
	}
	w.step(growthFrames)

	if got := massOf(p); math.Abs(got-1.25) > eps {
		t.Fatalf("mass = %v, want 1.25", got)
	}
}

func TestKeptItemLeavesSpace(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0, 0)
	item := w.item(0.6, 0, 0.5, false)

	w.step(1)

	if !item.Valid() {
		t.Fatal("item without DestroyOnConsume should stay")
	}
	if !components.Consumable.Get(item).Consumed {
		t.Fatal("item should be marked consumed")
	}
	spaceEntry, _ := components.Space.First(w.World)
	itemObj := components.Object.Get(item).Object
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		if obj == itemObj {
			t.Fatal("consumed item should leave the collision space")
		}
	}

	// Walk away and back: no second consumption.
	w.input.hold(cfg.ActionMoveBack)
	w.step(10)
	w.input.hold(cfg.ActionMoveForward)
	w.step(10)
	w.input.release()
	w.step(growthFrames)

	if got := massOf(p); math.Abs(got-1.125) > eps {
		t.Fatalf("mass = %v, want 1.125", got)
	}
}

func TestOverlapEnterOnlyOnFirstContact(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0, 0)
	heavy := w.item(0.6, 0, 5, true)

	UpdateOverlaps(w.ECS)
	if !heavy.HasComponent(components.OverlapEvent) {
		t.Fatal("first contact should raise an event")
	}
	UpdateConsumption(w.ECS)

	UpdateOverlaps(w.ECS)
	if heavy.HasComponent(components.OverlapEvent) {
		t.Fatal("continued contact should not raise another event")
	}
	if _, ok := components.Player.Get(p).Overlaps[heavy.Entity()]; !ok {
		t.Fatal("contact should be remembered")
	}
}

func TestJumpClearsItems(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0, 0)

	w.press(cfg.ActionJump)
	w.step(5) // y is well above one unit
	item := w.item(0.6, 0, 0.5, true)
	w.step(1)

	if !item.Valid() {
		t.Fatal("item under an airborne player should not be eaten")
	}
	if massOf(p) != cfg.Growth.BaseMass {
		t.Fatal("mass changed")
	}
}

func TestSupersededGrowthDropsPendingGain(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0, 0)

	HandleOverlapEnter(w.ECS, p, w.item(0, 5, 1, true)) // gain 0.25
	w.step(2)                                           // still pulsing up
	HandleOverlapEnter(w.ECS, p, w.item(0, 6, 0.8, true))
	w.step(growthFrames)

	if got := massOf(p); math.Abs(got-1.2) > eps {
		t.Fatalf("mass = %v, want 1.2", got)
	}
	if got := scaleOf(p); math.Abs(got-math.Cbrt(1.2)) > 1e-12 {
		t.Fatalf("scale = %v, want cbrt(1.2)", got)
	}
}

func TestSupersededGrowthCarriesPendingGain(t *testing.T) {
	w := newTestWorld(t)
	cfg.Growth.CarryInterruptedGain = true
	p := w.player(0, 0)

	HandleOverlapEnter(w.ECS, p, w.item(0, 5, 1, true))
	w.step(2)
	HandleOverlapEnter(w.ECS, p, w.item(0, 6, 0.8, true))
	w.step(growthFrames)

	if got := massOf(p); math.Abs(got-1.45) > eps {
		t.Fatalf("mass = %v, want 1.45", got)
	}
}

func TestSupersededDuringSettleKeepsBothGains(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0, 0)

	HandleOverlapEnter(w.ECS, p, w.item(0, 5, 1, true))
	w.step(7)
	if phase := components.Growth.Get(p).Phase; phase != cfg.GrowthPhaseSettle {
		t.Fatalf("phase = %v, want settle", phase)
	}
	HandleOverlapEnter(w.ECS, p, w.item(0, 6, 0.8, true))
	w.step(growthFrames)

	if got := massOf(p); math.Abs(got-1.45) > eps {
		t.Fatalf("mass = %v, want 1.45", got)
	}
}

func TestSimultaneousOverlapsHandledInOrder(t *testing.T) {
	w := newTestWorld(t)
	cfg.Growth.CarryInterruptedGain = true
	p := w.player(0, 0)
	right := w.item(0.3, 0, 0.8, true)
	left := w.item(-0.3, 0, 0.4, true)

	UpdateClock(w.ECS)
	UpdateOverlaps(w.ECS)
	seqLeft := components.OverlapEvent.Get(left).Seq
	seqRight := components.OverlapEvent.Get(right).Seq
	if seqLeft >= seqRight {
		t.Fatalf("events out of order: left=%d right=%d", seqLeft, seqRight)
	}

	UpdateConsumption(w.ECS)
	if left.Valid() || right.Valid() {
		t.Fatal("both items should be consumed")
	}
	if got := components.Growth.Get(p).PendingGain; math.Abs(got-0.3) > eps {
		t.Fatalf("pending gain = %v, want 0.3", got)
	}
}
