package systems

import (
	"math"
	"testing"

	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/automoto/devour/shared/leveldata"
	"github.com/automoto/devour/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testStep = 1.0 / 32
	eps      = 1e-9
)

// fakeInput feeds a scripted device state to UpdateInput.
type fakeInput struct {
	raw components.RawInput
}

func (f *fakeInput) Poll() components.RawInput { return f.raw }

func (f *fakeInput) hold(ids ...cfg.ActionID) {
	f.raw.Pressed = [cfg.ActionCount]bool{}
	for _, id := range ids {
		f.raw.Pressed[id] = true
	}
}

func (f *fakeInput) release() {
	f.raw = components.RawInput{}
}

// recordingCues collects the cues UpdateAudio hands out.
type recordingCues struct {
	played []cfg.SoundID
}

func (r *recordingCues) Play(id cfg.SoundID) { r.played = append(r.played, id) }

type testWorld struct {
	*ecs.ECS
	input *fakeInput
}

// newTestWorld returns an empty headless world with a clock and a
// collision space. Global hooks are restored when the test ends.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg.ResetDefaults()

	input := &fakeInput{}
	SetInputSource(input)
	SetCuePlayer(nil)
	SetMover(nil)
	SetSweeper(nil)
	SetLogger(nil)
	t.Cleanup(func() {
		SetInputSource(nil)
		SetCuePlayer(nil)
		SetMover(nil)
		SetSweeper(nil)
		SetLogger(nil)
		cfg.ResetDefaults()
	})

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e, testStep)
	factory.CreateSpace(e, cfg.World.Width, cfg.World.Depth, cfg.World.CellSize)
	return &testWorld{ECS: e, input: input}
}

// step runs n frames in the scene's system order.
func (w *testWorld) step(n int) {
	for i := 0; i < n; i++ {
		UpdateClock(w.ECS)
		UpdateInput(w.ECS)
		UpdateLocomotion(w.ECS)
		UpdateActions(w.ECS)
		UpdateOverlaps(w.ECS)
		UpdateConsumption(w.ECS)
		UpdateGrowth(w.ECS)
		UpdateCamera(w.ECS)
		UpdateAudio(w.ECS)
	}
}

// press holds ids for one frame, then releases everything.
func (w *testWorld) press(ids ...cfg.ActionID) {
	w.input.hold(ids...)
	w.step(1)
	w.input.release()
}

func (w *testWorld) player(x, z float64) *donburi.Entry {
	return factory.CreatePlayer(w.ECS, x, z)
}

func (w *testWorld) item(x, z, mass float64, destroy bool) *donburi.Entry {
	return factory.CreateConsumable(w.ECS, leveldata.ConsumableSpawn{
		X:                x,
		Z:                z,
		Mass:             mass,
		DestroyOnConsume: destroy,
	})
}

func position(entry *donburi.Entry) mgl64.Vec3 {
	return components.Transform.Get(entry).Position
}

func scaleOf(entry *donburi.Entry) float64 {
	return components.Transform.Get(entry).Scale
}

func massOf(entry *donburi.Entry) float64 {
	return components.Player.Get(entry).Mass
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func vecNear(a, b mgl64.Vec3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
