package scenes

import (
	"image/color"
	"io/fs"
	"sync"

	"github.com/automoto/devour/assets"
	cfg "github.com/automoto/devour/config"
	"github.com/automoto/devour/shared/leveldata"
	"github.com/automoto/devour/systems"
	"github.com/automoto/devour/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// WorldOptions selects what a WorldScene plays.
type WorldOptions struct {
	Level   string // embedded level name, assets.DefaultLevel when empty
	Layout  *leveldata.Layout
	AudioFS fs.FS // sound effect clips, the embedded set when nil
	Mute    bool
	Logger  *zap.Logger
}

type WorldScene struct {
	ecs  *ecs.ECS
	opts WorldOptions
	once sync.Once
}

// NewWorldScene loads the level up front so a bad level name fails before
// the window opens.
func NewWorldScene(opts WorldOptions) (*WorldScene, error) {
	if opts.Layout == nil {
		layout, err := assets.LoadLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		opts.Layout = layout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &WorldScene{opts: opts}, nil
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// ECS exposes the running world, nil before the first Update.
func (ws *WorldScene) ECS() *ecs.ECS {
	return ws.ecs
}

func (ws *WorldScene) configure() {
	if !ws.opts.Mute {
		fsys := ws.opts.AudioFS
		if fsys == nil {
			fsys = assets.AudioFS()
		}
		systems.InitAudio(fsys)
	}

	ws.ecs = NewWorld(ws.opts.Layout, 1/float64(ebiten.TPS()))
	ws.opts.Logger.Info("level loaded",
		zap.String("level", ws.opts.Layout.Name),
		zap.Int("walls", len(ws.opts.Layout.Walls)),
		zap.Int("consumables", len(ws.opts.Layout.Consumables)),
	)
}

// NewWorld builds the simulation for layout with a fixed frame step in
// seconds. Systems run in frame order: clock, input, locomotion, actions,
// overlap detection, consumption, growth, camera, then audio.
func NewWorld(layout *leveldata.Layout, step float64) *ecs.ECS {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateLocomotion)
	ecs.AddSystem(systems.UpdateActions)
	ecs.AddSystem(systems.UpdateOverlaps)
	ecs.AddSystem(systems.UpdateConsumption)
	ecs.AddSystem(systems.UpdateGrowth)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateAudio)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	factory.CreateClock(ecs, step)
	factory.CreateLevel(ecs, layout)
	systems.GetOrCreateAudio(ecs)

	return ecs
}
