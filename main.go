package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/devour/config"
	"github.com/automoto/devour/fonts"
	"github.com/automoto/devour/logger"
	"github.com/automoto/devour/scenes"
	"github.com/automoto/devour/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const appName = "devour"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tunablesPath := flag.String("tunables", "", "YAML file with tunable overrides")
	saveTunables := flag.Bool("save-tunables", false, "Persist the effective tunables to the user data dir")
	level := flag.String("level", "", "Level to load (default: level01)")
	audioDir := flag.String("audio-dir", "", "Directory with sfx/ clips instead of the embedded set")
	mute := flag.Bool("mute", false, "Disable sound effects")
	debug := flag.Bool("debug", false, "Draw collision bodies and the camera target")
	logLevel := flag.String("log-level", config.Log.Level, "Log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", config.Log.Format, "Log format (console, json)")
	flag.Parse()

	config.Log.Level = *logLevel
	config.Log.Format = *logFormat
	config.Log.Development = *debug
	config.Debug.ShowColliders = *debug

	lg, err := logger.New(logger.FromEnv(config.Log))
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()
	systems.SetLogger(lg)

	loadTunables(lg, *tunablesPath, *saveTunables)

	if err := fonts.LoadDefaults(); err != nil {
		lg.Warn("HUD fonts unavailable", zap.Error(err))
	}

	opts := scenes.WorldOptions{
		Level:  *level,
		Mute:   *mute,
		Logger: lg,
	}
	if *audioDir != "" {
		opts.AudioFS = os.DirFS(*audioDir)
	}
	scene, err := scenes.NewWorldScene(opts)
	if err != nil {
		lg.Fatal("Failed to load level", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Devour")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		lg.Fatal("Game exited", zap.Error(err))
	}
}

// loadTunables layers the saved overrides, then the file at path, over the
// defaults. Failures keep whatever was applied so far.
func loadTunables(lg *zap.Logger, path string, save bool) {
	store, err := config.OpenTunablesStore(appName)
	if err != nil {
		lg.Warn("Could not open tunables store", zap.Error(err))
	} else if saved, ok, err := store.Load(); err != nil {
		lg.Warn("Could not load saved tunables", zap.Error(err))
	} else if ok {
		config.ApplyTunables(saved)
		lg.Info("Applied saved tunables")
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			lg.Fatal("Failed to open tunables", zap.String("path", path), zap.Error(err))
		}
		t, err := config.LoadTunables(f)
		_ = f.Close()
		if err != nil {
			lg.Fatal("Failed to parse tunables", zap.String("path", path), zap.Error(err))
		}
		config.ApplyTunables(t)
		lg.Info("Applied tunables file", zap.String("path", path))
	}

	if save && store != nil {
		if err := store.Save(config.CurrentTunables()); err != nil {
			lg.Warn("Could not save tunables", zap.Error(err))
		}
	}
}
