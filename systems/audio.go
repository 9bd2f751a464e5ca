package systems

import (
	"io/fs"
	"math"
	"sync"

	"github.com/automoto/devour/assets"
	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CuePlayer plays a sound effect without blocking.
type CuePlayer interface {
	Play(id cfg.SoundID)
}

var cuePlayer CuePlayer

// SetCuePlayer sets where queued cues go. nil drops them.
func SetCuePlayer(p CuePlayer) {
	cuePlayer = p
}

// UpdateAudio hands the cues queued this frame to the cue player.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		if cuePlayer != nil {
			cuePlayer.Play(soundID)
		}
		audioData.Played++
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX queues a sound effect for UpdateAudio.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	if sound == cfg.SoundNone {
		return
	}
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton audio queue, creating if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// SFXPlayer plays cues through an ebiten audio context. Cues without a
// configured or loadable clip are skipped; each failing path is logged once.
type SFXPlayer struct {
	loader *assets.AudioLoader
	failed map[string]bool
}

// NewSFXPlayer creates a cue player reading clips through loader.
func NewSFXPlayer(loader *assets.AudioLoader) *SFXPlayer {
	return &SFXPlayer{
		loader: loader,
		failed: make(map[string]bool),
	}
}

var (
	audioContext  *audio.Context
	audioInitOnce sync.Once
)

// InitAudio creates the process audio context on first use and routes
// queued cues to an SFXPlayer reading clips from fsys.
func InitAudio(fsys fs.FS) *SFXPlayer {
	audioInitOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	p := NewSFXPlayer(assets.NewAudioLoader(audioContext, fsys))
	p.Preload()
	SetCuePlayer(p)
	return p
}

// Preload decodes every configured clip so the first play does not stall.
func (p *SFXPlayer) Preload() {
	for _, path := range cfg.Sound.SFXPaths {
		if err := p.loader.PreloadSFX(path); err != nil {
			p.fail(path, err)
		}
	}
}

func (p *SFXPlayer) Play(id cfg.SoundID) {
	if cfg.Audio.SFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[id]
	if !ok || p.failed[path] {
		return
	}

	player, err := p.loader.LoadSFX(path)
	if err != nil {
		p.fail(path, err)
		return
	}

	volume := cfg.Audio.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}

	player.SetVolume(math.Min(1, volume))
	player.Play()
}

func (p *SFXPlayer) fail(path string, err error) {
	if p.failed[path] {
		return
	}
	p.failed[path] = true
	gameLog.Warn("sound effect unavailable", zap.String("path", path), zap.Error(err))
}
