package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// AudioFS returns the embedded sound effects rooted at the audio directory.
func AudioFS() fs.FS {
	sub, err := fs.Sub(audioFS, "audio")
	if err != nil {
		panic(err)
	}
	return sub
}

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
	fsys     fs.FS
}

// NewAudioLoader creates a new audio loader reading clips from fsys
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
		fsys:     fsys,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(path string) error {
	_, err := l.decoded(path)
	return err
}

// LoadSFX returns a new player for a sound effect each time.
// SFX are cached as decoded bytes for instant playback.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	decoded, err := l.decoded(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(decoded))
}

func (l *AudioLoader) decoded(path string) ([]byte, error) {
	if cached, ok := l.sfxCache[path]; ok {
		return cached, nil
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	decoded, err := decode(l.context.SampleRate(), path, data)
	if err != nil {
		return nil, err
	}

	l.sfxCache[path] = decoded
	return decoded, nil
}

// decode converts an .ogg or .wav file into raw PCM at sampleRate.
func decode(sampleRate int, path string, data []byte) ([]byte, error) {
	var stream io.Reader
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}
