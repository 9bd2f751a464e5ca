package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundSpin
	SoundAbsorb
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func defaultAudio() AudioConfig {
	return AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.8,
	}
}

func defaultSound() SoundConfig {
	return SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundJump:   "sfx/jump.wav",
			SoundSpin:   "sfx/spin.wav",
			SoundAbsorb: "sfx/absorb.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundAbsorb: 1.2,
		},
	}
}
