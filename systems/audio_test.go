package systems

import (
	"testing"

	"github.com/automoto/devour/components"
	cfg "github.com/automoto/devour/config"
)

func TestUpdateAudioDrainsQueueInOrder(t *testing.T) {
	w := newTestWorld(t)
	cues := &recordingCues{}
	SetCuePlayer(cues)

	PlaySFX(w.ECS, cfg.SoundSpin)
	PlaySFX(w.ECS, cfg.SoundNone)
	PlaySFX(w.ECS, cfg.SoundAbsorb)
	UpdateAudio(w.ECS)

	if len(cues.played) != 2 || cues.played[0] != cfg.SoundSpin || cues.played[1] != cfg.SoundAbsorb {
		t.Fatalf("played %v, want [spin absorb]", cues.played)
	}
	audio := GetOrCreateAudio(w.ECS)
	if len(audio.PendingSFX) != 0 || audio.Played != 2 {
		t.Fatalf("queue=%v played=%d after drain", audio.PendingSFX, audio.Played)
	}

	UpdateAudio(w.ECS)
	if len(cues.played) != 2 {
		t.Fatal("empty queue should play nothing")
	}
}

func TestUpdateAudioWithoutPlayerStillDrains(t *testing.T) {
	w := newTestWorld(t)

	PlaySFX(w.ECS, cfg.SoundJump)
	UpdateAudio(w.ECS)

	if n := len(GetOrCreateAudio(w.ECS).PendingSFX); n != 0 {
		t.Fatalf("%d cues left queued", n)
	}
}

func TestGetOrCreateAudioIsSingleton(t *testing.T) {
	w := newTestWorld(t)

	a := GetOrCreateAudio(w.ECS)
	b := GetOrCreateAudio(w.ECS)
	if a != b {
		t.Fatal("second call created another queue")
	}
	n := 0
	for range components.Audio.Iter(w.World) {
		n++
	}
	if n != 1 {
		t.Fatalf("%d audio entities, want 1", n)
	}
}

func TestFrameCuesReachPlayer(t *testing.T) {
	w := newTestWorld(t)
	cues := &recordingCues{}
	SetCuePlayer(cues)
	w.player(0, 0)

	w.press(cfg.ActionRoll)
	w.step(40)
	w.press(cfg.ActionJump)

	want := []cfg.SoundID{cfg.SoundSpin, cfg.SoundJump}
	if len(cues.played) != len(want) {
		t.Fatalf("played %v, want %v", cues.played, want)
	}
	for i := range want {
		if cues.played[i] != want[i] {
			t.Fatalf("played %v, want %v", cues.played, want)
		}
	}
}
