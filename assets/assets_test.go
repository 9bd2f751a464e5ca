package assets

import (
	"io/fs"
	"testing"
)

func TestLoadDefaultLevel(t *testing.T) {
	layout, err := LoadLevel("")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if layout.Name != DefaultLevel {
		t.Fatalf("name = %q, want %q", layout.Name, DefaultLevel)
	}
	if layout.Width != 40 || layout.Depth != 30 {
		t.Fatalf("size = %vx%v, want 40x30", layout.Width, layout.Depth)
	}
	if len(layout.Walls) != 9 {
		t.Fatalf("%d walls, want 9", len(layout.Walls))
	}
	if len(layout.Consumables) != 15 {
		t.Fatalf("%d consumables, want 15", len(layout.Consumables))
	}
	if !layout.HasSpawn || layout.PlayerSpawn.X != 0 || layout.PlayerSpawn.Z != 0 {
		t.Fatalf("spawn = %+v (has=%v), want origin", layout.PlayerSpawn, layout.HasSpawn)
	}
}

func TestLoadLevelUnknown(t *testing.T) {
	if _, err := LoadLevel("missing"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestLevelNames(t *testing.T) {
	names, err := LevelNames()
	if err != nil {
		t.Fatalf("LevelNames: %v", err)
	}
	found := false
	for _, n := range names {
		if n == DefaultLevel {
			found = true
		}
	}
	if !found {
		t.Fatalf("names = %v, missing %q", names, DefaultLevel)
	}
}

func TestEmbeddedSFXDecode(t *testing.T) {
	fsys := AudioFS()
	for _, path := range []string{"sfx/jump.wav", "sfx/spin.wav", "sfx/absorb.wav"} {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		pcm, err := decode(44100, path, data)
		if err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		// 16-bit stereo frames
		if len(pcm) == 0 || len(pcm)%4 != 0 {
			t.Fatalf("%s decoded to %d bytes", path, len(pcm))
		}
	}
}

func TestDecodeRejectsUnknownFormat(t *testing.T) {
	if _, err := decode(44100, "sfx/clip.mp3", []byte("data")); err == nil {
		t.Fatal("expected an error for .mp3")
	}
}
