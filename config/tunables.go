package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/quasilyte/gdata"
	"gopkg.in/yaml.v3"
)

// Tunables groups the gameplay values that can be overridden from YAML.
type Tunables struct {
	Player  PlayerConfig `yaml:"player"`
	Actions ActionConfig `yaml:"actions"`
	Growth  GrowthConfig `yaml:"growth"`
	Camera  CameraConfig `yaml:"camera"`
}

// CurrentTunables snapshots the active gameplay configuration.
func CurrentTunables() Tunables {
	return Tunables{
		Player:  Player,
		Actions: Actions,
		Growth:  Growth,
		Camera:  Camera,
	}
}

// ApplyTunables installs t as the active configuration and clamps it.
func ApplyTunables(t Tunables) {
	Player = t.Player
	Actions = t.Actions
	Growth = t.Growth
	Camera = t.Camera
	Sanitize()
}

// LoadTunables decodes a YAML override document on top of the active
// configuration. Keys missing from the document keep their current values.
func LoadTunables(r io.Reader) (Tunables, error) {
	t := CurrentTunables()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		return t, fmt.Errorf("decode tunables: %w", err)
	}
	return t, nil
}

// MarshalTunables encodes t as YAML.
func MarshalTunables(t Tunables) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return nil, fmt.Errorf("encode tunables: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode tunables: %w", err)
	}
	return buf.Bytes(), nil
}

const tunablesItemKey = "tunables"

// TunablesStore keeps a tunables override document in the user data dir.
type TunablesStore struct {
	m *gdata.Manager
}

// OpenTunablesStore opens the per-user store for appName.
func OpenTunablesStore(appName string) (*TunablesStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open tunables store: %w", err)
	}
	return &TunablesStore{m: m}, nil
}

// Load returns the stored overrides applied on top of the active
// configuration. ok is false when nothing has been saved yet.
func (s *TunablesStore) Load() (t Tunables, ok bool, err error) {
	data, err := s.m.LoadItem(tunablesItemKey)
	if err != nil {
		return CurrentTunables(), false, fmt.Errorf("load tunables item: %w", err)
	}
	if data == nil {
		return CurrentTunables(), false, nil
	}
	t, err = LoadTunables(bytes.NewReader(data))
	if err != nil {
		return t, false, err
	}
	return t, true, nil
}

// Save writes t to the store.
func (s *TunablesStore) Save(t Tunables) error {
	data, err := MarshalTunables(t)
	if err != nil {
		return err
	}
	if err := s.m.SaveItem(tunablesItemKey, data); err != nil {
		return fmt.Errorf("save tunables item: %w", err)
	}
	return nil
}
