// Package settings persists the player's audio preferences between runs.
package settings

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/arena-duel/config"
	"github.com/quasilyte/gdata"
)

// Saved represents the settings data stored on disk
type Saved struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
}

// Defaults returns the settings used when nothing has been saved yet.
func Defaults() Saved {
	return Saved{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
	}
}

// Store is the subset of *gdata.Manager the settings need.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Manager loads and saves settings. A nil *Manager is valid and behaves
// as if nothing was ever saved.
type Manager struct {
	store Store
}

// Open initializes the gdata store for this app.
func Open() (*Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return New(m), nil
}

func New(store Store) *Manager {
	return &Manager{store: store}
}

// Load returns the saved settings, or defaults if none exist.
func (m *Manager) Load() (Saved, error) {
	if m == nil || m.store == nil {
		return Defaults(), nil
	}

	data, err := m.store.LoadItem(cfg.Settings.ItemKey)
	if err != nil {
		return Defaults(), fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return Defaults(), nil
	}

	s := Defaults()
	if err := json.Unmarshal(data, &s); err != nil {
		return Defaults(), fmt.Errorf("parse settings: %w", err)
	}
	return s, nil
}

// Save writes s to the store.
func (m *Manager) Save(s Saved) error {
	if m == nil || m.store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := m.store.SaveItem(cfg.Settings.ItemKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// LoadOrDefault loads settings and logs instead of failing.
func (m *Manager) LoadOrDefault() Saved {
	s, err := m.Load()
	if err != nil {
		log.Printf("[settings] Warning: %v", err)
	}
	return s
}
