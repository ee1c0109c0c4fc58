package scenes

import (
	"testing"

	"github.com/automoto/arena-duel/settings"
	"github.com/automoto/arena-duel/systems"
)

type memStore struct {
	data map[string][]byte
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	m.data[key] = data
	return nil
}

func TestStartSettingsMuteOverride(t *testing.T) {
	stored := settings.New(&memStore{data: map[string][]byte{}})

	tests := []struct {
		name  string
		opts  BattleOptions
		muted bool
	}{
		{"no store, no flag", BattleOptions{}, false},
		{"no store, flag", BattleOptions{Muted: true}, true},
		{"store, flag", BattleOptions{Settings: stored, Muted: true}, true},
		{"store, no flag", BattleOptions{Settings: stored}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.startSettings().Muted; got != tt.muted {
				t.Errorf("expected muted=%v, got %v", tt.muted, got)
			}
		})
	}
}

func TestMatchOptionsUseSeed(t *testing.T) {
	a := BattleOptions{Seed: 42}.matchOptions(systems.NopSink{})
	b := BattleOptions{Seed: 42}.matchOptions(systems.NopSink{})
	if a.Rand == nil || b.Rand == nil {
		t.Fatal("expected a seeded random source")
	}

	for i := 0; i < 20; i++ {
		if x, y := a.Rand.IntN(1000), b.Rand.IntN(1000); x != y {
			t.Fatalf("draw %d: same seed gave %d and %d", i, x, y)
		}
	}
}
