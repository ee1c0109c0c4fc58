package render

import (
	"testing"
	"time"

	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/systems"
)

func TestControlsLine(t *testing.T) {
	tests := []struct {
		slot int
		name string
		want string
	}{
		{0, "Pikachu", "Pikachu: A/D move, SPACE attack, W shield"},
		{1, "Charmander", "Charmander: Left/Right move, ENTER attack, L shield"},
	}

	for _, tt := range tests {
		if got := ControlsLine(tt.name, tt.slot); got != tt.want {
			t.Errorf("slot %d: expected %q, got %q", tt.slot, tt.want, got)
		}
	}
}

func TestShieldStatus(t *testing.T) {
	tests := []struct {
		name string
		view systems.FighterView
		want string
	}{
		{"active", systems.FighterView{ShieldActive: true, ShieldCooldown: 2 * time.Second}, "Shield: ACTIVE"},
		{"cooling", systems.FighterView{ShieldCooldown: 1300 * time.Millisecond}, "Shield: Cooldown 1.3"},
		{"ready", systems.FighterView{}, "Shield: Ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := ShieldStatus(&tt.view)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestShakeFollowsHits(t *testing.T) {
	c := NewContext(nil, 1)
	snap := systems.Snapshot{}
	snap.Fighters[1] = systems.FighterView{Slot: 1, Hits: 1, LastDamage: 30}

	c.Update(snap, time.Second/60)
	if mag := c.ShakeMagnitude(1); mag <= 0 || mag > float32(cfg.Effects.MaxShake) {
		t.Fatalf("expected shake capped at %v, got %v", cfg.Effects.MaxShake, mag)
	}
	if c.ShakeMagnitude(0) != 0 {
		t.Error("untouched fighter is shaking")
	}

	for i := 0; i < 60; i++ {
		c.Update(snap, time.Second/60)
	}
	if c.ShakeMagnitude(1) != 0 {
		t.Errorf("shake did not settle, %v left", c.ShakeMagnitude(1))
	}
}

func TestFaintAnimationCompletes(t *testing.T) {
	c := NewContext(nil, 1)
	snap := systems.Snapshot{}
	snap.Fighters[0] = systems.FighterView{Fainted: true}

	c.Update(snap, time.Second/60)
	if p := c.FaintProgress(0); p <= 0 || p >= 1 {
		t.Fatalf("expected partial faint, got %v", p)
	}
	for i := 0; i < 60; i++ {
		c.Update(snap, time.Second/60)
	}
	if p := c.FaintProgress(0); p != 1 {
		t.Errorf("expected faint to finish at 1, got %v", p)
	}
}
