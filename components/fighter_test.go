package components

import (
	"testing"
	"time"

	cfg "github.com/automoto/arena-duel/config"
)

type fixedRand int

func (r fixedRand) IntN(n int) int {
	if int(r) >= n {
		return n - 1
	}
	return int(r)
}

func (r fixedRand) Float64() float64 { return 0 }

func newTestFighter() FighterData {
	return NewFighter(0, "Test", cfg.AttackLightning, 50, cfg.Fighter.SpawnY)
}

func TestMoveClampsToArena(t *testing.T) {
	maxX := float64(cfg.Arena.Width) - cfg.Fighter.Width
	tests := []struct {
		name  string
		start float64
		dx    float64
		want  float64
	}{
		{"right", 50, 5, 55},
		{"left", 50, -5, 45},
		{"left edge", 2, -5, 0},
		{"right edge", maxX - 1, 5, maxX},
		{"zero", 10, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFighter()
			f.X = tt.start
			f.Move(tt.dx)
			if f.X != tt.want {
				t.Errorf("expected x=%v, got %v", tt.want, f.X)
			}
		})
	}
}

func TestFaintedFighterIgnoresRequests(t *testing.T) {
	f := newTestFighter()
	f.ApplyDamage(f.Health)
	if !f.Fainted {
		t.Fatal("expected fighter to faint at 0 health")
	}

	f.Move(5)
	if f.X != 50 {
		t.Errorf("fainted fighter moved to %v", f.X)
	}
	if _, ok := f.RequestAttack(fixedRand(0)); ok {
		t.Error("fainted fighter attacked")
	}
	if f.RequestShield() {
		t.Error("fainted fighter raised a shield")
	}
}

func TestRequestAttackDamageRange(t *testing.T) {
	tests := []struct {
		roll int
		want int
	}{
		{0, 20},
		{10, 30},
		{20, 40},
		{99, 40}, // clamped by the fake to n-1
	}

	for _, tt := range tests {
		f := newTestFighter()
		dmg, ok := f.RequestAttack(fixedRand(tt.roll))
		if !ok {
			t.Fatalf("roll %d: attack refused", tt.roll)
		}
		if dmg != tt.want {
			t.Errorf("roll %d: expected %d damage, got %d", tt.roll, tt.want, dmg)
		}
		if f.AttackCount != 1 {
			t.Errorf("expected attack count 1, got %d", f.AttackCount)
		}
	}
}

func TestAttackCooldown(t *testing.T) {
	f := newTestFighter()
	if _, ok := f.RequestAttack(fixedRand(0)); !ok {
		t.Fatal("first attack refused")
	}

	f.Tick(1999 * time.Millisecond)
	if _, ok := f.RequestAttack(fixedRand(0)); ok {
		t.Error("attack allowed before cooldown elapsed")
	}

	f.Tick(time.Millisecond)
	if _, ok := f.RequestAttack(fixedRand(0)); !ok {
		t.Error("attack refused after 2s")
	}
	if f.AttackCount != 2 {
		t.Errorf("expected 2 attacks, got %d", f.AttackCount)
	}
}

func TestShieldLifecycle(t *testing.T) {
	f := newTestFighter()
	if !f.RequestShield() {
		t.Fatal("shield refused")
	}
	if !f.ShieldActive || f.ShieldTime != cfg.Shield.Duration {
		t.Fatalf("unexpected shield state: active=%v time=%v", f.ShieldActive, f.ShieldTime)
	}

	// Already active
	if f.RequestShield() {
		t.Error("second shield accepted while active")
	}

	f.Tick(199 * time.Millisecond)
	if !f.ShieldActive {
		t.Error("shield dropped before 0.2s")
	}
	f.Tick(time.Millisecond)
	if f.ShieldActive {
		t.Error("shield still active after 0.2s")
	}

	// Cooling down
	if f.RequestShield() {
		t.Error("shield accepted during cooldown")
	}
	f.Tick(1800 * time.Millisecond)
	if f.ShieldCooldown != 0 {
		t.Fatalf("expected cooldown to be spent, got %v", f.ShieldCooldown)
	}
	if !f.RequestShield() {
		t.Error("shield refused after cooldown")
	}
}

func TestTickZeroChangesNothing(t *testing.T) {
	f := newTestFighter()
	f.RequestAttack(fixedRand(3))
	f.RequestShield()
	before := f

	f.Tick(0)
	if f != before {
		t.Errorf("Tick(0) changed state:\nbefore %+v\nafter  %+v", before, f)
	}
}

func TestTimersFloorAtZero(t *testing.T) {
	f := newTestFighter()
	f.RequestAttack(fixedRand(0))
	f.RequestShield()
	f.Tick(time.Hour)

	if f.AttackCooldown != 0 || f.ShieldCooldown != 0 || f.ShieldTime != 0 {
		t.Errorf("timers went past zero: %+v", f)
	}
	if f.ShieldActive {
		t.Error("shield still active")
	}
}

func TestTimersDecayAfterFainting(t *testing.T) {
	f := newTestFighter()
	f.RequestAttack(fixedRand(0))
	f.ApplyDamage(1000)
	f.Tick(time.Second)
	if f.AttackCooldown != time.Second {
		t.Errorf("expected cooldown to keep decaying, got %v", f.AttackCooldown)
	}
}

func TestApplyDamage(t *testing.T) {
	tests := []struct {
		name        string
		health      int
		amount      int
		wantHealth  int
		wantApplied int
		wantFainted bool
	}{
		{"partial", 100, 30, 70, 30, false},
		{"exact", 30, 30, 0, 30, true},
		{"overkill", 10, 40, 0, 10, true},
		{"zero", 50, 0, 50, 0, false},
		{"negative", 50, -10, 50, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFighter()
			f.Health = tt.health
			applied := f.ApplyDamage(tt.amount)
			if f.Health != tt.wantHealth {
				t.Errorf("expected health %d, got %d", tt.wantHealth, f.Health)
			}
			if applied != tt.wantApplied {
				t.Errorf("expected %d applied, got %d", tt.wantApplied, applied)
			}
			if f.Fainted != tt.wantFainted {
				t.Errorf("expected fainted=%v, got %v", tt.wantFainted, f.Fainted)
			}
			if f.Health < 0 || f.Health > f.MaxHealth {
				t.Errorf("health %d outside [0, %d]", f.Health, f.MaxHealth)
			}
		})
	}
}
