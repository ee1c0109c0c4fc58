package components

import (
	"time"

	cfg "github.com/automoto/arena-duel/config"
	"github.com/yohamta/donburi"
)

// Rand is the random source for damage rolls and hazard parameters.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// FighterData is one combatant. Health stays within [0, MaxHealth] and
// Fainted is true exactly when Health is 0. All timers are non-negative.
type FighterData struct {
	Slot       int
	Name       string
	AttackType cfg.AttackType

	Health    int
	MaxHealth int
	Fainted   bool

	// Top-left corner of the bounding box
	X, Y float64

	AttackCooldown time.Duration
	ShieldActive   bool
	ShieldTime     time.Duration
	ShieldCooldown time.Duration

	// Cosmetic counters read by the renderer
	AttackCount int
	Hits        int
	LastDamage  int
}

var Fighter = donburi.NewComponentType[FighterData]()

// NewFighter returns a fighter at full health standing at (x, y).
func NewFighter(slot int, name string, attack cfg.AttackType, x, y float64) FighterData {
	return FighterData{
		Slot:       slot,
		Name:       name,
		AttackType: attack,
		Health:     cfg.Fighter.MaxHealth,
		MaxHealth:  cfg.Fighter.MaxHealth,
		X:          x,
		Y:          y,
	}
}

// Move shifts the fighter horizontally, keeping it inside the arena.
func (f *FighterData) Move(dx float64) {
	if f.Fainted {
		return
	}
	maxX := float64(cfg.Arena.Width) - cfg.Fighter.Width
	f.X = min(max(f.X+dx, 0), maxX)
}

// RequestAttack rolls damage for a new attack and starts the cooldown.
// It returns false without side effects when the fighter is fainted or
// still cooling down.
func (f *FighterData) RequestAttack(rng Rand) (int, bool) {
	if f.Fainted || f.AttackCooldown > 0 {
		return 0, false
	}
	f.AttackCooldown = cfg.Attack.Cooldown
	f.AttackCount++
	return cfg.Attack.MinDamage + rng.IntN(cfg.Attack.MaxDamage-cfg.Attack.MinDamage+1), true
}

// RequestShield raises the shield. It is a no-op while fainted, while the
// shield is already up, or while the shield cooldown is running.
func (f *FighterData) RequestShield() bool {
	if f.Fainted || f.ShieldActive || f.ShieldCooldown > 0 {
		return false
	}
	f.ShieldActive = true
	f.ShieldTime = cfg.Shield.Duration
	f.ShieldCooldown = cfg.Shield.Cooldown
	return true
}

// Tick decays all timers by dt. Timers keep running after the fighter faints.
func (f *FighterData) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	f.AttackCooldown = decay(f.AttackCooldown, dt)
	f.ShieldCooldown = decay(f.ShieldCooldown, dt)
	if f.ShieldActive {
		f.ShieldTime = decay(f.ShieldTime, dt)
		if f.ShieldTime == 0 {
			f.ShieldActive = false
		}
	}
}

// ApplyDamage is the only place health goes down. It returns the amount
// actually removed.
func (f *FighterData) ApplyDamage(amount int) int {
	if amount <= 0 || f.Fainted {
		return 0
	}
	applied := min(amount, f.Health)
	f.Health -= applied
	f.Hits++
	f.LastDamage = amount
	if f.Health == 0 {
		f.Fainted = true
	}
	return applied
}

// Alive reports whether the fighter can still act.
func (f *FighterData) Alive() bool {
	return !f.Fainted
}

// Bounds returns the fighter's bounding box as x, y, w, h.
func (f *FighterData) Bounds() (float64, float64, float64, float64) {
	return f.X, f.Y, cfg.Fighter.Width, cfg.Fighter.Height
}

// Center returns the midpoint of the bounding box.
func (f *FighterData) Center() (float64, float64) {
	return f.X + cfg.Fighter.Width/2, f.Y + cfg.Fighter.Height/2
}

func decay(v, dt time.Duration) time.Duration {
	if v <= dt {
		return 0
	}
	return v - dt
}
