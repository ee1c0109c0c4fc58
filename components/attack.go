package components

import (
	"time"

	cfg "github.com/automoto/arena-duel/config"
	"github.com/yohamta/donburi"
)

// AttackData is the single in-flight attack. There is at most one per
// match; while it is in progress new attacks are dropped.
type AttackData struct {
	State     cfg.AttackStateID
	Attacker  *donburi.Entry
	Defender  *donburi.Entry
	Damage    int
	StartedAt time.Duration
	Progress  float64
}

var Attack = donburi.NewComponentType[AttackData]()

// Idle reports whether a new attack may start.
func (a *AttackData) Idle() bool {
	return a.State == cfg.AttackIdle
}

// Begin starts an attack whose damage was already rolled. It returns false
// if another attack is still in flight.
func (a *AttackData) Begin(attacker, defender *donburi.Entry, damage int, now time.Duration) bool {
	if !a.Idle() {
		return false
	}
	*a = AttackData{
		State:     cfg.AttackInProgress,
		Attacker:  attacker,
		Defender:  defender,
		Damage:    damage,
		StartedAt: now,
	}
	return true
}

// Advance recomputes progress at time now and reports whether the attack
// has reached its target.
func (a *AttackData) Advance(now time.Duration) bool {
	if a.Idle() {
		return false
	}
	elapsed := now - a.StartedAt
	a.Progress = min(1, float64(elapsed)/float64(cfg.Attack.Resolution))
	if a.Progress < 0 {
		a.Progress = 0
	}
	return a.Progress >= 1
}

// Clear returns the resolver to idle.
func (a *AttackData) Clear() {
	*a = AttackData{State: cfg.AttackIdle}
}
