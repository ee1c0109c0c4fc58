package systems

import (
	"time"

	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/tags"
	"github.com/yohamta/donburi"
)

// FighterView is the read-only state of one fighter for drawing.
type FighterView struct {
	Slot           int
	Name           string
	AttackType     cfg.AttackType
	X, Y           float64
	Health         int
	MaxHealth      int
	Fainted        bool
	ShieldActive   bool
	ShieldCooldown time.Duration
	AttackCount    int
	Hits           int
	LastDamage     int
}

// AttackView is the in-flight attack interpolated between the two fighters'
// centres.
type AttackView struct {
	AttackerSlot int
	DefenderSlot int
	AttackType   cfg.AttackType
	AttackCount  int
	Damage       int
	Progress     float64
	FromX, FromY float64
	ToX, ToY     float64
	X, Y         float64
}

// HazardView is a live hazard's position.
type HazardView struct {
	X, Y  float64
	Phase float64
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	MatchID  string
	State    cfg.MatchStateID
	Winner   int
	Finished bool
	Frame    int
	Elapsed  time.Duration

	Fighters [2]FighterView
	Attack   *AttackView
	Hazards  []HazardView
	Message  string
}

// TakeSnapshot copies the renderable state out of the world.
func TakeSnapshot(w donburi.World) Snapshot {
	entry, ok := components.Match.First(w)
	if !ok {
		return Snapshot{Winner: components.NoWinner}
	}
	match := components.Match.Get(entry)

	snap := Snapshot{
		MatchID:  match.ID,
		State:    match.State,
		Winner:   match.Winner,
		Finished: match.Finished,
		Frame:    match.Frame,
		Elapsed:  match.Elapsed,
	}

	for slot, fe := range match.Fighters {
		snap.Fighters[slot] = viewFighter(components.Fighter.Get(fe))
	}

	if attack := components.Attack.Get(entry); !attack.Idle() {
		snap.Attack = viewAttack(attack)
	}

	tags.Hazard.Each(w, func(he *donburi.Entry) {
		h := components.Hazard.Get(he)
		snap.Hazards = append(snap.Hazards, HazardView{X: h.X, Y: h.Y, Phase: h.Phase})
	})

	if text, ok := components.Message.Get(entry).Visible(match.Elapsed); ok {
		snap.Message = text
	}

	return snap
}

func viewFighter(f *components.FighterData) FighterView {
	return FighterView{
		Slot:           f.Slot,
		Name:           f.Name,
		AttackType:     f.AttackType,
		X:              f.X,
		Y:              f.Y,
		Health:         f.Health,
		MaxHealth:      f.MaxHealth,
		Fainted:        f.Fainted,
		ShieldActive:   f.ShieldActive,
		ShieldCooldown: f.ShieldCooldown,
		AttackCount:    f.AttackCount,
		Hits:           f.Hits,
		LastDamage:     f.LastDamage,
	}
}

func viewAttack(a *components.AttackData) *AttackView {
	attacker := components.Fighter.Get(a.Attacker)
	defender := components.Fighter.Get(a.Defender)
	fromX, fromY := attacker.Center()
	toX, toY := defender.Center()

	return &AttackView{
		AttackerSlot: attacker.Slot,
		DefenderSlot: defender.Slot,
		AttackType:   attacker.AttackType,
		AttackCount:  attacker.AttackCount,
		Damage:       a.Damage,
		Progress:     a.Progress,
		FromX:        fromX,
		FromY:        fromY,
		ToX:          toX,
		ToY:          toY,
		X:            fromX + (toX-fromX)*a.Progress,
		Y:            fromY + (toY-fromY)*a.Progress,
	}
}
