package systems

import (
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateFighterActions turns sampled input into fighter requests. Moves
// for both fighters go first, then attacks in slot order, then shields.
// An attack pressed while another is in flight is dropped before the
// attacker's cooldown is touched.
func NewUpdateFighterActions(rng components.Rand) ecs.System {
	return func(e *ecs.ECS) {
		matchEntry, match, ok := runningMatch(e)
		if !ok {
			return
		}
		attack := components.Attack.Get(matchEntry)

		for _, entry := range match.Fighters {
			input := components.PlayerInput.Get(entry)
			fighter := components.Fighter.Get(entry)
			if input.Pressed(cfg.ActionMoveLeft) {
				fighter.Move(-cfg.Fighter.MoveSpeed)
			}
			if input.Pressed(cfg.ActionMoveRight) {
				fighter.Move(cfg.Fighter.MoveSpeed)
			}
		}

		for slot, entry := range match.Fighters {
			if !components.PlayerInput.Get(entry).Pressed(cfg.ActionAttack) {
				continue
			}
			startAttack(e, match, attack, entry, match.Fighters[components.Opponent(slot)], rng)
		}

		for _, entry := range match.Fighters {
			if components.PlayerInput.Get(entry).Pressed(cfg.ActionShield) {
				components.Fighter.Get(entry).RequestShield()
			}
		}
	}
}

func startAttack(e *ecs.ECS, match *components.MatchData, attack *components.AttackData, attacker, defender *donburi.Entry, rng components.Rand) {
	if !attack.Idle() {
		return
	}
	fighter := components.Fighter.Get(attacker)
	damage, ok := fighter.RequestAttack(rng)
	if !ok {
		return
	}
	attack.Begin(attacker, defender, damage, match.Elapsed)
	PlaySFX(e, fighter.AttackType.Sound())
}

// UpdateFighters decays every fighter's timers by the tick delta.
func UpdateFighters(e *ecs.ECS) {
	_, match, ok := runningMatch(e)
	if !ok {
		return
	}
	for _, entry := range match.Fighters {
		components.Fighter.Get(entry).Tick(match.Delta)
	}
}
