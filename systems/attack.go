package systems

import (
	"fmt"

	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAttack advances the in-flight attack and resolves it on the tick its
// progress reaches 1. The defender's shield is checked at that moment only.
func UpdateAttack(e *ecs.ECS) {
	matchEntry, match, ok := runningMatch(e)
	if !ok {
		return
	}
	attack := components.Attack.Get(matchEntry)
	if !attack.Advance(match.Elapsed) {
		return
	}

	attacker := components.Fighter.Get(attack.Attacker)
	defender := components.Fighter.Get(attack.Defender)
	message := components.Message.Get(matchEntry)

	if defender.ShieldActive {
		message.Set(fmt.Sprintf("%s blocked the attack!", defender.Name), match.Elapsed, cfg.Match.MessageDuration)
	} else {
		defender.ApplyDamage(attack.Damage)
		message.Set(fmt.Sprintf("%s dealt %d damage!", attacker.Name, attack.Damage), match.Elapsed, cfg.Match.MessageDuration)
	}
	attack.Clear()
}
