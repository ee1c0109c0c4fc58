package factory

import (
	"github.com/automoto/arena-duel/archetypes"
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the match singleton for the two fighters. The match
// starts running with an idle attack resolver and an empty sound queue.
func CreateMatch(ecs *ecs.ECS, first, second *donburi.Entry) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)

	components.Match.SetValue(match, components.MatchData{
		ID:       uuid.NewString(),
		State:    cfg.MatchStateRunning,
		Fighters: [2]*donburi.Entry{first, second},
		Winner:   components.NoWinner,
	})
	components.Attack.SetValue(match, components.AttackData{State: cfg.AttackIdle})
	components.Audio.SetValue(match, components.AudioData{
		PendingSFX: make([]cfg.SoundID, 0, 8),
	})

	return match
}
