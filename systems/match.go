package systems

import (
	"fmt"
	"log"

	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch runs the terminal check and the end-of-match hold.
func UpdateMatch(e *ecs.ECS) {
	matchEntry, ok := GetMatch(e)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)

	switch match.State {
	case cfg.MatchStateRunning:
		checkTerminal(matchEntry, match)

	case cfg.MatchStateEnded:
		if match.Finished {
			return
		}
		match.HoldTimer -= match.Delta
		if match.HoldTimer > 0 {
			return
		}
		match.HoldTimer = 0
		match.Finished = true
		PlaySFX(e, cfg.SoundMatchEnd)
		log.Printf("[match] %s finished", match.ID)
	}
}

func checkTerminal(matchEntry *donburi.Entry, match *components.MatchData) {
	first, second := fighterAt(match, 0), fighterAt(match, 1)
	if first.Alive() && second.Alive() {
		return
	}

	for _, f := range []*components.FighterData{first, second} {
		if f.Fainted {
			log.Printf("[match] %s: %s fainted", match.ID, f.Name)
		}
	}

	// Slot 1 takes a double faint on the same tick.
	winner := 1
	if first.Alive() {
		winner = 0
	}
	match.End(winner)

	name := fighterAt(match, winner).Name
	components.Message.Get(matchEntry).Set(fmt.Sprintf("%s wins!", name), match.Elapsed, cfg.Match.MessageDuration)
	log.Printf("[match] %s ended at %v (frame %d): %s wins, health %d-%d",
		match.ID, match.Elapsed, match.Frame, name, first.Health, second.Health)
}

// IsMatchFinished returns true once the end-of-match hold has elapsed
func IsMatchFinished(e *ecs.ECS) bool {
	matchEntry, ok := GetMatch(e)
	if !ok {
		return false
	}
	match := components.Match.Get(matchEntry)
	return match.State == cfg.MatchStateEnded && match.Finished
}
