package systems

import (
	"github.com/automoto/arena-duel/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetMatch returns the match singleton entry.
func GetMatch(e *ecs.ECS) (*donburi.Entry, bool) {
	return components.Match.First(e.World)
}

// runningMatch returns the match data only while the simulation is live.
func runningMatch(e *ecs.ECS) (*donburi.Entry, *components.MatchData, bool) {
	entry, ok := GetMatch(e)
	if !ok {
		return nil, nil, false
	}
	match := components.Match.Get(entry)
	if !match.Running() {
		return nil, nil, false
	}
	return entry, match, true
}

// fighterAt returns the fighter data for a slot of the match.
func fighterAt(match *components.MatchData, slot int) *components.FighterData {
	return components.Fighter.Get(match.Fighters[slot])
}
