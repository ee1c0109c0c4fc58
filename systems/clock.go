package systems

import (
	"github.com/automoto/arena-duel/clock"
	"github.com/automoto/arena-duel/components"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateClock samples the tick delta. It must run first so every later
// system sees the same delta, including during the end-of-match hold.
func NewUpdateClock(c clock.Clock) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := GetMatch(e)
		if !ok {
			return
		}
		components.Match.Get(entry).Delta = c.Delta()
	}
}

// UpdateElapsed advances match time by the tick delta. Input for a tick is
// applied at the time reached by the previous tick, so this runs after the
// fighters' timers have been ticked and before the attack resolver.
func UpdateElapsed(e *ecs.ECS) {
	_, match, ok := runningMatch(e)
	if !ok {
		return
	}
	match.Elapsed += match.Delta
	match.Frame++
}
