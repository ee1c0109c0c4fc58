package systems

import (
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/systems/factory"
	"github.com/automoto/arena-duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateSpawner drops a new hazard every SpawnIntervalFrames ticks.
// The cadence is counted in ticks, not time.
func NewUpdateSpawner(rng components.Rand) ecs.System {
	return func(e *ecs.ECS) {
		matchEntry, _, ok := runningMatch(e)
		if !ok {
			return
		}
		spawner := components.Spawner.Get(matchEntry)
		spawner.Frames++
		if spawner.Frames < cfg.Hazard.SpawnIntervalFrames {
			return
		}
		spawner.Frames = 0
		spawner.Spawned++
		factory.CreateHazard(e, getSpace(e), factory.RollHazard(rng))
	}
}

// UpdateHazards moves every hazard one tick and removes those that fell
// out of the arena.
func UpdateHazards(e *ecs.ECS) {
	if _, _, ok := runningMatch(e); !ok {
		return
	}

	var gone []*donburi.Entry
	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		hazard := components.Hazard.Get(entry)
		hazard.Step()

		obj := components.Object.Get(entry)
		obj.X, obj.Y = hazard.X, hazard.Y
		obj.Update()

		if hazard.Gone() {
			gone = append(gone, entry)
		}
	})

	for _, entry := range gone {
		removeHazard(e, entry)
	}
}

func removeHazard(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	obj := components.Object.Get(entry)
	if space := getSpace(e); space != nil && obj.Object != nil {
		space.Remove(obj.Object)
	}
	e.World.Remove(entry.Entity())
}

// CountHazards returns the number of live hazards.
func CountHazards(e *ecs.ECS) int {
	n := 0
	tags.Hazard.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
