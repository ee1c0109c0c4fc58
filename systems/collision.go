package systems

import (
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const broadphasePad = 1.0

// UpdateCollisions damages living fighters touching a hazard. The resolv
// space narrows the candidates and a strict box overlap decides contact,
// so hazards that only share an edge with a fighter are left alone. Each
// hazard that hits is consumed in the same tick.
func UpdateCollisions(e *ecs.ECS) {
	_, match, ok := runningMatch(e)
	if !ok {
		return
	}

	for _, entry := range match.Fighters {
		fighter := components.Fighter.Get(entry)
		if !fighter.Alive() {
			continue
		}

		// resolv maps a body to cells through its last whole pixel, so a
		// hazard reaching less than a pixel past a cell line is registered
		// one cell short. Grow the fighter's broadphase body to cover it.
		x, y, w, h := fighter.Bounds()
		obj := components.Object.Get(entry)
		obj.X, obj.Y = x-broadphasePad, y-broadphasePad
		obj.W, obj.H = w+2*broadphasePad, h+2*broadphasePad
		obj.Update()

		check := obj.Check(0, 0, tags.ResolvHazard)
		if check == nil {
			continue
		}

		for _, hazardObj := range check.ObjectsByTags(tags.ResolvHazard) {
			hazardEntry := hazardEntryOf(hazardObj)
			if hazardEntry == nil {
				continue
			}
			if !components.Hazard.Get(hazardEntry).Overlaps(x, y, w, h) {
				continue
			}
			fighter.ApplyDamage(cfg.Hazard.ContactDamage)
			removeHazard(e, hazardEntry)
		}
	}
}

func hazardEntryOf(obj *resolv.Object) *donburi.Entry {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.Hazard) {
		return nil
	}
	return entry
}

func getSpace(e *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry).Space
}
