package factory

import (
	"math"

	"github.com/automoto/arena-duel/archetypes"
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func uniform(rng components.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// RollHazard picks a spawn position along the top edge and random motion
// parameters for a new hazard.
func RollHazard(rng components.Rand) components.HazardData {
	maxX := cfg.Arena.Width - int(cfg.Hazard.Width)
	return components.HazardData{
		X:           float64(rng.IntN(maxX + 1)),
		Y:           -cfg.Hazard.Height,
		Speed:       uniform(rng, cfg.Hazard.MinSpeed, cfg.Hazard.MaxSpeed),
		WobbleSpeed: uniform(rng, cfg.Hazard.MinWobbleSpeed, cfg.Hazard.MaxWobbleSpeed),
		WobbleDist:  uniform(rng, cfg.Hazard.MinWobbleDist, cfg.Hazard.MaxWobbleDist),
		Phase:       uniform(rng, 0, 2*math.Pi),
	}
}

// CreateHazard spawns a hazard with the given state and adds its body to the space.
func CreateHazard(ecs *ecs.ECS, space *resolv.Space, data components.HazardData) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)
	components.Hazard.SetValue(hazard, data)

	obj := resolv.NewObject(data.X, data.Y, cfg.Hazard.Width, cfg.Hazard.Height, tags.ResolvHazard)
	obj.Data = hazard
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})
	space.Add(obj)

	return hazard
}
