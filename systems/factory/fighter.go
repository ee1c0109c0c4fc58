package factory

import (
	"github.com/automoto/arena-duel/archetypes"
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns the fighter for slot from its roster entry and
// registers its body in the collision space.
func CreateFighter(ecs *ecs.ECS, space *resolv.Space, slot int, spec cfg.FighterSpec) *donburi.Entry {
	fighter := archetypes.Fighter.Spawn(ecs)

	data := components.NewFighter(slot, spec.Name, spec.Attack, spec.X, cfg.Fighter.SpawnY)
	components.Fighter.SetValue(fighter, data)
	components.PlayerInput.SetValue(fighter, components.PlayerInputData{Slot: slot})

	obj := resolv.NewObject(data.X, data.Y, cfg.Fighter.Width, cfg.Fighter.Height, tags.ResolvFighter)
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})
	space.Add(obj)

	return fighter
}
