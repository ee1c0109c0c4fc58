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

// CreatePlatform adds the floor strip along the bottom of the arena.
func CreatePlatform(ecs *ecs.ECS, space *resolv.Space) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(0, cfg.PlatformTop(), float64(cfg.Arena.Width), float64(cfg.Arena.PlatformHeight), tags.ResolvPlatform)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	space.Add(obj)

	return platform
}
