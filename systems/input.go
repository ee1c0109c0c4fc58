package systems

import (
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateInput samples every fighter's actions from poller.
// Must run BEFORE UpdateFighterActions in the system order.
func NewUpdateInput(poller InputPoller) ecs.System {
	return func(e *ecs.ECS) {
		if _, _, ok := runningMatch(e); !ok {
			return
		}
		tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
			input := components.PlayerInput.Get(entry)
			input.Current = [cfg.ActionCount]bool{}
			for action := cfg.ActionNone + 1; action < cfg.ActionCount; action++ {
				input.Current[action] = poller.ActionPressed(input.Slot, action)
			}
		})
	}
}

// KeyboardPoller reads the fixed per-fighter key bindings.
type KeyboardPoller struct{}

// ActionPressed reports whether any key bound to action for slot is held.
func (KeyboardPoller) ActionPressed(slot int, action cfg.ActionID) bool {
	if slot < 0 || slot >= len(cfg.Input.Bindings) {
		return false
	}
	for _, key := range cfg.Input.Bindings[slot][action].Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// NoInput never reports a pressed action. Used by headless runs.
type NoInput struct{}

func (NoInput) ActionPressed(int, cfg.ActionID) bool { return false }
