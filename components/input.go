package components

import (
	cfg "github.com/automoto/arena-duel/config"
	"github.com/yohamta/donburi"
)

// PlayerInputData stores the sampled action state for one fighter.
type PlayerInputData struct {
	Slot    int
	Current [cfg.ActionCount]bool // Current frame's Pressed state
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// Pressed reports whether action is held this frame
func (p *PlayerInputData) Pressed(action cfg.ActionID) bool {
	return p.Current[action]
}
