package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical fighter action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionAttack
	ActionShield
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds the fixed per-fighter key maps. Bindings are indexed by
// fighter slot (0 = first fighter).
type InputConfig struct {
	Bindings   [2]map[ActionID]InputBinding
	ToggleMute ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		ToggleMute: ebiten.KeyM,
		Bindings: [2]map[ActionID]InputBinding{
			{
				ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyA}},
				ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyD}},
				ActionAttack:    {Keys: []ebiten.Key{ebiten.KeySpace}},
				ActionShield:    {Keys: []ebiten.Key{ebiten.KeyW}},
			},
			{
				ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyLeft}},
				ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyRight}},
				ActionAttack:    {Keys: []ebiten.Key{ebiten.KeyEnter}},
				ActionShield:    {Keys: []ebiten.Key{ebiten.KeyL}},
			},
		},
	}
}
