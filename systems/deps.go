package systems

import cfg "github.com/automoto/arena-duel/config"

// InputPoller reports whether a fighter's action is held this tick.
type InputPoller interface {
	ActionPressed(slot int, action cfg.ActionID) bool
}

// AudioSink plays sound events raised by the match. Close releases any
// players the sink still holds.
type AudioSink interface {
	Play(sound cfg.SoundID)
	Close() error
}
