package components

import (
	cfg "github.com/automoto/arena-duel/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound events raised during a tick (singleton component).
// The audio system drains the queue into the match's sink.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
