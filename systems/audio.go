package systems

import (
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateAudio drains the sound queue into sink. It keeps running after
// the match ends so the end-of-match event is delivered.
func NewUpdateAudio(sink AudioSink) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Audio.First(e.World)
		if !ok {
			return
		}
		audioData := components.Audio.Get(entry)
		for _, soundID := range audioData.PendingSFX {
			sink.Play(soundID)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

// PlaySFX queues a sound event to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	if sound == cfg.SoundNone {
		return
	}
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// NopSink discards every sound event.
type NopSink struct{}

func (NopSink) Play(cfg.SoundID) {}
func (NopSink) Close() error     { return nil }
