// Package sound plays match sound events through ebiten's audio context.
package sound

import (
	"io/fs"
	"log"

	cfg "github.com/automoto/arena-duel/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Sink turns match sound events into playback. Missing or broken files are
// logged once and then ignored, so a match without assets is just silent.
type Sink struct {
	loader *Loader

	music     *audio.Player
	musicVol  float64
	sfxVol    float64
	muted     bool
	failed    map[string]bool
	sfxActive []*audio.Player
}

// NewSink creates a sink reading sound files from fsys.
func NewSink(ctx *audio.Context, fsys fs.FS) *Sink {
	return &Sink{
		loader:   NewLoader(ctx, fsys),
		musicVol: cfg.Audio.DefaultMusicVol,
		sfxVol:   cfg.Audio.DefaultSFXVol,
		failed:   map[string]bool{},
	}
}

// Preload decodes every sound effect up front to avoid a stall on first play.
func (s *Sink) Preload() {
	for _, path := range cfg.Sound.SFXPaths {
		if err := s.loader.PreloadSFX(path); err != nil {
			s.warn(path, err)
		}
	}
}

// Play handles one sound event.
func (s *Sink) Play(sound cfg.SoundID) {
	switch sound {
	case cfg.SoundMatchStart:
		s.startMusic()
	case cfg.SoundMatchEnd:
		s.stopMusic()
	default:
		s.playSFX(sound)
	}
}

// SetMuted silences or restores all playback
func (s *Sink) SetMuted(muted bool) {
	s.muted = muted
	if s.music != nil {
		s.music.SetVolume(s.effectiveMusicVolume())
	}
}

func (s *Sink) Muted() bool {
	return s.muted
}

// SetVolumes changes music and effect volume (0.0 - 1.0)
func (s *Sink) SetVolumes(music, sfx float64) {
	s.musicVol = clamp01(music)
	s.sfxVol = clamp01(sfx)
	if s.music != nil {
		s.music.SetVolume(s.effectiveMusicVolume())
	}
}

// Close stops the music and releases every player.
func (s *Sink) Close() error {
	s.stopMusic()
	for _, p := range s.sfxActive {
		_ = p.Close()
	}
	s.sfxActive = nil
	return nil
}

func (s *Sink) startMusic() {
	if s.music != nil {
		return
	}
	path := cfg.Sound.Music
	if s.failed[path] {
		return
	}
	player, err := s.loader.LoadMusic(path)
	if err != nil {
		s.warn(path, err)
		return
	}
	player.SetVolume(s.effectiveMusicVolume())
	player.Play()
	s.music = player
}

func (s *Sink) stopMusic() {
	if s.music == nil {
		return
	}
	_ = s.music.Close()
	s.music = nil
}

func (s *Sink) playSFX(sound cfg.SoundID) {
	if s.muted || s.sfxVol <= 0 {
		return
	}
	path, ok := cfg.Sound.SFXPaths[sound]
	if !ok || s.failed[path] {
		return
	}

	player, err := s.loader.LoadSFX(path)
	if err != nil {
		s.warn(path, err)
		return
	}

	volume := s.sfxVol
	if mult, ok := cfg.Sound.VolumeMultipliers[sound]; ok {
		volume = min(1, volume*mult)
	}
	player.SetVolume(volume)
	player.Play()
	s.track(player)
}

// track keeps a reference to playing effects and drops finished ones.
func (s *Sink) track(p *audio.Player) {
	active := s.sfxActive[:0]
	for _, old := range s.sfxActive {
		if old.IsPlaying() {
			active = append(active, old)
		} else {
			_ = old.Close()
		}
	}
	s.sfxActive = append(active, p)
}

func (s *Sink) warn(path string, err error) {
	s.failed[path] = true
	log.Printf("[audio] Warning: %v", err)
}

func (s *Sink) effectiveMusicVolume() float64 {
	if s.muted {
		return 0
	}
	return s.musicVol
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
