package config

// SoundID represents a logical sound event emitted by the match
type SoundID int

const (
	SoundNone SoundID = iota
	SoundAttackLightning
	SoundAttackFire
	SoundMatchStart // starts the background music loop
	SoundMatchEnd   // stops the background music
)

func (s SoundID) String() string {
	switch s {
	case SoundAttackLightning:
		return "attack-lightning"
	case SoundAttackFire:
		return "attack-fire"
	case SoundMatchStart:
		return "match-start"
	case SoundMatchEnd:
		return "match-end"
	default:
		return "none"
	}
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to file paths relative to the assets directory
type SoundConfig struct {
	Music             string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.75,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		Music: "suspence.mp3",
		SFXPaths: map[SoundID]string{
			SoundAttackLightning: "thunder.mp3",
			SoundAttackFire:      "fireball.mp3",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundAttackLightning: 1.2,
		},
	}
}
