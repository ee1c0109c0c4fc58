package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the arena.
const Default ecs.LayerID = 0

// ArenaConfig describes the playfield
type ArenaConfig struct {
	Width          int
	Height         int
	PlatformHeight int
	TickRate       int // updates per second

	// Collision grid cell size for the resolv space
	CellSize int
}

// FighterConfig contains fighter values shared by both combatants
type FighterConfig struct {
	Width     float64
	Height    float64
	MaxHealth int
	MoveSpeed float64 // pixels per tick
	SpawnY    float64
}

// AttackConfig contains attack timing and damage values
type AttackConfig struct {
	Cooldown   time.Duration
	MinDamage  int
	MaxDamage  int // inclusive
	Resolution time.Duration
}

// ShieldConfig contains shield timing values
type ShieldConfig struct {
	Duration time.Duration
	Cooldown time.Duration
}

// HazardConfig contains falling hazard values. Motion is per tick.
type HazardConfig struct {
	Width               float64
	Height              float64
	SpawnIntervalFrames int
	MinSpeed            float64
	MaxSpeed            float64
	MinWobbleSpeed      float64
	MaxWobbleSpeed      float64
	MinWobbleDist       float64
	MaxWobbleDist       float64
	ContactDamage       int
}

// MatchConfig contains end of match handling
type MatchConfig struct {
	EndHold         time.Duration // final frame is held this long before the match finishes
	MessageDuration time.Duration
}

// UIConfig contains HUD layout values
type UIConfig struct {
	HealthBarWidth  float32
	HealthBarHeight float32
	HealthBarMargin float32
	ShieldStatusY   float32
	MessageOffsetY  float32 // above the platform
	ControlsY       float32 // from the bottom of the screen
	ControlsSpacing float32

	BackgroundColor color.RGBA
	PlatformColor   color.RGBA
	TextColor       color.RGBA
	HealthColor     color.RGBA
	HealthLostColor color.RGBA
	ShieldColor     color.RGBA
	HazardColor     color.RGBA
	HazardGlow      color.RGBA
}

// EffectsConfig contains cosmetic values used only by the renderer
type EffectsConfig struct {
	AuraBaseSize    float64
	AuraGrowth      float64 // per attack
	AuraMaxSize     float64
	MaxShake        float64
	ShakeDecay      time.Duration // time for a full shake to settle
	FaintDuration   time.Duration
	ShieldRingWidth float32
}

var Arena ArenaConfig
var Fighter FighterConfig
var Attack AttackConfig
var Shield ShieldConfig
var Hazard HazardConfig
var Match MatchConfig
var UI UIConfig
var Effects EffectsConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	Brown  = color.RGBA{R: 165, G: 42, B: 42, A: 255}
	Cyan   = color.RGBA{R: 0, G: 255, B: 255, A: 200}
	Sky    = color.RGBA{R: 150, G: 200, B: 255, A: 255}
)

func init() {
	Arena = ArenaConfig{
		Width:          800,
		Height:         600,
		PlatformHeight: 100,
		TickRate:       60,
		CellSize:       20,
	}

	Fighter = FighterConfig{
		Width:     100,
		Height:    100,
		MaxHealth: 100,
		MoveSpeed: 5,
		SpawnY:    400,
	}

	Attack = AttackConfig{
		Cooldown:   2 * time.Second,
		MinDamage:  20,
		MaxDamage:  40,
		Resolution: 500 * time.Millisecond,
	}

	Shield = ShieldConfig{
		Duration: 200 * time.Millisecond,
		Cooldown: 2 * time.Second,
	}

	Hazard = HazardConfig{
		Width:               60,
		Height:              60,
		SpawnIntervalFrames: 120, // 2 seconds at 60 ticks
		MinSpeed:            1,
		MaxSpeed:            3,
		MinWobbleSpeed:      0.05,
		MaxWobbleSpeed:      0.1,
		MinWobbleDist:       5,
		MaxWobbleDist:       15,
		ContactDamage:       10,
	}

	Match = MatchConfig{
		EndHold:         3 * time.Second,
		MessageDuration: 2 * time.Second,
	}

	UI = UIConfig{
		HealthBarWidth:  200,
		HealthBarHeight: 20,
		HealthBarMargin: 10,
		ShieldStatusY:   60,
		MessageOffsetY:  50,
		ControlsY:       50,
		ControlsSpacing: 25,

		BackgroundColor: Sky,
		PlatformColor:   Brown,
		TextColor:       Black,
		HealthColor:     Green,
		HealthLostColor: Red,
		ShieldColor:     Cyan,
		HazardColor:     color.RGBA{R: 120, G: 220, B: 120, A: 255},
		HazardGlow:      color.RGBA{R: 0, G: 255, B: 0, A: 64},
	}

	Effects = EffectsConfig{
		AuraBaseSize:    20,
		AuraGrowth:      2,
		AuraMaxSize:     50,
		MaxShake:        15,
		ShakeDecay:      250 * time.Millisecond, // 15 frames
		FaintDuration:   333 * time.Millisecond, // 20 frames
		ShieldRingWidth: 5,
	}
}

// PlatformTop returns the y coordinate of the platform surface.
func PlatformTop() float64 {
	return float64(Arena.Height - Arena.PlatformHeight)
}
