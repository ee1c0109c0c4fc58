package config

// MatchStateID is the state of the match controller
type MatchStateID int

const (
	MatchStateRunning MatchStateID = iota
	MatchStateEnded
)

func (s MatchStateID) String() string {
	if s == MatchStateEnded {
		return "ended"
	}
	return "running"
}

// AttackStateID is the state of the attack resolver
type AttackStateID int

const (
	AttackIdle AttackStateID = iota
	AttackInProgress
)

// AttackType selects the visual and sound of a fighter's attack. Fixed at creation.
type AttackType string

const (
	AttackLightning AttackType = "lightning"
	AttackFire      AttackType = "fire"
)

// Sound returns the sound event emitted when an attack of this type starts.
func (a AttackType) Sound() SoundID {
	switch a {
	case AttackLightning:
		return SoundAttackLightning
	case AttackFire:
		return SoundAttackFire
	default:
		return SoundNone
	}
}

// Valid reports whether a is a known attack type.
func (a AttackType) Valid() bool {
	return a == AttackLightning || a == AttackFire
}
