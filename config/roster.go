package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var rosterYAML []byte

// FighterSpec describes one combatant before the match starts
type FighterSpec struct {
	Name   string     `yaml:"name"`
	Attack AttackType `yaml:"attack"`
	X      float64    `yaml:"x"`
	Aura   RGB        `yaml:"aura"`
	Body   RGB        `yaml:"body"`
	Sprite string     `yaml:"sprite"`
}

// RGB is an opaque colour written as a three element list in YAML
type RGB [3]uint8

// RGBA returns c with the given alpha.
func (c RGB) RGBA(a uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: a}
}

// RosterConfig lists the two fighters in slot order
type RosterConfig struct {
	Fighters []FighterSpec `yaml:"fighters"`
}

// Roster is the built-in fighter roster
var Roster RosterConfig

var errRosterSize = errors.New("roster must list exactly two fighters")

func init() {
	r, err := ParseRoster(rosterYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded roster: %v", err))
	}
	Roster = r
}

// ParseRoster decodes and validates a roster document.
func ParseRoster(data []byte) (RosterConfig, error) {
	var r RosterConfig
	if err := yaml.Unmarshal(data, &r); err != nil {
		return RosterConfig{}, fmt.Errorf("parse roster: %w", err)
	}
	if len(r.Fighters) != 2 {
		return RosterConfig{}, errRosterSize
	}
	for i, f := range r.Fighters {
		if f.Name == "" {
			return RosterConfig{}, fmt.Errorf("fighter %d: missing name", i)
		}
		if !f.Attack.Valid() {
			return RosterConfig{}, fmt.Errorf("fighter %s: unknown attack type %q", f.Name, f.Attack)
		}
		if f.X < 0 || f.X > float64(Arena.Width)-Fighter.Width {
			return RosterConfig{}, fmt.Errorf("fighter %s: x %.0f outside arena", f.Name, f.X)
		}
	}
	return r, nil
}
