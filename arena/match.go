// Package arena wires the match simulation together: it builds the world,
// registers the systems in their fixed order and exposes a small controller
// that a window or a headless loop can drive one tick at a time.
package arena

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/automoto/arena-duel/clock"
	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/systems"
	"github.com/automoto/arena-duel/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrRoster = errors.New("arena: roster must have exactly two fighters")

// Options configures a match. Zero fields fall back to defaults: a fixed
// 60 Hz clock, a time-seeded random source, no input, silent audio and the
// built-in roster.
type Options struct {
	Clock  clock.Clock
	Rand   components.Rand
	Input  systems.InputPoller
	Audio  systems.AudioSink
	Roster *cfg.RosterConfig
}

// NewRand returns the random source for a match. Matches built from the
// same seed and input play out identically.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed>>1))
}

// Match owns one battle from construction until Close.
type Match struct {
	ecs   *ecs.ECS
	entry *donburi.Entry
	space *resolv.Space
	audio systems.AudioSink

	drainAudio ecs.System
	closeOnce  sync.Once
	closeErr   error
}

// New builds a running match and emits the match start sound.
func New(opts Options) (*Match, error) {
	roster := cfg.Roster
	if opts.Roster != nil {
		roster = *opts.Roster
	}
	if len(roster.Fighters) != 2 {
		return nil, ErrRoster
	}
	if opts.Clock == nil {
		opts.Clock = clock.PerSecond(cfg.Arena.TickRate)
	}
	if opts.Rand == nil {
		opts.Rand = NewRand(uint64(time.Now().UnixNano()))
	}
	if opts.Input == nil {
		opts.Input = systems.NoInput{}
	}
	if opts.Audio == nil {
		opts.Audio = systems.NopSink{}
	}

	e := ecs.NewECS(donburi.NewWorld())

	spaceEntry := factory.CreateSpace(e, cfg.Arena.Width, cfg.Arena.Height, cfg.Arena.CellSize, cfg.Arena.CellSize)
	space := components.Space.Get(spaceEntry).Space
	factory.CreatePlatform(e, space)

	first := factory.CreateFighter(e, space, 0, roster.Fighters[0])
	second := factory.CreateFighter(e, space, 1, roster.Fighters[1])
	entry := factory.CreateMatch(e, first, second)

	m := &Match{
		ecs:        e,
		entry:      entry,
		space:      space,
		audio:      opts.Audio,
		drainAudio: systems.NewUpdateAudio(opts.Audio),
	}

	e.AddSystem(systems.NewUpdateClock(opts.Clock))
	e.AddSystem(systems.NewUpdateInput(opts.Input))
	e.AddSystem(systems.NewUpdateFighterActions(opts.Rand))
	e.AddSystem(systems.UpdateFighters)
	e.AddSystem(systems.UpdateElapsed)
	e.AddSystem(systems.UpdateAttack)
	e.AddSystem(systems.NewUpdateSpawner(opts.Rand))
	e.AddSystem(systems.UpdateHazards)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateMatch)
	e.AddSystem(m.drainAudio)

	systems.PlaySFX(e, cfg.SoundMatchStart)
	m.drainAudio(e)

	data := components.Match.Get(entry)
	log.Printf("[match] %s started: %s vs %s", data.ID, roster.Fighters[0].Name, roster.Fighters[1].Name)

	return m, nil
}

// Step advances the simulation by one tick. It does nothing once the
// match has finished.
func (m *Match) Step() {
	if m.Finished() {
		return
	}
	m.ecs.Update()
}

// Snapshot returns the current renderable state.
func (m *Match) Snapshot() systems.Snapshot {
	return systems.TakeSnapshot(m.ecs.World)
}

// ID returns the match identifier used in logs.
func (m *Match) ID() string {
	return m.data().ID
}

// State returns Running or Ended.
func (m *Match) State() cfg.MatchStateID {
	return m.data().State
}

// Finished reports whether the end-of-match hold is over and the caller
// should stop driving the match.
func (m *Match) Finished() bool {
	return systems.IsMatchFinished(m.ecs)
}

// Winner returns the winning slot once the match has ended.
func (m *Match) Winner() (int, bool) {
	d := m.data()
	if d.State != cfg.MatchStateEnded {
		return components.NoWinner, false
	}
	return d.Winner, true
}

// Fighter returns the live fighter data for slot 0 or 1.
func (m *Match) Fighter(slot int) *components.FighterData {
	return components.Fighter.Get(m.data().Fighters[slot])
}

// ECS exposes the underlying ECS so a scene can attach renderers.
func (m *Match) ECS() *ecs.ECS {
	return m.ecs
}

// Close releases the audio sink. It is safe to call more than once.
func (m *Match) Close() error {
	m.closeOnce.Do(func() {
		if err := m.audio.Close(); err != nil {
			m.closeErr = fmt.Errorf("close audio: %w", err)
		}
	})
	return m.closeErr
}

func (m *Match) data() *components.MatchData {
	return components.Match.Get(m.entry)
}
