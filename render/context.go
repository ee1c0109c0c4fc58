// Package render draws a match snapshot. It owns everything that only
// exists for looks: sprites, fonts, tweens and random jitter.
package render

import (
	"math/rand/v2"
	"time"

	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/systems"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fighterFX is per-fighter animation state
type fighterFX struct {
	faint   *gween.Tween
	fainted float32 // 0 standing, 1 lying down

	shake     *gween.Tween
	shakeMag  float32
	seenHits  int
	auraPhase float64
}

// Context is created per match and discarded with it.
type Context struct {
	sprites *Sprites
	rng     *rand.Rand
	fx      [2]fighterFX
	ticks   int
}

// NewContext creates a render context using the given sprites.
func NewContext(sprites *Sprites, seed uint64) *Context {
	return &Context{
		sprites: sprites,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Update advances cosmetic animation by dt using the latest snapshot.
func (c *Context) Update(snap systems.Snapshot, dt time.Duration) {
	c.ticks++
	secs := float32(dt.Seconds())

	for slot := range snap.Fighters {
		f := &snap.Fighters[slot]
		fx := &c.fx[slot]

		if f.Hits != fx.seenHits {
			fx.seenHits = f.Hits
			mag := min(float32(f.LastDamage), float32(cfg.Effects.MaxShake))
			fx.shake = gween.New(mag, 0, float32(cfg.Effects.ShakeDecay.Seconds()), ease.Linear)
		}
		if fx.shake != nil {
			v, done := fx.shake.Update(secs)
			fx.shakeMag = v
			if done {
				fx.shake, fx.shakeMag = nil, 0
			}
		}

		if f.Fainted && fx.faint == nil && fx.fainted == 0 {
			fx.faint = gween.New(0, 1, float32(cfg.Effects.FaintDuration.Seconds()), ease.OutQuad)
		}
		if fx.faint != nil {
			v, done := fx.faint.Update(secs)
			fx.fainted = v
			if done {
				fx.faint, fx.fainted = nil, 1
			}
		}

		if !f.Fainted {
			fx.auraPhase += dt.Seconds()
		}
	}
}

// FaintProgress returns how far the faint animation of slot has run.
func (c *Context) FaintProgress(slot int) float32 {
	return c.fx[slot].fainted
}

// ShakeMagnitude returns the current hit shake of slot in pixels.
func (c *Context) ShakeMagnitude(slot int) float32 {
	return c.fx[slot].shakeMag
}
