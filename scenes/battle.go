// Package scenes holds the windowed front ends that drive a match.
package scenes

import (
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"sync"
	"time"

	"github.com/automoto/arena-duel/arena"
	"github.com/automoto/arena-duel/clock"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/render"
	"github.com/automoto/arena-duel/settings"
	"github.com/automoto/arena-duel/sound"
	"github.com/automoto/arena-duel/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// BattleOptions are the resources a battle scene needs from main.
type BattleOptions struct {
	Assets   fs.FS
	Sink     *sound.Sink // nil plays nothing
	Settings *settings.Manager
	Seed     uint64 // seeds damage rolls, hazards and render jitter
	Muted    bool   // start muted regardless of saved settings
}

// startSettings returns the saved preferences with the command line
// overrides applied.
func (o BattleOptions) startSettings() settings.Saved {
	saved := o.Settings.LoadOrDefault()
	if o.Muted {
		saved.Muted = true
	}
	return saved
}

// matchOptions builds the match collaborators for a windowed run.
func (o BattleOptions) matchOptions(sink systems.AudioSink) arena.Options {
	return arena.Options{
		Clock: clock.NewWall(),
		Rand:  arena.NewRand(o.Seed),
		Input: systems.KeyboardPoller{},
		Audio: sink,
	}
}

// BattleScene runs one match in the window. Update returns
// ebiten.Termination once the match has finished.
type BattleScene struct {
	opts  BattleOptions
	match *arena.Match
	fx    *render.Context
	saved settings.Saved
	once  sync.Once
	err   error
}

func NewBattleScene(opts BattleOptions) *BattleScene {
	return &BattleScene{opts: opts}
}

func (bs *BattleScene) Update() error {
	bs.once.Do(bs.configure)
	if bs.err != nil {
		return bs.err
	}

	if inpututil.IsKeyJustPressed(cfg.Input.ToggleMute) {
		bs.toggleMute()
	}

	bs.match.Step()
	bs.fx.Update(bs.match.Snapshot(), time.Second/time.Duration(cfg.Arena.TickRate))

	if bs.match.Finished() {
		if err := bs.match.Close(); err != nil {
			log.Printf("[scene] Warning: %v", err)
		}
		return ebiten.Termination
	}
	return nil
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.match == nil {
		return
	}
	bs.match.ECS().Draw(screen)
}

func (bs *BattleScene) configure() {
	bs.saved = bs.opts.startSettings()

	var sink systems.AudioSink = systems.NopSink{}
	if bs.opts.Sink != nil {
		bs.opts.Sink.SetVolumes(bs.saved.MusicVolume, bs.saved.SFXVolume)
		bs.opts.Sink.SetMuted(bs.saved.Muted)
		bs.opts.Sink.Preload()
		sink = bs.opts.Sink
	}

	match, err := arena.New(bs.opts.matchOptions(sink))
	if err != nil {
		bs.err = fmt.Errorf("start match: %w", err)
		return
	}
	bs.match = match
	bs.fx = render.NewContext(render.LoadSprites(bs.opts.Assets, cfg.Roster), bs.opts.Seed)

	match.ECS().AddRenderer(cfg.Default, func(_ *ecs.ECS, screen *ebiten.Image) {
		bs.fx.Draw(screen, match.Snapshot())
	})
}

func (bs *BattleScene) toggleMute() {
	if bs.opts.Sink == nil {
		return
	}
	bs.saved.Muted = !bs.saved.Muted
	bs.opts.Sink.SetMuted(bs.saved.Muted)
	if err := bs.opts.Settings.Save(bs.saved); err != nil {
		log.Printf("[settings] Warning: %v", err)
	}
}
