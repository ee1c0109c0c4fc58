package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/arena-duel/arena"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/fonts"
	"github.com/automoto/arena-duel/scenes"
	"github.com/automoto/arena-duel/settings"
	"github.com/automoto/arena-duel/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.Arena.Width, cfg.Arena.Height
}

func main() {
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	assets := flag.String("assets", ".", "Directory holding images and sounds")
	headless := flag.Bool("headless", false, "Run the match without a window or input")
	mute := flag.Bool("mute", false, "Start muted")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	if *headless {
		if err := runHeadless(*seed); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("Match error: %v", err)
		}
		return
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	store, err := settings.Open()
	if err != nil {
		log.Printf("Warning: Could not initialize settings: %v", err)
	}

	fsys := os.DirFS(*assets)
	sink := sound.NewSink(audio.NewContext(cfg.Audio.SampleRate), fsys)

	ebiten.SetWindowSize(cfg.Arena.Width, cfg.Arena.Height)
	ebiten.SetWindowTitle("Pokemon Battle Arena")
	ebiten.SetTPS(cfg.Arena.TickRate)

	game := &Game{scene: scenes.NewBattleScene(scenes.BattleOptions{
		Assets:   fsys,
		Sink:     sink,
		Settings: store,
		Seed:     *seed,
		Muted:    *mute,
	})}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func runHeadless(seed uint64) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	match, err := arena.New(arena.Options{
		Rand: arena.NewRand(seed),
	})
	if err != nil {
		return err
	}
	defer match.Close()

	log.Printf("Starting headless match %s (seed: %d)", match.ID(), seed)
	if err := arena.NewLoop(match, cfg.Arena.TickRate).Run(ctx); err != nil {
		return err
	}
	if winner, ok := match.Winner(); ok {
		log.Printf("Winner: %s", match.Fighter(winner).Name)
	}
	return nil
}
