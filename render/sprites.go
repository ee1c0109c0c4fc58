package render

import (
	"bytes"
	"fmt"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"

	cfg "github.com/automoto/arena-duel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	backgroundFile = "background.jpg"
	hazardFile     = "alien.png"
)

// Sprites holds the images drawn for each entity. Every image is scaled
// to its entity's box at draw time.
type Sprites struct {
	Background *ebiten.Image // nil draws a flat fill
	Fighters   [2]*ebiten.Image
	Hazard     *ebiten.Image
}

// LoadSprites reads optional images from fsys. Missing files fall back to
// flat placeholder shapes in the roster colours.
func LoadSprites(fsys fs.FS, roster cfg.RosterConfig) *Sprites {
	s := &Sprites{
		Background: loadOptional(fsys, backgroundFile),
		Hazard:     loadOptional(fsys, hazardFile),
	}
	if s.Hazard == nil {
		s.Hazard = placeholder(int(cfg.Hazard.Width), int(cfg.Hazard.Height), cfg.UI.HazardColor)
	}
	for i, f := range roster.Fighters {
		if i >= len(s.Fighters) {
			break
		}
		if f.Sprite != "" {
			s.Fighters[i] = loadOptional(fsys, f.Sprite)
		}
		if s.Fighters[i] == nil {
			s.Fighters[i] = placeholder(int(cfg.Fighter.Width), int(cfg.Fighter.Height), f.Body.RGBA(255))
		}
	}
	return s
}

func loadOptional(fsys fs.FS, path string) *ebiten.Image {
	if fsys == nil {
		return nil
	}
	img, err := loadImage(fsys, path)
	if err != nil {
		log.Printf("[render] %v, using placeholder", err)
		return nil
	}
	return img
}

func loadImage(fsys fs.FS, path string) (*ebiten.Image, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

func placeholder(w, h int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(clr)
	return img
}
