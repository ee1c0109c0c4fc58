package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD      FontName = "hud"      // health and shield lines
	Message  FontName = "message"  // outcome line above the platform
	Controls FontName = "controls" // key guide along the bottom
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the built-in Go fonts at the sizes the HUD uses.
func LoadDefaults() error {
	if err := LoadFontWithSize(HUD, goregular.TTF, 22); err != nil {
		return err
	}
	if err := LoadFontWithSize(Message, gobold.TTF, 26); err != nil {
		return err
	}
	return LoadFontWithSize(Controls, goregular.TTF, 15)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// Loaded reports whether name has been registered.
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
