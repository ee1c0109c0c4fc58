package render

import (
	"fmt"
	"image/color"
	"strings"

	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/fonts"
	"github.com/automoto/arena-duel/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func (c *Context) drawHUD(screen *ebiten.Image, snap systems.Snapshot) {
	barX := [2]float32{cfg.UI.HealthBarMargin, float32(cfg.Arena.Width) - cfg.UI.HealthBarWidth - 50}
	for slot := range snap.Fighters {
		drawHealthBar(screen, &snap.Fighters[slot], barX[slot], cfg.UI.HealthBarMargin)
		drawShieldStatus(screen, &snap.Fighters[slot], barX[slot], cfg.UI.ShieldStatusY)
	}

	if snap.Message != "" {
		drawMessage(screen, snap.Message)
	}
	drawControls(screen, snap)
}

func drawHealthBar(screen *ebiten.Image, f *systems.FighterView, x, y float32) {
	w, h := cfg.UI.HealthBarWidth, cfg.UI.HealthBarHeight
	ratio := float32(0)
	if f.MaxHealth > 0 {
		ratio = float32(f.Health) / float32(f.MaxHealth)
	}

	vector.FillRect(screen, x, y, w, h, cfg.UI.HealthLostColor, false)
	vector.FillRect(screen, x, y, w*ratio, h, cfg.UI.HealthColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, cfg.Black, false)

	face := fonts.HUD.Get()
	label := fmt.Sprintf("%s: %d/%d", f.Name, f.Health, f.MaxHealth)
	bounds := text.BoundString(face, label) //nolint:staticcheck // TODO: migrate to text/v2
	textX := int(x) + (int(w)-bounds.Dx())/2
	textY := int(y+h) + 5 + bounds.Dy()
	text.Draw(screen, label, face, textX, textY, cfg.UI.TextColor)
}

// ShieldStatus is the HUD line for a fighter's shield.
func ShieldStatus(f *systems.FighterView) (string, color.Color) {
	switch {
	case f.ShieldActive:
		return "Shield: ACTIVE", cfg.Green
	case f.ShieldCooldown > 0:
		return fmt.Sprintf("Shield: Cooldown %.1f", f.ShieldCooldown.Seconds()), cfg.Red
	default:
		return "Shield: Ready", cfg.Green
	}
}

func drawShieldStatus(screen *ebiten.Image, f *systems.FighterView, x, y float32) {
	label, clr := ShieldStatus(f)
	face := fonts.HUD.Get()
	bounds := text.BoundString(face, label) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, label, face, int(x), int(y)+bounds.Dy(), clr)
}

func drawMessage(screen *ebiten.Image, msg string) {
	face := fonts.Message.Get()
	bounds := text.BoundString(face, msg) //nolint:staticcheck // TODO: migrate to text/v2
	cx := cfg.Arena.Width / 2
	cy := int(cfg.PlatformTop()) - int(cfg.UI.MessageOffsetY)
	text.Draw(screen, msg, face, cx-bounds.Dx()/2, cy+bounds.Dy()/2, cfg.UI.TextColor)
}

func drawControls(screen *ebiten.Image, snap systems.Snapshot) {
	face := fonts.Controls.Get()
	y := float32(cfg.Arena.Height) - cfg.UI.ControlsY
	for slot := range snap.Fighters {
		line := ControlsLine(snap.Fighters[slot].Name, slot)
		text.Draw(screen, line, face, int(cfg.UI.HealthBarMargin), int(y+float32(slot)*cfg.UI.ControlsSpacing)+12, cfg.UI.TextColor)
	}
	mute := fmt.Sprintf("%s: mute", keyName(cfg.Input.ToggleMute))
	bounds := text.BoundString(face, mute) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, mute, face, cfg.Arena.Width-bounds.Dx()-int(cfg.UI.HealthBarMargin), int(y)+12, cfg.UI.TextColor)
}

// ControlsLine describes the key bindings of slot, e.g.
// "Pikachu: A/D move, SPACE attack, W shield".
func ControlsLine(name string, slot int) string {
	b := cfg.Input.Bindings[slot]
	return fmt.Sprintf("%s: %s/%s move, %s attack, %s shield",
		name,
		keysName(b[cfg.ActionMoveLeft]),
		keysName(b[cfg.ActionMoveRight]),
		keysName(b[cfg.ActionAttack]),
		keysName(b[cfg.ActionShield]),
	)
}

func keysName(binding cfg.InputBinding) string {
	names := make([]string, 0, len(binding.Keys))
	for _, k := range binding.Keys {
		names = append(names, keyName(k))
	}
	return strings.Join(names, "|")
}

func keyName(k ebiten.Key) string {
	switch k {
	case ebiten.KeyArrowLeft:
		return "Left"
	case ebiten.KeyArrowRight:
		return "Right"
	case ebiten.KeySpace, ebiten.KeyEnter:
		return strings.ToUpper(k.String())
	default:
		return k.String()
	}
}
