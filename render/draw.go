package render

import (
	"image/color"
	"math"

	cfg "github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders the whole frame for snap.
func (c *Context) Draw(screen *ebiten.Image, snap systems.Snapshot) {
	c.drawArena(screen)
	for _, h := range snap.Hazards {
		c.drawHazard(screen, h)
	}
	for slot := range snap.Fighters {
		c.drawFighter(screen, slot, &snap.Fighters[slot])
	}
	if snap.Attack != nil {
		c.drawAttack(screen, snap.Attack)
	}
	c.drawHUD(screen, snap)
}

func (c *Context) drawArena(screen *ebiten.Image) {
	w, h := float64(cfg.Arena.Width), float64(cfg.Arena.Height)
	if bg := c.spriteBackground(); bg != nil {
		screen.DrawImage(bg, scaledTo(bg, w, h))
	} else {
		screen.Fill(cfg.UI.BackgroundColor)
	}
	vector.FillRect(screen, 0, float32(cfg.PlatformTop()), float32(w), float32(cfg.Arena.PlatformHeight), cfg.UI.PlatformColor, false)
}

func (c *Context) drawFighter(screen *ebiten.Image, slot int, f *systems.FighterView) {
	fx := &c.fx[slot]
	cx := f.X + cfg.Fighter.Width/2
	cy := f.Y + cfg.Fighter.Height/2

	if !f.Fainted {
		c.drawAura(screen, slot, f, cx, cy)
	}

	img := c.spriteFighter(slot)
	if img != nil {
		op := scaledTo(img, cfg.Fighter.Width, cfg.Fighter.Height)
		op.GeoM.Translate(-cfg.Fighter.Width/2, -cfg.Fighter.Height/2)
		if p := float64(fx.fainted); p > 0 {
			// Tip over onto the side and sink toward the platform
			op.GeoM.Rotate(-math.Pi / 2 * p)
			op.GeoM.Translate(0, cfg.Fighter.Height*0.5*p)
		}
		dx := 0.0
		if mag := int(fx.shakeMag); mag > 0 && !f.Fainted {
			dx = float64(c.rng.IntN(2*mag+1) - mag)
		}
		op.GeoM.Translate(cx+dx, cy)
		screen.DrawImage(img, op)
	}

	if f.ShieldActive {
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(cfg.Fighter.Width/2), cfg.Effects.ShieldRingWidth, cfg.UI.ShieldColor, true)
	}
}

func (c *Context) drawAura(screen *ebiten.Image, slot int, f *systems.FighterView, cx, cy float64) {
	fx := &c.fx[slot]
	size := min(cfg.Effects.AuraBaseSize+cfg.Effects.AuraGrowth*float64(f.AttackCount), cfg.Effects.AuraMaxSize)
	pulse := math.Sin(fx.auraPhase*5)*0.2 + 0.8
	radius := cfg.Fighter.Width/2 + size*pulse

	base := c.auraColor(slot)
	brighten := uint8(min(255, 20*f.AttackCount))
	clr := color.RGBA{
		R: satAdd(base.R, brighten),
		G: satAdd(base.G, brighten),
		B: satAdd(base.B, brighten),
		A: 50,
	}
	for i := 0; i < 3; i++ {
		offset := math.Sin(fx.auraPhase*3+float64(i)*2) * 5
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius-math.Abs(offset)), clr, true)
	}
}

func (c *Context) drawAttack(screen *ebiten.Image, a *systems.AttackView) {
	switch a.AttackType {
	case cfg.AttackLightning:
		width := float32(3 + a.AttackCount/3)
		px, py := a.FromX, a.FromY
		for i := 0; i < 3; i++ {
			nx := px + (a.ToX-px)*0.25
			ny := py + (a.ToY-py)*0.25 + float64(c.rng.IntN(41)-20)
			vector.StrokeLine(screen, float32(px), float32(py), float32(nx), float32(ny), width, cfg.Yellow, true)
			px, py = nx, ny
		}
		vector.StrokeLine(screen, float32(px), float32(py), float32(a.X), float32(a.Y), width, cfg.Yellow, true)

	case cfg.AttackFire:
		vector.DrawFilledCircle(screen, float32(a.X), float32(a.Y), float32(10+a.AttackCount/3), cfg.Orange, true)
		for i := 0; i < 5+a.AttackCount; i++ {
			angle := c.rng.Float64() * 2 * math.Pi
			dist := (1 + c.rng.Float64()*2) * 5
			spark := color.RGBA{R: 255, G: uint8(100 + c.rng.IntN(101)), A: 255}
			vector.DrawFilledCircle(screen, float32(a.X+math.Cos(angle)*dist), float32(a.Y+math.Sin(angle)*dist), 2, spark, true)
		}
	}
}

func (c *Context) drawHazard(screen *ebiten.Image, h systems.HazardView) {
	w, hh := cfg.Hazard.Width, cfg.Hazard.Height
	cx, cy := h.X+w/2, h.Y+hh/2

	ms := float64(c.ticks) * 1000 / float64(cfg.Arena.TickRate)
	pulse := math.Sin(ms*0.01)*0.1 + 0.9
	angle := math.Sin(ms*0.003) * 10 * math.Pi / 180

	if img := c.spriteHazard(); img != nil {
		op := scaledTo(img, w*pulse, hh*pulse)
		op.GeoM.Translate(-w*pulse/2, -hh*pulse/2)
		op.GeoM.Rotate(-angle)
		op.GeoM.Translate(cx, cy)
		screen.DrawImage(img, op)
	}

	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(w*0.6), cfg.UI.HazardGlow, true)
}

func (c *Context) auraColor(slot int) color.RGBA {
	if slot < len(cfg.Roster.Fighters) {
		return cfg.Roster.Fighters[slot].Aura.RGBA(255)
	}
	return cfg.Yellow
}

func (c *Context) spriteBackground() *ebiten.Image {
	if c.sprites == nil {
		return nil
	}
	return c.sprites.Background
}

func (c *Context) spriteFighter(slot int) *ebiten.Image {
	if c.sprites == nil {
		return nil
	}
	return c.sprites.Fighters[slot]
}

func (c *Context) spriteHazard() *ebiten.Image {
	if c.sprites == nil {
		return nil
	}
	return c.sprites.Hazard
}

// scaledTo returns draw options that stretch img to w x h.
func scaledTo(img *ebiten.Image, w, h float64) *ebiten.DrawImageOptions {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	return op
}

func satAdd(a, b uint8) uint8 {
	if int(a)+int(b) > 255 {
		return 255
	}
	return a + b
}
