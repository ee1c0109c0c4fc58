package components

import (
	"math"

	cfg "github.com/automoto/arena-duel/config"
	"github.com/yohamta/donburi"
)

// HazardData is a falling obstacle. Motion values are per tick.
type HazardData struct {
	X, Y        float64
	Speed       float64
	WobbleSpeed float64
	WobbleDist  float64
	Phase       float64
}

var Hazard = donburi.NewComponentType[HazardData]()

// Step advances the hazard by one tick: it falls by Speed and sways
// sideways along a sine of its phase.
func (h *HazardData) Step() {
	h.Y += h.Speed
	h.Phase += h.WobbleSpeed
	h.X += math.Sin(h.Phase) * h.WobbleDist
}

// Gone reports whether the hazard has left the bottom of the arena.
func (h *HazardData) Gone() bool {
	return h.Y > float64(cfg.Arena.Height)
}

// Overlaps reports a strict bounding box overlap with the given rectangle.
// Touching edges do not count.
func (h *HazardData) Overlaps(x, y, w, hh float64) bool {
	return h.X < x+w && x < h.X+cfg.Hazard.Width &&
		h.Y < y+hh && y < h.Y+cfg.Hazard.Height
}
