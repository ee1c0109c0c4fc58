package factory

import (
	"math"
	"testing"

	cfg "github.com/automoto/arena-duel/config"
)

type edgeRand struct {
	high bool
}

func (r edgeRand) IntN(n int) int {
	if r.high {
		return n - 1
	}
	return 0
}

func (r edgeRand) Float64() float64 {
	if r.high {
		return math.Nextafter(1, 0)
	}
	return 0
}

func TestRollHazardRanges(t *testing.T) {
	for _, high := range []bool{false, true} {
		h := RollHazard(edgeRand{high: high})

		maxX := float64(cfg.Arena.Width) - cfg.Hazard.Width
		if h.X < 0 || h.X > maxX {
			t.Errorf("high=%v: x %v outside [0, %v]", high, h.X, maxX)
		}
		if high && h.X != maxX {
			t.Errorf("expected the rightmost spawn to be reachable, got %v", h.X)
		}
		if h.Y != -cfg.Hazard.Height {
			t.Errorf("high=%v: expected spawn above the arena, got y=%v", high, h.Y)
		}
		if h.Speed < cfg.Hazard.MinSpeed || h.Speed > cfg.Hazard.MaxSpeed {
			t.Errorf("high=%v: speed %v out of range", high, h.Speed)
		}
		if h.WobbleSpeed < cfg.Hazard.MinWobbleSpeed || h.WobbleSpeed > cfg.Hazard.MaxWobbleSpeed {
			t.Errorf("high=%v: wobble speed %v out of range", high, h.WobbleSpeed)
		}
		if h.WobbleDist < cfg.Hazard.MinWobbleDist || h.WobbleDist > cfg.Hazard.MaxWobbleDist {
			t.Errorf("high=%v: wobble distance %v out of range", high, h.WobbleDist)
		}
		if h.Phase < 0 || h.Phase > 2*math.Pi {
			t.Errorf("high=%v: phase %v out of range", high, h.Phase)
		}
	}
}
