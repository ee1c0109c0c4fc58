package components

import (
	"math"
	"testing"

	cfg "github.com/automoto/arena-duel/config"
)

func TestHazardStep(t *testing.T) {
	h := HazardData{X: 100, Y: -60, Speed: 2, WobbleSpeed: 0.1, WobbleDist: 10, Phase: 0}
	h.Step()

	if h.Y != -58 {
		t.Errorf("expected y=-58, got %v", h.Y)
	}
	if h.Phase != 0.1 {
		t.Errorf("expected phase 0.1, got %v", h.Phase)
	}
	wantX := 100 + math.Sin(0.1)*10
	if math.Abs(h.X-wantX) > 1e-9 {
		t.Errorf("expected x=%v, got %v", wantX, h.X)
	}
}

func TestHazardGone(t *testing.T) {
	h := HazardData{Y: float64(cfg.Arena.Height)}
	if h.Gone() {
		t.Error("hazard at the bottom edge should still be live")
	}
	h.Y++
	if !h.Gone() {
		t.Error("hazard below the arena should be gone")
	}
}

func TestHazardOverlaps(t *testing.T) {
	// Fighter box at (100, 400) 100x100
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 120, 420, true},
		{"corner overlap", 41, 341, true},
		{"touching left edge", 40, 420, false},
		{"touching top edge", 120, 340, false},
		{"touching right edge", 200, 420, false},
		{"far away", 500, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HazardData{X: tt.x, Y: tt.y}
			if got := h.Overlaps(100, 400, 100, 100); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
