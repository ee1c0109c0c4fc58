package clock

import (
	"testing"
	"time"
)

func TestWallDelta(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	current := start
	w := &Wall{now: func() time.Time { return current }, last: start}

	current = start.Add(16 * time.Millisecond)
	if d := w.Delta(); d != 16*time.Millisecond {
		t.Errorf("expected 16ms, got %v", d)
	}

	// A second call without time passing yields zero
	if d := w.Delta(); d != 0 {
		t.Errorf("expected 0, got %v", d)
	}

	// Time moving backwards never produces a negative delta
	current = start
	if d := w.Delta(); d != 0 {
		t.Errorf("expected 0 for backwards time, got %v", d)
	}
}

func TestFixedDelta(t *testing.T) {
	f := NewFixed(50 * time.Millisecond)
	for i := 0; i < 3; i++ {
		if d := f.Delta(); d != 50*time.Millisecond {
			t.Fatalf("tick %d: expected 50ms, got %v", i, d)
		}
	}

	f.SetStep(0)
	if d := f.Delta(); d != 0 {
		t.Errorf("expected 0 after SetStep(0), got %v", d)
	}
}

func TestPerSecond(t *testing.T) {
	f := PerSecond(60)
	if d := f.Delta(); d != time.Second/60 {
		t.Errorf("expected %v, got %v", time.Second/60, d)
	}
}
