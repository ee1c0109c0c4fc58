package arena

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLoopRunsUntilFinished(t *testing.T) {
	h := newHarness(t, time.Second)
	h.match.Fighter(0).ApplyDamage(100)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := NewLoop(h.match, 1000).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !h.match.Finished() {
		t.Error("loop returned before the match finished")
	}
	if winner, _ := h.match.Winner(); winner != 1 {
		t.Errorf("expected slot 1 to win, got %d", winner)
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	h := newHarness(t, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewLoop(h.match, 60).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
