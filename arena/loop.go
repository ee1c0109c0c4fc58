package arena

import (
	"context"
	"log"
	"time"
)

// Loop drives a match on a ticker without a window.
type Loop struct {
	match    *Match
	tickRate int
}

func NewLoop(match *Match, tickRate int) *Loop {
	return &Loop{
		match:    match,
		tickRate: tickRate,
	}
}

// Run ticks the match until it finishes or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("[loop] started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Println("[loop] stopped")
			return ctx.Err()
		case <-ticker.C:
			l.match.Step()
			if l.match.Finished() {
				log.Printf("[loop] match %s finished", l.match.ID())
				return nil
			}
		}
	}
}
