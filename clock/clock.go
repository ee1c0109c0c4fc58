// Package clock supplies the per-tick time delta that drives every timer in a match.
package clock

import "time"

// Clock returns the time elapsed since the previous call.
type Clock interface {
	Delta() time.Duration
}

// Wall measures real elapsed time using the monotonic clock.
type Wall struct {
	now  func() time.Time
	last time.Time
}

// NewWall creates a wall clock. The first Delta is measured from this call.
func NewWall() *Wall {
	return &Wall{now: time.Now, last: time.Now()}
}

// Delta returns the wall time since the previous Delta.
func (w *Wall) Delta() time.Duration {
	t := w.now()
	d := t.Sub(w.last)
	w.last = t
	if d < 0 {
		return 0
	}
	return d
}

// Fixed returns the same step on every call. Used for headless runs and tests.
// Like the rest of the simulation it is driven from a single goroutine.
type Fixed struct {
	step time.Duration
}

// NewFixed creates a fixed clock advancing by step per tick.
func NewFixed(step time.Duration) *Fixed {
	return &Fixed{step: step}
}

// PerSecond returns a fixed clock for the given tick rate.
func PerSecond(ticks int) *Fixed {
	return NewFixed(time.Second / time.Duration(ticks))
}

// Delta returns the configured step
func (f *Fixed) Delta() time.Duration {
	return f.step
}

// SetStep changes the step returned by later ticks
func (f *Fixed) SetStep(step time.Duration) {
	f.step = step
}
