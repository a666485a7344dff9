// Package clock tracks frame timing for the game.
package clock

import (
	"time"

	"chosenoffset.com/fireflies/internal/event"
)

// MaxDelta caps a single frame step so a stalled host does not make
// entities jump.
const MaxDelta = 0.1

// Time measures the delta between frame ticks and the total elapsed time.
type Time struct {
	now     func() time.Time
	last    time.Time
	delta   float64
	elapsed float64
	frame   uint64
}

// New creates a clock reading the wall time.
func New() *Time {
	return NewWithSource(time.Now)
}

// NewWithSource creates a clock reading now.
func NewWithSource(now func() time.Time) *Time {
	return &Time{now: now}
}

// Observe advances the clock on every frame tick.
func (t *Time) Observe(bus *event.Bus) {
	bus.Animate.Subscribe(func(e event.AnimateEvent) error {
		t.frame = e.Frame
		t.Tick()
		return nil
	})
}

// Tick advances the clock to the current time. The first tick has a zero delta.
func (t *Time) Tick() {
	n := t.now()
	if t.last.IsZero() {
		t.delta = 0
	} else {
		t.delta = n.Sub(t.last).Seconds()
		if t.delta > MaxDelta {
			t.delta = MaxDelta
		}
		if t.delta < 0 {
			t.delta = 0
		}
	}
	t.elapsed += t.delta
	t.last = n
}

// Delta returns the seconds covered by the last tick.
func (t *Time) Delta() float64 { return t.delta }

// Elapsed returns the accumulated seconds of all ticks.
func (t *Time) Elapsed() float64 { return t.elapsed }

// Frame returns the frame number of the last tick.
func (t *Time) Frame() uint64 { return t.frame }
