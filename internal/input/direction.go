// Package input tracks directional input and maps keys to directions.
package input

import "chosenoffset.com/fireflies/internal/event"

// Direction names carried by dir-pressed and dir-released events.
const (
	Up    = "up"
	Down  = "down"
	Left  = "left"
	Right = "right"
)

// Directions is a snapshot of the four direction flags.
type Directions struct {
	Up, Down, Left, Right bool
}

// Vector returns the unit-step movement implied by the flags, with y
// growing downwards. Opposite directions cancel.
func (d Directions) Vector() (x, y float64) {
	if d.Left {
		x--
	}
	if d.Right {
		x++
	}
	if d.Up {
		y--
	}
	if d.Down {
		y++
	}
	return x, y
}

// Tracker holds the pressed state of each direction. It is only changed
// through Press and Release, which the bus subscriptions call.
type Tracker struct {
	dirs Directions
}

// NewTracker creates a tracker with every direction released.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Observe subscribes the tracker to the direction topics.
func (t *Tracker) Observe(bus *event.Bus) {
	bus.DirPressed.Subscribe(func(e event.DirEvent) error {
		t.set(e.Dir, true)
		return nil
	})
	bus.DirReleased.Subscribe(func(e event.DirEvent) error {
		t.set(e.Dir, false)
		return nil
	})
}

// Snapshot returns the current flags.
func (t *Tracker) Snapshot() Directions {
	return t.dirs
}

// Pressed reports whether dir is held. Unknown names are never held.
func (t *Tracker) Pressed(dir string) bool {
	switch dir {
	case Up:
		return t.dirs.Up
	case Down:
		return t.dirs.Down
	case Left:
		return t.dirs.Left
	case Right:
		return t.dirs.Right
	}
	return false
}

// set ignores direction names it does not track.
func (t *Tracker) set(dir string, pressed bool) {
	switch dir {
	case Up:
		t.dirs.Up = pressed
	case Down:
		t.dirs.Down = pressed
	case Left:
		t.dirs.Left = pressed
	case Right:
		t.dirs.Right = pressed
	}
}
