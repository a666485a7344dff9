package tty

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/fireflies/internal/render"
)

// HoldWindow is how long a key counts as held after its last key event.
// Terminals report presses and auto-repeats but never releases, so a key
// is released once its repeats stop arriving.
const HoldWindow = 550 * time.Millisecond

// Keyboard is a render.InputManager fed by terminal key events.
type Keyboard struct {
	now  func() time.Time
	seen map[render.Key]time.Time
	just map[render.Key]bool
}

// NewKeyboard creates a keyboard using the wall clock.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		now:  time.Now,
		seen: make(map[render.Key]time.Time),
		just: make(map[render.Key]bool),
	}
}

// Press records a key event. Auto-repeats of a held key extend the hold
// without counting as a new press.
func (k *Keyboard) Press(key render.Key) {
	if !k.IsKeyPressed(key) {
		k.just[key] = true
	}
	k.seen[key] = k.now()
}

// EndFrame clears the just-pressed set.
func (k *Keyboard) EndFrame() {
	clear(k.just)
}

// IsKeyPressed reports whether key had an event within HoldWindow.
func (k *Keyboard) IsKeyPressed(key render.Key) bool {
	t, ok := k.seen[key]
	return ok && k.now().Sub(t) < HoldWindow
}

// IsKeyJustPressed reports whether key went down since the last EndFrame.
func (k *Keyboard) IsKeyJustPressed(key render.Key) bool {
	return k.just[key]
}

// keyFromEvent maps a terminal key event to a game key.
func keyFromEvent(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyF9:
		return render.KeyF9, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return render.KeyW, true
		case 'a', 'A':
			return render.KeyA, true
		case 's', 'S':
			return render.KeyS, true
		case 'd', 'D':
			return render.KeyD, true
		case 'm', 'M':
			return render.KeyM, true
		case ' ':
			return render.KeySpace, true
		}
	}
	return 0, false
}
