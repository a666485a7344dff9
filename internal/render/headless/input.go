package headless

import "chosenoffset.com/fireflies/internal/render"

// Keyboard is a render.InputManager driven by explicit Press and Release calls.
type Keyboard struct {
	down map[render.Key]bool
	just map[render.Key]bool
}

// NewKeyboard creates a keyboard with no keys held.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		down: make(map[render.Key]bool),
		just: make(map[render.Key]bool),
	}
}

// Press holds key down.
func (k *Keyboard) Press(key render.Key) {
	if !k.down[key] {
		k.just[key] = true
	}
	k.down[key] = true
}

// Release lets key go.
func (k *Keyboard) Release(key render.Key) {
	delete(k.down, key)
}

// EndFrame clears the just-pressed set.
func (k *Keyboard) EndFrame() {
	clear(k.just)
}

// IsKeyPressed returns whether key is held.
func (k *Keyboard) IsKeyPressed(key render.Key) bool {
	return k.down[key]
}

// IsKeyJustPressed returns whether key went down since the last EndFrame.
func (k *Keyboard) IsKeyJustPressed(key render.Key) bool {
	return k.just[key]
}
