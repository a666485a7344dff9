package input

import (
	"chosenoffset.com/fireflies/internal/event"
	"chosenoffset.com/fireflies/internal/render"
)

// DefaultBindings maps both arrow keys and WASD onto directions.
var DefaultBindings = map[render.Key]string{
	render.KeyUp:    Up,
	render.KeyW:     Up,
	render.KeyDown:  Down,
	render.KeyS:     Down,
	render.KeyLeft:  Left,
	render.KeyA:     Left,
	render.KeyRight: Right,
	render.KeyD:     Right,
}

// Keys turns polled key state into dir-pressed and dir-released events.
type Keys struct {
	input    render.InputManager
	bus      *event.Bus
	bindings map[render.Key]string
	held     map[string]bool
}

// NewKeys creates a mapper using DefaultBindings.
func NewKeys(input render.InputManager, bus *event.Bus) *Keys {
	return &Keys{
		input:    input,
		bus:      bus,
		bindings: DefaultBindings,
		held:     make(map[string]bool),
	}
}

// Bind replaces the key bindings.
func (k *Keys) Bind(bindings map[render.Key]string) {
	k.bindings = bindings
}

// Observe polls the keyboard on every frame tick.
func (k *Keys) Observe(bus *event.Bus) {
	bus.Animate.Subscribe(func(event.AnimateEvent) error {
		return k.Poll()
	})
}

// Poll emits one event for each direction whose held state changed since
// the last poll. A direction is held while any of its keys is down.
func (k *Keys) Poll() error {
	down := make(map[string]bool, 4)
	for key, dir := range k.bindings {
		if k.input.IsKeyPressed(key) {
			down[dir] = true
		}
	}

	for _, dir := range []string{Up, Down, Left, Right} {
		switch {
		case down[dir] && !k.held[dir]:
			k.held[dir] = true
			if err := k.bus.DirPressed.Emit(event.DirEvent{Dir: dir}); err != nil {
				return err
			}
		case !down[dir] && k.held[dir]:
			k.held[dir] = false
			if err := k.bus.DirReleased.Emit(event.DirEvent{Dir: dir}); err != nil {
				return err
			}
		}
	}
	return nil
}
