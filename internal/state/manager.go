// Package state runs the named game modes and switches between them.
package state

import (
	"errors"
	"fmt"

	"chosenoffset.com/fireflies/internal/event"
)

// ErrUnknownState is returned by Set for names that were never registered.
var ErrUnknownState = errors.New("unknown state")

// State is one game mode.
type State interface {
	Enter()
	Exit()
	Update(dt float64)
}

// Manager holds the registered states and the current one.
type Manager struct {
	states  map[string]State
	current State
	name    string
	delta   func() float64
}

// NewManager creates a manager. delta supplies the frame step in seconds.
func NewManager(delta func() float64) *Manager {
	return &Manager{
		states: make(map[string]State),
		delta:  delta,
	}
}

// Register adds a state under name.
func (m *Manager) Register(name string, s State) {
	m.states[name] = s
}

// Set exits the current state and enters the named one.
func (m *Manager) Set(name string) error {
	next, ok := m.states[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, name)
	}
	if m.current != nil {
		m.current.Exit()
	}
	m.current = next
	m.name = name
	next.Enter()
	return nil
}

// Current returns the current state name, or "" before the first Set.
func (m *Manager) Current() string {
	return m.name
}

// Observe updates the current state on every frame tick.
func (m *Manager) Observe(bus *event.Bus) {
	bus.Animate.Subscribe(func(event.AnimateEvent) error {
		m.Update()
		return nil
	})
}

// Update advances the current state by one frame.
func (m *Manager) Update() {
	if m.current == nil {
		return
	}
	m.current.Update(m.delta())
}
