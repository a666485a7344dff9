package audio

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownSound is returned when a sound name is not registered.
var ErrUnknownSound = errors.New("unknown sound")

// Registry maps sound names to sounds.
type Registry struct {
	sounds map[string]Sound
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sounds: make(map[string]Sound)}
}

// Add registers s under name, replacing any previous sound.
func (r *Registry) Add(name string, s Sound) {
	r.sounds[name] = s
}

// Get returns the named sound.
func (r *Registry) Get(name string) (Sound, error) {
	s, ok := r.sounds[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}
	return s, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sounds))
	for n := range r.sounds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered sounds.
func (r *Registry) Len() int {
	return len(r.sounds)
}
