// Package event provides the synchronous in-process publish/subscribe bus
// the game uses to connect its subsystems. Each topic carries one payload
// type so subscriptions are checked at compile time.
package event

import "fmt"

// Handler receives a payload. A non-nil error stops the current emission.
type Handler[T any] func(T) error

type subscription[T any] struct {
	id uint64
	fn Handler[T]
}

// Topic is a named, typed subscription list.
type Topic[T any] struct {
	name   string
	nextID uint64
	subs   []subscription[T]
}

// NewTopic creates an empty topic.
func NewTopic[T any](name string) *Topic[T] {
	return &Topic[T]{name: name}
}

// Name returns the topic name.
func (t *Topic[T]) Name() string {
	return t.name
}

// Subscribe registers fn and returns a function that removes it.
func (t *Topic[T]) Subscribe(fn Handler[T]) func() {
	t.nextID++
	id := t.nextID
	t.subs = append(t.subs, subscription[T]{id: id, fn: fn})
	return func() { t.unsubscribe(id) }
}

func (t *Topic[T]) unsubscribe(id uint64) {
	for i, s := range t.subs {
		if s.id == id {
			t.subs = append(t.subs[:i:i], t.subs[i+1:]...)
			return
		}
	}
}

// Len returns the number of subscribers.
func (t *Topic[T]) Len() int {
	return len(t.subs)
}

// Emit calls every subscriber in subscription order. The first error aborts
// the remaining calls and is returned wrapped with the topic name.
func (t *Topic[T]) Emit(payload T) error {
	subs := t.subs
	for _, s := range subs {
		if err := s.fn(payload); err != nil {
			return fmt.Errorf("%s: %w", t.name, err)
		}
	}
	return nil
}
