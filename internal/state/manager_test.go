package state

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"chosenoffset.com/fireflies/internal/entity"
	"chosenoffset.com/fireflies/internal/event"
	"chosenoffset.com/fireflies/internal/input"
)

type tracingState struct {
	name  string
	trace *[]string
}

func (s *tracingState) Enter()            { *s.trace = append(*s.trace, "enter:"+s.name) }
func (s *tracingState) Exit()             { *s.trace = append(*s.trace, "exit:"+s.name) }
func (s *tracingState) Update(dt float64) { *s.trace = append(*s.trace, "update:"+s.name) }

func TestSetTransitions(t *testing.T) {
	var trace []string
	m := NewManager(func() float64 { return 0.016 })
	m.Register("menu", &tracingState{"menu", &trace})
	m.Register("play", &tracingState{"play", &trace})

	if err := m.Set("menu"); err != nil {
		t.Fatalf("Set(menu): %v", err)
	}
	if err := m.Set("play"); err != nil {
		t.Fatalf("Set(play): %v", err)
	}
	m.Update()

	want := "enter:menu,exit:menu,enter:play,update:play"
	if got := strings.Join(trace, ","); got != want {
		t.Errorf("trace = %q, want %q", got, want)
	}
	if m.Current() != "play" {
		t.Errorf("Current() = %q", m.Current())
	}
}

func TestSetUnknown(t *testing.T) {
	m := NewManager(func() float64 { return 0 })
	if err := m.Set("pause"); !errors.Is(err, ErrUnknownState) {
		t.Errorf("expected ErrUnknownState, got %v", err)
	}
	m.Update()
}

func TestPlayMovesActiveHero(t *testing.T) {
	hero := entity.NewHero("a", 8, 4, color.NRGBA{A: 255})
	hero.SetActive(true)
	dirs := input.Directions{Right: true}

	m := NewManager(func() float64 { return 0.5 })
	m.Register("play", &Play{
		Dir:  func() input.Directions { return dirs },
		Hero: func() *entity.Hero { return hero },
	})
	m.Set("play")

	bus := event.NewBus()
	m.Observe(bus)
	bus.Animate.Emit(event.AnimateEvent{Frame: 1})

	if want := 8 + entity.DefaultHeroSpeed*0.5; hero.X != want {
		t.Errorf("hero X = %v, want %v", hero.X, want)
	}
	if hero.Y != 4 {
		t.Errorf("hero Y = %v, want 4", hero.Y)
	}
}

func TestPlayWithoutHero(t *testing.T) {
	p := &Play{
		Dir:  func() input.Directions { return input.Directions{Up: true} },
		Hero: func() *entity.Hero { return nil },
	}
	p.Update(1)
}
