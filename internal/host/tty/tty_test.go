package tty

import (
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/fireflies/internal/clock"
	"chosenoffset.com/fireflies/internal/entity"
	"chosenoffset.com/fireflies/internal/event"
	"chosenoffset.com/fireflies/internal/render"
	"chosenoffset.com/fireflies/internal/render/headless"
	"chosenoffset.com/fireflies/internal/world"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func TestKeyboardHoldWindow(t *testing.T) {
	now := time.Unix(0, 0)
	k := NewKeyboard()
	k.now = func() time.Time { return now }

	k.Press(render.KeyW)
	if !k.IsKeyPressed(render.KeyW) || !k.IsKeyJustPressed(render.KeyW) {
		t.Fatal("Expected W pressed and just pressed")
	}
	k.EndFrame()

	now = now.Add(HoldWindow / 2)
	k.Press(render.KeyW) // auto-repeat
	if k.IsKeyJustPressed(render.KeyW) {
		t.Error("Expected auto-repeat not to count as a new press")
	}

	now = now.Add(HoldWindow - time.Millisecond)
	if !k.IsKeyPressed(render.KeyW) {
		t.Error("Expected repeat to extend the hold")
	}
	now = now.Add(2 * time.Millisecond)
	if k.IsKeyPressed(render.KeyW) {
		t.Error("Expected W released after the hold window")
	}
}

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want render.Key
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), render.KeyUp},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), render.KeyA},
		{tcell.NewEventKey(tcell.KeyRune, 'M', tcell.ModNone), render.KeyM},
		{tcell.NewEventKey(tcell.KeyF9, 0, tcell.ModNone), render.KeyF9},
	}
	for _, tt := range tests {
		got, ok := keyFromEvent(tt.ev)
		if !ok || got != tt.want {
			t.Errorf("Expected %d, got %d (ok=%t)", tt.want, got, ok)
		}
	}
	if _, ok := keyFromEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); ok {
		t.Error("Expected z to be unmapped")
	}
	if _, ok := keyFromEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); ok {
		t.Error("Expected Escape to be handled by the host, not mapped")
	}
}

func TestHostWindowAndResize(t *testing.T) {
	s := newScreen(t, 160, 45)
	h := NewHost(s, "container", "")

	if w, ht := h.WindowSize(); w != 160 || ht != 90 {
		t.Errorf("Expected window 160x90, got %vx%v", w, ht)
	}

	calls := 0
	h.OnResize(func() { calls++ })
	if !h.handle(tcell.NewEventResize(100, 50)) {
		t.Fatal("Expected resize not to quit")
	}
	if calls != 1 {
		t.Errorf("Expected one resize callback, got %d", calls)
	}
	if w, ht := h.WindowSize(); w != 100 || ht != 100 {
		t.Errorf("Expected window 100x100, got %vx%v", w, ht)
	}

	c := h.Container("container")
	c.SetSize(100, 56.25)
	if x, y := c.Offset(); x != 0 || y != 21.875 {
		t.Errorf("Expected offset (0,21.875), got (%v,%v)", x, y)
	}
	if h.Container("other") != nil {
		t.Error("Expected nil for unknown container")
	}
}

func TestHostHandleKeys(t *testing.T) {
	s := newScreen(t, 80, 24)
	h := NewHost(s, "container", "")

	h.handle(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	if !h.Keyboard().IsKeyPressed(render.KeyD) {
		t.Error("Expected D held")
	}
	if h.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Expected Escape to quit")
	}
}

func TestHostTickRunsQueuedFrames(t *testing.T) {
	s := newScreen(t, 80, 24)
	h := NewHost(s, "container", "")

	var ran []int
	h.RequestFrame(func() {
		ran = append(ran, 1)
		h.RequestFrame(func() { ran = append(ran, 2) })
	})
	h.CancelFrame(h.RequestFrame(func() { ran = append(ran, 3) }))

	h.tick()
	if len(ran) != 1 {
		t.Fatalf("Expected one callback, got %v", ran)
	}
	h.tick()
	if len(ran) != 2 || ran[1] != 2 {
		t.Errorf("Expected [1 2], got %v", ran)
	}
}

func TestPaintHero(t *testing.T) {
	s := newScreen(t, 160, 45)

	bus := event.NewBus()
	w := world.New(headless.NewRenderer(), clock.New())
	w.Observe(bus)
	hero := entity.NewHero("a", 8, 4.5, color.NRGBA{R: 255, A: 255})
	hero.SetActive(true)
	w.AddHero(hero)
	if err := bus.Resize.Emit(event.ResizeEvent{Resolution: event.Vec2{X: 160, Y: 90}}); err != nil {
		t.Fatalf("Resize emit failed: %v", err)
	}

	Paint(s, w, []string{"hi"})
	s.Show()

	cells, cols, _ := s.GetContents()
	at := func(x, y int) rune {
		r := cells[y*cols+x].Runes
		if len(r) == 0 {
			return 0
		}
		return r[0]
	}
	if got := at(80, 22); got != '@' {
		t.Errorf("Expected hero at (80,22), got %q", got)
	}
	if at(0, 0) != 'h' || at(1, 0) != 'i' {
		t.Error("Expected overlay text in the top-left corner")
	}
}
