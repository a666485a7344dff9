package input

import (
	"testing"

	"chosenoffset.com/fireflies/internal/event"
	"chosenoffset.com/fireflies/internal/render"
	"chosenoffset.com/fireflies/internal/render/headless"
)

func TestTrackerDefaultsReleased(t *testing.T) {
	tr := NewTracker()
	if tr.Snapshot() != (Directions{}) {
		t.Errorf("expected all released, got %+v", tr.Snapshot())
	}
}

func TestTrackerPressRelease(t *testing.T) {
	bus := event.NewBus()
	tr := NewTracker()
	tr.Observe(bus)

	bus.DirPressed.Emit(event.DirEvent{Dir: Up})
	bus.DirPressed.Emit(event.DirEvent{Dir: Up})
	if !tr.Pressed(Up) {
		t.Fatal("up should be pressed")
	}

	bus.DirReleased.Emit(event.DirEvent{Dir: Up})
	if tr.Pressed(Up) {
		t.Error("a single release should clear a double press")
	}
}

func TestTrackerIgnoresUnknownDirections(t *testing.T) {
	bus := event.NewBus()
	tr := NewTracker()
	tr.Observe(bus)

	if err := bus.DirPressed.Emit(event.DirEvent{Dir: "sideways"}); err != nil {
		t.Fatalf("unknown direction should not error: %v", err)
	}
	if tr.Snapshot() != (Directions{}) {
		t.Errorf("unknown direction changed state: %+v", tr.Snapshot())
	}
	if tr.Pressed("sideways") {
		t.Error("unknown direction reported as pressed")
	}
}

func TestTrackerIndependentDirections(t *testing.T) {
	bus := event.NewBus()
	tr := NewTracker()
	tr.Observe(bus)

	bus.DirPressed.Emit(event.DirEvent{Dir: Left})
	bus.DirPressed.Emit(event.DirEvent{Dir: Down})
	bus.DirReleased.Emit(event.DirEvent{Dir: Left})

	want := Directions{Down: true}
	if got := tr.Snapshot(); got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
}

func TestDirectionsVector(t *testing.T) {
	tests := []struct {
		d      Directions
		wx, wy float64
	}{
		{Directions{}, 0, 0},
		{Directions{Up: true}, 0, -1},
		{Directions{Down: true, Right: true}, 1, 1},
		{Directions{Left: true, Right: true}, 0, 0},
	}
	for _, tt := range tests {
		x, y := tt.d.Vector()
		if x != tt.wx || y != tt.wy {
			t.Errorf("%+v.Vector() = (%v, %v), want (%v, %v)", tt.d, x, y, tt.wx, tt.wy)
		}
	}
}

func TestKeysEmitsEdges(t *testing.T) {
	bus := event.NewBus()
	kb := headless.NewKeyboard()
	keys := NewKeys(kb, bus)

	var log []string
	bus.DirPressed.Subscribe(func(e event.DirEvent) error {
		log = append(log, "+"+e.Dir)
		return nil
	})
	bus.DirReleased.Subscribe(func(e event.DirEvent) error {
		log = append(log, "-"+e.Dir)
		return nil
	})

	kb.Press(render.KeyUp)
	keys.Poll()
	keys.Poll()
	kb.Press(render.KeyW)
	kb.Release(render.KeyUp)
	keys.Poll()
	kb.Release(render.KeyW)
	keys.Poll()

	if len(log) != 2 || log[0] != "+up" || log[1] != "-up" {
		t.Errorf("events = %v, want [+up -up]", log)
	}
}

func TestKeysDriveTracker(t *testing.T) {
	bus := event.NewBus()
	kb := headless.NewKeyboard()
	tr := NewTracker()
	tr.Observe(bus)
	keys := NewKeys(kb, bus)
	keys.Observe(bus)

	kb.Press(render.KeyRight)
	bus.Animate.Emit(event.AnimateEvent{})
	if !tr.Pressed(Right) {
		t.Fatal("right should be pressed after a frame tick")
	}

	kb.Release(render.KeyRight)
	bus.Animate.Emit(event.AnimateEvent{})
	if tr.Pressed(Right) {
		t.Error("right should be released after a frame tick")
	}
}
