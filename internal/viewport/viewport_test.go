package viewport

import (
	"errors"
	"math"
	"testing"

	"chosenoffset.com/fireflies/internal/event"
)

type fakeContainer struct {
	w, h   float64
	ox, oy float64
	sets   int
}

func (c *fakeContainer) SetSize(w, h float64) {
	c.w, c.h = w, h
	c.sets++
}

func (c *fakeContainer) Offset() (float64, float64) {
	return c.ox, c.oy
}

func TestFitScenarios(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		want event.Vec2
	}{
		{"wide pillarbox", 2000, 1000, event.Vec2{X: 1000 * 16.0 / 9.0, Y: 1000}},
		{"narrow letterbox", 800, 900, event.Vec2{X: 800, Y: 450}},
		{"exact 16:9", 1600, 900, event.Vec2{X: 1600, Y: 900}},
		{"square", 1000, 1000, event.Vec2{X: 1000, Y: 562.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(tt.w, tt.h)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Fit(%v, %v) = %+v, want %+v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestFitKeepsAspect(t *testing.T) {
	for w := 1.0; w <= 4000; w += 137 {
		for h := 1.0; h <= 3000; h += 211 {
			res := Fit(w, h)
			if math.Abs(res.X/res.Y-TargetAspect) > 1e-9 {
				t.Fatalf("aspect for %vx%v = %v", w, h, res.X/res.Y)
			}
			if res.X > w+1e-9 || res.Y > h+1e-9 {
				t.Fatalf("resolution %+v overflows window %vx%v", res, w, h)
			}
		}
	}
}

func TestPixelRatio(t *testing.T) {
	tests := []struct {
		hint float64
		want int
	}{
		{0, 1}, {0.5, 1}, {1, 1}, {1.01, 2}, {1.5, 2}, {2, 2}, {3, 2},
	}
	for _, tt := range tests {
		if got := PixelRatio(tt.hint); got != tt.want {
			t.Errorf("PixelRatio(%v) = %d, want %d", tt.hint, got, tt.want)
		}
	}
}

func TestRecomputeResizesAndEmits(t *testing.T) {
	c := &fakeContainer{ox: 10.4, oy: 218.75}
	topic := event.NewTopic[event.ResizeEvent](event.TopicResize)
	var got []event.ResizeEvent
	topic.Subscribe(func(e event.ResizeEvent) error {
		got = append(got, e)
		return nil
	})

	m := NewManager(c, topic)
	s, err := m.Recompute(1000, 1000, 2)
	if err != nil {
		t.Fatalf("Recompute: %v", err)
	}

	if c.w != 1000 || c.h != 562.5 {
		t.Errorf("container sized %vx%v, want 1000x562.5", c.w, c.h)
	}
	if s.DomOffset != (event.Point{X: 10, Y: 219}) {
		t.Errorf("DomOffset = %+v, want {10 219}", s.DomOffset)
	}
	if s.DPR != 2 {
		t.Errorf("DPR = %d, want 2", s.DPR)
	}
	if math.Abs(s.Aspect-TargetAspect) > 1e-9 {
		t.Errorf("Aspect = %v", s.Aspect)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 resize event, got %d", len(got))
	}
	if got[0].Resolution != s.Resolution || got[0].DomOffset != s.DomOffset || got[0].DPR != s.DPR {
		t.Errorf("event %+v does not match state %+v", got[0], s)
	}
	if m.State() != s {
		t.Errorf("State() = %+v, want %+v", m.State(), s)
	}
}

func TestRecomputeIdempotent(t *testing.T) {
	c := &fakeContainer{}
	m := NewManager(c, event.NewTopic[event.ResizeEvent](event.TopicResize))
	a, _ := m.Recompute(1280, 720, 1)
	b, _ := m.Recompute(1280, 720, 1)
	if a != b {
		t.Errorf("same input gave %+v then %+v", a, b)
	}
}

func TestRecomputeSubscriberError(t *testing.T) {
	c := &fakeContainer{}
	topic := event.NewTopic[event.ResizeEvent](event.TopicResize)
	boom := errors.New("layout failed")
	topic.Subscribe(func(event.ResizeEvent) error { return boom })

	m := NewManager(c, topic)
	_, err := m.Recompute(1600, 900, 1)
	if !errors.Is(err, boom) {
		t.Fatalf("expected subscriber error, got %v", err)
	}
	if m.State().Resolution.X != 1600 {
		t.Errorf("state should be updated before emitting, got %+v", m.State())
	}
}
