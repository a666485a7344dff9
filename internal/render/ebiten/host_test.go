package ebiten

import (
	"testing"

	"chosenoffset.com/fireflies/internal/render"
)

func TestHostFramesRunOnNextUpdate(t *testing.T) {
	h := NewHost(1280, 720, "container", "", nil)

	var ran []int
	h.RequestFrame(func() {
		ran = append(ran, 1)
		h.RequestFrame(func() { ran = append(ran, 2) })
	})
	cancelled := h.RequestFrame(func() { ran = append(ran, 3) })
	h.CancelFrame(cancelled)

	if err := h.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(ran) != 1 || ran[0] != 1 {
		t.Errorf("Expected [1] after first update, got %v", ran)
	}
	if err := h.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(ran) != 2 || ran[1] != 2 {
		t.Errorf("Expected [1 2] after second update, got %v", ran)
	}
}

func TestHostLayoutFiresResize(t *testing.T) {
	h := NewHost(1280, 720, "container", "", nil)
	calls := 0
	h.OnResize(func() { calls++ })

	h.Layout(1280, 720)
	if calls != 0 {
		t.Errorf("Expected no resize for unchanged size, got %d", calls)
	}
	w, ht := h.Layout(1000, 1000)
	if w != 1000 || ht != 1000 {
		t.Errorf("Expected layout to keep window size, got %dx%d", w, ht)
	}
	if calls != 1 {
		t.Errorf("Expected one resize, got %d", calls)
	}
	if ww, wh := h.WindowSize(); ww != 1000 || wh != 1000 {
		t.Errorf("Expected window 1000x1000, got %vx%v", ww, wh)
	}
}

func TestHostContainerCentred(t *testing.T) {
	h := NewHost(1000, 1000, "container", "#debug", nil)
	if h.Container("other") != nil {
		t.Error("Expected nil for unknown container")
	}
	c := h.Container("container")
	c.SetSize(1000, 562.5)
	x, y := c.Offset()
	if x != 0 || y != 218.75 {
		t.Errorf("Expected offset (0,218.75), got (%v,%v)", x, y)
	}
	if h.LaunchContext() != "#debug" {
		t.Errorf("Expected launch context #debug, got %q", h.LaunchContext())
	}
}

func TestKeyMapping(t *testing.T) {
	for _, k := range []render.Key{render.KeyW, render.KeyM, render.KeyF9, render.KeyEscape} {
		if _, ok := keyToEbitenKey(k); !ok {
			t.Errorf("Expected key %d to be mapped", k)
		}
	}
	if _, ok := keyToEbitenKey(render.Key(999)); ok {
		t.Error("Expected unknown key to be unmapped")
	}
}
