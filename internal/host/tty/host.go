// Package tty runs the game in a terminal. Each cell is one unit wide and
// CellAspect units tall, so the fixed-aspect game area keeps its shape.
package tty

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/fireflies/internal/render"
)

// CellAspect is the height of a terminal cell relative to its width.
const CellAspect = 2.0

// FrameInterval is the tick period of the terminal host.
const FrameInterval = 33 * time.Millisecond

type frameRequest struct {
	id render.FrameID
	fn func()
}

// Host is a render.Host on a tcell screen.
type Host struct {
	screen        tcell.Screen
	keyboard      *Keyboard
	launch        string
	containerName string
	container     *Container

	cols, rows int
	nextID     render.FrameID
	pending    []frameRequest
	resize     []func()

	draw func(s tcell.Screen)
}

// NewHost wraps an initialised screen.
func NewHost(screen tcell.Screen, containerName, launch string) *Host {
	h := &Host{
		screen:        screen,
		keyboard:      NewKeyboard(),
		launch:        launch,
		containerName: containerName,
	}
	h.container = &Container{host: h}
	h.cols, h.rows = screen.Size()
	return h
}

// Keyboard returns the host's input manager.
func (h *Host) Keyboard() *Keyboard {
	return h.keyboard
}

// Screen returns the underlying screen.
func (h *Host) Screen() tcell.Screen {
	return h.screen
}

// SetDraw sets the function that paints each frame.
func (h *Host) SetDraw(fn func(s tcell.Screen)) {
	h.draw = fn
}

// RequestFrame queues fn for the next tick.
func (h *Host) RequestFrame(fn func()) render.FrameID {
	h.nextID++
	h.pending = append(h.pending, frameRequest{id: h.nextID, fn: fn})
	return h.nextID
}

// CancelFrame drops a queued callback.
func (h *Host) CancelFrame(id render.FrameID) {
	for i, r := range h.pending {
		if r.id == id {
			h.pending = append(h.pending[:i], h.pending[i+1:]...)
			return
		}
	}
}

// WindowSize returns the screen size in cell-width units.
func (h *Host) WindowSize() (float64, float64) {
	return float64(h.cols), float64(h.rows) * CellAspect
}

// DevicePixelRatio is always 1 in a terminal.
func (h *Host) DevicePixelRatio() float64 {
	return 1
}

// Container returns the game area if name matches.
func (h *Host) Container(name string) render.Container {
	if name != h.containerName {
		return nil
	}
	return h.container
}

// OnResize registers a resize callback.
func (h *Host) OnResize(fn func()) {
	h.resize = append(h.resize, fn)
}

// LaunchContext returns the launch marker.
func (h *Host) LaunchContext() string {
	return h.launch
}

// Run ticks frames until ctx is done or the user quits with Escape or
// Ctrl-C.
func (h *Host) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.handle(ev) {
				return nil
			}
		case <-ticker.C:
			h.tick()
		}
	}
}

// handle applies one terminal event. It returns false on quit.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if key, ok := keyFromEvent(ev); ok {
			h.keyboard.Press(key)
		}
	case *tcell.EventResize:
		h.cols, h.rows = ev.Size()
		h.screen.Sync()
		for _, fn := range h.resize {
			fn()
		}
	}
	return true
}

// tick runs the frame callbacks queued before it and repaints.
func (h *Host) tick() {
	batch := h.pending
	h.pending = nil
	for _, r := range batch {
		r.fn()
	}
	h.keyboard.EndFrame()

	if h.draw != nil {
		h.screen.Clear()
		h.draw(h.screen)
		h.screen.Show()
	}
}

// Container is the game area, centred on the screen.
type Container struct {
	host          *Host
	width, height float64
}

// SetSize sets the game area size in cell-width units.
func (c *Container) SetSize(width, height float64) {
	c.width, c.height = width, height
}

// Offset returns the top-left corner of the game area.
func (c *Container) Offset() (float64, float64) {
	w, h := c.host.WindowSize()
	return (w - c.width) / 2, (h - c.height) / 2
}
