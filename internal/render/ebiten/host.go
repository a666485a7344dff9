package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/fireflies/internal/render"
)

type frameRequest struct {
	id render.FrameID
	fn func()
}

// Host runs inside an Ebiten window. Every Update tick is one frame: the
// callbacks requested during the previous tick run in order. Host also
// implements render.Game, so it is what the engine runs.
type Host struct {
	width, height float64
	launch        string
	container     *Container
	containerName string

	nextID  render.FrameID
	pending []frameRequest
	resize  []func()

	input render.InputManager
	draw  func(screen render.Image)
}

// NewHost creates a host for a window of the given initial size whose
// game area lives in a container called containerName.
func NewHost(width, height int, containerName, launch string, input render.InputManager) *Host {
	h := &Host{
		width:         float64(width),
		height:        float64(height),
		launch:        launch,
		containerName: containerName,
		input:         input,
	}
	h.container = &Container{host: h}
	return h
}

// SetDraw sets the function that paints each frame.
func (h *Host) SetDraw(fn func(screen render.Image)) {
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

// WindowSize returns the last laid-out window size.
func (h *Host) WindowSize() (float64, float64) {
	return h.width, h.height
}

// DevicePixelRatio returns the scale factor of the window's monitor.
func (h *Host) DevicePixelRatio() float64 {
	m := ebiten.Monitor()
	if m == nil {
		return 1
	}
	return m.DeviceScaleFactor()
}

// Container returns the game area container if name matches.
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

// Update runs the frame callbacks queued before this tick.
func (h *Host) Update() error {
	if h.input != nil && h.input.IsKeyJustPressed(render.KeyEscape) {
		return ebiten.Termination
	}
	batch := h.pending
	h.pending = nil
	for _, r := range batch {
		r.fn()
	}
	return nil
}

// Draw paints the frame.
func (h *Host) Draw(screen render.Image) {
	if h.draw != nil {
		h.draw(screen)
	}
}

// Layout keeps the screen the same size as the window and reports size
// changes to the resize callbacks.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, ht := float64(outsideWidth), float64(outsideHeight)
	if w != h.width || ht != h.height {
		h.width, h.height = w, ht
		for _, fn := range h.resize {
			fn()
		}
	}
	return outsideWidth, outsideHeight
}

// Container is the game area, centred in the window.
type Container struct {
	host          *Host
	width, height float64
}

// SetSize sets the game area size.
func (c *Container) SetSize(width, height float64) {
	c.width, c.height = width, height
}

// Offset returns the top-left corner of the game area.
func (c *Container) Offset() (float64, float64) {
	return (c.host.width - c.width) / 2, (c.host.height - c.height) / 2
}
