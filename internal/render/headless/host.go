package headless

import "chosenoffset.com/fireflies/internal/render"

type pendingFrame struct {
	id render.FrameID
	fn func()
}

// Host is a render.Host whose frames advance only on Step.
type Host struct {
	width, height float64
	dpr           float64
	launch        string
	containers    map[string]*Container

	nextID  render.FrameID
	pending []pendingFrame
	resize  []func()
}

// NewHost creates a host with the given window size and a device pixel
// ratio of 1.
func NewHost(width, height float64) *Host {
	return &Host{
		width:      width,
		height:     height,
		dpr:        1,
		containers: make(map[string]*Container),
	}
}

// AddContainer registers a named container centred in the window.
func (h *Host) AddContainer(name string) *Container {
	c := &Container{host: h}
	h.containers[name] = c
	return c
}

// Container returns the named container or nil.
func (h *Host) Container(name string) render.Container {
	c, ok := h.containers[name]
	if !ok {
		return nil
	}
	return c
}

// SetDevicePixelRatio sets the reported device pixel ratio.
func (h *Host) SetDevicePixelRatio(dpr float64) {
	h.dpr = dpr
}

// DevicePixelRatio returns the reported device pixel ratio.
func (h *Host) DevicePixelRatio() float64 {
	return h.dpr
}

// SetLaunchContext sets the launch string.
func (h *Host) SetLaunchContext(s string) {
	h.launch = s
}

// LaunchContext returns the launch string.
func (h *Host) LaunchContext() string {
	return h.launch
}

// WindowSize returns the window size.
func (h *Host) WindowSize() (float64, float64) {
	return h.width, h.height
}

// OnResize registers a resize callback.
func (h *Host) OnResize(fn func()) {
	h.resize = append(h.resize, fn)
}

// Resize changes the window size and runs every resize callback.
func (h *Host) Resize(width, height float64) {
	h.width, h.height = width, height
	for _, fn := range h.resize {
		fn()
	}
}

// RequestFrame queues fn for the next Step.
func (h *Host) RequestFrame(fn func()) render.FrameID {
	h.nextID++
	h.pending = append(h.pending, pendingFrame{id: h.nextID, fn: fn})
	return h.nextID
}

// CancelFrame removes a queued callback.
func (h *Host) CancelFrame(id render.FrameID) {
	for i, p := range h.pending {
		if p.id == id {
			h.pending = append(h.pending[:i], h.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of queued callbacks.
func (h *Host) Pending() int {
	return len(h.pending)
}

// Step runs the callbacks queued before the call. Callbacks they request
// wait for the following Step. It returns the number of callbacks run.
func (h *Host) Step() int {
	batch := h.pending
	h.pending = nil
	for _, p := range batch {
		p.fn()
	}
	return len(batch)
}

// Container is a rectangle centred in the host window.
type Container struct {
	host          *Host
	width, height float64
}

// SetSize sets the container size.
func (c *Container) SetSize(width, height float64) {
	c.width, c.height = width, height
}

// Size returns the container size.
func (c *Container) Size() (float64, float64) {
	return c.width, c.height
}

// Offset returns the top-left corner of the centred container.
func (c *Container) Offset() (float64, float64) {
	w, h := c.host.WindowSize()
	return (w - c.width) / 2, (h - c.height) / 2
}
