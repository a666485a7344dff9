package render

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// Scheduler is the host's per-frame scheduling primitive and its
// cancellation counterpart.
type Scheduler interface {
	// RequestFrame runs fn once at the start of the next frame.
	RequestFrame(fn func()) FrameID
	// CancelFrame drops a pending callback. Unknown or already-run ids are ignored.
	CancelFrame(id FrameID)
}

// Container is the visual element that holds the game area.
type Container interface {
	// SetSize sets the container size in pixels.
	SetSize(width, height float64)
	// Offset returns the rendered position of the container's top-left
	// corner relative to the window.
	Offset() (x, y float64)
}

// Host is everything the game needs from the environment it runs in.
type Host interface {
	Scheduler

	// WindowSize returns the inner window size in pixels.
	WindowSize() (width, height float64)
	// DevicePixelRatio returns the raw device pixel ratio reported by the host.
	DevicePixelRatio() float64
	// Container looks up a container by name. It returns nil when none exists.
	Container(name string) Container
	// OnResize registers fn to run synchronously on every window resize.
	OnResize(fn func())
	// LaunchContext returns the launch string (URL fragment, command-line
	// marker) used to derive the debug flag.
	LaunchContext() string
}
