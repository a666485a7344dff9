// Package viewport fits the fixed-aspect game area into the host window.
package viewport

import (
	"log"
	"math"

	"chosenoffset.com/fireflies/internal/event"
	"chosenoffset.com/fireflies/internal/render"
)

// TargetAspect is the game area aspect ratio.
const TargetAspect = 16.0 / 9.0

// State is the result of a viewport computation.
type State struct {
	Resolution event.Vec2
	Aspect     float64
	DPR        int
	DomOffset  event.Point
}

// Manager owns the current viewport state and the container it sizes.
type Manager struct {
	container render.Container
	topic     *event.Topic[event.ResizeEvent]
	state     State

	// Logger receives a line per recompute when set.
	Logger *log.Logger
}

// NewManager creates a manager that sizes container and publishes on topic.
func NewManager(container render.Container, topic *event.Topic[event.ResizeEvent]) *Manager {
	return &Manager{container: container, topic: topic}
}

// Fit returns the largest TargetAspect rectangle that fits the window:
// pillarboxed when the window is wider, letterboxed otherwise.
// A zero height is not guarded.
func Fit(windowW, windowH float64) event.Vec2 {
	if windowW/windowH > TargetAspect {
		return event.Vec2{X: windowH * TargetAspect, Y: windowH}
	}
	return event.Vec2{X: windowW, Y: windowW / TargetAspect}
}

// PixelRatio snaps a device pixel ratio hint to 1 or 2.
func PixelRatio(hint float64) int {
	if hint > 1 {
		return 2
	}
	return 1
}

// Recompute fits the game area to the window, resizes the container, reads
// back its offset and publishes the result. Subscriber errors are returned
// after the state has been updated.
func (m *Manager) Recompute(windowW, windowH, dprHint float64) (State, error) {
	res := Fit(windowW, windowH)
	s := State{
		Resolution: res,
		Aspect:     res.X / res.Y,
		DPR:        PixelRatio(dprHint),
	}

	m.container.SetSize(res.X, res.Y)
	ox, oy := m.container.Offset()
	s.DomOffset = event.Point{X: int(math.Round(ox)), Y: int(math.Round(oy))}
	m.state = s

	if m.Logger != nil {
		m.Logger.Printf("viewport: window %.0fx%.0f -> %.1fx%.1f dpr=%d offset=(%d,%d)",
			windowW, windowH, res.X, res.Y, s.DPR, s.DomOffset.X, s.DomOffset.Y)
	}

	return s, m.topic.Emit(event.ResizeEvent{
		Resolution: s.Resolution,
		Aspect:     s.Aspect,
		DPR:        s.DPR,
		DomOffset:  s.DomOffset,
	})
}

// State returns the last computed state.
func (m *Manager) State() State {
	return m.state
}
