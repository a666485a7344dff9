// Package loop drives the per-frame update and tick broadcast on top of a
// host frame scheduler.
package loop

import (
	"log"

	"chosenoffset.com/fireflies/internal/event"
	"chosenoffset.com/fireflies/internal/render"
)

// Loop runs Update and then broadcasts a frame tick once per host frame.
// It is single-threaded: every call must come from the host's frame thread.
type Loop struct {
	sched render.Scheduler
	topic *event.Topic[event.AnimateEvent]

	// Update runs at the start of every frame, before the tick broadcast.
	Update func()
	// Logger receives tick errors. Defaults to log.Default().
	Logger *log.Logger

	running    bool
	token      uint64
	pending    render.FrameID
	hasPending bool
	frames     uint64
	inFrame    bool
}

// New creates a stopped loop.
func New(sched render.Scheduler, topic *event.Topic[event.AnimateEvent]) *Loop {
	return &Loop{sched: sched, topic: topic}
}

// Start runs the first frame immediately and keeps the loop scheduled.
// Called from inside a frame, it schedules the first frame instead so
// frames never nest. Starting a running loop does nothing.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.token++
	if l.inFrame {
		l.schedule(l.token)
		return
	}
	l.frame(l.token)
}

// Stop cancels the next scheduled frame. A frame that is already running
// finishes but does not schedule another.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.token++
	if l.hasPending {
		l.sched.CancelFrame(l.pending)
		l.hasPending = false
	}
}

// Running reports whether the loop is started.
func (l *Loop) Running() bool {
	return l.running
}

// Frames returns the number of ticks broadcast so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}

func (l *Loop) frame(token uint64) {
	l.hasPending = false
	l.inFrame = true
	if l.Update != nil {
		l.Update()
	}

	l.frames++
	if err := l.topic.Emit(event.AnimateEvent{Frame: l.frames}); err != nil {
		l.logger().Printf("loop: frame %d: %v", l.frames, err)
	}

	l.inFrame = false

	// The tick outcome does not matter here; only a Stop issued during
	// this frame prevents the next one.
	if token != l.token {
		return
	}
	l.schedule(token)
}

func (l *Loop) schedule(token uint64) {
	l.pending = l.sched.RequestFrame(func() { l.frame(token) })
	l.hasPending = true
}

func (l *Loop) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.Default()
}
