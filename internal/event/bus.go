package event

// Topic names.
const (
	TopicDirPressed  = "dir-pressed"
	TopicDirReleased = "dir-released"
	TopicResize      = "game-resize"
	TopicAnimate     = "game-animate"
)

// Vec2 is a pair of floating-point pixel values.
type Vec2 struct {
	X, Y float64
}

// Point is an integer pixel position.
type Point struct {
	X, Y int
}

// DirEvent names a direction that was pressed or released.
type DirEvent struct {
	Dir string
}

// ResizeEvent describes the game area after a viewport recompute.
type ResizeEvent struct {
	Resolution Vec2
	Aspect     float64
	DPR        int
	DomOffset  Point
}

// AnimateEvent is the per-frame tick. Frame counts ticks since start.
type AnimateEvent struct {
	Frame uint64
}

// Bus groups the topics shared by the game and its collaborators.
type Bus struct {
	DirPressed  *Topic[DirEvent]
	DirReleased *Topic[DirEvent]
	Resize      *Topic[ResizeEvent]
	Animate     *Topic[AnimateEvent]
}

// NewBus creates a bus with all topics empty.
func NewBus() *Bus {
	return &Bus{
		DirPressed:  NewTopic[DirEvent](TopicDirPressed),
		DirReleased: NewTopic[DirEvent](TopicDirReleased),
		Resize:      NewTopic[ResizeEvent](TopicResize),
		Animate:     NewTopic[AnimateEvent](TopicAnimate),
	}
}
