package platform

type Event interface{}

type KeyPress struct {
	Code  uint64
	Label string
}
type KeyRelease struct {
	Code  uint64
	Label string
}
type ButtonPress struct {
	Button uint32
	X, Y   int
}
type ButtonRelease struct {
	Button uint32
	X, Y   int
}
type MotionNotify struct {
	X, Y int
}
type EnterNotify struct{}
type LeaveNotify struct{}
type DestroyNotify struct{}
type FramebufferResize struct {
	Width, Height int
}
type MouseWheel struct {
	DeltaX float64
	DeltaY float64
	X, Y   int
}
type UnexpectedEvent struct{}

// eventQueue is a bounded FIFO filled by window callbacks and drained once
// per frame. When full the oldest event is dropped.
type eventQueue struct {
	buf  []Event
	head int
	size int
}

func newEventQueue(capacity int) *eventQueue {
	if capacity <= 0 {
		capacity = 1024
	}
	return &eventQueue{buf: make([]Event, capacity)}
}

func (q *eventQueue) push(e Event) {
	if q.size == len(q.buf) {
		q.head = (q.head + 1) % len(q.buf)
		q.size--
	}
	q.buf[(q.head+q.size)%len(q.buf)] = e
	q.size++
}

func (q *eventQueue) pop() (Event, bool) {
	if q.size == 0 {
		return nil, false
	}
	e := q.buf[q.head]
	q.buf[q.head] = nil
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return e, true
}
