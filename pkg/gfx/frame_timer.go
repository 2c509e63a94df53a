package gfx

// FrameTimer tracks the time elapsed between successive frames. It belongs
// to the render loop that ticks it.
type FrameTimer struct {
	clock    func() float64
	previous float64
	delta    float64
}

// NewFrameTimer measures time with clock, in seconds since an arbitrary
// origin. The first Tick reports the time since that origin.
func NewFrameTimer(clock func() float64) *FrameTimer {
	return &FrameTimer{clock: clock}
}

func (t *FrameTimer) Tick() float64 {
	now := t.clock()
	t.delta = now - t.previous
	t.previous = now
	return t.delta
}

func (t *FrameTimer) Delta() float64 {
	return t.delta
}

func (t *FrameTimer) Elapsed() float64 {
	return t.previous
}
