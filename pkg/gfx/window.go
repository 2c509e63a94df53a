package gfx

import (
	"context"

	"github.com/kjkrol/gohouse/internal/platform"
)

type WindowConfig struct {
	Width         int
	Height        int
	Title         string
	Samples       int
	Resizable     bool
	CaptureCursor bool
}

func (w WindowConfig) convert() platform.WindowConfig {
	return platform.WindowConfig{
		Width:         w.Width,
		Height:        w.Height,
		Title:         w.Title,
		Samples:       w.Samples,
		GLMajor:       3,
		GLMinor:       3,
		Resizable:     w.Resizable,
		CaptureCursor: w.CaptureCursor,
	}
}

type Window struct {
	platformWinWrapper platform.PlatformWindowWrapper
	renderer           Renderer
	timer              *FrameTimer
	width              int
	height             int

	updates chan func()
}

// FrameHandler runs once per frame, after events were consumed and before
// rendering. dt is the time since the previous frame in seconds.
type FrameHandler func(w *Window, dt float64)

func NewWindow(conf WindowConfig, factory RendererFactory) (*Window, error) {
	wrapper, err := platform.NewPlatformWindowWrapper(conf.convert())
	if err != nil {
		return nil, err
	}
	return newWindow(wrapper, factory), nil
}

func newWindow(wrapper platform.PlatformWindowWrapper, factory RendererFactory) *Window {
	width, height := wrapper.Size()
	window := Window{
		platformWinWrapper: wrapper,
		timer:              NewFrameTimer(wrapper.Time),
		width:              width,
		height:             height,
		updates:            make(chan func(), 64),
	}
	if factory != nil {
		window.renderer = factory(&window)
	}
	return &window
}

func (w *Window) Size() (int, int) {
	if w == nil {
		return 0, 0
	}
	return w.width, w.height
}

func (w *Window) Timer() *FrameTimer {
	return w.timer
}

func (w *Window) KeyDown(k Key) bool {
	return w.platformWinWrapper.KeyDown(k)
}

func (w *Window) CursorPos() (float64, float64) {
	return w.platformWinWrapper.CursorPos()
}

func (w *Window) SetCursorPos(x, y float64) {
	w.platformWinWrapper.SetCursorPos(x, y)
}

// Stop asks the render loop to finish after the current frame.
func (w *Window) Stop() {
	w.platformWinWrapper.SetShouldClose(true)
}

func (w *Window) SetRenderer(renderer Renderer) {
	if w == nil {
		return
	}
	if w.renderer != nil {
		w.renderer.Close()
	}
	w.renderer = renderer
}

// Post schedules fn to run on the render loop before the next frame is
// drawn. It is the only safe way for other goroutines to touch GL state.
// Post does not block; it reports false if the queue is full.
func (w *Window) Post(fn func()) bool {
	select {
	case w.updates <- fn:
		return true
	default:
		return false
	}
}

func (w *Window) Close() {
	if w.renderer != nil {
		w.renderer.Close()
		w.renderer = nil
	}
	w.platformWinWrapper.Close()
}

// Run drives the render loop until the window is asked to close or ctx is
// cancelled. Each iteration ticks the frame timer, consumes window events,
// runs queued updates and onFrame, renders, then swaps buffers and polls.
func (w *Window) Run(ctx context.Context, handleEvent func(Event), onFrame FrameHandler, strategy EventsConsumerStrategy) error {
	if strategy == nil {
		strategy = DrainAll()
	}
	poll := func() (Event, bool) {
		platformEvent, ok := w.platformWinWrapper.NextEvent()
		if !ok {
			return nil, false
		}
		return convert(platformEvent), true
	}
	handle := func(event Event) {
		if r, ok := event.(Resize); ok {
			w.width, w.height = r.Width, r.Height
		}
		if handleEvent != nil {
			handleEvent(event)
		}
	}

	for !w.platformWinWrapper.ShouldClose() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		dt := w.timer.Tick()
		strategy.Consume(poll, handle)

		for pending := true; pending; {
			select {
			case upd := <-w.updates:
				upd()
			default:
				pending = false
			}
		}

		if onFrame != nil {
			onFrame(w, dt)
		}

		w.platformWinWrapper.BeginFrame()
		if w.renderer != nil {
			w.renderer.Render(w)
		}
		w.platformWinWrapper.EndFrame()
	}
	return nil
}
