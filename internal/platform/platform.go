package platform

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Samples   int
	GLMajor   int
	GLMinor   int
	Resizable bool
	// CaptureCursor hides the cursor and keeps it inside the window, which
	// is what a mouse-look camera needs.
	CaptureCursor bool
}

type PlatformWindowWrapper interface {
	Close()
	ShouldClose() bool
	SetShouldClose(v bool)
	NextEvent() (Event, bool)
	KeyDown(k Key) bool
	CursorPos() (x, y float64)
	SetCursorPos(x, y float64)
	Size() (width, height int)
	Time() float64
	BeginFrame()
	EndFrame()
}
