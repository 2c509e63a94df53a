package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW event handling and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

var glfwKeys = map[Key]glfw.Key{
	KeyEscape:    glfw.KeyEscape,
	KeyW:         glfw.KeyW,
	KeyA:         glfw.KeyA,
	KeyS:         glfw.KeyS,
	KeyD:         glfw.KeyD,
	KeySpace:     glfw.KeySpace,
	KeyLeftShift: glfw.KeyLeftShift,
	KeyR:         glfw.KeyR,
}

type glfwWindowWrapper struct {
	window *glfw.Window
	events *eventQueue
	cursor struct{ x, y float64 }
}

func NewPlatformWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Samples, conf.Samples)
	glfw.WindowHint(glfw.Resizable, boolHint(conf.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, conf.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, conf.GLMinor)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to open GLFW window: %w", err)
	}
	window.MakeContextCurrent()

	w := &glfwWindowWrapper{
		window: window,
		events: newEventQueue(1024),
	}
	w.installCallbacks()

	window.SetInputMode(glfw.StickyKeysMode, glfw.True)
	if conf.CaptureCursor {
		window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}
	glfw.PollEvents()
	window.SetCursorPos(float64(conf.Width)/2, float64(conf.Height)/2)
	return w, nil
}

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

func (w *glfwWindowWrapper) installCallbacks() {
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		label := glfw.GetKeyName(key, scancode)
		switch action {
		case glfw.Press:
			w.events.push(KeyPress{Code: uint64(key), Label: label})
		case glfw.Release:
			w.events.push(KeyRelease{Code: uint64(key), Label: label})
		}
	})
	w.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := int(w.cursor.x), int(w.cursor.y)
		switch action {
		case glfw.Press:
			w.events.push(ButtonPress{Button: uint32(button) + 1, X: x, Y: y})
		case glfw.Release:
			w.events.push(ButtonRelease{Button: uint32(button) + 1, X: x, Y: y})
		}
	})
	w.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.cursor.x, w.cursor.y = x, y
		w.events.push(MotionNotify{X: int(x), Y: int(y)})
	})
	w.window.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		w.events.push(MouseWheel{DeltaX: dx, DeltaY: dy, X: int(w.cursor.x), Y: int(w.cursor.y)})
	})
	w.window.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			w.events.push(EnterNotify{})
		} else {
			w.events.push(LeaveNotify{})
		}
	})
	w.window.SetCloseCallback(func(_ *glfw.Window) {
		w.events.push(DestroyNotify{})
	})
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.events.push(FramebufferResize{Width: width, Height: height})
	})
}

func (w *glfwWindowWrapper) Close() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
}

func (w *glfwWindowWrapper) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *glfwWindowWrapper) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

func (w *glfwWindowWrapper) NextEvent() (Event, bool) {
	return w.events.pop()
}

func (w *glfwWindowWrapper) KeyDown(k Key) bool {
	key, ok := glfwKeys[k]
	if !ok {
		return false
	}
	return w.window.GetKey(key) == glfw.Press
}

func (w *glfwWindowWrapper) CursorPos() (float64, float64) {
	return w.window.GetCursorPos()
}

func (w *glfwWindowWrapper) SetCursorPos(x, y float64) {
	w.window.SetCursorPos(x, y)
}

func (w *glfwWindowWrapper) Size() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *glfwWindowWrapper) Time() float64 {
	return glfw.GetTime()
}

func (w *glfwWindowWrapper) BeginFrame() {}

func (w *glfwWindowWrapper) EndFrame() {
	w.window.SwapBuffers()
	glfw.PollEvents()
}
