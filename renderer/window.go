package renderer

import (
	"fmt"

	"github.com/achilleasa/raybench/session"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window wraps the glfw window and implements the session Display
// collaborator: monotonic time, achieved framebuffer size and close
// requests.
type Window struct {
	handle *glfw.Window
	opts   Options
}

func NewWindow(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("renderer: failed to initialize glfw: %s", err.Error())
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	var monitor *glfw.Monitor
	if opts.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	handle, err := glfw.CreateWindow(int(opts.Width), int(opts.Height), opts.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("renderer: could not create window: %s", err.Error())
	}
	handle.MakeContextCurrent()

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err = gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("renderer: could not init opengl: %s", err.Error())
	}

	handle.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	return &Window{handle: handle, opts: opts}, nil
}

// The requested window configuration, for framebuffer-size validation.
func (w *Window) Config() session.WindowConfig {
	return session.WindowConfig{
		Width:      w.opts.Width,
		Height:     w.opts.Height,
		Fullscreen: w.opts.Fullscreen,
	}
}

// Seconds since glfw was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// The achieved framebuffer size.
func (w *Window) FramebufferSize() (uint32, uint32) {
	fbWidth, fbHeight := w.handle.GetFramebufferSize()
	return uint32(fbWidth), uint32(fbHeight)
}

// Request window close; the frame loop exits on the next iteration.
func (w *Window) Close() {
	w.handle.SetShouldClose(true)
}

func (w *Window) ShouldClose() bool {
	return w.handle.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.handle.SwapBuffers()
}

func (w *Window) Destroy() {
	w.handle.Destroy()
	glfw.Terminate()
}

// BindInput forwards window input events to the frame driver, mapping glfw
// codes to the session's window-system agnostic ones.
func (w *Window) BindInput(driver *session.Driver) {
	w.handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		driver.OnKey(mapKey(key), mapAction(action))
	})
	w.handle.SetCursorPosCallback(func(_ *glfw.Window, xPos, yPos float64) {
		driver.OnCursorPosition(xPos, yPos)
	})
	w.handle.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		switch button {
		case glfw.MouseButtonLeft:
			driver.OnMouseButton(session.MouseButtonLeft, mapAction(action))
		case glfw.MouseButtonRight:
			driver.OnMouseButton(session.MouseButtonRight, mapAction(action))
		}
	})
}

func mapKey(key glfw.Key) session.Key {
	switch key {
	case glfw.KeyEscape:
		return session.KeyEscape
	case glfw.KeyF1:
		return session.KeyF1
	case glfw.KeyF2:
		return session.KeyF2
	case glfw.KeyR:
		return session.KeyR
	case glfw.KeyW:
		return session.KeyW
	case glfw.KeyA:
		return session.KeyA
	case glfw.KeyS:
		return session.KeyS
	case glfw.KeyD:
		return session.KeyD
	case glfw.KeyUp:
		return session.KeyUp
	case glfw.KeyDown:
		return session.KeyDown
	case glfw.KeyLeft:
		return session.KeyLeft
	case glfw.KeyRight:
		return session.KeyRight
	case glfw.KeyLeftShift:
		return session.KeyLeftShift
	}
	return session.KeyUnknown
}

func mapAction(action glfw.Action) session.KeyAction {
	switch action {
	case glfw.Press:
		return session.KeyPress
	case glfw.Repeat:
		return session.KeyRepeat
	}
	return session.KeyRelease
}
