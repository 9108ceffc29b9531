// Package session implements the frame-by-frame control core of a
// progressive renderer: sample-accumulation scheduling, scene lifecycle
// sequencing and unattended benchmark automation. The actual draw work, the
// UI overlay and the windowing layer are external collaborators accessed
// through the interfaces below.
package session

import (
	"github.com/achilleasa/raybench/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// RenderMode selects the backend render path for a frame.
type RenderMode uint8

const (
	Rasterized RenderMode = iota
	RayTraced
)

// Backend is implemented by the graphics backend. The session core calls
// the resource lifecycle methods in a strict order (see Lifecycle) and never
// interleaves scene-resource and swapchain-resource lifetimes.
type Backend interface {
	// Render a frame with the given parameters.
	RenderFrame(params UniformParams, mode RenderMode) error

	// Scene-dependent resources (geometry buffers, textures, acceleration
	// structures).
	CreateSceneResources(sc *scene.Scene) error
	DestroySceneResources() error

	// Swapchain-dependent resources (render targets, overlay targets).
	CreateSwapchainResources() error
	DestroySwapchainResources() error

	// Block until all outstanding GPU work has completed.
	WaitIdle() error
}

// SceneSource provides the ordered scene registry and scene loading.
type SceneSource interface {
	// Number of available scenes.
	Count() int

	// Display name for the scene at the given index.
	Name(index int) string

	// Load the scene at the given index.
	LoadScene(index int) (*scene.Scene, scene.CameraInitialState, error)
}

// CameraView turns input events into a view transform. Methods returning a
// bool report whether the view changed, which invalidates accumulated
// samples.
type CameraView interface {
	// Reset the view to a scene's initial transform and movement speed.
	Reset(view mgl32.Mat4, speed float32)

	// Apply held-key movement for the elapsed frame time.
	UpdateCamera(delta float64) bool

	OnKey(key Key, action KeyAction) bool
	OnCursorPosition(x, y float64) bool
	OnMouseButton(button MouseButton, action KeyAction) bool

	// Current view transform.
	View() mgl32.Mat4
}

// Overlay is the UI/statistics collaborator.
type Overlay interface {
	// Consume this frame's statistics.
	Render(stats FrameStats)

	// True while the overlay wants exclusive use of the keyboard/mouse.
	WantsCaptureKeyboard() bool
	WantsCaptureMouse() bool
}

// Display abstracts the window system: a monotonic time source, the achieved
// framebuffer size and a close request.
type Display interface {
	Time() float64
	FramebufferSize() (uint32, uint32)
	Close()
}

// WindowConfig is the requested display mode, used to validate the achieved
// framebuffer size for fullscreen benchmark runs.
type WindowConfig struct {
	Width      uint32
	Height     uint32
	Fullscreen bool
}

// FrameStats is assembled once per frame and handed to the overlay.
type FrameStats struct {
	FramebufferWidth  uint32
	FramebufferHeight uint32

	FrameRate float32

	// Populated only on the ray-traced path.
	RayRate      float32
	TotalSamples uint32
}
