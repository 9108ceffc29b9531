package session

import (
	"errors"

	"github.com/achilleasa/raybench/scene"
	"github.com/go-gl/mathgl/mgl32"
)

var errBackendFailure = errors.New("backend failure")

// A backend that records the order of lifecycle calls and can be scripted
// to fail on a particular call.
type fakeBackend struct {
	calls  []string
	failOn string
}

func (b *fakeBackend) call(name string) error {
	b.calls = append(b.calls, name)
	if name == b.failOn {
		return errBackendFailure
	}
	return nil
}

func (b *fakeBackend) RenderFrame(params UniformParams, mode RenderMode) error {
	return b.call("render")
}

func (b *fakeBackend) CreateSceneResources(sc *scene.Scene) error {
	return b.call("create-scene")
}

func (b *fakeBackend) DestroySceneResources() error {
	return b.call("destroy-scene")
}

func (b *fakeBackend) CreateSwapchainResources() error {
	return b.call("create-swapchain")
}

func (b *fakeBackend) DestroySwapchainResources() error {
	return b.call("destroy-swapchain")
}

func (b *fakeBackend) WaitIdle() error {
	return b.call("wait-idle")
}

type fakeSource struct {
	names    []string
	initial  []scene.CameraInitialState
	textures map[int][]*scene.Texture
	loads    *[]string
}

func newFakeSource(names ...string) *fakeSource {
	src := &fakeSource{
		names:    names,
		initial:  make([]scene.CameraInitialState, len(names)),
		textures: make(map[int][]*scene.Texture),
		loads:    new([]string),
	}
	for i := range src.initial {
		src.initial[i] = scene.CameraInitialState{
			ModelView:     mgl32.Ident4(),
			FieldOfView:   40 + float32(i),
			Aperture:      float32(i) * 0.1,
			FocusDistance: 10,
			ControlSpeed:  1,
		}
	}
	return src
}

func (s *fakeSource) Count() int {
	return len(s.names)
}

func (s *fakeSource) Name(index int) string {
	return s.names[index]
}

func (s *fakeSource) LoadScene(index int) (*scene.Scene, scene.CameraInitialState, error) {
	*s.loads = append(*s.loads, "load-scene")
	sc := scene.NewScene()
	sc.Textures = append(sc.Textures, s.textures[index]...)
	return sc, s.initial[index], nil
}

type fakeCamera struct {
	view       mgl32.Mat4
	resets     int
	lastSpeed  float32
	moved      bool
	keyChanges bool

	keyCalls    int
	cursorCalls int
	buttonCalls int
}

func (c *fakeCamera) Reset(view mgl32.Mat4, speed float32) {
	c.view = view
	c.lastSpeed = speed
	c.resets++
}

func (c *fakeCamera) UpdateCamera(delta float64) bool {
	return c.moved
}

func (c *fakeCamera) OnKey(key Key, action KeyAction) bool {
	c.keyCalls++
	return c.keyChanges
}

func (c *fakeCamera) OnCursorPosition(x, y float64) bool {
	c.cursorCalls++
	return c.keyChanges
}

func (c *fakeCamera) OnMouseButton(button MouseButton, action KeyAction) bool {
	c.buttonCalls++
	return c.keyChanges
}

func (c *fakeCamera) View() mgl32.Mat4 {
	return c.view
}

type fakeOverlay struct {
	stats        []FrameStats
	captureKeys  bool
	captureMouse bool
}

func (o *fakeOverlay) Render(stats FrameStats) {
	o.stats = append(o.stats, stats)
}

func (o *fakeOverlay) WantsCaptureKeyboard() bool {
	return o.captureKeys
}

func (o *fakeOverlay) WantsCaptureMouse() bool {
	return o.captureMouse
}

// A display with a scripted clock. Time() returns the next scripted value,
// sticking at the last one when the script runs out.
type fakeDisplay struct {
	times    []float64
	nextTime int
	width    uint32
	height   uint32
	closed   bool
}

func newFakeDisplay(width, height uint32, times ...float64) *fakeDisplay {
	return &fakeDisplay{times: times, width: width, height: height}
}

func (d *fakeDisplay) Time() float64 {
	if d.nextTime >= len(d.times) {
		return d.times[len(d.times)-1]
	}
	t := d.times[d.nextTime]
	d.nextTime++
	return t
}

func (d *fakeDisplay) FramebufferSize() (uint32, uint32) {
	return d.width, d.height
}

func (d *fakeDisplay) Close() {
	d.closed = true
}
