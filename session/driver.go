package session

import (
	"fmt"
	"io"

	"github.com/achilleasa/raybench/log"
)

var logger = log.New("session")

// Driver is the per-frame entry point. It resolves pending scene switches,
// updates accumulation and benchmark state, invokes the backend and hands
// frame statistics to the overlay. It must be ticked from a single thread;
// input callbacks are expected to arrive synchronously between ticks.
type Driver struct {
	settings *Settings

	backend Backend
	display Display
	source  SceneSource
	camera  CameraView
	overlay Overlay

	lifecycle *Lifecycle
	acc       *Accumulator
	bench     *Benchmark

	prevTime float64
}

// NewDriver validates the display configuration, loads the initial scene
// and builds the initial backend resources. reportStream receives the
// benchmark's plain-text reports.
func NewDriver(settings *Settings, backend Backend, display Display, source SceneSource, camera CameraView, overlay Overlay, reportStream io.Writer, cfg WindowConfig) (*Driver, error) {
	if source.Count() == 0 {
		return nil, ErrNoScenes
	}
	if settings.SceneIndex < 0 || settings.SceneIndex >= source.Count() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrSceneIndexOutOfRange, settings.SceneIndex, source.Count())
	}
	if err := checkFramebufferSize(settings, display, cfg); err != nil {
		return nil, err
	}

	d := &Driver{
		settings:  settings,
		backend:   backend,
		display:   display,
		source:    source,
		camera:    camera,
		overlay:   overlay,
		lifecycle: NewLifecycle(backend, source, camera),
		acc:       NewAccumulator(),
		bench:     NewBenchmark(reportStream),
	}

	if err := d.lifecycle.Initialize(settings, d.acc, d.bench); err != nil {
		return nil, err
	}
	d.prevTime = display.Time()

	return d, nil
}

// A fullscreen window is not guaranteed to get the requested mode; a
// mismatch would invalidate benchmark measurements, so it is fatal.
func checkFramebufferSize(settings *Settings, display Display, cfg WindowConfig) error {
	if !settings.Benchmark || !cfg.Fullscreen {
		return nil
	}
	fbWidth, fbHeight := display.FramebufferSize()
	if fbWidth != cfg.Width || fbHeight != cfg.Height {
		return fmt.Errorf("session: framebuffer fullscreen size mismatch (requested: %dx%d, got: %dx%d)",
			cfg.Width, cfg.Height, fbWidth, fbHeight)
	}
	return nil
}

// The benchmark controller, exposed so commands can print a run summary.
func (d *Driver) Benchmark() *Benchmark {
	return d.bench
}

// The accumulated sample count for the current view.
func (d *Driver) TotalSamples() uint32 {
	return d.acc.TotalSamples()
}

// Tick runs one frame. It returns false without rendering when the tick was
// consumed by a scene switch; rendering resumes on the next tick. Errors
// are fatal for the run.
func (d *Driver) Tick() (rendered bool, err error) {
	// Resolve a pending scene switch before anything else touches backend
	// resources.
	if d.lifecycle.SwitchPending(d.settings) {
		logger.Infof("switching to scene #%d '%s'", d.settings.SceneIndex, d.source.Name(d.settings.SceneIndex))
		if err := d.lifecycle.Switch(d.settings, d.acc, d.bench); err != nil {
			return false, err
		}
		return false, nil
	}

	samplesThisFrame := d.acc.Update(*d.settings)

	prevTime := d.prevTime
	now := d.display.Time()
	delta := now - prevTime
	d.prevTime = now

	// Held-key camera movement invalidates accumulation from the next
	// frame on.
	if d.camera.UpdateCamera(delta) {
		d.acc.RequestReset()
	}

	switch d.bench.Tick(*d.settings, now, prevTime, d.source.Name(d.settings.SceneIndex), d.source.Count(), samplesThisFrame) {
	case BenchActionAdvanceScene:
		d.settings.SceneIndex++
	case BenchActionShutdown:
		d.display.Close()
	}

	fbWidth, fbHeight := d.display.FramebufferSize()
	params := ComposeUniform(d.camera.View(), fbWidth, fbHeight, *d.settings,
		d.acc.TotalSamples(), samplesThisFrame, d.lifecycle.Initial().HasSky)

	mode := Rasterized
	if d.settings.IsRayTraced {
		mode = RayTraced
	}
	if err := d.backend.RenderFrame(params, mode); err != nil {
		return false, err
	}

	stats := FrameStats{
		FramebufferWidth:  fbWidth,
		FramebufferHeight: fbHeight,
		FrameRate:         float32(1 / delta),
	}
	if d.settings.IsRayTraced {
		stats.RayRate = float32(float64(fbWidth) * float64(fbHeight) * float64(samplesThisFrame) / (delta * 1e9))
		stats.TotalSamples = d.acc.TotalSamples()
	}
	d.overlay.Render(stats)

	return true, nil
}

// OnKey handles a key event. Toggle keys are disabled while benchmarking;
// camera input is suppressed entirely.
func (d *Driver) OnKey(key Key, action KeyAction) {
	if d.overlay.WantsCaptureKeyboard() {
		return
	}

	if action == KeyPress {
		if key == KeyEscape {
			d.display.Close()
		}

		if !d.settings.Benchmark {
			switch key {
			case KeyF1:
				d.settings.ShowSettings = !d.settings.ShowSettings
			case KeyF2:
				d.settings.ShowOverlay = !d.settings.ShowOverlay
			case KeyR:
				d.settings.IsRayTraced = !d.settings.IsRayTraced
			}
		}
	}

	if !d.settings.Benchmark && d.camera.OnKey(key, action) {
		d.acc.RequestReset()
	}
}

// OnCursorPosition handles cursor movement.
func (d *Driver) OnCursorPosition(x, y float64) {
	if d.settings.Benchmark ||
		d.overlay.WantsCaptureKeyboard() ||
		d.overlay.WantsCaptureMouse() {
		return
	}

	if d.camera.OnCursorPosition(x, y) {
		d.acc.RequestReset()
	}
}

// OnMouseButton handles mouse button events.
func (d *Driver) OnMouseButton(button MouseButton, action KeyAction) {
	if d.settings.Benchmark || d.overlay.WantsCaptureMouse() {
		return
	}

	if d.camera.OnMouseButton(button, action) {
		d.acc.RequestReset()
	}
}
