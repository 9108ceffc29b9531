package session

import (
	"bytes"
	"strings"
	"testing"
)

type driverFixture struct {
	settings *Settings
	backend  *fakeBackend
	display  *fakeDisplay
	source   *fakeSource
	camera   *fakeCamera
	overlay  *fakeOverlay
	reports  *bytes.Buffer
	driver   *Driver
}

func newDriverFixture(t *testing.T, settings *Settings, display *fakeDisplay, sceneNames ...string) *driverFixture {
	t.Helper()

	f := &driverFixture{
		settings: settings,
		backend:  &fakeBackend{},
		display:  display,
		source:   newFakeSource(sceneNames...),
		camera:   &fakeCamera{},
		overlay:  &fakeOverlay{},
		reports:  &bytes.Buffer{},
	}

	driver, err := NewDriver(settings, f.backend, display, f.source, f.camera, f.overlay, f.reports,
		WindowConfig{Width: display.width, Height: display.height})
	if err != nil {
		t.Fatal(err)
	}
	f.driver = driver

	return f
}

func TestFullscreenBenchmarkFramebufferMismatch(t *testing.T) {
	settings := &Settings{Benchmark: true}
	backend := &fakeBackend{}
	display := newFakeDisplay(1920, 1040, 0)

	_, err := NewDriver(settings, backend, display, newFakeSource("scene"), &fakeCamera{}, &fakeOverlay{}, nil,
		WindowConfig{Width: 1920, Height: 1080, Fullscreen: true})
	if err == nil {
		t.Fatal("expected a framebuffer mismatch error")
	}
	if !strings.Contains(err.Error(), "requested: 1920x1080, got: 1920x1040") {
		t.Fatalf("expected a descriptive mismatch error; got %q", err.Error())
	}
	if len(backend.calls) != 0 {
		t.Fatalf("no backend resources may be touched after a mismatch; got %v", backend.calls)
	}
}

func TestDriverRejectsBadInitialSceneIndex(t *testing.T) {
	settings := &Settings{SceneIndex: 5}
	display := newFakeDisplay(100, 100, 0)

	_, err := NewDriver(settings, &fakeBackend{}, display, newFakeSource("only"), &fakeCamera{}, &fakeOverlay{}, nil, WindowConfig{})
	if err == nil || !strings.Contains(err.Error(), "scene index out of range") {
		t.Fatalf("expected scene index error; got %v", err)
	}
}

func TestSceneSwitchConsumesTick(t *testing.T) {
	settings := &Settings{AccumulateRays: true, SamplesPerFrame: 4, MaxTotalSamples: 100}
	display := newFakeDisplay(100, 100, 0, 1, 2, 3)
	f := newDriverFixture(t, settings, display, "first", "second")
	f.backend.calls = nil

	settings.SceneIndex = 1
	rendered, err := f.driver.Tick()
	if err != nil {
		t.Fatal(err)
	}
	if rendered {
		t.Fatal("the switch tick must not render")
	}
	for _, call := range f.backend.calls {
		if call == "render" {
			t.Fatalf("backend rendered during a scene switch: %v", f.backend.calls)
		}
	}

	rendered, err = f.driver.Tick()
	if err != nil {
		t.Fatal(err)
	}
	if !rendered {
		t.Fatal("rendering must resume on the tick after a switch")
	}
}

func TestBenchmarkRunAdvancesAndShutsDown(t *testing.T) {
	settings := &Settings{
		IsRayTraced:         true,
		AccumulateRays:      true,
		SamplesPerFrame:     4,
		MaxTotalSamples:     4,
		Benchmark:           true,
		BenchmarkMaxTime:    1000,
		BenchmarkNextScenes: true,
	}
	display := newFakeDisplay(100, 100, 0, 1, 2, 3, 4, 5, 6, 7)
	f := newDriverFixture(t, settings, display, "first", "second")

	// Scene 0 converges after one frame; the run should cycle to scene 1
	// and then request shutdown.
	for tick := 0; tick < 5 && !display.closed; tick++ {
		if _, err := f.driver.Tick(); err != nil {
			t.Fatal(err)
		}
	}

	if !display.closed {
		t.Fatal("expected the run to request shutdown")
	}
	if settings.SceneIndex != 1 {
		t.Fatalf("expected run to finish on scene 1; got %d", settings.SceneIndex)
	}

	out := f.reports.String()
	if !strings.Contains(out, "Benchmark: Start scene #0 'first'") ||
		!strings.Contains(out, "Benchmark: Start scene #1 'second'") {
		t.Fatalf("expected start reports for both scenes; got %q", out)
	}

	results := f.driver.Benchmark().Results()
	if len(results) != 2 {
		t.Fatalf("expected results for 2 scenes; got %+v", results)
	}
}

func TestFrameStatsPerRenderPath(t *testing.T) {
	type spec struct {
		rayTraced    bool
		expRayRate   float32
		expTotal     uint32
		expFrameRate float32
	}
	specs := []spec{
		{true, 100 * 50 * 4 / 1e9, 4, 1},
		{false, 0, 0, 1},
	}

	for index, s := range specs {
		settings := &Settings{
			IsRayTraced:     s.rayTraced,
			AccumulateRays:  true,
			SamplesPerFrame: 4,
			MaxTotalSamples: 100,
		}
		display := newFakeDisplay(100, 50, 0, 1)
		f := newDriverFixture(t, settings, display, "scene")

		if _, err := f.driver.Tick(); err != nil {
			t.Fatal(err)
		}

		if len(f.overlay.stats) != 1 {
			t.Fatalf("[spec %d] expected one stats record; got %d", index, len(f.overlay.stats))
		}
		stats := f.overlay.stats[0]
		if stats.FramebufferWidth != 100 || stats.FramebufferHeight != 50 {
			t.Fatalf("[spec %d] unexpected framebuffer size %dx%d", index, stats.FramebufferWidth, stats.FramebufferHeight)
		}
		if stats.FrameRate != s.expFrameRate {
			t.Fatalf("[spec %d] expected frame rate %v; got %v", index, s.expFrameRate, stats.FrameRate)
		}
		if stats.RayRate != s.expRayRate {
			t.Fatalf("[spec %d] expected ray rate %v; got %v", index, s.expRayRate, stats.RayRate)
		}
		if stats.TotalSamples != s.expTotal {
			t.Fatalf("[spec %d] expected total samples %d; got %d", index, s.expTotal, stats.TotalSamples)
		}
	}
}

func TestInputSuppressionRules(t *testing.T) {
	type spec struct {
		benchmark     bool
		captureKeys   bool
		captureMouse  bool
		expKeyCalls   int
		expCursor     int
		expButtons    int
		expRayToggled bool
	}
	specs := []spec{
		// Interactive mode: everything reaches the camera.
		{false, false, false, 1, 1, 1, true},
		// Benchmark mode suppresses camera input and toggles.
		{true, false, false, 0, 0, 0, false},
		// Overlay keyboard capture swallows key events.
		{false, true, false, 0, 0, 1, false},
		// Overlay mouse capture swallows cursor and button events.
		{false, false, true, 1, 0, 0, true},
	}

	for index, s := range specs {
		settings := &Settings{Benchmark: s.benchmark, AccumulateRays: true, SamplesPerFrame: 1, MaxTotalSamples: 1, BenchmarkMaxTime: 1000}
		display := newFakeDisplay(10, 10, 0)
		f := newDriverFixture(t, settings, display, "scene")
		f.overlay.captureKeys = s.captureKeys
		f.overlay.captureMouse = s.captureMouse

		f.driver.OnKey(KeyR, KeyPress)
		f.driver.OnCursorPosition(5, 5)
		f.driver.OnMouseButton(MouseButtonLeft, KeyPress)

		if f.camera.keyCalls != s.expKeyCalls {
			t.Fatalf("[spec %d] expected %d camera key calls; got %d", index, s.expKeyCalls, f.camera.keyCalls)
		}
		if f.camera.cursorCalls != s.expCursor {
			t.Fatalf("[spec %d] expected %d camera cursor calls; got %d", index, s.expCursor, f.camera.cursorCalls)
		}
		if f.camera.buttonCalls != s.expButtons {
			t.Fatalf("[spec %d] expected %d camera button calls; got %d", index, s.expButtons, f.camera.buttonCalls)
		}
		if settings.IsRayTraced != s.expRayToggled {
			t.Fatalf("[spec %d] expected ray-traced toggle %t; got %t", index, s.expRayToggled, settings.IsRayTraced)
		}
	}
}

func TestEscapeRequestsShutdown(t *testing.T) {
	settings := &Settings{Benchmark: true, BenchmarkMaxTime: 1000}
	display := newFakeDisplay(10, 10, 0)
	f := newDriverFixture(t, settings, display, "scene")

	f.driver.OnKey(KeyEscape, KeyPress)
	if !display.closed {
		t.Fatal("expected escape to request shutdown even while benchmarking")
	}
}

func TestCameraMovementResetsAccumulation(t *testing.T) {
	settings := &Settings{AccumulateRays: true, SamplesPerFrame: 4, MaxTotalSamples: 100}
	display := newFakeDisplay(10, 10, 0, 1, 2, 3)
	f := newDriverFixture(t, settings, display, "scene")

	f.driver.Tick()
	f.driver.Tick()
	if f.driver.TotalSamples() != 8 {
		t.Fatalf("expected total 8 before movement; got %d", f.driver.TotalSamples())
	}

	// Movement during this tick invalidates accumulation for the next one.
	f.camera.moved = true
	f.driver.Tick()
	f.camera.moved = false
	f.driver.Tick()

	if f.driver.TotalSamples() != 4 {
		t.Fatalf("expected accumulation restart after camera movement; got %d", f.driver.TotalSamples())
	}
}
