package session

import (
	"fmt"

	"github.com/achilleasa/raybench/scene"
)

// Lifecycle owns the loaded scene handle and sequences the teardown/rebuild
// of scene-dependent backend resources when the active scene index changes.
//
// The switch sequence is a strict order; each step must complete before the
// next begins or destroyed GPU resources may still be referenced by
// in-flight work. Any step failure is fatal for the run: the orchestrator
// keeps no partial state that would make a retry safe.
type Lifecycle struct {
	backend Backend
	source  SceneSource
	camera  CameraView

	loadedIndex int
	loaded      *scene.Scene
	initial     scene.CameraInitialState
}

func NewLifecycle(backend Backend, source SceneSource, camera CameraView) *Lifecycle {
	return &Lifecycle{
		backend:     backend,
		source:      source,
		camera:      camera,
		loadedIndex: -1,
	}
}

// SwitchPending reports whether the requested scene differs from the loaded
// one.
func (l *Lifecycle) SwitchPending(settings *Settings) bool {
	return settings.SceneIndex != l.loadedIndex
}

// The currently loaded scene; nil before Initialize.
func (l *Lifecycle) Scene() *scene.Scene {
	return l.loaded
}

// The loaded scene's initial camera state.
func (l *Lifecycle) Initial() scene.CameraInitialState {
	return l.initial
}

// Index of the currently loaded scene, -1 before Initialize.
func (l *Lifecycle) LoadedIndex() int {
	return l.loadedIndex
}

// Initialize loads the initial scene and builds backend resources before
// the first tick.
func (l *Lifecycle) Initialize(settings *Settings, acc *Accumulator, bench *Benchmark) error {
	if err := l.load(settings, acc, bench); err != nil {
		return err
	}
	if err := l.backend.CreateSceneResources(l.loaded); err != nil {
		return fmt.Errorf("lifecycle: create scene resources: %w", err)
	}
	if err := l.backend.CreateSwapchainResources(); err != nil {
		return fmt.Errorf("lifecycle: create swapchain resources: %w", err)
	}
	return nil
}

// Switch performs the full teardown/rebuild sequence for a pending scene
// change. The calling tick must not render.
func (l *Lifecycle) Switch(settings *Settings, acc *Accumulator, bench *Benchmark) error {
	if err := l.backend.WaitIdle(); err != nil {
		return fmt.Errorf("lifecycle: wait idle: %w", err)
	}
	if err := l.backend.DestroySwapchainResources(); err != nil {
		return fmt.Errorf("lifecycle: destroy swapchain resources: %w", err)
	}
	if err := l.backend.DestroySceneResources(); err != nil {
		return fmt.Errorf("lifecycle: destroy scene resources: %w", err)
	}
	if err := l.load(settings, acc, bench); err != nil {
		return err
	}
	if err := l.backend.CreateSceneResources(l.loaded); err != nil {
		return fmt.Errorf("lifecycle: create scene resources: %w", err)
	}
	if err := l.backend.CreateSwapchainResources(); err != nil {
		return fmt.Errorf("lifecycle: create swapchain resources: %w", err)
	}
	return nil
}

// load replaces the owned scene handle with a freshly loaded scene, copies
// its initial optics into the settings, resets the camera view and the
// benchmark window and invalidates accumulated samples.
func (l *Lifecycle) load(settings *Settings, acc *Accumulator, bench *Benchmark) error {
	sc, initial, err := l.source.LoadScene(settings.SceneIndex)
	if err != nil {
		return fmt.Errorf("lifecycle: load scene %d: %w", settings.SceneIndex, err)
	}

	// Pipeline setup assumes at least one bound texture.
	if len(sc.Textures) == 0 {
		sc.Textures = append(sc.Textures, scene.PlaceholderTexture())
	}

	l.loaded = sc
	l.initial = initial
	l.loadedIndex = settings.SceneIndex

	settings.FieldOfView = initial.FieldOfView
	settings.Aperture = initial.Aperture
	settings.FocusDistance = initial.FocusDistance
	settings.GammaCorrection = initial.GammaCorrection

	l.camera.Reset(initial.ModelView, initial.ControlSpeed)

	bench.ResetWindow()
	acc.RequestReset()

	return nil
}
