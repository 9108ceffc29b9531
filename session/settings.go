package session

// Settings is the render-parameter record shared with the UI/input layer.
// The UI mutates it at any time between frames; the core reads it every tick
// and writes back derived fields (optics copied from a freshly loaded
// scene). It is never assumed stable across a frame boundary.
type Settings struct {
	SceneIndex int

	IsRayTraced    bool
	AccumulateRays bool

	// Per-frame sample target and total accumulation ceiling.
	SamplesPerFrame uint32
	MaxTotalSamples uint32

	NumberOfBounces uint32

	// Camera optics, seeded from the loaded scene's initial state.
	FieldOfView   float32
	Aperture      float32
	FocusDistance float32

	GammaCorrection bool

	Benchmark           bool
	BenchmarkMaxTime    float64
	BenchmarkNextScenes bool

	// UI-only toggles. These never affect the rendered image and must not
	// trigger an accumulation reset.
	ShowSettings bool
	ShowOverlay  bool
}

// RequiresAccumulationReset reports whether an image-affecting field differs
// between this snapshot and the previous frame's. The comparison is limited
// to the explicit field list below; adding UI-only fields to Settings must
// not widen it.
func (s Settings) RequiresAccumulationReset(prev Settings) bool {
	return s.SceneIndex != prev.SceneIndex ||
		s.IsRayTraced != prev.IsRayTraced ||
		s.NumberOfBounces != prev.NumberOfBounces ||
		s.FieldOfView != prev.FieldOfView ||
		s.Aperture != prev.Aperture ||
		s.FocusDistance != prev.FocusDistance ||
		s.GammaCorrection != prev.GammaCorrection
}
