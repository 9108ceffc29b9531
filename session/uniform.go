package session

import "github.com/go-gl/mathgl/mgl32"

// Fixed projection planes; every scene in the registry fits inside them.
const (
	nearPlane = 0.1
	farPlane  = 10000.0
)

// UniformParams is the per-frame render-parameter record consumed by the
// backend.
type UniformParams struct {
	ModelView         mgl32.Mat4
	Projection        mgl32.Mat4
	ModelViewInverse  mgl32.Mat4
	ProjectionInverse mgl32.Mat4

	Aperture      float32
	FocusDistance float32

	TotalSamples     uint32
	SamplesThisFrame uint32
	NumberOfBounces  uint32
	RandomSeed       uint32

	GammaCorrection bool
	HasSky          bool
}

// ComposeUniform builds the parameter record for one frame from the current
// view transform, settings and accumulation state.
func ComposeUniform(view mgl32.Mat4, fbWidth, fbHeight uint32, settings Settings, totalSamples, samplesThisFrame uint32, hasSky bool) UniformParams {
	projection := mgl32.Perspective(
		mgl32.DegToRad(settings.FieldOfView),
		float32(fbWidth)/float32(fbHeight),
		nearPlane, farPlane,
	)
	// The target graphics API's clip space has Y pointing down.
	projection[5] *= -1

	return UniformParams{
		ModelView:         view,
		Projection:        projection,
		ModelViewInverse:  view.Inv(),
		ProjectionInverse: projection.Inv(),
		Aperture:          settings.Aperture,
		FocusDistance:     settings.FocusDistance,
		TotalSamples:      totalSamples,
		SamplesThisFrame:  samplesThisFrame,
		NumberOfBounces:   settings.NumberOfBounces,
		RandomSeed:        1,
		GammaCorrection:   settings.GammaCorrection,
		HasSky:            hasSky,
	}
}
