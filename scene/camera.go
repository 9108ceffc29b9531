package scene

import "github.com/go-gl/mathgl/mgl32"

// CameraInitialState captures the camera parameters a scene was authored
// with. It is produced once per scene load and is used to seed the render
// settings and to reset the interactive view controller.
type CameraInitialState struct {
	// Initial view transform.
	ModelView mgl32.Mat4

	// Optics.
	FieldOfView   float32
	Aperture      float32
	FocusDistance float32

	// Movement speed for the interactive view controller.
	ControlSpeed float32

	GammaCorrection bool

	// True if the scene expects a procedural sky gradient instead of a
	// black background.
	HasSky bool
}
