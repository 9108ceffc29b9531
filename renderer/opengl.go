package renderer

import (
	"math"

	"github.com/achilleasa/raybench/log"
	"github.com/achilleasa/raybench/scene"
	"github.com/achilleasa/raybench/session"
	"github.com/achilleasa/raybench/types"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-gl/gl/v2.1/gl"
)

var logger = log.New("renderer")

// GLBackend is a preview implementation of the session Backend on a legacy
// OpenGL context. It shades a CPU framebuffer from the per-frame uniform
// parameters, uploads it into a texture and blits it to the window. It is
// not a path tracer; it exists to exercise the full resource lifecycle and
// to give the interactive command something to display.
type GLBackend struct {
	window *Window

	// Scene-dependent state.
	sc        *scene.Scene
	sceneMin  types.Vec3
	sceneMax  types.Vec3
	haveScene bool

	// Swapchain-dependent state.
	fbWidth       uint32
	fbHeight      uint32
	texture       uint32
	texFbo        uint32
	pixels        []uint8
	haveSwapchain bool
}

func NewGLBackend(window *Window) *GLBackend {
	return &GLBackend{window: window}
}

// CreateSceneResources ingests the scene's model and texture collections
// and builds the coarse world bound the preview shading uses in place of a
// real acceleration structure.
func (b *GLBackend) CreateSceneResources(sc *scene.Scene) error {
	if b.haveScene {
		return ErrSceneResourcesExist
	}

	b.sceneMin = types.XYZ(float32(math.Inf(1)), float32(math.Inf(1)), float32(math.Inf(1)))
	b.sceneMax = types.XYZ(float32(math.Inf(-1)), float32(math.Inf(-1)), float32(math.Inf(-1)))
	var numVertices int
	for _, model := range sc.Models {
		for _, vertex := range model.Vertices {
			b.sceneMin = types.MinVec3(b.sceneMin, vertex.Position)
			b.sceneMax = types.MaxVec3(b.sceneMax, vertex.Position)
		}
		numVertices += len(model.Vertices)
	}

	b.sc = sc
	b.haveScene = true
	logger.Infof("created scene resources: %d models, %d textures, %d vertices", len(sc.Models), len(sc.Textures), numVertices)
	return nil
}

func (b *GLBackend) DestroySceneResources() error {
	if !b.haveScene {
		return ErrNoSceneResources
	}
	b.sc = nil
	b.haveScene = false
	return nil
}

// CreateSwapchainResources allocates the presentation texture and its
// read framebuffer at the achieved framebuffer size.
func (b *GLBackend) CreateSwapchainResources() error {
	if b.haveSwapchain {
		return ErrSwapchainResourcesExist
	}

	b.fbWidth, b.fbHeight = b.window.FramebufferSize()
	b.pixels = make([]uint8, b.fbWidth*b.fbHeight*4)

	gl.GenTextures(1, &b.texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.fbWidth), int32(b.fbHeight), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	gl.GenFramebuffers(1, &b.texFbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, b.texFbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, b.texture, 0)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	b.haveSwapchain = true
	return nil
}

func (b *GLBackend) DestroySwapchainResources() error {
	if !b.haveSwapchain {
		return ErrNoSwapchainResources
	}

	gl.DeleteFramebuffers(1, &b.texFbo)
	gl.DeleteTextures(1, &b.texture)
	b.pixels = nil
	b.haveSwapchain = false
	return nil
}

// WaitIdle blocks until the GL command stream has drained.
func (b *GLBackend) WaitIdle() error {
	gl.Finish()
	return nil
}

// RenderFrame shades the preview framebuffer and blits it to the window.
// The preview path is the same for both render modes.
func (b *GLBackend) RenderFrame(params session.UniformParams, mode session.RenderMode) error {
	if !b.haveScene {
		return ErrNoSceneResources
	}
	if !b.haveSwapchain {
		return ErrNoSwapchainResources
	}

	b.shade(params)

	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(b.fbWidth), int32(b.fbHeight), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(b.pixels))

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, b.texFbo)
	gl.BlitFramebuffer(0, 0, int32(b.fbWidth), int32(b.fbHeight), 0, 0, int32(b.fbWidth), int32(b.fbHeight), gl.COLOR_BUFFER_BIT, gl.LINEAR)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	return nil
}

// rayHitsBounds slab-tests a ray against the scene's world bound so the
// preview shows the scene's silhouette.
func (b *GLBackend) rayHitsBounds(eye, dir mgl32.Vec3) bool {
	tMin := float32(math.Inf(-1))
	tMax := float32(math.Inf(1))

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if eye[axis] < b.sceneMin[axis] || eye[axis] > b.sceneMax[axis] {
				return false
			}
			continue
		}

		inv := 1 / dir[axis]
		t0 := (b.sceneMin[axis] - eye[axis]) * inv
		t1 := (b.sceneMax[axis] - eye[axis]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
	}

	return tMax >= tMin && tMax >= 0
}

// shade fills the CPU framebuffer with the scene's sky gradient, derived
// from the frame's inverse view/projection matrices. Per-pixel ray
// directions are interpolated from the four frustum corner rays.
func (b *GLBackend) shade(params session.UniformParams) {
	invViewProj := params.Projection.Mul4(params.ModelView).Inv()
	eye := params.ModelViewInverse.Col(3).Vec3()

	cornerRay := func(x, y float32) mgl32.Vec3 {
		v := invViewProj.Mul4x1(mgl32.Vec4{x, y, -1, 1})
		return v.Mul(1 / v.W()).Vec3().Sub(eye).Normalize()
	}
	tl := cornerRay(-1, 1)
	tr := cornerRay(1, 1)
	bl := cornerRay(-1, -1)
	br := cornerRay(1, -1)

	for y := uint32(0); y < b.fbHeight; y++ {
		fy := float32(y) / float32(b.fbHeight-1)
		left := tl.Mul(1 - fy).Add(bl.Mul(fy))
		right := tr.Mul(1 - fy).Add(br.Mul(fy))

		for x := uint32(0); x < b.fbWidth; x++ {
			fx := float32(x) / float32(b.fbWidth-1)
			dir := left.Mul(1 - fx).Add(right.Mul(fx))

			var r, g, bb float32
			switch {
			case b.rayHitsBounds(eye, dir):
				r, g, bb = 0.55, 0.55, 0.6
			case params.HasSky:
				t := 0.5 * (dir.Normalize().Y() + 1)
				r = (1-t)*1.0 + t*0.5
				g = (1-t)*1.0 + t*0.7
				bb = (1-t)*1.0 + t*1.0
			default:
				r, g, bb = 0.05, 0.05, 0.05
			}
			if params.GammaCorrection {
				r = float32(math.Sqrt(float64(r)))
				g = float32(math.Sqrt(float64(g)))
				bb = float32(math.Sqrt(float64(bb)))
			}

			off := (y*b.fbWidth + x) * 4
			b.pixels[off] = uint8(r * 255)
			b.pixels[off+1] = uint8(g * 255)
			b.pixels[off+2] = uint8(bb * 255)
			b.pixels[off+3] = 0xff
		}
	}
}
