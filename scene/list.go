package scene

import (
	"fmt"
	"math/rand"

	"github.com/achilleasa/raybench/types"
	"github.com/go-gl/mathgl/mgl32"
)

// A named entry in the scene registry.
type Entry struct {
	Name  string
	Build func() (*Scene, CameraInitialState, error)
}

// The ordered list of built-in scenes. The benchmark controller walks this
// list when auto-advancing.
var All = []Entry{
	{"Cube And Spheres", cubeAndSpheres},
	{"Ray Tracing In One Weekend", rayTracingInOneWeekend},
	{"Cornell Box", cornellBox},
	{"Cornell Box & Spheres", cornellBoxAndSpheres},
}

// A scene source backed by the built-in registry.
type ListSource struct {
	entries []Entry
}

func NewListSource() *ListSource {
	return &ListSource{entries: All}
}

// Number of available scenes.
func (s *ListSource) Count() int {
	return len(s.entries)
}

// Display name for the scene at the given index.
func (s *ListSource) Name(index int) string {
	if index < 0 || index >= len(s.entries) {
		return ""
	}
	return s.entries[index].Name
}

// Build the scene at the given index.
func (s *ListSource) LoadScene(index int) (*Scene, CameraInitialState, error) {
	if index < 0 || index >= len(s.entries) {
		return nil, CameraInitialState{}, fmt.Errorf("scene: index %d out of range [0, %d)", index, len(s.entries))
	}
	return s.entries[index].Build()
}

func cubeAndSpheres() (*Scene, CameraInitialState, error) {
	sc := NewScene()

	checker := sc.AddTexture(checkerTexture(64, 8))

	models := []*Model{
		NewBox("cube", types.XYZ(-0.5, -0.5, -0.5), types.XYZ(0.5, 0.5, 0.5), Material{
			Kind:         Lambertian,
			Diffuse:      types.XYZ(0.8, 0.8, 0.8),
			TextureIndex: checker,
		}),
		NewSphere("mirror-sphere", types.XYZ(1.2, 0, 0), 0.35, Material{
			Kind:         Metallic,
			Diffuse:      types.XYZ(0.9, 0.9, 0.9),
			Fuzziness:    0.0,
			TextureIndex: -1,
		}),
		NewSphere("glass-sphere", types.XYZ(-1.2, 0, 0), 0.35, Material{
			Kind:            Dielectric,
			Diffuse:         types.XYZ(1, 1, 1),
			RefractionIndex: 1.5,
			TextureIndex:    -1,
		}),
	}
	for _, m := range models {
		if err := sc.AddModel(m); err != nil {
			return nil, CameraInitialState{}, err
		}
	}

	init := CameraInitialState{
		ModelView:       mgl32.Translate3D(0, 0, -2),
		FieldOfView:     90,
		Aperture:        0.05,
		FocusDistance:   2.0,
		ControlSpeed:    2.0,
		GammaCorrection: false,
		HasSky:          true,
	}
	return sc, init, nil
}

func rayTracingInOneWeekend() (*Scene, CameraInitialState, error) {
	sc := NewScene()

	// Deterministic layout so two benchmark runs measure the same scene.
	rng := rand.New(rand.NewSource(42))

	ground := NewSphere("ground", types.XYZ(0, -1000, 0), 1000, Material{
		Kind:         Lambertian,
		Diffuse:      types.XYZ(0.5, 0.5, 0.5),
		TextureIndex: -1,
	})
	if err := sc.AddModel(ground); err != nil {
		return nil, CameraInitialState{}, err
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float32()
			center := types.XYZ(float32(a)+0.9*rng.Float32(), 0.2, float32(b)+0.9*rng.Float32())

			if center.Sub(types.XYZ(4, 0.2, 0)).Len() <= 0.9 {
				continue
			}

			var mat Material
			switch {
			case chooseMat < 0.8:
				mat = Material{
					Kind:         Lambertian,
					Diffuse:      types.XYZ(rng.Float32()*rng.Float32(), rng.Float32()*rng.Float32(), rng.Float32()*rng.Float32()),
					TextureIndex: -1,
				}
			case chooseMat < 0.95:
				mat = Material{
					Kind:         Metallic,
					Diffuse:      types.XYZ(0.5*(1+rng.Float32()), 0.5*(1+rng.Float32()), 0.5*(1+rng.Float32())),
					Fuzziness:    0.5 * rng.Float32(),
					TextureIndex: -1,
				}
			default:
				mat = Material{
					Kind:            Dielectric,
					Diffuse:         types.XYZ(1, 1, 1),
					RefractionIndex: 1.5,
					TextureIndex:    -1,
				}
			}

			if err := sc.AddModel(NewSphere("small-sphere", center, 0.2, mat)); err != nil {
				return nil, CameraInitialState{}, err
			}
		}
	}

	big := []*Model{
		NewSphere("glass", types.XYZ(0, 1, 0), 1.0, Material{
			Kind: Dielectric, Diffuse: types.XYZ(1, 1, 1), RefractionIndex: 1.5, TextureIndex: -1,
		}),
		NewSphere("matte", types.XYZ(-4, 1, 0), 1.0, Material{
			Kind: Lambertian, Diffuse: types.XYZ(0.4, 0.2, 0.1), TextureIndex: -1,
		}),
		NewSphere("metal", types.XYZ(4, 1, 0), 1.0, Material{
			Kind: Metallic, Diffuse: types.XYZ(0.7, 0.6, 0.5), Fuzziness: 0.0, TextureIndex: -1,
		}),
	}
	for _, m := range big {
		if err := sc.AddModel(m); err != nil {
			return nil, CameraInitialState{}, err
		}
	}

	init := CameraInitialState{
		ModelView:       mgl32.LookAtV(mgl32.Vec3{13, 2, 3}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}),
		FieldOfView:     20,
		Aperture:        0.1,
		FocusDistance:   10.0,
		ControlSpeed:    5.0,
		GammaCorrection: true,
		HasSky:          true,
	}
	return sc, init, nil
}

func cornellBox() (*Scene, CameraInitialState, error) {
	sc := NewScene()
	if err := addCornellWalls(sc); err != nil {
		return nil, CameraInitialState{}, err
	}

	boxes := []*Model{
		NewBox("tall-box", types.XYZ(265, 0, 295), types.XYZ(430, 330, 460), Material{
			Kind: Lambertian, Diffuse: types.XYZ(0.73, 0.73, 0.73), TextureIndex: -1,
		}),
		NewBox("short-box", types.XYZ(130, 0, 65), types.XYZ(295, 165, 230), Material{
			Kind: Lambertian, Diffuse: types.XYZ(0.73, 0.73, 0.73), TextureIndex: -1,
		}),
	}
	for _, m := range boxes {
		if err := sc.AddModel(m); err != nil {
			return nil, CameraInitialState{}, err
		}
	}

	return sc, cornellCamera(), nil
}

func cornellBoxAndSpheres() (*Scene, CameraInitialState, error) {
	sc := NewScene()
	if err := addCornellWalls(sc); err != nil {
		return nil, CameraInitialState{}, err
	}

	spheres := []*Model{
		NewSphere("glass-sphere", types.XYZ(190, 90, 190), 90, Material{
			Kind: Dielectric, Diffuse: types.XYZ(1, 1, 1), RefractionIndex: 1.5, TextureIndex: -1,
		}),
		NewSphere("metal-sphere", types.XYZ(370, 90, 370), 90, Material{
			Kind: Metallic, Diffuse: types.XYZ(0.8, 0.85, 0.88), Fuzziness: 0.0, TextureIndex: -1,
		}),
	}
	for _, m := range spheres {
		if err := sc.AddModel(m); err != nil {
			return nil, CameraInitialState{}, err
		}
	}

	return sc, cornellCamera(), nil
}

func addCornellWalls(sc *Scene) error {
	white := Material{Kind: Lambertian, Diffuse: types.XYZ(0.73, 0.73, 0.73), TextureIndex: -1}
	red := Material{Kind: Lambertian, Diffuse: types.XYZ(0.65, 0.05, 0.05), TextureIndex: -1}
	green := Material{Kind: Lambertian, Diffuse: types.XYZ(0.12, 0.45, 0.15), TextureIndex: -1}
	light := Material{Kind: Emissive, Diffuse: types.XYZ(15, 15, 15), TextureIndex: -1}

	walls := []*Model{
		NewBox("left-wall", types.XYZ(555, 0, 0), types.XYZ(556, 555, 555), green),
		NewBox("right-wall", types.XYZ(-1, 0, 0), types.XYZ(0, 555, 555), red),
		NewBox("floor", types.XYZ(0, -1, 0), types.XYZ(555, 0, 555), white),
		NewBox("ceiling", types.XYZ(0, 555, 0), types.XYZ(555, 556, 555), white),
		NewBox("back-wall", types.XYZ(0, 0, 555), types.XYZ(555, 555, 556), white),
		NewBox("light", types.XYZ(213, 554, 227), types.XYZ(343, 555, 332), light),
	}
	for _, m := range walls {
		if err := sc.AddModel(m); err != nil {
			return err
		}
	}
	return nil
}

func cornellCamera() CameraInitialState {
	return CameraInitialState{
		ModelView:       mgl32.LookAtV(mgl32.Vec3{278, 278, -800}, mgl32.Vec3{278, 278, 0}, mgl32.Vec3{0, 1, 0}),
		FieldOfView:     40,
		Aperture:        0.0,
		FocusDistance:   10.0,
		ControlSpeed:    500.0,
		GammaCorrection: true,
		HasSky:          false,
	}
}

func checkerTexture(size, cells uint32) *Texture {
	tex := &Texture{
		Name:   "checker",
		Width:  size,
		Height: size,
		Pixels: make([]uint8, size*size*4),
	}

	cellSize := size / cells
	for y := uint32(0); y < size; y++ {
		for x := uint32(0); x < size; x++ {
			var c uint8 = 0x30
			if (x/cellSize+y/cellSize)%2 == 0 {
				c = 0xe0
			}
			off := (y*size + x) * 4
			tex.Pixels[off] = c
			tex.Pixels[off+1] = c
			tex.Pixels[off+2] = c
			tex.Pixels[off+3] = 0xff
		}
	}
	return tex
}
