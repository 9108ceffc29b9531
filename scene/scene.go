package scene

import (
	"fmt"

	"github.com/achilleasa/raybench/types"
)

// Material surface types.
type MaterialKind uint32

const (
	Lambertian MaterialKind = iota
	Metallic
	Dielectric
	Emissive
)

type Material struct {
	Kind MaterialKind

	// Base color.
	Diffuse types.Vec3

	// Fuzziness for metallic surfaces, refraction index for dielectrics.
	Fuzziness       float32
	RefractionIndex float32

	// Index into the scene texture list or -1 when untextured.
	TextureIndex int32
}

type Vertex struct {
	Position types.Vec3
	Normal   types.Vec3
	TexCoord types.Vec2
}

// A triangle mesh or procedural primitive together with its material.
type Model struct {
	Name string

	Vertices []Vertex
	Indices  []uint32

	Material Material

	// Set for procedural spheres so a ray-traced backend can intersect
	// them analytically instead of via the triangle mesh.
	IsProcedural bool
	Center       types.Vec3
	Radius       float32
}

// An RGBA8 texture image.
type Texture struct {
	Name   string
	Width  uint32
	Height uint32
	Pixels []uint8
}

// A loaded scene: the model and texture collections all scene-dependent GPU
// resources are derived from. Instances are replaced wholesale on scene
// switch, never mutated in place.
type Scene struct {
	Models   []*Model
	Textures []*Texture
}

func NewScene() *Scene {
	return &Scene{
		Models:   make([]*Model, 0),
		Textures: make([]*Texture, 0),
	}
}

// Add a model to the scene.
func (s *Scene) AddModel(model *Model) error {
	if model.Material.TextureIndex >= int32(len(s.Textures)) {
		return fmt.Errorf("scene: model %q references unknown texture %d; ensure that the texture is added to the scene before adding the model", model.Name, model.Material.TextureIndex)
	}
	s.Models = append(s.Models, model)
	return nil
}

// Add a texture to the scene and get back its index.
func (s *Scene) AddTexture(texture *Texture) int32 {
	s.Textures = append(s.Textures, texture)
	return int32(len(s.Textures) - 1)
}

// A 1x1 opaque white texture. Scenes without any textures get this one
// substituted so that pipeline setup can always assume at least one bound
// texture.
func PlaceholderTexture() *Texture {
	return &Texture{
		Name:   "placeholder-white",
		Width:  1,
		Height: 1,
		Pixels: []uint8{0xff, 0xff, 0xff, 0xff},
	}
}
