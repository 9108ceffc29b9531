package scene

import (
	"math"

	"github.com/achilleasa/raybench/types"
)

// Generate an axis-aligned box between two corner points.
func NewBox(name string, p0, p1 types.Vec3, mat Material) *Model {
	vertices := []Vertex{
		{types.XYZ(p0[0], p0[1], p0[2]), types.XYZ(-1, 0, 0), types.XY(0, 0)},
		{types.XYZ(p0[0], p0[1], p1[2]), types.XYZ(-1, 0, 0), types.XY(1, 0)},
		{types.XYZ(p0[0], p1[1], p1[2]), types.XYZ(-1, 0, 0), types.XY(1, 1)},
		{types.XYZ(p0[0], p1[1], p0[2]), types.XYZ(-1, 0, 0), types.XY(0, 1)},

		{types.XYZ(p1[0], p0[1], p1[2]), types.XYZ(1, 0, 0), types.XY(0, 0)},
		{types.XYZ(p1[0], p0[1], p0[2]), types.XYZ(1, 0, 0), types.XY(1, 0)},
		{types.XYZ(p1[0], p1[1], p0[2]), types.XYZ(1, 0, 0), types.XY(1, 1)},
		{types.XYZ(p1[0], p1[1], p1[2]), types.XYZ(1, 0, 0), types.XY(0, 1)},

		{types.XYZ(p0[0], p0[1], p0[2]), types.XYZ(0, -1, 0), types.XY(0, 0)},
		{types.XYZ(p1[0], p0[1], p0[2]), types.XYZ(0, -1, 0), types.XY(1, 0)},
		{types.XYZ(p1[0], p0[1], p1[2]), types.XYZ(0, -1, 0), types.XY(1, 1)},
		{types.XYZ(p0[0], p0[1], p1[2]), types.XYZ(0, -1, 0), types.XY(0, 1)},

		{types.XYZ(p0[0], p1[1], p1[2]), types.XYZ(0, 1, 0), types.XY(0, 0)},
		{types.XYZ(p1[0], p1[1], p1[2]), types.XYZ(0, 1, 0), types.XY(1, 0)},
		{types.XYZ(p1[0], p1[1], p0[2]), types.XYZ(0, 1, 0), types.XY(1, 1)},
		{types.XYZ(p0[0], p1[1], p0[2]), types.XYZ(0, 1, 0), types.XY(0, 1)},

		{types.XYZ(p0[0], p0[1], p0[2]), types.XYZ(0, 0, -1), types.XY(0, 0)},
		{types.XYZ(p0[0], p1[1], p0[2]), types.XYZ(0, 0, -1), types.XY(1, 0)},
		{types.XYZ(p1[0], p1[1], p0[2]), types.XYZ(0, 0, -1), types.XY(1, 1)},
		{types.XYZ(p1[0], p0[1], p0[2]), types.XYZ(0, 0, -1), types.XY(0, 1)},

		{types.XYZ(p0[0], p0[1], p1[2]), types.XYZ(0, 0, 1), types.XY(0, 0)},
		{types.XYZ(p1[0], p0[1], p1[2]), types.XYZ(0, 0, 1), types.XY(1, 0)},
		{types.XYZ(p1[0], p1[1], p1[2]), types.XYZ(0, 0, 1), types.XY(1, 1)},
		{types.XYZ(p0[0], p1[1], p1[2]), types.XYZ(0, 0, 1), types.XY(0, 1)},
	}

	indices := make([]uint32, 0, 36)
	for face := uint32(0); face < 6; face++ {
		base := face * 4
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return &Model{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
		Material: mat,
	}
}

// Generate a procedural sphere. The triangle mesh is a lat/long tessellation
// used by rasterized backends; ray-traced backends intersect the analytic
// center/radius form instead.
func NewSphere(name string, center types.Vec3, radius float32, mat Material) *Model {
	const stacks, slices = 16, 32

	model := &Model{
		Name:         name,
		Material:     mat,
		IsProcedural: true,
		Center:       center,
		Radius:       radius,
	}

	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / stacks
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / slices

			normal := types.XYZ(
				float32(math.Sin(phi)*math.Cos(theta)),
				float32(math.Cos(phi)),
				float32(math.Sin(phi)*math.Sin(theta)),
			)
			model.Vertices = append(model.Vertices, Vertex{
				Position: center.Add(normal.Mul(radius)),
				Normal:   normal,
				TexCoord: types.XY(float32(j)/slices, float32(i)/stacks),
			})
		}
	}

	for i := uint32(0); i < stacks; i++ {
		for j := uint32(0); j < slices; j++ {
			tl := i*(slices+1) + j
			bl := (i+1)*(slices+1) + j
			model.Indices = append(model.Indices, tl, bl, tl+1, tl+1, bl, bl+1)
		}
	}

	return model
}
