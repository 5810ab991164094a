package loader

import (
	"math"

	"github.com/umbra3d/umbra/engine/model"
)

// NewPlaneMesh generates a flat square on the XZ plane centred at the origin
// with its normal pointing up. UVs tile across the surface so floor textures
// repeat rather than stretch.
//
// Parameters:
//   - size: edge length in world units
//   - uvTiling: number of texture repeats across the full edge
//
// Returns:
//   - model.Mesh: the generated mesh
func NewPlaneMesh(size, uvTiling float32) model.Mesh {
	h := size / 2
	vertices := []model.GPUVertex{
		{Position: [3]float32{-h, 0, -h}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{h, 0, -h}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{uvTiling, 0}},
		{Position: [3]float32{h, 0, h}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{uvTiling, uvTiling}},
		{Position: [3]float32{-h, 0, h}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, uvTiling}},
	}
	indices := []uint32{0, 2, 1, 0, 3, 2}

	return model.NewMesh(
		model.WithMeshName("plane"),
		model.WithVertices(vertices),
		model.WithIndices(indices),
	)
}

// NewCubeMesh generates an axis-aligned cube centred at the origin with
// per-face normals and full-face UVs.
//
// Parameters:
//   - size: edge length in world units
//
// Returns:
//   - model.Mesh: the generated mesh
func NewCubeMesh(size float32) model.Mesh {
	h := size / 2

	type face struct {
		normal  [3]float32
		corners [4][3]float32
	}
	faces := []face{
		{[3]float32{0, 0, -1}, [4][3]float32{{-h, h, -h}, {h, h, -h}, {h, -h, -h}, {-h, -h, -h}}},
		{[3]float32{0, 0, 1}, [4][3]float32{{h, h, h}, {-h, h, h}, {-h, -h, h}, {h, -h, h}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, h, h}, {-h, h, -h}, {-h, -h, -h}, {-h, -h, h}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{h, h, -h}, {h, h, h}, {h, -h, h}, {h, -h, -h}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}

	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	vertices := make([]model.GPUVertex, 0, 24)
	indices := make([]uint32, 0, 36)

	for _, f := range faces {
		base := uint32(len(vertices))
		for i, corner := range f.corners {
			vertices = append(vertices, model.GPUVertex{
				Position: corner,
				Normal:   f.normal,
				TexCoord: uvs[i],
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return model.NewMesh(
		model.WithMeshName("cube"),
		model.WithVertices(vertices),
		model.WithIndices(indices),
	)
}

// NewSphereMesh generates a UV sphere centred at the origin. Normals point
// radially outward and UVs follow latitude and longitude.
//
// Parameters:
//   - radius: sphere radius in world units
//   - slices: number of longitudinal segments (minimum 3)
//   - stacks: number of latitudinal segments (minimum 2)
//
// Returns:
//   - model.Mesh: the generated mesh
func NewSphereMesh(radius float32, slices, stacks int) model.Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}

	var vertices []model.GPUVertex
	var indices []uint32

	for stack := 0; stack <= stacks; stack++ {
		phi := math.Pi * float64(stack) / float64(stacks)
		y := float32(math.Cos(phi))
		ringRadius := float32(math.Sin(phi))

		for slice := 0; slice <= slices; slice++ {
			theta := 2 * math.Pi * float64(slice) / float64(slices)
			x := ringRadius * float32(math.Cos(theta))
			z := ringRadius * float32(math.Sin(theta))

			vertices = append(vertices, model.GPUVertex{
				Position: [3]float32{x * radius, y * radius, z * radius},
				Normal:   [3]float32{x, y, z},
				TexCoord: [2]float32{
					float32(slice) / float32(slices),
					float32(stack) / float32(stacks),
				},
			})
		}
	}

	ringStride := uint32(slices + 1)
	for stack := 0; stack < stacks; stack++ {
		for slice := 0; slice < slices; slice++ {
			a := uint32(stack)*ringStride + uint32(slice)
			b := a + ringStride

			indices = append(indices, a, a+1, b)
			indices = append(indices, a+1, b+1, b)
		}
	}

	return model.NewMesh(
		model.WithMeshName("sphere"),
		model.WithVertices(vertices),
		model.WithIndices(indices),
	)
}
